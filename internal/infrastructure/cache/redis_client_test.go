package cache

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestConnectRedis(t *testing.T) {
	t.Run("connects using env", func(t *testing.T) {
		mr := miniredis.RunT(t)
		t.Setenv("REDIS_ADDR", mr.Addr())
		t.Setenv("REDIS_DB", "0")

		rdb, err := ConnectRedis()
		require.NoError(t, err)
		require.NotNil(t, rdb)
		require.NoError(t, DisconnectRedis(rdb))
	})

	t.Run("invalid db", func(t *testing.T) {
		t.Setenv("REDIS_DB", "abc")

		rdb, err := ConnectRedis()
		require.Error(t, err)
		require.Nil(t, rdb)
	})

	t.Run("unreachable server", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		rdb, err := NewRedisClient(addr, "", 0)
		require.Error(t, err)
		require.Nil(t, rdb)
	})

	t.Run("disconnect nil", func(t *testing.T) {
		require.NoError(t, DisconnectRedis(nil))
	})
}
