package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("AWS_REGION", "")
		t.Setenv("AWS_ACCESS_KEY_ID", "")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "")
		t.Setenv("DYNAMODB_ENDPOINT", "")

		cfg, err := NewDynamoDBConfigFromEnv(context.Background())
		require.NoError(t, err)
		require.Equal(t, "us-east-1", cfg.Region)

		creds, err := cfg.Credentials.Retrieve(context.Background())
		require.NoError(t, err)
		require.Equal(t, "local", creds.AccessKeyID)
		require.Equal(t, "local", creds.SecretAccessKey)
	})

	t.Run("custom region and credentials", func(t *testing.T) {
		t.Setenv("AWS_REGION", "sa-east-1")
		t.Setenv("AWS_ACCESS_KEY_ID", "key")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
		t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")

		cfg, err := NewDynamoDBConfigFromEnv(context.Background())
		require.NoError(t, err)
		require.Equal(t, "sa-east-1", cfg.Region)

		creds, err := cfg.Credentials.Retrieve(context.Background())
		require.NoError(t, err)
		require.Equal(t, "key", creds.AccessKeyID)
	})
}
