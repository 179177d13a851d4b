package payments

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("")
		require.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
		require.Nil(t, g)
	})

	t.Run("mock flag does not replace the token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

		g, err := NewMercadoPagoGateway("")
		require.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
		require.Nil(t, g)
	})

	t.Run("configured", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("TEST-123")
		require.NoError(t, err)
		require.NotNil(t, g)
	})
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	t.Run("unconfigured gateway", func(t *testing.T) {
		var g *MercadoPagoGateway
		_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
		require.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
	})

	t.Run("invalid payload", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("TEST-123")
		require.NoError(t, err)

		_, _, _, err = g.CreatePayment(context.Background(), json.RawMessage(`not-json`))
		require.Error(t, err)
	})

	t.Run("non positive amount never reaches the api", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("TEST-123")
		require.NoError(t, err)

		for _, payload := range []string{
			`{"external_reference":"req-1"}`,
			`{"external_reference":"req-1","transaction_amount":0}`,
			`{"external_reference":"req-1","transaction_amount":-10}`,
		} {
			_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(payload))
			require.ErrorIs(t, err, ErrInvalidDepositAmount, payload)
		}
	})
}
