package interfaces

import (
	"context"
	"solar_quotes/internal/domain/entities"
)

// IDepositPaymentRepository abstracts DynamoDB persistence for DepositPayment.

type IDepositPaymentRepository interface {
	Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByQuoteRequestID(ctx context.Context, quoteRequestID string) ([]entities.DepositPayment, error)
}
