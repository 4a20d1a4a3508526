// File: database/repository/invoice/interface.go
package invoiceRepo

import (
	"context"

	"storably/database"
	"storably/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *models.Invoice) error
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	ListByTenant(ctx context.Context, tenantID string) ([]models.Invoice, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SetPaymentIntent(ctx context.Context, id, paymentIntentID string) error
}

type mongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo constructs a new MongoDB InvoiceRepository.
func NewMongoInvoiceRepo() InvoiceRepository {
	return &mongoInvoiceRepo{
		coll: database.DB().Collection("invoices"),
	}
}
