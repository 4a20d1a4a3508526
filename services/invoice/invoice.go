package invoice

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	invoiceRepo "storably/database/repository/invoice"
	"storably/models"
	"storably/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// InvoiceService issues invoices for bookings and takes payments for them.
type InvoiceService interface {
	GenerateForBooking(ctx context.Context, b *models.Booking, breakdown *models.PriceBreakdown) (*models.Invoice, error)
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	ListByTenant(ctx context.Context, tenantID string) ([]models.Invoice, error)
	// CreatePaymentIntent opens a stripe payment intent for an issued
	// invoice and returns its client secret.
	CreatePaymentIntent(ctx context.Context, invoiceID string) (string, error)
	MarkPaid(ctx context.Context, invoiceID string) error
}

// DefaultInvoiceService is the production implementation.
type DefaultInvoiceService struct {
	Repo invoiceRepo.InvoiceRepository
}

func (s *DefaultInvoiceService) GenerateForBooking(ctx context.Context, b *models.Booking, breakdown *models.PriceBreakdown) (*models.Invoice, error) {
	now := time.Now()
	inv := &models.Invoice{
		ID:        uuid.New().String(),
		Number:    invoiceNumber(now),
		BookingID: b.ID,
		TenantID:  b.TenantID,
		LineItems: breakdown.LineItems,
		Subtotal:  breakdown.Subtotal,
		Tax:       breakdown.Tax,
		Total:     breakdown.Total,
		Currency:  breakdown.Currency,
		Status:    models.InvoiceStatusIssued,
		IssuedAt:  now,
		DueDate:   now.AddDate(0, 0, 14),
	}
	if err := s.Repo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to persist invoice: %w", err)
	}
	utils.GetLogger().Info("invoice issued",
		zap.String("invoiceID", inv.ID),
		zap.String("bookingID", b.ID),
		zap.Float64("total", inv.Total))
	return inv, nil
}

func (s *DefaultInvoiceService) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultInvoiceService) ListByTenant(ctx context.Context, tenantID string) ([]models.Invoice, error) {
	return s.Repo.ListByTenant(ctx, tenantID)
}

func (s *DefaultInvoiceService) CreatePaymentIntent(ctx context.Context, invoiceID string) (string, error) {
	inv, err := s.Repo.GetByID(ctx, invoiceID)
	if err != nil {
		return "", fmt.Errorf("failed to load invoice: %w", err)
	}
	if inv == nil {
		return "", fmt.Errorf("invoice %s not found", invoiceID)
	}
	if inv.Status != models.InvoiceStatusIssued {
		return "", fmt.Errorf("invoice %s is %s and cannot be paid", invoiceID, inv.Status)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountInCents(inv.Total)),
		Currency: stripe.String(inv.Currency),
		Metadata: map[string]string{
			"invoiceId": inv.ID,
			"bookingId": inv.BookingID,
		},
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent failed: %w", err)
	}
	if err := s.Repo.SetPaymentIntent(ctx, inv.ID, intent.ID); err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

func (s *DefaultInvoiceService) MarkPaid(ctx context.Context, invoiceID string) error {
	return s.Repo.UpdateStatus(ctx, invoiceID, models.InvoiceStatusPaid)
}

// amountInCents converts a two-decimal total into integer cents. The
// stored total is the nearest float64 to its cent value and can sit just
// below it, so a plain conversion would truncate a cent away.
func amountInCents(total float64) int64 {
	return int64(math.Round(total * 100))
}

// invoiceNumber builds a human-readable invoice number, e.g.
// INV-20240701-AB12CD34.
func invoiceNumber(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("INV-%s-%s", t.Format("20060102"), suffix)
}
