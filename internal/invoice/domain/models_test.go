package domain

import (
	"context"
	"testing"
	"time"

	"github.com/smallbiznis/staffhub/internal/validation"
	"github.com/smallbiznis/staffhub/pkg/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestInvoiceRequestValidation(t *testing.T) {
	db := dbtest.Open(t)
	dbtest.SeedIDs(t, db, "offers", 1)
	dbtest.SeedIDs(t, db, "customers", 1)
	dbtest.SeedIDs(t, db, "payment_states", 1)
	v := validation.New(db, zaptest.NewLogger(t))
	ctx := context.Background()

	issued := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	total := 1250.0
	req := InvoiceRequest{
		OfferID:        1,
		CustomerID:     1,
		IssueDate:      issued,
		DueDate:        issued,
		TotalAmount:    &total,
		PaymentStateID: 1,
	}
	require.NoError(t, v.Validate(ctx, &req), "due on the issue date is allowed")

	req.DueDate = issued.AddDate(0, 0, -1)
	var verrs *validation.Errors
	require.ErrorAs(t, v.Validate(ctx, &req), &verrs)
	assert.Equal(t, []string{"due_date"}, verrs.FieldNames())

	req.DueDate = issued.AddDate(0, 0, 14)
	req.TotalAmount = nil
	require.ErrorAs(t, v.Validate(ctx, &req), &verrs)
	assert.Equal(t, []string{"total_amount"}, verrs.FieldNames())

	var m Invoice
	req.TotalAmount = &total
	req.ApplyTo(&m)
	assert.Equal(t, 1250.0, m.TotalAmount)
	assert.Equal(t, "invoices/9.pdf", DocumentKey(9))
}
