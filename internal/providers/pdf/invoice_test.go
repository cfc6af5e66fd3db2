package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInvoice(t *testing.T) {
	out, err := New().RenderInvoice(context.Background(), InvoiceData{
		IssuerName:    "staffhub",
		InvoiceNumber: "INV-20260301-000007",
		IssueDate:     "2026-03-01",
		DueDate:       "2026-03-31",
		PaymentState:  "open",
		BillToName:    "Acme Events",
		EventName:     "Spring Fair",
		EventDate:     "2026-04-12",
		Items:         []InvoiceItem{{Description: "Promotion staff", Amount: "1200.00"}},
		Total:         "1200.00",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderInvoiceRequiresNumber(t *testing.T) {
	_, err := New().RenderInvoice(context.Background(), InvoiceData{})
	assert.ErrorIs(t, err, ErrEmptyInvoice)
}
