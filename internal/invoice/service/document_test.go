package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/smallbiznis/staffhub/internal/config"
	customerdomain "github.com/smallbiznis/staffhub/internal/customer/domain"
	eventdomain "github.com/smallbiznis/staffhub/internal/event/domain"
	"github.com/smallbiznis/staffhub/internal/invoice/domain"
	lookupdomain "github.com/smallbiznis/staffhub/internal/lookup/domain"
	offerdomain "github.com/smallbiznis/staffhub/internal/offer/domain"
	"github.com/smallbiznis/staffhub/internal/providers/pdf"
	"github.com/smallbiznis/staffhub/internal/storage"
	"github.com/smallbiznis/staffhub/pkg/db/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type recordingRenderer struct {
	last pdf.InvoiceData
}

func (r *recordingRenderer) RenderInvoice(_ context.Context, data pdf.InvoiceData) ([]byte, error) {
	r.last = data
	return []byte("%PDF-1.3 " + data.InvoiceNumber), nil
}

func TestDocumentServiceRender(t *testing.T) {
	db := dbtest.Open(t,
		&domain.Invoice{}, &customerdomain.Customer{}, &offerdomain.Offer{},
		&eventdomain.Event{}, &lookupdomain.PaymentState{},
	)
	store, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)
	renderer := &recordingRenderer{}

	contact := "Jo Doe"
	description := "Promotion staff for spring fair"
	state := lookupdomain.PaymentState{Lookup: lookupdomain.Lookup{Name: "open"}}
	require.NoError(t, db.Create(&state).Error)
	customer := customerdomain.Customer{CompanyName: "Acme Events", ContactName: &contact, Email: "billing@acme.test"}
	require.NoError(t, db.Create(&customer).Error)
	event := eventdomain.Event{Name: "Spring Fair", Date: time.Date(2026, 4, 12, 9, 0, 0, 0, time.UTC), Organizer: "Acme", LocationID: 1, EventStateID: 1}
	require.NoError(t, db.Create(&event).Error)
	offer := offerdomain.Offer{EventID: event.ID, CustomerID: customer.ID, Description: &description, TotalPrice: 1200, OfferStateID: 1}
	require.NoError(t, db.Create(&offer).Error)
	invoice := domain.Invoice{
		OfferID:        offer.ID,
		CustomerID:     customer.ID,
		IssueDate:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		TotalAmount:    1200,
		PaymentStateID: state.ID,
	}
	require.NoError(t, db.Create(&invoice).Error)

	svc := NewDocumentService(Params{
		DB:       db,
		Log:      zaptest.NewLogger(t),
		Cfg:      config.Config{AppName: "staffhub"},
		Renderer: renderer,
		Storage:  store,
	})

	doc, err := svc.Render(context.Background(), invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "invoices/1.pdf", doc.Key)
	assert.Equal(t, "INV-20260301-000001.pdf", doc.Filename)

	assert.Equal(t, "open", renderer.last.PaymentState)
	assert.Equal(t, "Acme Events", renderer.last.BillToName)
	assert.Equal(t, "Jo Doe", renderer.last.BillToContact)
	assert.Equal(t, "Spring Fair", renderer.last.EventName)
	assert.Equal(t, "2026-04-12", renderer.last.EventDate)
	require.Len(t, renderer.last.Items, 1)
	assert.Equal(t, description, renderer.last.Items[0].Description)
	assert.Equal(t, "1200.00", renderer.last.Total)

	stored, err := store.Exists(context.Background(), doc.Key)
	require.NoError(t, err)
	assert.True(t, stored)
	assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF")))
}

func TestDocumentServiceRenderMissing(t *testing.T) {
	db := dbtest.Open(t, &domain.Invoice{})
	store, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	svc := NewDocumentService(Params{
		DB:       db,
		Log:      zaptest.NewLogger(t),
		Renderer: &recordingRenderer{},
		Storage:  store,
	})

	_, err = svc.Render(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}
