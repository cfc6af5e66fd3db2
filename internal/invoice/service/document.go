package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smallbiznis/staffhub/internal/config"
	customerdomain "github.com/smallbiznis/staffhub/internal/customer/domain"
	eventdomain "github.com/smallbiznis/staffhub/internal/event/domain"
	"github.com/smallbiznis/staffhub/internal/invoice/domain"
	"github.com/smallbiznis/staffhub/internal/invoice/format"
	lookupdomain "github.com/smallbiznis/staffhub/internal/lookup/domain"
	offerdomain "github.com/smallbiznis/staffhub/internal/offer/domain"
	"github.com/smallbiznis/staffhub/internal/providers/pdf"
	"github.com/smallbiznis/staffhub/internal/storage"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const contentTypePDF = "application/pdf"

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Cfg      config.Config
	Renderer pdf.Renderer
	Storage  storage.Storage
}

// DocumentService renders invoices to PDF and keeps the latest copy in storage.
type DocumentService struct {
	db       *gorm.DB
	log      *zap.Logger
	issuer   string
	renderer pdf.Renderer
	storage  storage.Storage
}

func NewDocumentService(p Params) *DocumentService {
	return &DocumentService{
		db:       p.DB,
		log:      p.Log.Named("invoice.document"),
		issuer:   p.Cfg.AppName,
		renderer: p.Renderer,
		storage:  p.Storage,
	}
}

// Render builds the PDF for the invoice, stores it under its document key
// and returns it. The document always reflects the current invoice row.
func (s *DocumentService) Render(ctx context.Context, id uint64) (domain.Document, error) {
	data, err := s.collect(ctx, id)
	if err != nil {
		return domain.Document{}, err
	}

	content, err := s.renderer.RenderInvoice(ctx, data)
	if err != nil {
		s.log.Error("render invoice", zap.Uint64("invoice_id", id), zap.Error(err))
		return domain.Document{}, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	key := domain.DocumentKey(id)
	if err := s.storage.Put(ctx, key, bytes.NewReader(content), contentTypePDF); err != nil {
		return domain.Document{}, err
	}

	s.log.Info("invoice document stored", zap.Uint64("invoice_id", id), zap.String("key", key), zap.Int("bytes", len(content)))
	return domain.Document{
		Key:      key,
		Filename: data.InvoiceNumber + ".pdf",
		Content:  content,
	}, nil
}

func (s *DocumentService) collect(ctx context.Context, id uint64) (pdf.InvoiceData, error) {
	db := s.db.WithContext(ctx)

	var invoice domain.Invoice
	if err := db.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pdf.InvoiceData{}, domain.ErrInvoiceNotFound
		}
		return pdf.InvoiceData{}, err
	}

	number, err := format.FormatInvoiceNumber(format.DefaultInvoiceNumberTemplate, invoice.IssueDate, invoice.ID)
	if err != nil {
		return pdf.InvoiceData{}, err
	}

	data := pdf.InvoiceData{
		IssuerName:    s.issuer,
		InvoiceNumber: number,
		IssueDate:     format.FormatDate(invoice.IssueDate),
		DueDate:       format.FormatDate(invoice.DueDate),
		Total:         format.FormatAmount(invoice.TotalAmount),
	}

	// related rows may have been deleted; render what is left
	var state lookupdomain.PaymentState
	if err := first(db, &state, invoice.PaymentStateID); err != nil {
		return pdf.InvoiceData{}, err
	}
	data.PaymentState = state.Name

	var customer customerdomain.Customer
	if err := first(db, &customer, invoice.CustomerID); err != nil {
		return pdf.InvoiceData{}, err
	}
	data.BillToName = customer.CompanyName
	data.BillToContact = deref(customer.ContactName)
	data.BillToEmail = customer.Email
	data.BillToAddress = joinNonEmpty(", ", deref(customer.Address), deref(customer.PostalCode), deref(customer.City))

	description := "Invoice " + number
	var offer offerdomain.Offer
	if err := first(db, &offer, invoice.OfferID); err != nil {
		return pdf.InvoiceData{}, err
	}
	if offer.ID != 0 {
		if offer.Description != nil && *offer.Description != "" {
			description = *offer.Description
		}
		var event eventdomain.Event
		if err := first(db, &event, offer.EventID); err != nil {
			return pdf.InvoiceData{}, err
		}
		data.EventName = event.Name
		data.EventDate = format.FormatDate(event.Date)
	}

	data.Items = []pdf.InvoiceItem{{
		Description: description,
		Amount:      format.FormatAmount(invoice.TotalAmount),
	}}
	return data, nil
}

func first(db *gorm.DB, dst any, id uint64) error {
	return db.Limit(1).Find(dst, id).Error
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
