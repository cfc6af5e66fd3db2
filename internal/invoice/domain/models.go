package domain

import (
	"errors"
	"strconv"
	"time"

	"github.com/smallbiznis/staffhub/internal/resource"
)

var (
	ErrInvoiceNotFound = errors.New("invoice_not_found")
	ErrRenderFailed    = errors.New("invoice_render_failed")
)

type Invoice struct {
	resource.Model
	OfferID        uint64    `gorm:"not null;index" json:"offer_id"`
	CustomerID     uint64    `gorm:"not null;index" json:"customer_id"`
	IssueDate      time.Time `gorm:"not null" json:"issue_date"`
	DueDate        time.Time `gorm:"not null" json:"due_date"`
	TotalAmount    float64   `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PaymentStateID uint64    `gorm:"not null;index" json:"payment_state_id"`
}

type InvoiceRequest struct {
	OfferID        uint64    `json:"offer_id" validate:"required,exists=offers"`
	CustomerID     uint64    `json:"customer_id" validate:"required,exists=customers"`
	IssueDate      time.Time `json:"issue_date" validate:"required"`
	DueDate        time.Time `json:"due_date" validate:"required,gtefield=IssueDate"`
	TotalAmount    *float64  `json:"total_amount" validate:"required,gte=0"`
	PaymentStateID uint64    `json:"payment_state_id" validate:"required,exists=payment_states"`
}

func (r InvoiceRequest) ToModel() Invoice {
	var m Invoice
	r.ApplyTo(&m)
	return m
}

func (r InvoiceRequest) ApplyTo(m *Invoice) {
	m.OfferID = r.OfferID
	m.CustomerID = r.CustomerID
	m.IssueDate = r.IssueDate
	m.DueDate = r.DueDate
	if r.TotalAmount != nil {
		m.TotalAmount = *r.TotalAmount
	}
	m.PaymentStateID = r.PaymentStateID
}

// Document is a rendered invoice and where it was stored.
type Document struct {
	Key      string
	Filename string
	Content  []byte
}

// DocumentKey is the storage key of the rendered invoice.
func DocumentKey(id uint64) string {
	return "invoices/" + strconv.FormatUint(id, 10) + ".pdf"
}
