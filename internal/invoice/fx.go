package invoice

import (
	"github.com/smallbiznis/staffhub/internal/invoice/domain"
	"github.com/smallbiznis/staffhub/internal/invoice/service"
	"github.com/smallbiznis/staffhub/internal/resource"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	resource.Provide[domain.Invoice, domain.InvoiceRequest, domain.InvoiceRequest](resource.Definition[domain.Invoice]{
		Name: resource.Invoices,
	}),
	fx.Provide(service.NewDocumentService),
)
