package pdf

import (
	"context"

	"go.uber.org/fx"
)

var Module = fx.Module("pdf.provider",
	fx.Provide(New),
)

// Renderer turns document data into PDF bytes.
type Renderer interface {
	RenderInvoice(ctx context.Context, data InvoiceData) ([]byte, error)
}
