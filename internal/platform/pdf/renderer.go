package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/shopspring/decimal"

	"github.com/invomate/invomate_app/internal/core/domain"
	portssvc "github.com/invomate/invomate_app/internal/core/ports/services"
)

// documentData is the template-independent view of a renderable document.
// Invoices and quotes are structurally identical at render time.
type documentData struct {
	Kind     string
	Number   string
	Date     string
	DueDate  string
	Status   string
	Items    []domain.LineItem
	TaxRate  decimal.Decimal
	Discount decimal.Decimal
	Template domain.TemplateType
	Business domain.Business
	Client   domain.Client
}

// Renderer produces PDF bytes for invoices and quotes using one of three
// fixed layout templates.
type Renderer struct{}

// NewRenderer creates a document renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

var _ portssvc.DocumentRendererSvc = (*Renderer)(nil)

// RenderInvoice renders an invoice to PDF bytes.
func (r *Renderer) RenderInvoice(detail *domain.InvoiceDetail) ([]byte, error) {
	if detail == nil {
		return nil, fmt.Errorf("nil invoice detail")
	}
	return r.render(documentData{
		Kind:     "Invoice",
		Number:   detail.Invoice.InvoiceNumber,
		Date:     detail.Invoice.InvoiceDate,
		DueDate:  detail.Invoice.DueDate,
		Status:   string(detail.Invoice.Status),
		Items:    detail.Invoice.Items,
		TaxRate:  detail.Invoice.TaxRate,
		Discount: detail.Invoice.Discount,
		Template: detail.Invoice.TemplateType,
		Business: detail.Business,
		Client:   detail.Client,
	})
}

// RenderQuote renders a quote to PDF bytes.
func (r *Renderer) RenderQuote(detail *domain.QuoteDetail) ([]byte, error) {
	if detail == nil {
		return nil, fmt.Errorf("nil quote detail")
	}
	return r.render(documentData{
		Kind:     "Quote",
		Number:   detail.Quote.QuoteNumber,
		Date:     detail.Quote.QuoteDate,
		DueDate:  detail.Quote.DueDate,
		Status:   string(detail.Quote.Status),
		Items:    detail.Quote.Items,
		TaxRate:  detail.Quote.TaxRate,
		Discount: detail.Quote.Discount,
		Template: detail.Quote.TemplateType,
		Business: detail.Business,
		Client:   detail.Client,
	})
}

func (r *Renderer) render(data documentData) ([]byte, error) {
	// Rendering cannot proceed without both parties; fail before drawing.
	if data.Business.Name == "" {
		return nil, fmt.Errorf("cannot render %s %s: business record missing", data.Kind, data.Number)
	}
	if data.Client.Name == "" {
		return nil, fmt.Errorf("cannot render %s %s: client record missing", data.Kind, data.Number)
	}

	m := newDocument()
	switch data.Template {
	case domain.Template2:
		buildTemplate2(m, data)
	case domain.Template3:
		buildTemplate3(m, data)
	default:
		// Unrecognized template types fall back to the first layout.
		buildTemplate1(m, data)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s PDF: %w", data.Kind, err)
	}
	return doc.GetBytes(), nil
}

func newDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build()
	return maroto.New(cfg)
}
