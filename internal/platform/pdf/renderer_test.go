package pdf_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invomate/invomate_app/internal/core/domain"
	"github.com/invomate/invomate_app/internal/platform/pdf"
)

func testDetail(template domain.TemplateType) *domain.InvoiceDetail {
	return &domain.InvoiceDetail{
		Invoice: domain.Invoice{
			InvoiceID:     "inv-1",
			InvoiceNumber: "INV-1001",
			InvoiceDate:   "2025-01-15",
			DueDate:       "2025-02-15",
			Status:        domain.InvoiceUnpaid,
			TemplateType:  template,
			TaxRate:       decimal.NewFromInt(10),
			Discount:      decimal.NewFromInt(5),
			Items: []domain.LineItem{
				{ItemID: "i1", ItemName: "Design", Description: "Logo design", Quantity: 2, UnitPrice: decimal.NewFromInt(10), Total: decimal.NewFromInt(20)},
				{ItemID: "i2", ItemName: "Hosting", Quantity: 1, UnitPrice: decimal.NewFromInt(5), Total: decimal.NewFromInt(5)},
			},
		},
		Client:   domain.Client{ClientID: "c1", Name: "Acme Pty Ltd", Address: "1 Main St", Email: "billing@acme.test"},
		Business: domain.Business{BusinessID: "b1", Name: "Studio Co", Address: "2 High St", ABN: "51824753556"},
	}
}

func TestRenderInvoice_AllTemplates(t *testing.T) {
	r := pdf.NewRenderer()

	for _, template := range []domain.TemplateType{domain.Template1, domain.Template2, domain.Template3} {
		t.Run(string(template), func(t *testing.T) {
			data, err := r.RenderInvoice(testDetail(template))
			require.NoError(t, err)
			require.NotEmpty(t, data)
			assert.Equal(t, "%PDF", string(data[:4]))
		})
	}
}

func TestRenderInvoice_UnknownTemplateFallsBack(t *testing.T) {
	r := pdf.NewRenderer()

	data, err := r.RenderInvoice(testDetail(domain.TemplateType("template9")))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRenderInvoice_MissingPartiesFail(t *testing.T) {
	r := pdf.NewRenderer()

	noClient := testDetail(domain.Template1)
	noClient.Client = domain.Client{}
	_, err := r.RenderInvoice(noClient)
	assert.Error(t, err)

	noBusiness := testDetail(domain.Template1)
	noBusiness.Business = domain.Business{}
	_, err = r.RenderInvoice(noBusiness)
	assert.Error(t, err)
}

func TestRenderQuote(t *testing.T) {
	r := pdf.NewRenderer()

	detail := &domain.QuoteDetail{
		Quote: domain.Quote{
			QuoteID:      "q1",
			QuoteNumber:  "Q-2001",
			QuoteDate:    "2025-03-01",
			DueDate:      "2025-03-31",
			Status:       domain.QuoteDraft,
			TemplateType: domain.Template2,
			Items: []domain.LineItem{
				{ItemID: "i1", ItemName: "Consulting", Quantity: 3, UnitPrice: decimal.NewFromInt(100), Total: decimal.NewFromInt(300)},
			},
		},
		Client:   domain.Client{ClientID: "c1", Name: "Acme Pty Ltd"},
		Business: domain.Business{BusinessID: "b1", Name: "Studio Co"},
	}

	data, err := r.RenderQuote(detail)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
