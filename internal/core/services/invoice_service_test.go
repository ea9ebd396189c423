package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/invomate/invomate_app/internal/apperrors"
	"github.com/invomate/invomate_app/internal/core/domain"
	"github.com/invomate/invomate_app/internal/core/services"
	"github.com/invomate/invomate_app/internal/dto"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo  *MockInvoiceRepository
	mockClientRepo   *MockClientRepository
	mockBusinessRepo *MockBusinessRepository
	mockRenderer     *MockDocumentRenderer
	mockStorage      *MockFileStorage
	service          *services.InvoiceService

	userID string
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockBusinessRepo = new(MockBusinessRepository)
	suite.mockRenderer = new(MockDocumentRenderer)
	suite.mockStorage = new(MockFileStorage)

	clientSvc := services.NewClientService(suite.mockClientRepo, suite.mockInvoiceRepo)
	businessSvc := services.NewBusinessService(suite.mockBusinessRepo)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, clientSvc, businessSvc, suite.mockRenderer, suite.mockStorage)

	suite.userID = uuid.NewString()
}

func (suite *InvoiceServiceTestSuite) createRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		ClientName:   "Acme Pty Ltd",
		ClientEmail:  "billing@acme.example",
		BusinessName: "My Studio",
		ABN:          "51824753556",
		InvoiceDate:  "2026-08-01",
		DueDate:      "2026-08-15",
		InvoiceNumber: "INV-001",
		InvoiceItems: []dto.LineItemRequest{
			{ItemName: "Design", Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
			{ItemName: "Hosting", Quantity: 1, UnitPrice: decimal.NewFromInt(5)},
		},
		TaxRate:      decimal.NewFromInt(10),
		IncludeTax:   true,
		Discount:     decimal.NewFromInt(5),
		TemplateType: "template1",
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	req := suite.createRequest()

	// Neither party exists yet: both are created on the fly.
	suite.mockClientRepo.FindClientByNameFn = func(ctx context.Context, ownerUserID string, name string) (*domain.Client, error) {
		return nil, apperrors.ErrNotFound
	}
	var createdClient domain.Client
	suite.mockClientRepo.SaveClientFn = func(ctx context.Context, client domain.Client) error {
		createdClient = client
		return nil
	}
	suite.mockBusinessRepo.FindBusinessByNameFn = func(ctx context.Context, ownerUserID string, name string) (*domain.Business, error) {
		return nil, apperrors.ErrNotFound
	}
	suite.mockBusinessRepo.SaveBusinessFn = func(ctx context.Context, business domain.Business) error {
		return nil
	}
	var savedInvoice domain.Invoice
	suite.mockInvoiceRepo.SaveInvoiceFn = func(ctx context.Context, invoice domain.Invoice) error {
		savedInvoice = invoice
		return nil
	}
	suite.mockRenderer.RenderInvoiceFn = func(detail *domain.InvoiceDetail) ([]byte, error) {
		return []byte("%PDF-1.7"), nil
	}
	suite.mockStorage.UploadFn = func(ctx context.Context, folder string, filename string, contentType string, data []byte) (string, error) {
		suite.Equal("invoices", folder)
		suite.Equal("application/pdf", contentType)
		return "https://storage.example/invoices/" + filename, nil
	}

	detail, pdfURL, err := suite.service.CreateInvoice(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(detail)
	suite.NotEmpty(pdfURL)
	suite.Equal(suite.userID, createdClient.OwnerUserID)
	suite.Equal(domain.InvoiceUnpaid, savedInvoice.Status)
	suite.Len(savedInvoice.Items, 2)
	suite.True(savedInvoice.Items[0].Total.Equal(decimal.NewFromInt(20)))
	// (25 - 5) * 1.10 = 22
	suite.True(savedInvoice.Total.Equal(decimal.NewFromInt(22)), "got total %s", savedInvoice.Total)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ReusesExistingClient() {
	ctx := context.Background()
	req := suite.createRequest()
	existing := &domain.Client{ClientID: uuid.NewString(), OwnerUserID: suite.userID, Name: req.ClientName, Email: "old@acme.example"}

	suite.mockClientRepo.FindClientByNameFn = func(ctx context.Context, ownerUserID string, name string) (*domain.Client, error) {
		suite.Equal(req.ClientName, name)
		return existing, nil
	}
	suite.mockClientRepo.SaveClientFn = func(ctx context.Context, client domain.Client) error {
		suite.Fail("existing client must not be recreated")
		return nil
	}
	suite.mockBusinessRepo.FindBusinessByNameFn = func(ctx context.Context, ownerUserID string, name string) (*domain.Business, error) {
		return &domain.Business{BusinessID: uuid.NewString(), OwnerUserID: suite.userID, Name: name}, nil
	}
	var savedInvoice domain.Invoice
	suite.mockInvoiceRepo.SaveInvoiceFn = func(ctx context.Context, invoice domain.Invoice) error {
		savedInvoice = invoice
		return nil
	}
	suite.mockRenderer.RenderInvoiceFn = func(detail *domain.InvoiceDetail) ([]byte, error) { return []byte("pdf"), nil }
	suite.mockStorage.UploadFn = func(ctx context.Context, folder, filename, contentType string, data []byte) (string, error) {
		return "url", nil
	}

	_, _, err := suite.service.CreateInvoice(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(existing.ClientID, savedInvoice.ClientID)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NewClientWithoutContactRejected() {
	ctx := context.Background()
	req := suite.createRequest()
	req.ClientEmail = ""
	req.ClientPhoneNumber = ""

	suite.mockClientRepo.FindClientByNameFn = func(ctx context.Context, ownerUserID string, name string) (*domain.Client, error) {
		return nil, apperrors.ErrNotFound
	}

	_, _, err := suite.service.CreateInvoice(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_PDFFailureKeepsInvoice() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockClientRepo.FindClientByNameFn = func(ctx context.Context, ownerUserID string, name string) (*domain.Client, error) {
		return &domain.Client{ClientID: uuid.NewString(), Name: name, Email: "a@b.c"}, nil
	}
	suite.mockBusinessRepo.FindBusinessByNameFn = func(ctx context.Context, ownerUserID string, name string) (*domain.Business, error) {
		return &domain.Business{BusinessID: uuid.NewString(), Name: name}, nil
	}
	saved := false
	suite.mockInvoiceRepo.SaveInvoiceFn = func(ctx context.Context, invoice domain.Invoice) error {
		saved = true
		return nil
	}
	suite.mockRenderer.RenderInvoiceFn = func(detail *domain.InvoiceDetail) ([]byte, error) {
		return nil, apperrors.NewInternalServerError("render failed")
	}

	detail, pdfURL, err := suite.service.CreateInvoice(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.NotNil(detail)
	suite.Empty(pdfURL)
	suite.True(saved)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_ItemReplacementRecomputesTotal() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	stored := suite.storedInvoice(invoiceID)

	suite.mockInvoiceRepo.FindInvoiceByIDFn = func(ctx context.Context, ownerUserID string, id string) (*domain.Invoice, error) {
		return &stored, nil
	}
	suite.stubParties(stored.ClientID, stored.BusinessID)
	var updated domain.Invoice
	suite.mockInvoiceRepo.UpdateInvoiceFn = func(ctx context.Context, invoice domain.Invoice) error {
		updated = invoice
		return nil
	}

	newItems := []dto.LineItemRequest{{ItemName: "Consulting", Quantity: 3, UnitPrice: decimal.NewFromInt(100)}}
	detail, err := suite.service.UpdateInvoice(ctx, suite.userID, invoiceID, dto.UpdateInvoiceRequest{InvoiceItems: &newItems})

	suite.Require().NoError(err)
	suite.Require().NotNil(detail)
	suite.Len(updated.Items, 1)
	suite.True(updated.Items[0].Total.Equal(decimal.NewFromInt(300)))
	// (300 - 5) * 1.10 = 324.5
	suite.True(updated.Total.Equal(decimal.RequireFromString("324.5")), "got total %s", updated.Total)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_InlineClientPatch() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	stored := suite.storedInvoice(invoiceID)

	suite.mockInvoiceRepo.FindInvoiceByIDFn = func(ctx context.Context, ownerUserID string, id string) (*domain.Invoice, error) {
		return &stored, nil
	}
	suite.mockClientRepo.FindClientByIDFn = func(ctx context.Context, ownerUserID string, clientID string) (*domain.Client, error) {
		return &domain.Client{ClientID: stored.ClientID, OwnerUserID: suite.userID, Name: "Old Name", Email: "a@b.c"}, nil
	}
	var patchedClient domain.Client
	suite.mockClientRepo.UpdateClientFn = func(ctx context.Context, client domain.Client) error {
		patchedClient = client
		return nil
	}
	suite.mockBusinessRepo.FindBusinessByIDFn = func(ctx context.Context, ownerUserID string, businessID string) (*domain.Business, error) {
		return &domain.Business{BusinessID: stored.BusinessID, Name: "Biz"}, nil
	}
	suite.mockInvoiceRepo.UpdateInvoiceFn = func(ctx context.Context, invoice domain.Invoice) error { return nil }

	newName := "New Name"
	detail, err := suite.service.UpdateInvoice(ctx, suite.userID, invoiceID, dto.UpdateInvoiceRequest{ClientName: &newName})

	suite.Require().NoError(err)
	suite.Equal("New Name", patchedClient.Name)
	suite.Equal("New Name", detail.Client.Name)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_NotFound() {
	ctx := context.Background()
	suite.mockInvoiceRepo.FindInvoiceByIDFn = func(ctx context.Context, ownerUserID string, id string) (*domain.Invoice, error) {
		return nil, apperrors.ErrNotFound
	}

	detail, err := suite.service.UpdateInvoice(ctx, suite.userID, uuid.NewString(), dto.UpdateInvoiceRequest{})

	suite.Require().Error(err)
	suite.Nil(detail)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestGenerateInvoicePDF_Success() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	stored := suite.storedInvoice(invoiceID)

	suite.mockInvoiceRepo.FindInvoiceByIDFn = func(ctx context.Context, ownerUserID string, id string) (*domain.Invoice, error) {
		return &stored, nil
	}
	suite.stubParties(stored.ClientID, stored.BusinessID)
	suite.mockRenderer.RenderInvoiceFn = func(detail *domain.InvoiceDetail) ([]byte, error) {
		suite.Equal(invoiceID, detail.Invoice.InvoiceID)
		return []byte("pdf"), nil
	}
	suite.mockStorage.UploadFn = func(ctx context.Context, folder, filename, contentType string, data []byte) (string, error) {
		return "https://storage.example/invoices/" + filename, nil
	}

	url, err := suite.service.GenerateInvoicePDF(ctx, suite.userID, invoiceID)

	suite.Require().NoError(err)
	suite.Contains(url, invoiceID)
}

func (suite *InvoiceServiceTestSuite) storedInvoice(invoiceID string) domain.Invoice {
	return domain.Invoice{
		InvoiceID:     invoiceID,
		OwnerUserID:   suite.userID,
		ClientID:      uuid.NewString(),
		BusinessID:    uuid.NewString(),
		InvoiceDate:   "2026-08-01",
		DueDate:       "2026-08-15",
		InvoiceNumber: "INV-001",
		Items: []domain.LineItem{
			{ItemID: uuid.NewString(), ItemName: "Design", Quantity: 2, UnitPrice: decimal.NewFromInt(10), Total: decimal.NewFromInt(20)},
		},
		TaxRate:      decimal.NewFromInt(10),
		IncludeTax:   true,
		Discount:     decimal.NewFromInt(5),
		Total:        decimal.RequireFromString("16.5"),
		TemplateType: domain.Template1,
		Status:       domain.InvoiceUnpaid,
	}
}

func (suite *InvoiceServiceTestSuite) stubParties(clientID, businessID string) {
	suite.mockClientRepo.FindClientByIDFn = func(ctx context.Context, ownerUserID string, id string) (*domain.Client, error) {
		return &domain.Client{ClientID: clientID, OwnerUserID: suite.userID, Name: "Acme Pty Ltd", Email: "a@b.c"}, nil
	}
	suite.mockBusinessRepo.FindBusinessByIDFn = func(ctx context.Context, ownerUserID string, id string) (*domain.Business, error) {
		return &domain.Business{BusinessID: businessID, OwnerUserID: suite.userID, Name: "My Studio"}, nil
	}
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
