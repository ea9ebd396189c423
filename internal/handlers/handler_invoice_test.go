package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/invomate/invomate_app/internal/apperrors"
	"github.com/invomate/invomate_app/internal/core/domain"
	portssvc "github.com/invomate/invomate_app/internal/core/ports/services"
	"github.com/invomate/invomate_app/internal/dto"
	"github.com/invomate/invomate_app/internal/handlers"
	"github.com/invomate/invomate_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, userID string, invoiceID string) (*domain.InvoiceDetail, error) {
	args := m.Called(ctx, userID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceDetail), args.Error(1)
}

func (m *MockInvoiceService) ListInvoicesByUser(ctx context.Context, userID string) ([]domain.InvoiceSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceSummary), args.Error(1)
}

func (m *MockInvoiceService) ListInvoicesWithItemsByUser(ctx context.Context, userID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.InvoiceDetail, string, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.InvoiceDetail), args.String(1), args.Error(2)
}

func (m *MockInvoiceService) UpdateInvoice(ctx context.Context, userID string, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.InvoiceDetail, error) {
	args := m.Called(ctx, userID, invoiceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceDetail), args.Error(1)
}

func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, userID string, invoiceID string) error {
	args := m.Called(ctx, userID, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceService) GenerateInvoicePDF(ctx context.Context, userID string, invoiceID string) (string, error) {
	args := m.Called(ctx, userID, invoiceID)
	return args.String(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock ItemService ---
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) AddItem(ctx context.Context, userID string, invoiceID string, req dto.LineItemRequest) (*domain.LineItem, error) {
	args := m.Called(ctx, userID, invoiceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LineItem), args.Error(1)
}

func (m *MockItemService) ListItems(ctx context.Context, userID string, invoiceID string) ([]domain.LineItem, error) {
	args := m.Called(ctx, userID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

func (m *MockItemService) GetItemByID(ctx context.Context, userID string, invoiceID string, itemID string) (*domain.LineItem, error) {
	args := m.Called(ctx, userID, invoiceID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LineItem), args.Error(1)
}

func (m *MockItemService) UpdateItem(ctx context.Context, userID string, invoiceID string, itemID string, req dto.UpdateLineItemRequest) (*domain.LineItem, error) {
	args := m.Called(ctx, userID, invoiceID, itemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LineItem), args.Error(1)
}

func (m *MockItemService) DeleteItem(ctx context.Context, userID string, invoiceID string, itemID string) error {
	args := m.Called(ctx, userID, invoiceID, itemID)
	return args.Error(0)
}

var _ portssvc.ItemSvcFacade = (*MockItemService)(nil)

// --- Test Suite ---
type InvoiceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockInvoiceService *MockInvoiceService
	mockItemService    *MockItemService
	jwtSecret          string
}

// generateTestToken creates a dummy access token. Access tokens carry no
// audience; the middleware rejects audience-scoped tokens.
func (suite *InvoiceHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "invomate-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockInvoiceService = new(MockInvoiceService)
	suite.mockItemService = new(MockItemService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skip swagger routes
	}
	services := &portssvc.ServiceContainer{
		Invoice: suite.mockInvoiceService,
		Item:    suite.mockItemService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *InvoiceHandlerTestSuite) performRequest(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			suite.FailNow("Failed to encode request body", err.Error())
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleDetail(userID string) *domain.InvoiceDetail {
	invoiceID := uuid.NewString()
	clientID := uuid.NewString()
	businessID := uuid.NewString()
	return &domain.InvoiceDetail{
		Invoice: domain.Invoice{
			InvoiceID:     invoiceID,
			OwnerUserID:   userID,
			ClientID:      clientID,
			BusinessID:    businessID,
			InvoiceDate:   "2025-06-01",
			DueDate:       "2025-07-01",
			InvoiceNumber: "INV-001",
			Items: []domain.LineItem{
				{ItemID: uuid.NewString(), ItemName: "Consulting", Quantity: 2, UnitPrice: decimal.NewFromInt(10), Total: decimal.NewFromInt(20)},
			},
			TaxRate:      decimal.NewFromInt(10),
			IncludeTax:   true,
			Discount:     decimal.NewFromInt(0),
			Total:        decimal.NewFromInt(22),
			TemplateType: domain.Template1,
			Status:       domain.InvoiceUnpaid,
		},
		Client:   domain.Client{ClientID: clientID, OwnerUserID: userID, Name: "Acme Pty Ltd"},
		Business: domain.Business{BusinessID: businessID, OwnerUserID: userID, Name: "My Studio"},
	}
}

// --- Test Cases ---

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_Success() {
	userID := uuid.NewString()
	detail := sampleDetail(userID)
	pdfURL := "https://storage.example.com/invoices/" + detail.Invoice.InvoiceID + ".pdf"

	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, userID, mock.AnythingOfType("dto.CreateInvoiceRequest")).
		Return(detail, pdfURL, nil).Once()

	body := gin.H{
		"clientName":    "Acme Pty Ltd",
		"clientEmail":   "billing@acme.example",
		"businessName":  "My Studio",
		"invoiceDate":   "2025-06-01",
		"dueDate":       "2025-07-01",
		"invoiceNumber": "INV-001",
		"invoiceItems": []gin.H{
			{"itemName": "Consulting", "quantity": 2, "unitPrice": "10"},
		},
		"taxRate":      "10",
		"includeTax":   true,
		"templateType": "template1",
	}
	w := suite.performRequest(http.MethodPost, "/api/v1/invoices", suite.generateTestToken(userID), body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateInvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(detail.Invoice.InvoiceID, resp.Invoice.InvoiceID)
	suite.Equal("Acme Pty Ltd", resp.Invoice.Client.Name)
	suite.Equal(pdfURL, resp.PDFURL)
	suite.True(resp.Invoice.Total.Equal(decimal.NewFromInt(22)))
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_MissingFieldsRejected() {
	userID := uuid.NewString()
	// No invoiceItems, no templateType.
	body := gin.H{"clientName": "Acme", "businessName": "Studio"}
	w := suite.performRequest(http.MethodPost, "/api/v1/invoices", suite.generateTestToken(userID), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "CreateInvoice")
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoice_NotFound() {
	userID := uuid.NewString()
	invoiceID := uuid.NewString()
	suite.mockInvoiceService.On("GetInvoiceByID", mock.Anything, userID, invoiceID).
		Return(nil, apperrors.NewNotFoundError(fmt.Sprintf("invoice %s not found", invoiceID))).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/invoices/"+invoiceID, suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoice_RequiresToken() {
	w := suite.performRequest(http.MethodGet, "/api/v1/invoices/"+uuid.NewString(), "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "GetInvoiceByID")
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoice_RejectsResetToken() {
	userID := uuid.NewString()
	claims := jwt.RegisteredClaims{
		Issuer:    "invomate-test",
		Subject:   userID,
		Audience:  jwt.ClaimStrings{"password_reset"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)

	w := suite.performRequest(http.MethodGet, "/api/v1/invoices/"+uuid.NewString(), signed, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "GetInvoiceByID")
}

func (suite *InvoiceHandlerTestSuite) TestListInvoices_Success() {
	userID := uuid.NewString()
	summaries := []domain.InvoiceSummary{
		{InvoiceID: uuid.NewString(), InvoiceNumber: "INV-001", ClientName: "Acme", Status: domain.InvoicePaid, CreatedAt: time.Now()},
		{InvoiceID: uuid.NewString(), InvoiceNumber: "INV-002", ClientName: "Globex", Status: domain.InvoiceUnpaid, CreatedAt: time.Now()},
	}
	suite.mockInvoiceService.On("ListInvoicesByUser", mock.Anything, userID).Return(summaries, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/invoices/user-invoices", suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.InvoiceSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal("INV-001", resp[0].InvoiceNumber)
	suite.Equal("Paid", resp[0].Status)
}

func (suite *InvoiceHandlerTestSuite) TestDeleteInvoice_NoContent() {
	userID := uuid.NewString()
	invoiceID := uuid.NewString()
	suite.mockInvoiceService.On("DeleteInvoice", mock.Anything, userID, invoiceID).Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/invoices/"+invoiceID, suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestGeneratePDF_Success() {
	userID := uuid.NewString()
	invoiceID := uuid.NewString()
	pdfURL := "https://storage.example.com/invoices/" + invoiceID + ".pdf"
	suite.mockInvoiceService.On("GenerateInvoicePDF", mock.Anything, userID, invoiceID).Return(pdfURL, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/invoices/"+invoiceID+"/generate-pdf", suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.GeneratePDFResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(pdfURL, resp.PDFURL)
}

func (suite *InvoiceHandlerTestSuite) TestAddItem_Success() {
	userID := uuid.NewString()
	invoiceID := uuid.NewString()
	item := &domain.LineItem{
		ItemID:    uuid.NewString(),
		ItemName:  "Hosting",
		Quantity:  1,
		UnitPrice: decimal.NewFromInt(30),
		Total:     decimal.NewFromInt(30),
	}
	suite.mockItemService.On("AddItem", mock.Anything, userID, invoiceID, mock.AnythingOfType("dto.LineItemRequest")).
		Return(item, nil).Once()

	body := gin.H{"itemName": "Hosting", "quantity": 1, "unitPrice": "30"}
	w := suite.performRequest(http.MethodPost, "/api/v1/invoices/"+invoiceID+"/items", suite.generateTestToken(userID), body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.LineItemResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(item.ItemID, resp.ItemID)
	suite.True(resp.Total.Equal(decimal.NewFromInt(30)))
	suite.mockItemService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestUpdateItem_ForbiddenMapsTo403() {
	userID := uuid.NewString()
	invoiceID := uuid.NewString()
	itemID := uuid.NewString()
	suite.mockItemService.On("UpdateItem", mock.Anything, userID, invoiceID, itemID, mock.AnythingOfType("dto.UpdateLineItemRequest")).
		Return(nil, apperrors.NewForbiddenError("not your invoice")).Once()

	body := gin.H{"itemName": "Renamed"}
	w := suite.performRequest(http.MethodPatch, "/api/v1/invoices/"+invoiceID+"/items/"+itemID, suite.generateTestToken(userID), body)

	suite.Equal(http.StatusForbidden, w.Code)
}

func TestInvoiceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}
