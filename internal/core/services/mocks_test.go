package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/invomate/invomate_app/internal/core/domain"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn       func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	FindUserByProviderFn func(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
	SaveUserFn           func(ctx context.Context, user domain.User) error
	UpdateUserFn         func(ctx context.Context, user domain.User) error
	SetResetOTPFn        func(ctx context.Context, userID string, otp string, expiresAt time.Time) error
	MarkOTPVerifiedFn    func(ctx context.Context, userID string) error
	UpdatePasswordFn     func(ctx context.Context, userID string, passwordHash string) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	if m.FindUserByProviderFn != nil {
		return m.FindUserByProviderFn(ctx, provider, providerUserID)
	}
	args := m.Called(ctx, provider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetResetOTP(ctx context.Context, userID string, otp string, expiresAt time.Time) error {
	if m.SetResetOTPFn != nil {
		return m.SetResetOTPFn(ctx, userID, otp, expiresAt)
	}
	args := m.Called(ctx, userID, otp, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) MarkOTPVerified(ctx context.Context, userID string) error {
	if m.MarkOTPVerifiedFn != nil {
		return m.MarkOTPVerifiedFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	if m.UpdatePasswordFn != nil {
		return m.UpdatePasswordFn(ctx, userID, passwordHash)
	}
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
	FindClientByIDFn               func(ctx context.Context, ownerUserID string, clientID string) (*domain.Client, error)
	FindClientByNameFn             func(ctx context.Context, ownerUserID string, name string) (*domain.Client, error)
	SearchClientsByNameFn          func(ctx context.Context, ownerUserID string, fragment string, limit int) ([]domain.Client, error)
	FindClientsWithInvoiceCountsFn func(ctx context.Context, ownerUserID string) ([]domain.ClientWithInvoiceCount, error)
	SaveClientFn                   func(ctx context.Context, client domain.Client) error
	UpdateClientFn                 func(ctx context.Context, client domain.Client) error
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, ownerUserID string, clientID string) (*domain.Client, error) {
	if m.FindClientByIDFn != nil {
		return m.FindClientByIDFn(ctx, ownerUserID, clientID)
	}
	args := m.Called(ctx, ownerUserID, clientID)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientRepository) FindClientByName(ctx context.Context, ownerUserID string, name string) (*domain.Client, error) {
	if m.FindClientByNameFn != nil {
		return m.FindClientByNameFn(ctx, ownerUserID, name)
	}
	args := m.Called(ctx, ownerUserID, name)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientRepository) SearchClientsByName(ctx context.Context, ownerUserID string, fragment string, limit int) ([]domain.Client, error) {
	if m.SearchClientsByNameFn != nil {
		return m.SearchClientsByNameFn(ctx, ownerUserID, fragment, limit)
	}
	args := m.Called(ctx, ownerUserID, fragment, limit)
	var clients []domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.Client)
	}
	return clients, args.Error(1)
}

func (m *MockClientRepository) FindClientsWithInvoiceCounts(ctx context.Context, ownerUserID string) ([]domain.ClientWithInvoiceCount, error) {
	if m.FindClientsWithInvoiceCountsFn != nil {
		return m.FindClientsWithInvoiceCountsFn(ctx, ownerUserID)
	}
	args := m.Called(ctx, ownerUserID)
	var clients []domain.ClientWithInvoiceCount
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.ClientWithInvoiceCount)
	}
	return clients, args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	if m.SaveClientFn != nil {
		return m.SaveClientFn(ctx, client)
	}
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	if m.UpdateClientFn != nil {
		return m.UpdateClientFn(ctx, client)
	}
	args := m.Called(ctx, client)
	return args.Error(0)
}

// --- Mock BusinessRepository ---
type MockBusinessRepository struct {
	mock.Mock
	FindBusinessByIDFn       func(ctx context.Context, ownerUserID string, businessID string) (*domain.Business, error)
	FindBusinessByNameFn     func(ctx context.Context, ownerUserID string, name string) (*domain.Business, error)
	SearchBusinessesByNameFn func(ctx context.Context, ownerUserID string, fragment string, limit int) ([]domain.Business, error)
	SaveBusinessFn           func(ctx context.Context, business domain.Business) error
	UpdateBusinessFn         func(ctx context.Context, business domain.Business) error
}

func (m *MockBusinessRepository) FindBusinessByID(ctx context.Context, ownerUserID string, businessID string) (*domain.Business, error) {
	if m.FindBusinessByIDFn != nil {
		return m.FindBusinessByIDFn(ctx, ownerUserID, businessID)
	}
	args := m.Called(ctx, ownerUserID, businessID)
	var business *domain.Business
	if args.Get(0) != nil {
		business = args.Get(0).(*domain.Business)
	}
	return business, args.Error(1)
}

func (m *MockBusinessRepository) FindBusinessByName(ctx context.Context, ownerUserID string, name string) (*domain.Business, error) {
	if m.FindBusinessByNameFn != nil {
		return m.FindBusinessByNameFn(ctx, ownerUserID, name)
	}
	args := m.Called(ctx, ownerUserID, name)
	var business *domain.Business
	if args.Get(0) != nil {
		business = args.Get(0).(*domain.Business)
	}
	return business, args.Error(1)
}

func (m *MockBusinessRepository) SearchBusinessesByName(ctx context.Context, ownerUserID string, fragment string, limit int) ([]domain.Business, error) {
	if m.SearchBusinessesByNameFn != nil {
		return m.SearchBusinessesByNameFn(ctx, ownerUserID, fragment, limit)
	}
	args := m.Called(ctx, ownerUserID, fragment, limit)
	var businesses []domain.Business
	if args.Get(0) != nil {
		businesses = args.Get(0).([]domain.Business)
	}
	return businesses, args.Error(1)
}

func (m *MockBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	if m.SaveBusinessFn != nil {
		return m.SaveBusinessFn(ctx, business)
	}
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) UpdateBusiness(ctx context.Context, business domain.Business) error {
	if m.UpdateBusinessFn != nil {
		return m.UpdateBusinessFn(ctx, business)
	}
	args := m.Called(ctx, business)
	return args.Error(0)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
	FindInvoiceByIDFn              func(ctx context.Context, ownerUserID string, invoiceID string) (*domain.Invoice, error)
	FindInvoicesByUserFn           func(ctx context.Context, ownerUserID string) ([]domain.Invoice, error)
	FindInvoiceSummariesByUserFn   func(ctx context.Context, ownerUserID string) ([]domain.InvoiceSummary, error)
	FindInvoiceSummariesByClientFn func(ctx context.Context, ownerUserID string, clientID string) ([]domain.InvoiceSummary, error)
	SaveInvoiceFn                  func(ctx context.Context, invoice domain.Invoice) error
	UpdateInvoiceFn                func(ctx context.Context, invoice domain.Invoice) error
	DeleteInvoiceFn                func(ctx context.Context, ownerUserID string, invoiceID string) error
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, ownerUserID string, invoiceID string) (*domain.Invoice, error) {
	if m.FindInvoiceByIDFn != nil {
		return m.FindInvoiceByIDFn(ctx, ownerUserID, invoiceID)
	}
	args := m.Called(ctx, ownerUserID, invoiceID)
	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}
	return invoice, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoicesByUser(ctx context.Context, ownerUserID string) ([]domain.Invoice, error) {
	if m.FindInvoicesByUserFn != nil {
		return m.FindInvoicesByUserFn(ctx, ownerUserID)
	}
	args := m.Called(ctx, ownerUserID)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	return invoices, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceSummariesByUser(ctx context.Context, ownerUserID string) ([]domain.InvoiceSummary, error) {
	if m.FindInvoiceSummariesByUserFn != nil {
		return m.FindInvoiceSummariesByUserFn(ctx, ownerUserID)
	}
	args := m.Called(ctx, ownerUserID)
	var summaries []domain.InvoiceSummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]domain.InvoiceSummary)
	}
	return summaries, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceSummariesByClient(ctx context.Context, ownerUserID string, clientID string) ([]domain.InvoiceSummary, error) {
	if m.FindInvoiceSummariesByClientFn != nil {
		return m.FindInvoiceSummariesByClientFn(ctx, ownerUserID, clientID)
	}
	args := m.Called(ctx, ownerUserID, clientID)
	var summaries []domain.InvoiceSummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]domain.InvoiceSummary)
	}
	return summaries, args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	if m.SaveInvoiceFn != nil {
		return m.SaveInvoiceFn(ctx, invoice)
	}
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	if m.UpdateInvoiceFn != nil {
		return m.UpdateInvoiceFn(ctx, invoice)
	}
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, ownerUserID string, invoiceID string) error {
	if m.DeleteInvoiceFn != nil {
		return m.DeleteInvoiceFn(ctx, ownerUserID, invoiceID)
	}
	args := m.Called(ctx, ownerUserID, invoiceID)
	return args.Error(0)
}

// --- Mock QuoteRepository ---
type MockQuoteRepository struct {
	mock.Mock
	FindQuoteByIDFn            func(ctx context.Context, ownerUserID string, quoteID string) (*domain.Quote, error)
	FindQuoteSummariesByUserFn func(ctx context.Context, ownerUserID string) ([]domain.QuoteSummary, error)
	SaveQuoteFn                func(ctx context.Context, quote domain.Quote) error
	UpdateQuoteFn              func(ctx context.Context, quote domain.Quote) error
	DeleteQuoteFn              func(ctx context.Context, ownerUserID string, quoteID string) error
}

func (m *MockQuoteRepository) FindQuoteByID(ctx context.Context, ownerUserID string, quoteID string) (*domain.Quote, error) {
	if m.FindQuoteByIDFn != nil {
		return m.FindQuoteByIDFn(ctx, ownerUserID, quoteID)
	}
	args := m.Called(ctx, ownerUserID, quoteID)
	var quote *domain.Quote
	if args.Get(0) != nil {
		quote = args.Get(0).(*domain.Quote)
	}
	return quote, args.Error(1)
}

func (m *MockQuoteRepository) FindQuoteSummariesByUser(ctx context.Context, ownerUserID string) ([]domain.QuoteSummary, error) {
	if m.FindQuoteSummariesByUserFn != nil {
		return m.FindQuoteSummariesByUserFn(ctx, ownerUserID)
	}
	args := m.Called(ctx, ownerUserID)
	var summaries []domain.QuoteSummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]domain.QuoteSummary)
	}
	return summaries, args.Error(1)
}

func (m *MockQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) error {
	if m.SaveQuoteFn != nil {
		return m.SaveQuoteFn(ctx, quote)
	}
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) UpdateQuote(ctx context.Context, quote domain.Quote) error {
	if m.UpdateQuoteFn != nil {
		return m.UpdateQuoteFn(ctx, quote)
	}
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) DeleteQuote(ctx context.Context, ownerUserID string, quoteID string) error {
	if m.DeleteQuoteFn != nil {
		return m.DeleteQuoteFn(ctx, ownerUserID, quoteID)
	}
	args := m.Called(ctx, ownerUserID, quoteID)
	return args.Error(0)
}

// --- Mock collaborators ---

type MockFileStorage struct {
	mock.Mock
	UploadFn func(ctx context.Context, folder string, filename string, contentType string, data []byte) (string, error)
}

func (m *MockFileStorage) Upload(ctx context.Context, folder string, filename string, contentType string, data []byte) (string, error) {
	if m.UploadFn != nil {
		return m.UploadFn(ctx, folder, filename, contentType, data)
	}
	args := m.Called(ctx, folder, filename, contentType, data)
	return args.String(0), args.Error(1)
}

type MockEmailSender struct {
	mock.Mock
	SendOTPEmailFn func(ctx context.Context, toEmail string, name string, otp string) error
}

func (m *MockEmailSender) SendOTPEmail(ctx context.Context, toEmail string, name string, otp string) error {
	if m.SendOTPEmailFn != nil {
		return m.SendOTPEmailFn(ctx, toEmail, name, otp)
	}
	args := m.Called(ctx, toEmail, name, otp)
	return args.Error(0)
}

type MockDocumentRenderer struct {
	mock.Mock
	RenderInvoiceFn func(detail *domain.InvoiceDetail) ([]byte, error)
	RenderQuoteFn   func(detail *domain.QuoteDetail) ([]byte, error)
}

func (m *MockDocumentRenderer) RenderInvoice(detail *domain.InvoiceDetail) ([]byte, error) {
	if m.RenderInvoiceFn != nil {
		return m.RenderInvoiceFn(detail)
	}
	args := m.Called(detail)
	var data []byte
	if args.Get(0) != nil {
		data = args.Get(0).([]byte)
	}
	return data, args.Error(1)
}

func (m *MockDocumentRenderer) RenderQuote(detail *domain.QuoteDetail) ([]byte, error) {
	if m.RenderQuoteFn != nil {
		return m.RenderQuoteFn(detail)
	}
	args := m.Called(detail)
	var data []byte
	if args.Get(0) != nil {
		data = args.Get(0).([]byte)
	}
	return data, args.Error(1)
}
