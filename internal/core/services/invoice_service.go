package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/invomate/invomate_app/internal/apperrors"
	"github.com/invomate/invomate_app/internal/core/domain"
	portsrepo "github.com/invomate/invomate_app/internal/core/ports/repositories"
	portssvc "github.com/invomate/invomate_app/internal/core/ports/services"
	"github.com/invomate/invomate_app/internal/dto"
	"github.com/invomate/invomate_app/internal/utils/billing"
)

const invoicesFolder = "invoices"

// InvoiceService provides invoice operations: CRUD, lazy client/business
// creation and PDF generation. Invoice rows and their items are written
// atomically; client, business and PDF side effects are separate writes.
type InvoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	clientSvc   portssvc.ClientSvcFacade
	businessSvc portssvc.BusinessSvcFacade
	renderer    portssvc.DocumentRendererSvc
	storage     portssvc.FileStorageSvc
}

// NewInvoiceService creates a new instance of InvoiceService.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	clientSvc portssvc.ClientSvcFacade,
	businessSvc portssvc.BusinessSvcFacade,
	renderer portssvc.DocumentRendererSvc,
	storage portssvc.FileStorageSvc,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		clientSvc:   clientSvc,
		businessSvc: businessSvc,
		renderer:    renderer,
		storage:     storage,
	}
}

var _ portssvc.InvoiceSvcFacade = (*InvoiceService)(nil)

// GetInvoiceByID retrieves an invoice with its client and business resolved.
func (s *InvoiceService) GetInvoiceByID(ctx context.Context, userID string, invoiceID string) (*domain.InvoiceDetail, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, userID, invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	return s.resolveDetail(ctx, userID, invoice)
}

// ListInvoicesByUser lists the user's invoice summaries.
func (s *InvoiceService) ListInvoicesByUser(ctx context.Context, userID string) ([]domain.InvoiceSummary, error) {
	summaries, err := s.invoiceRepo.FindInvoiceSummariesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return summaries, nil
}

// ListInvoicesWithItemsByUser retrieves the user's invoices with full item lists.
func (s *InvoiceService) ListInvoicesWithItemsByUser(ctx context.Context, userID string) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.FindInvoicesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices with items: %w", err)
	}
	return invoices, nil
}

// CreateInvoice creates an invoice, lazily creating its client and business,
// then renders and uploads the PDF. The invoice stays persisted even if the
// PDF step fails.
func (s *InvoiceService) CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.InvoiceDetail, string, error) {
	templateType := domain.TemplateType(req.TemplateType)
	if !domain.ValidTemplateType(templateType) {
		return nil, "", apperrors.NewBadRequestError(fmt.Sprintf("unknown template type: %s", req.TemplateType))
	}

	client, err := s.clientSvc.FindOrCreateClient(ctx, userID, domain.Client{
		Name:        req.ClientName,
		Address:     req.ClientAddress,
		Email:       req.ClientEmail,
		PhoneNumber: req.ClientPhoneNumber,
	})
	if err != nil {
		return nil, "", err
	}

	business, err := s.businessSvc.FindOrCreateBusiness(ctx, userID, domain.Business{
		Name:        req.BusinessName,
		Address:     req.BusinessAddress,
		Email:       req.BusinessEmail,
		PhoneNumber: req.BusinessPhoneNumber,
		ABN:         req.ABN,
	})
	if err != nil {
		return nil, "", err
	}

	items := dto.ToDomainLineItems(req.InvoiceItems)
	for i := range items {
		items[i].ItemID = uuid.NewString()
	}
	items = billing.ComputeItemTotals(items)

	status := domain.InvoiceStatus(req.Status)
	if status == "" {
		status = domain.InvoiceUnpaid
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		OwnerUserID:   userID,
		ClientID:      client.ClientID,
		BusinessID:    business.BusinessID,
		InvoiceDate:   req.InvoiceDate,
		DueDate:       req.DueDate,
		InvoiceNumber: req.InvoiceNumber,
		Items:         items,
		TaxRate:       req.TaxRate,
		IncludeTax:    req.IncludeTax,
		Discount:      req.Discount,
		Total:         billing.ComputeTotal(items, req.Discount, req.IncludeTax, req.TaxRate),
		TemplateType:  templateType,
		Status:        status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		return nil, "", fmt.Errorf("failed to save invoice: %w", err)
	}
	s.LogInfo(ctx, "invoice created", "invoice_id", invoice.InvoiceID)

	detail := &domain.InvoiceDetail{Invoice: invoice, Client: *client, Business: *business}
	pdfURL, err := s.renderAndUpload(ctx, detail)
	if err != nil {
		s.LogError(ctx, err, "invoice saved but PDF generation failed", "invoice_id", invoice.InvoiceID)
		return detail, "", nil
	}
	return detail, pdfURL, nil
}

// UpdateInvoice applies a partial update. Client and business fields in the
// request patch the referenced records in place. Replacing the item list
// recomputes every item total and the stored invoice total.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, userID string, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.InvoiceDetail, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, userID, invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	var client *domain.Client
	if req.HasClientFields() {
		client, err = s.clientSvc.UpdateClient(ctx, userID, invoice.ClientID, dto.UpdateClientRequest{
			Name:        req.ClientName,
			Address:     req.ClientAddress,
			Email:       req.ClientEmail,
			PhoneNumber: req.ClientPhoneNumber,
		})
	} else {
		client, err = s.clientSvc.GetClientByID(ctx, userID, invoice.ClientID)
	}
	if err != nil {
		return nil, err
	}

	var business *domain.Business
	if req.HasBusinessFields() {
		business, err = s.businessSvc.UpdateBusiness(ctx, userID, invoice.BusinessID, dto.UpdateBusinessRequest{
			Name:        req.BusinessName,
			Address:     req.BusinessAddress,
			Email:       req.BusinessEmail,
			PhoneNumber: req.BusinessPhoneNumber,
			ABN:         req.ABN,
		})
	} else {
		business, err = s.businessSvc.GetBusinessByID(ctx, userID, invoice.BusinessID)
	}
	if err != nil {
		return nil, err
	}

	if req.InvoiceDate != nil {
		invoice.InvoiceDate = *req.InvoiceDate
	}
	if req.DueDate != nil {
		invoice.DueDate = *req.DueDate
	}
	if req.InvoiceNumber != nil {
		invoice.InvoiceNumber = *req.InvoiceNumber
	}
	if req.TaxRate != nil {
		invoice.TaxRate = *req.TaxRate
	}
	if req.IncludeTax != nil {
		invoice.IncludeTax = *req.IncludeTax
	}
	if req.Discount != nil {
		invoice.Discount = *req.Discount
	}
	if req.TemplateType != nil {
		templateType := domain.TemplateType(*req.TemplateType)
		if !domain.ValidTemplateType(templateType) {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown template type: %s", *req.TemplateType))
		}
		invoice.TemplateType = templateType
	}
	if req.Status != nil {
		invoice.Status = domain.InvoiceStatus(*req.Status)
	}

	if req.InvoiceItems != nil {
		items := dto.ToDomainLineItems(*req.InvoiceItems)
		for i := range items {
			items[i].ItemID = uuid.NewString()
		}
		invoice.Items = billing.ComputeItemTotals(items)
		invoice.Total = billing.ComputeTotal(invoice.Items, invoice.Discount, invoice.IncludeTax, invoice.TaxRate)
	}

	invoice.LastUpdatedAt = time.Now()
	invoice.LastUpdatedBy = userID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice %s: %w", invoiceID, err)
	}

	return &domain.InvoiceDetail{Invoice: *invoice, Client: *client, Business: *business}, nil
}

// DeleteInvoice removes an invoice and its items.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, userID string, invoiceID string) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, userID, invoiceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	s.LogInfo(ctx, "invoice deleted", "invoice_id", invoiceID)
	return nil
}

// GenerateInvoicePDF renders the invoice and uploads it, returning the URL.
func (s *InvoiceService) GenerateInvoicePDF(ctx context.Context, userID string, invoiceID string) (string, error) {
	detail, err := s.GetInvoiceByID(ctx, userID, invoiceID)
	if err != nil {
		return "", err
	}
	return s.renderAndUpload(ctx, detail)
}

func (s *InvoiceService) renderAndUpload(ctx context.Context, detail *domain.InvoiceDetail) (string, error) {
	data, err := s.renderer.RenderInvoice(detail)
	if err != nil {
		return "", fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	filename := fmt.Sprintf("%s.pdf", detail.Invoice.InvoiceID)
	url, err := s.storage.Upload(ctx, invoicesFolder, filename, "application/pdf", data)
	if err != nil {
		return "", fmt.Errorf("failed to upload invoice PDF: %w", err)
	}
	return url, nil
}

func (s *InvoiceService) resolveDetail(ctx context.Context, userID string, invoice *domain.Invoice) (*domain.InvoiceDetail, error) {
	client, err := s.clientSvc.GetClientByID(ctx, userID, invoice.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve invoice client: %w", err)
	}
	business, err := s.businessSvc.GetBusinessByID(ctx, userID, invoice.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve invoice business: %w", err)
	}
	return &domain.InvoiceDetail{Invoice: *invoice, Client: *client, Business: *business}, nil
}
