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

const quotesFolder = "quotes"

// QuoteService provides quote operations: CRUD, PDF generation and the
// one-way conversion into an invoice.
type QuoteService struct {
	BaseService
	quoteRepo   portsrepo.QuoteRepositoryFacade
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	clientSvc   portssvc.ClientSvcFacade
	businessSvc portssvc.BusinessSvcFacade
	renderer    portssvc.DocumentRendererSvc
	storage     portssvc.FileStorageSvc
}

// NewQuoteService creates a new instance of QuoteService.
func NewQuoteService(
	quoteRepo portsrepo.QuoteRepositoryFacade,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	clientSvc portssvc.ClientSvcFacade,
	businessSvc portssvc.BusinessSvcFacade,
	renderer portssvc.DocumentRendererSvc,
	storage portssvc.FileStorageSvc,
) *QuoteService {
	return &QuoteService{
		quoteRepo:   quoteRepo,
		invoiceRepo: invoiceRepo,
		clientSvc:   clientSvc,
		businessSvc: businessSvc,
		renderer:    renderer,
		storage:     storage,
	}
}

var _ portssvc.QuoteSvcFacade = (*QuoteService)(nil)

// GetQuoteByID retrieves a quote with its client and business resolved.
func (s *QuoteService) GetQuoteByID(ctx context.Context, userID string, quoteID string) (*domain.QuoteDetail, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, userID, quoteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find quote %s: %w", quoteID, err)
	}
	return s.resolveDetail(ctx, userID, quote)
}

// ListQuotesByUser lists the user's quote summaries.
func (s *QuoteService) ListQuotesByUser(ctx context.Context, userID string) ([]domain.QuoteSummary, error) {
	summaries, err := s.quoteRepo.FindQuoteSummariesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return summaries, nil
}

// CreateQuote creates a quote, lazily creating its client and business, then
// renders and uploads the PDF. The quote stays persisted even if the PDF
// step fails.
func (s *QuoteService) CreateQuote(ctx context.Context, userID string, req dto.CreateQuoteRequest) (*domain.QuoteDetail, string, error) {
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

	items := dto.ToDomainLineItems(req.QuoteItems)
	for i := range items {
		items[i].ItemID = uuid.NewString()
	}
	items = billing.ComputeItemTotals(items)

	status := domain.QuoteStatus(req.Status)
	if status == "" {
		status = domain.QuoteDraft
	}

	now := time.Now()
	quote := domain.Quote{
		QuoteID:      uuid.NewString(),
		OwnerUserID:  userID,
		ClientID:     client.ClientID,
		BusinessID:   business.BusinessID,
		QuoteDate:    req.QuoteDate,
		DueDate:      req.DueDate,
		QuoteNumber:  req.QuoteNumber,
		Items:        items,
		TaxRate:      req.TaxRate,
		IncludeTax:   req.IncludeTax,
		Discount:     req.Discount,
		Total:        billing.ComputeTotal(items, req.Discount, req.IncludeTax, req.TaxRate),
		TemplateType: templateType,
		Status:       status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.quoteRepo.SaveQuote(ctx, quote); err != nil {
		return nil, "", fmt.Errorf("failed to save quote: %w", err)
	}
	s.LogInfo(ctx, "quote created", "quote_id", quote.QuoteID)

	detail := &domain.QuoteDetail{Quote: quote, Client: *client, Business: *business}
	pdfURL, err := s.renderAndUpload(ctx, detail)
	if err != nil {
		s.LogError(ctx, err, "quote saved but PDF generation failed", "quote_id", quote.QuoteID)
		return detail, "", nil
	}
	return detail, pdfURL, nil
}

// UpdateQuote applies a partial update, mirroring invoice patch semantics:
// inline client/business updates and a full total recompute when the item
// list is replaced.
func (s *QuoteService) UpdateQuote(ctx context.Context, userID string, quoteID string, req dto.UpdateQuoteRequest) (*domain.QuoteDetail, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, userID, quoteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find quote %s: %w", quoteID, err)
	}

	var client *domain.Client
	if req.HasClientFields() {
		client, err = s.clientSvc.UpdateClient(ctx, userID, quote.ClientID, dto.UpdateClientRequest{
			Name:        req.ClientName,
			Address:     req.ClientAddress,
			Email:       req.ClientEmail,
			PhoneNumber: req.ClientPhoneNumber,
		})
	} else {
		client, err = s.clientSvc.GetClientByID(ctx, userID, quote.ClientID)
	}
	if err != nil {
		return nil, err
	}

	var business *domain.Business
	if req.HasBusinessFields() {
		business, err = s.businessSvc.UpdateBusiness(ctx, userID, quote.BusinessID, dto.UpdateBusinessRequest{
			Name:        req.BusinessName,
			Address:     req.BusinessAddress,
			Email:       req.BusinessEmail,
			PhoneNumber: req.BusinessPhoneNumber,
			ABN:         req.ABN,
		})
	} else {
		business, err = s.businessSvc.GetBusinessByID(ctx, userID, quote.BusinessID)
	}
	if err != nil {
		return nil, err
	}

	if req.QuoteDate != nil {
		quote.QuoteDate = *req.QuoteDate
	}
	if req.DueDate != nil {
		quote.DueDate = *req.DueDate
	}
	if req.QuoteNumber != nil {
		quote.QuoteNumber = *req.QuoteNumber
	}
	if req.TaxRate != nil {
		quote.TaxRate = *req.TaxRate
	}
	if req.IncludeTax != nil {
		quote.IncludeTax = *req.IncludeTax
	}
	if req.Discount != nil {
		quote.Discount = *req.Discount
	}
	if req.TemplateType != nil {
		templateType := domain.TemplateType(*req.TemplateType)
		if !domain.ValidTemplateType(templateType) {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown template type: %s", *req.TemplateType))
		}
		quote.TemplateType = templateType
	}
	if req.Status != nil {
		quote.Status = domain.QuoteStatus(*req.Status)
	}

	if req.QuoteItems != nil {
		items := dto.ToDomainLineItems(*req.QuoteItems)
		for i := range items {
			items[i].ItemID = uuid.NewString()
		}
		quote.Items = billing.ComputeItemTotals(items)
		quote.Total = billing.ComputeTotal(quote.Items, quote.Discount, quote.IncludeTax, quote.TaxRate)
	}

	quote.LastUpdatedAt = time.Now()
	quote.LastUpdatedBy = userID

	if err := s.quoteRepo.UpdateQuote(ctx, *quote); err != nil {
		return nil, fmt.Errorf("failed to update quote %s: %w", quoteID, err)
	}

	return &domain.QuoteDetail{Quote: *quote, Client: *client, Business: *business}, nil
}

// DeleteQuote removes a quote and its items.
func (s *QuoteService) DeleteQuote(ctx context.Context, userID string, quoteID string) error {
	if err := s.quoteRepo.DeleteQuote(ctx, userID, quoteID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete quote %s: %w", quoteID, err)
	}
	s.LogInfo(ctx, "quote deleted", "quote_id", quoteID)
	return nil
}

// ConvertToInvoice copies the quote's financial snapshot into a new invoice.
// Items get fresh IDs; tax, discount and total carry over verbatim. The
// quote itself is left untouched, including its status.
func (s *QuoteService) ConvertToInvoice(ctx context.Context, userID string, quoteID string) (*domain.InvoiceDetail, error) {
	detail, err := s.GetQuoteByID(ctx, userID, quoteID)
	if err != nil {
		return nil, err
	}
	quote := detail.Quote

	items := make([]domain.LineItem, len(quote.Items))
	for i, item := range quote.Items {
		item.ItemID = uuid.NewString()
		items[i] = item
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		OwnerUserID:   userID,
		ClientID:      quote.ClientID,
		BusinessID:    quote.BusinessID,
		InvoiceDate:   now.Format("2006-01-02"),
		DueDate:       quote.DueDate,
		InvoiceNumber: fmt.Sprintf("INV-%d", now.UnixMilli()),
		Items:         items,
		TaxRate:       quote.TaxRate,
		IncludeTax:    quote.IncludeTax,
		Discount:      quote.Discount,
		Total:         quote.Total,
		TemplateType:  quote.TemplateType,
		Status:        domain.InvoiceUnpaid,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to save converted invoice: %w", err)
	}

	s.LogInfo(ctx, "quote converted to invoice", "quote_id", quoteID, "invoice_id", invoice.InvoiceID)
	return &domain.InvoiceDetail{Invoice: invoice, Client: detail.Client, Business: detail.Business}, nil
}

// GenerateQuotePDF renders the quote and uploads it, returning the URL.
func (s *QuoteService) GenerateQuotePDF(ctx context.Context, userID string, quoteID string) (string, error) {
	detail, err := s.GetQuoteByID(ctx, userID, quoteID)
	if err != nil {
		return "", err
	}
	return s.renderAndUpload(ctx, detail)
}

func (s *QuoteService) renderAndUpload(ctx context.Context, detail *domain.QuoteDetail) (string, error) {
	data, err := s.renderer.RenderQuote(detail)
	if err != nil {
		return "", fmt.Errorf("failed to render quote PDF: %w", err)
	}
	filename := fmt.Sprintf("%s.pdf", detail.Quote.QuoteID)
	url, err := s.storage.Upload(ctx, quotesFolder, filename, "application/pdf", data)
	if err != nil {
		return "", fmt.Errorf("failed to upload quote PDF: %w", err)
	}
	return url, nil
}

func (s *QuoteService) resolveDetail(ctx context.Context, userID string, quote *domain.Quote) (*domain.QuoteDetail, error) {
	client, err := s.clientSvc.GetClientByID(ctx, userID, quote.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve quote client: %w", err)
	}
	business, err := s.businessSvc.GetBusinessByID(ctx, userID, quote.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve quote business: %w", err)
	}
	return &domain.QuoteDetail{Quote: *quote, Client: *client, Business: *business}, nil
}
