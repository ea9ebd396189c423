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

// ItemService operates on the line items of a single invoice. Every mutation
// recomputes all item totals and the invoice total from scratch, so repeated
// edits never compound tax into the stored total.
type ItemService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewItemService creates a new instance of ItemService.
func NewItemService(invoiceRepo portsrepo.InvoiceRepositoryFacade) *ItemService {
	return &ItemService{invoiceRepo: invoiceRepo}
}

var _ portssvc.ItemSvcFacade = (*ItemService)(nil)

// AddItem appends a line item to the invoice.
func (s *ItemService) AddItem(ctx context.Context, userID string, invoiceID string, req dto.LineItemRequest) (*domain.LineItem, error) {
	invoice, err := s.findInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	item := req.ToDomainLineItem()
	item.ItemID = uuid.NewString()
	invoice.Items = append(invoice.Items, item)

	if err := s.recomputeAndSave(ctx, userID, invoice); err != nil {
		return nil, err
	}

	saved := invoice.Items[len(invoice.Items)-1]
	s.LogInfo(ctx, "invoice item added", "invoice_id", invoiceID, "item_id", saved.ItemID)
	return &saved, nil
}

// ListItems returns the invoice's line items in order.
func (s *ItemService) ListItems(ctx context.Context, userID string, invoiceID string) ([]domain.LineItem, error) {
	invoice, err := s.findInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	return invoice.Items, nil
}

// GetItemByID retrieves a single line item.
func (s *ItemService) GetItemByID(ctx context.Context, userID string, invoiceID string, itemID string) (*domain.LineItem, error) {
	invoice, err := s.findInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	for _, item := range invoice.Items {
		if item.ItemID == itemID {
			return &item, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("item %s not found on invoice %s", itemID, invoiceID))
}

// UpdateItem applies a partial update to a line item.
func (s *ItemService) UpdateItem(ctx context.Context, userID string, invoiceID string, itemID string, req dto.UpdateLineItemRequest) (*domain.LineItem, error) {
	invoice, err := s.findInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, item := range invoice.Items {
		if item.ItemID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("item %s not found on invoice %s", itemID, invoiceID))
	}

	item := &invoice.Items[idx]
	if req.ItemName != nil {
		item.ItemName = *req.ItemName
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}

	if err := s.recomputeAndSave(ctx, userID, invoice); err != nil {
		return nil, err
	}

	updated := invoice.Items[idx]
	return &updated, nil
}

// DeleteItem removes a line item from the invoice.
func (s *ItemService) DeleteItem(ctx context.Context, userID string, invoiceID string, itemID string) error {
	invoice, err := s.findInvoice(ctx, userID, invoiceID)
	if err != nil {
		return err
	}

	kept := invoice.Items[:0]
	found := false
	for _, item := range invoice.Items {
		if item.ItemID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return apperrors.NewNotFoundError(fmt.Sprintf("item %s not found on invoice %s", itemID, invoiceID))
	}
	invoice.Items = kept

	if err := s.recomputeAndSave(ctx, userID, invoice); err != nil {
		return err
	}
	s.LogInfo(ctx, "invoice item deleted", "invoice_id", invoiceID, "item_id", itemID)
	return nil
}

func (s *ItemService) findInvoice(ctx context.Context, userID string, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, userID, invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	return invoice, nil
}

func (s *ItemService) recomputeAndSave(ctx context.Context, userID string, invoice *domain.Invoice) error {
	invoice.Items = billing.ComputeItemTotals(invoice.Items)
	invoice.Total = billing.ComputeTotal(invoice.Items, invoice.Discount, invoice.IncludeTax, invoice.TaxRate)
	invoice.LastUpdatedAt = time.Now()
	invoice.LastUpdatedBy = userID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", invoice.InvoiceID, err)
	}
	return nil
}
