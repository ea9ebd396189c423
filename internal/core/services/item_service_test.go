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

type ItemServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	service         *services.ItemService

	userID    string
	invoiceID string
	stored    domain.Invoice
}

func (suite *ItemServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.service = services.NewItemService(suite.mockInvoiceRepo)

	suite.userID = uuid.NewString()
	suite.invoiceID = uuid.NewString()
	suite.stored = domain.Invoice{
		InvoiceID:   suite.invoiceID,
		OwnerUserID: suite.userID,
		Items: []domain.LineItem{
			{ItemID: uuid.NewString(), ItemName: "Design", Quantity: 2, UnitPrice: decimal.NewFromInt(10), Total: decimal.NewFromInt(20)},
			{ItemID: uuid.NewString(), ItemName: "Hosting", Quantity: 1, UnitPrice: decimal.NewFromInt(5), Total: decimal.NewFromInt(5)},
		},
		TaxRate:    decimal.NewFromInt(10),
		IncludeTax: true,
		Discount:   decimal.NewFromInt(5),
		Total:      decimal.NewFromInt(22),
	}

	// The repo hands back the live copy and captures every update so a test
	// can chain several mutations against the same invoice.
	suite.mockInvoiceRepo.FindInvoiceByIDFn = func(ctx context.Context, ownerUserID string, invoiceID string) (*domain.Invoice, error) {
		if invoiceID != suite.invoiceID || ownerUserID != suite.userID {
			return nil, apperrors.ErrNotFound
		}
		inv := suite.stored
		inv.Items = append([]domain.LineItem(nil), suite.stored.Items...)
		return &inv, nil
	}
	suite.mockInvoiceRepo.UpdateInvoiceFn = func(ctx context.Context, invoice domain.Invoice) error {
		suite.stored = invoice
		return nil
	}
}

func (suite *ItemServiceTestSuite) TestAddItem_RecomputesTotal() {
	ctx := context.Background()

	item, err := suite.service.AddItem(ctx, suite.userID, suite.invoiceID, dto.LineItemRequest{
		ItemName:  "Support",
		Quantity:  3,
		UnitPrice: decimal.NewFromInt(100),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(item)
	suite.NotEmpty(item.ItemID)
	suite.True(item.Total.Equal(decimal.NewFromInt(300)))
	suite.Len(suite.stored.Items, 3)
	// (325 - 5) * 1.10 = 352
	suite.True(suite.stored.Total.Equal(decimal.NewFromInt(352)), "got total %s", suite.stored.Total)
}

func (suite *ItemServiceTestSuite) TestUpdateItem_RecomputesItemAndTotal() {
	ctx := context.Background()
	itemID := suite.stored.Items[0].ItemID
	newQty := int64(5)

	item, err := suite.service.UpdateItem(ctx, suite.userID, suite.invoiceID, itemID, dto.UpdateLineItemRequest{Quantity: &newQty})

	suite.Require().NoError(err)
	suite.True(item.Total.Equal(decimal.NewFromInt(50)))
	// (55 - 5) * 1.10 = 55
	suite.True(suite.stored.Total.Equal(decimal.NewFromInt(55)), "got total %s", suite.stored.Total)
}

func (suite *ItemServiceTestSuite) TestRepeatedMutationsDoNotCompoundTax() {
	ctx := context.Background()
	itemID := suite.stored.Items[0].ItemID

	// Touching the same item repeatedly without changing anything material
	// must leave the stored total exactly where it started.
	name := "Design"
	for i := 0; i < 5; i++ {
		_, err := suite.service.UpdateItem(ctx, suite.userID, suite.invoiceID, itemID, dto.UpdateLineItemRequest{ItemName: &name})
		suite.Require().NoError(err)
	}

	suite.True(suite.stored.Total.Equal(decimal.NewFromInt(22)), "got total %s", suite.stored.Total)
}

func (suite *ItemServiceTestSuite) TestDeleteItem_RecomputesTotal() {
	ctx := context.Background()
	itemID := suite.stored.Items[1].ItemID

	err := suite.service.DeleteItem(ctx, suite.userID, suite.invoiceID, itemID)

	suite.Require().NoError(err)
	suite.Len(suite.stored.Items, 1)
	// (20 - 5) * 1.10 = 16.5
	suite.True(suite.stored.Total.Equal(decimal.RequireFromString("16.5")), "got total %s", suite.stored.Total)
}

func (suite *ItemServiceTestSuite) TestGetItemByID_NotFound() {
	ctx := context.Background()

	item, err := suite.service.GetItemByID(ctx, suite.userID, suite.invoiceID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ItemServiceTestSuite) TestListItems_OtherUsersInvoiceHidden() {
	ctx := context.Background()

	items, err := suite.service.ListItems(ctx, uuid.NewString(), suite.invoiceID)

	suite.Require().Error(err)
	suite.Nil(items)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ItemServiceTestSuite))
}
