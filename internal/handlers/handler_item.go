package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/invomate/invomate_app/internal/core/ports/services"
	"github.com/invomate/invomate_app/internal/dto"
)

// itemHandler handles HTTP requests for an invoice's line items.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

func newItemHandler(is portssvc.ItemSvcFacade) *itemHandler {
	return &itemHandler{itemService: is}
}

// registerItemRoutes registers item routes under an invoice group.
func registerItemRoutes(invoices *gin.RouterGroup, itemService portssvc.ItemSvcFacade) {
	h := newItemHandler(itemService)

	items := invoices.Group("/:invoiceID/items")
	{
		items.POST("", h.addItem)
		items.GET("", h.listItems)
		items.GET("/:itemID", h.getItem)
		items.PATCH("/:itemID", h.updateItem)
		items.DELETE("/:itemID", h.deleteItem)
	}
}

// addItem godoc
// @Summary Add a line item to an invoice
// @Tags items
// @Accept json
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Param item body dto.LineItemRequest true "Item details"
// @Success 201 {object} dto.LineItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID}/items [post]
func (h *itemHandler) addItem(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.LineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	item, err := h.itemService.AddItem(c.Request.Context(), userID, c.Param("invoiceID"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLineItemResponse(*item))
}

// listItems godoc
// @Summary List an invoice's line items
// @Tags items
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {array} dto.LineItemResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID}/items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	items, err := h.itemService.ListItems(c.Request.Context(), userID, c.Param("invoiceID"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListLineItemResponse(items))
}

// getItem godoc
// @Summary Get a single line item
// @Tags items
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Param itemID path string true "Item ID"
// @Success 200 {object} dto.LineItemResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID}/items/{itemID} [get]
func (h *itemHandler) getItem(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	item, err := h.itemService.GetItemByID(c.Request.Context(), userID, c.Param("invoiceID"), c.Param("itemID"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLineItemResponse(*item))
}

// updateItem godoc
// @Summary Update a line item
// @Description Partial update; the item total and invoice total are recomputed.
// @Tags items
// @Accept json
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Param itemID path string true "Item ID"
// @Param item body dto.UpdateLineItemRequest true "Fields to update"
// @Success 200 {object} dto.LineItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID}/items/{itemID} [patch]
func (h *itemHandler) updateItem(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), userID, c.Param("invoiceID"), c.Param("itemID"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLineItemResponse(*item))
}

// deleteItem godoc
// @Summary Delete a line item
// @Tags items
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Param itemID path string true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID}/items/{itemID} [delete]
func (h *itemHandler) deleteItem(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), userID, c.Param("invoiceID"), c.Param("itemID")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
