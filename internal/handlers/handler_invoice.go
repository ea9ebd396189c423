package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/invomate/invomate_app/internal/core/ports/services"
	"github.com/invomate/invomate_app/internal/dto"
)

// invoiceHandler handles HTTP requests for invoices and the ABN lookup proxy.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
	abnLookup      portssvc.ABNLookupSvc
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade, abn portssvc.ABNLookupSvc) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
		abnLookup:      abn,
	}
}

// registerInvoiceRoutes registers the invoice routes, including line items.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, itemService portssvc.ItemSvcFacade, abnLookup portssvc.ABNLookupSvc) {
	h := newInvoiceHandler(invoiceService, abnLookup)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("/user-invoices", h.listInvoices)
		invoices.GET("/items-by-user", h.listItemsByUser)
		invoices.GET("/fetch-abn-details", h.fetchABNDetails)
		invoices.GET("/:invoiceID", h.getInvoice)
		invoices.PATCH("/:invoiceID", h.updateInvoice)
		invoices.DELETE("/:invoiceID", h.deleteInvoice)
		invoices.POST("/:invoiceID/generate-pdf", h.generatePDF)
	}

	registerItemRoutes(invoices, itemService)
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Creates an invoice, lazily creating its client and business, and returns the uploaded PDF URL.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.CreateInvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	detail, pdfURL, err := h.invoiceService.CreateInvoice(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateInvoiceResponse{
		Invoice: dto.ToInvoiceResponse(&detail.Invoice, &detail.Client, &detail.Business),
		PDFURL:  pdfURL,
	})
}

// listInvoices godoc
// @Summary List the user's invoices
// @Tags invoices
// @Produce json
// @Success 200 {array} dto.InvoiceSummaryResponse
// @Security BearerAuth
// @Router /invoices/user-invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	summaries, err := h.invoiceService.ListInvoicesByUser(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoiceSummaryResponse(summaries))
}

// listItemsByUser godoc
// @Summary List line items grouped by invoice
// @Tags invoices
// @Produce json
// @Success 200 {array} dto.InvoiceItemsResponse
// @Security BearerAuth
// @Router /invoices/items-by-user [get]
func (h *invoiceHandler) listItemsByUser(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	invoices, err := h.invoiceService.ListInvoicesWithItemsByUser(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	res := make([]dto.InvoiceItemsResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = dto.InvoiceItemsResponse{
			InvoiceID: inv.InvoiceID,
			ItemCount: len(inv.Items),
			Items:     dto.ToListLineItemResponse(inv.Items),
		}
	}
	c.JSON(http.StatusOK, res)
}

// fetchABNDetails godoc
// @Summary Look up an ABN in the Australian Business Register
// @Tags invoices
// @Produce json
// @Param abn query string true "Australian Business Number"
// @Success 200 {object} domain.ABNDetails
// @Failure 400 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/fetch-abn-details [get]
func (h *invoiceHandler) fetchABNDetails(c *gin.Context) {
	if _, ok := mustUserID(c); !ok {
		return
	}

	var params dto.FetchABNDetailsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required query parameter: abn"})
		return
	}

	details, err := h.abnLookup.FetchABNDetails(c.Request.Context(), params.ABN)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// getInvoice godoc
// @Summary Get an invoice by ID
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	detail, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), userID, c.Param("invoiceID"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(&detail.Invoice, &detail.Client, &detail.Business))
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Partial update; client and business fields patch the referenced records in place.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Param invoice body dto.UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID} [patch]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	detail, err := h.invoiceService.UpdateInvoice(c.Request.Context(), userID, c.Param("invoiceID"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(&detail.Invoice, &detail.Client, &detail.Business))
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), userID, c.Param("invoiceID")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// generatePDF godoc
// @Summary Render and upload the invoice PDF
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.GeneratePDFResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID}/generate-pdf [post]
func (h *invoiceHandler) generatePDF(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	pdfURL, err := h.invoiceService.GenerateInvoicePDF(c.Request.Context(), userID, c.Param("invoiceID"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GeneratePDFResponse{PDFURL: pdfURL})
}
