package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/invomate/invomate_app/internal/core/ports/services"
	"github.com/invomate/invomate_app/internal/dto"
)

// quoteHandler handles HTTP requests for quotes.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

func newQuoteHandler(qs portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{quoteService: qs}
}

// registerQuoteRoutes registers all quote-related routes.
func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(quoteService)

	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.createQuote)
		quotes.GET("/user-quotes", h.listQuotes)
		quotes.GET("/:quoteID", h.getQuote)
		quotes.PATCH("/:quoteID", h.updateQuote)
		quotes.DELETE("/:quoteID", h.deleteQuote)
		quotes.POST("/:quoteID/generate-pdf", h.generatePDF)
		quotes.POST("/:quoteID/convert", h.convertQuote)
	}
}

// createQuote godoc
// @Summary Create a quote
// @Description Creates a quote, lazily creating its client and business, and returns the uploaded PDF URL.
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.CreateQuoteRequest true "Quote details"
// @Success 201 {object} dto.CreateQuoteResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes [post]
func (h *quoteHandler) createQuote(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	detail, pdfURL, err := h.quoteService.CreateQuote(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateQuoteResponse{
		Quote:  dto.ToQuoteResponse(&detail.Quote, &detail.Client, &detail.Business),
		PDFURL: pdfURL,
	})
}

// listQuotes godoc
// @Summary List the user's quotes
// @Tags quotes
// @Produce json
// @Success 200 {array} dto.QuoteSummaryResponse
// @Security BearerAuth
// @Router /quotes/user-quotes [get]
func (h *quoteHandler) listQuotes(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	summaries, err := h.quoteService.ListQuotesByUser(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListQuoteSummaryResponse(summaries))
}

// getQuote godoc
// @Summary Get a quote by ID
// @Tags quotes
// @Produce json
// @Param quoteID path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/{quoteID} [get]
func (h *quoteHandler) getQuote(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	detail, err := h.quoteService.GetQuoteByID(c.Request.Context(), userID, c.Param("quoteID"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(&detail.Quote, &detail.Client, &detail.Business))
}

// updateQuote godoc
// @Summary Update a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param quoteID path string true "Quote ID"
// @Param quote body dto.UpdateQuoteRequest true "Fields to update"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/{quoteID} [patch]
func (h *quoteHandler) updateQuote(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	detail, err := h.quoteService.UpdateQuote(c.Request.Context(), userID, c.Param("quoteID"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(&detail.Quote, &detail.Client, &detail.Business))
}

// deleteQuote godoc
// @Summary Delete a quote
// @Tags quotes
// @Produce json
// @Param quoteID path string true "Quote ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/{quoteID} [delete]
func (h *quoteHandler) deleteQuote(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.quoteService.DeleteQuote(c.Request.Context(), userID, c.Param("quoteID")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// generatePDF godoc
// @Summary Render and upload the quote PDF
// @Tags quotes
// @Produce json
// @Param quoteID path string true "Quote ID"
// @Success 200 {object} dto.GeneratePDFResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/{quoteID}/generate-pdf [post]
func (h *quoteHandler) generatePDF(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	pdfURL, err := h.quoteService.GenerateQuotePDF(c.Request.Context(), userID, c.Param("quoteID"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GeneratePDFResponse{PDFURL: pdfURL})
}

// convertQuote godoc
// @Summary Convert a quote into an invoice
// @Description Copies the quote's financial snapshot into a new unpaid invoice. The quote is left unchanged.
// @Tags quotes
// @Produce json
// @Param quoteID path string true "Quote ID"
// @Success 201 {object} dto.ConvertQuoteResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotes/{quoteID}/convert [post]
func (h *quoteHandler) convertQuote(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	detail, err := h.quoteService.ConvertToInvoice(c.Request.Context(), userID, c.Param("quoteID"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ConvertQuoteResponse{
		Invoice: dto.ToInvoiceResponse(&detail.Invoice, &detail.Client, &detail.Business),
	})
}
