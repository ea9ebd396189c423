package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/invomate/invomate_app/internal/core/ports/services"
	"github.com/invomate/invomate_app/internal/dto"
)

// clientHandler handles HTTP requests for the user's clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{clientService: cs}
}

// registerClientRoutes registers all client-related routes.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := rg.Group("/clients")
	{
		clients.GET("/all-clients", h.listClients)
		clients.GET("/search-clients", h.searchClients)
		clients.GET("/:clientID", h.getClient)
		clients.GET("/:clientID/invoices", h.listClientInvoices)
	}
}

// listClients godoc
// @Summary List all clients with invoice counts
// @Tags clients
// @Produce json
// @Success 200 {array} dto.ClientSummaryResponse
// @Security BearerAuth
// @Router /clients/all-clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	clients, err := h.clientService.ListClientsWithInvoiceCounts(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	res := make([]dto.ClientSummaryResponse, len(clients))
	for i, client := range clients {
		res[i] = dto.ToClientSummaryResponse(client)
	}
	c.JSON(http.StatusOK, res)
}

// searchClients godoc
// @Summary Search clients by name fragment
// @Tags clients
// @Produce json
// @Param name query string true "Name fragment"
// @Success 200 {array} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/search-clients [get]
func (h *clientHandler) searchClients(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.SearchClientsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required query parameter: name"})
		return
	}

	clients, err := h.clientService.SearchClients(c.Request.Context(), userID, params.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListClientResponse(clients))
}

// getClient godoc
// @Summary Get a client by ID
// @Tags clients
// @Produce json
// @Param clientID path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{clientID} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetClientByID(c.Request.Context(), userID, c.Param("clientID"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// listClientInvoices godoc
// @Summary List invoices for one client
// @Tags clients
// @Produce json
// @Param clientID path string true "Client ID"
// @Success 200 {array} dto.InvoiceSummaryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{clientID}/invoices [get]
func (h *clientHandler) listClientInvoices(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	summaries, err := h.clientService.ListInvoicesForClient(c.Request.Context(), userID, c.Param("clientID"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoiceSummaryResponse(summaries))
}
