package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/invomate/invomate_app/internal/core/ports/services"
	"github.com/invomate/invomate_app/internal/dto"
)

// businessHandler handles HTTP requests for the user's businesses.
type businessHandler struct {
	businessService portssvc.BusinessSvcFacade
}

func newBusinessHandler(bs portssvc.BusinessSvcFacade) *businessHandler {
	return &businessHandler{businessService: bs}
}

// registerBusinessRoutes registers all business-related routes.
func registerBusinessRoutes(rg *gin.RouterGroup, businessService portssvc.BusinessSvcFacade) {
	h := newBusinessHandler(businessService)

	businesses := rg.Group("/businesses")
	{
		businesses.GET("/search-businesses", h.searchBusinesses)
		businesses.GET("/:businessID", h.getBusiness)
	}
}

// searchBusinesses godoc
// @Summary Search businesses by name fragment
// @Tags businesses
// @Produce json
// @Param name query string true "Name fragment"
// @Success 200 {array} dto.BusinessResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/search-businesses [get]
func (h *businessHandler) searchBusinesses(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.SearchBusinessesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required query parameter: name"})
		return
	}

	businesses, err := h.businessService.SearchBusinesses(c.Request.Context(), userID, params.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListBusinessResponse(businesses))
}

// getBusiness godoc
// @Summary Get a business by ID
// @Tags businesses
// @Produce json
// @Param businessID path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{businessID} [get]
func (h *businessHandler) getBusiness(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	business, err := h.businessService.GetBusinessByID(c.Request.Context(), userID, c.Param("businessID"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}
