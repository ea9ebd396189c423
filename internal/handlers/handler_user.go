package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/invomate/invomate_app/internal/core/ports/services"
	"github.com/invomate/invomate_app/internal/dto"
)

// maxProfilePhotoBytes caps uploaded profile photos at 5 MiB.
const maxProfilePhotoBytes = 5 << 20

// userHandler handles HTTP requests for the authenticated user's profile.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers the profile routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/profile", h.getProfile)
		users.PATCH("/profile", h.updateProfile)
	}
}

// getProfile godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/profile [get]
func (h *userHandler) getProfile(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateProfile godoc
// @Summary Update the authenticated user's profile
// @Description Multipart form: optional "name" field and optional "profilePhoto" file.
// @Tags users
// @Accept mpfd
// @Produce json
// @Param name formData string false "Display name"
// @Param profilePhoto formData file false "Profile photo"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/profile [patch]
func (h *userHandler) updateProfile(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request form: " + err.Error()})
		return
	}

	var photo *dto.FileUpload
	if fileHeader, err := c.FormFile("profilePhoto"); err == nil {
		if fileHeader.Size > maxProfilePhotoBytes {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Profile photo exceeds the 5MB limit"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read profile photo"})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read profile photo"})
			return
		}
		photo = &dto.FileUpload{
			Data:        data,
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
		}
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req, photo)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
