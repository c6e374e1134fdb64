package handler

import (
	"errors"

	apperrors "lingo-backend/internal/errors"
	"lingo-backend/internal/middleware"
	"lingo-backend/internal/models"
	"lingo-backend/internal/service"
	"lingo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles HTTP requests for profile operations.
type ProfileHandler struct {
	service service.UserServicer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service service.UserServicer) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetProfile godoc
// @Summary      Get profile by email
// @Description  Retrieve the public profile fields for a user (password excluded)
// @Tags         profile
// @Produce      json
// @Param        email  query     string  true  "User email"
// @Success      200    {object}  response.Response{data=models.Profile}
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.BadRequest(c, "email is required")
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, profile)
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Partial profile update keyed by email, with an optional new photo
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        email  formData  string  true   "User email"
// @Param        name   formData  string  false  "Full name"
// @Param        phone  formData  string  false  "Phone number"
// @Param        photo  formData  file    false  "New profile photo"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Router       /profile/update [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	photo, closePhoto, err := formFileUpload(c, "photo")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer closePhoto()

	if err := h.service.UpdateProfile(c.Request.Context(), &req, photo); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrNoChanges) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "Profile updated"})
}

// UpdatePassword godoc
// @Summary      Update password
// @Description  Overwrite a user's password; the new password is stored hashed
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request  body      models.UpdatePasswordRequest  true  "Email and new password"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /update-password [put]
func (h *ProfileHandler) UpdatePassword(c *gin.Context) {
	var req models.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.UpdatePassword(c.Request.Context(), &req); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrNoChanges) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "Password updated"})
}

// Me godoc
// @Summary      Current user profile
// @Description  Return the profile of the authenticated user
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=models.Profile}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /api/v1/me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "unauthorized")
		return
	}

	profile, err := h.service.GetProfileByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, profile)
}
