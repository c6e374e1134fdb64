package handler

import (
	"errors"

	apperrors "lingo-backend/internal/errors"
	"lingo-backend/internal/models"
	"lingo-backend/internal/service"
	"lingo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	service service.AuthServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.AuthServicer) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a learner account from a multipart form with an optional photo
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        name              formData  string  true   "Full name"
// @Param        phone             formData  string  true   "Phone number"
// @Param        email             formData  string  true   "Email (unique)"
// @Param        dateOfBirth       formData  string  true   "Date of birth"
// @Param        address           formData  string  true   "Address"
// @Param        gender            formData  string  true   "Gender"
// @Param        password          formData  string  true   "Password"
// @Param        confirm_password  formData  string  true   "Password confirmation"
// @Param        photo             formData  file    false  "Profile photo"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
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

	userID, err := h.service.Register(c.Request.Context(), &req, photo)
	if err != nil {
		// Duplicate email is a 400 on this surface, matching the original
		// public contract.
		if errors.Is(err, apperrors.ErrPasswordMismatch) || errors.Is(err, apperrors.ErrUserAlreadyExists) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, gin.H{
		"message": "User registered successfully",
		"userId":  userID,
	})
}

// AdminLogin godoc
// @Summary      Admin login
// @Description  Authenticate against the configured admin credentials
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "Admin credentials"
// @Success      200      {object}  response.Response{data=models.AdminLoginResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AdminLogin(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// Login godoc
// @Summary      User login
// @Description  Authenticate a learner and return a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "User credentials"
// @Success      200      {object}  response.Response{data=models.LoginResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /api/v1/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}
