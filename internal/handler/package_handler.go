package handler

import (
	"errors"

	apperrors "lingo-backend/internal/errors"
	"lingo-backend/internal/models"
	"lingo-backend/internal/service"
	"lingo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// PackageHandler handles HTTP requests for the package catalog.
type PackageHandler struct {
	service service.PackageServicer
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(service service.PackageServicer) *PackageHandler {
	return &PackageHandler{service: service}
}

// ListPackages godoc
// @Summary      List all packages
// @Description  Return the full package catalog, no pagination
// @Tags         packages
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.PackageDocument}
// @Failure      500  {object}  response.Response
// @Router       /get-all-packages [get]
func (h *PackageHandler) ListPackages(c *gin.Context) {
	docs, err := h.service.ListPackages(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, docs)
}

// AddPackage godoc
// @Summary      Add a package
// @Description  Append a new package of questions to the catalog; media files are multipart parts named file_<questionID>
// @Tags         packages
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true   "Package name"
// @Param        description  formData  string  false  "Package description"
// @Param        questions    formData  string  true   "JSON array of questions"
// @Success      200  {object}  response.Response{data=models.LearningPackage}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /add-package [post]
func (h *PackageHandler) AddPackage(c *gin.Context) {
	var req models.AddPackageRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	files, closeFiles, err := multipartUploads(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer closeFiles()

	pkg, err := h.service.AddPackage(c.Request.Context(), &req, files)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidQuestions) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrPackageStoreNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, pkg)
}
