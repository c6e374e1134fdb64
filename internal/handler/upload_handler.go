package handler

import (
	"net/http"
	"strings"
	"time"

	"lingo-backend/internal/storage"
	"lingo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

const downloadURLExpiry = 1 * time.Hour

// UploadHandler serves stored objects referenced by documents. Reference
// strings are paths under /uploads; the handler redirects to a pre-signed
// object-store URL rather than streaming the blob itself.
type UploadHandler struct {
	store storage.Storage
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{store: store}
}

// Serve redirects /uploads/<folder>/<name> to a pre-signed download URL.
func (h *UploadHandler) Serve(c *gin.Context) {
	rel := strings.TrimPrefix(c.Param("filepath"), "/")
	if rel == "" || strings.Contains(rel, "..") {
		response.NotFound(c, "file not found")
		return
	}

	key := strings.TrimPrefix(storage.UploadPrefix, "/") + "/" + rel

	url, err := h.store.GetPresignedURL(c.Request.Context(), key, downloadURLExpiry)
	if err != nil {
		response.NotFound(c, "file not found")
		return
	}

	c.Redirect(http.StatusFound, url)
}
