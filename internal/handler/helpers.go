// Package handler contains HTTP handlers for the API.
package handler

import (
	"errors"
	"net/http"

	"lingo-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// formFileUpload extracts an optional multipart file part as a FileUpload.
// Returns (nil, noop, nil) when the part is absent. The returned closer must
// be called after the service is done with the body.
func formFileUpload(c *gin.Context, field string) (*service.FileUpload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, nil
		}
		return nil, nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	return &service.FileUpload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}, func() { _ = file.Close() }, nil
}

// multipartUploads collects every file part of the request, one upload per
// field name. The returned closer releases all opened files.
func multipartUploads(c *gin.Context) (map[string]*service.FileUpload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, err
	}

	uploads := make(map[string]*service.FileUpload, len(form.File))
	var closers []func()
	closeAll := func() {
		for _, closeFile := range closers {
			closeFile()
		}
	}

	for field, headers := range form.File {
		if len(headers) == 0 {
			continue
		}
		file, err := headers[0].Open()
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, func() { _ = file.Close() })
		uploads[field] = &service.FileUpload{
			Name:        headers[0].Filename,
			ContentType: headers[0].Header.Get("Content-Type"),
			Body:        file,
		}
	}

	return uploads, closeAll, nil
}
