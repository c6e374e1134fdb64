package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"lingo-backend/internal/validator"
	"lingo-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
}

// filePart describes one multipart file part for test requests.
type filePart struct {
	field       string
	name        string
	contentType string
	content     string
}

// multipartRequest builds a multipart/form-data request from fields and files.
func multipartRequest(t *testing.T, method, target string, fields map[string]string, files []filePart) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for field, value := range fields {
		require.NoError(t, writer.WriteField(field, value))
	}
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.name+`"`)
		header.Set("Content-Type", f.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = io.WriteString(part, f.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// jsonRequest builds a JSON request from any payload.
func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// serve runs a request through a fresh router with the given route.
func serve(method, path string, handlerFunc gin.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	router := gin.New()
	router.Handle(method, path, handlerFunc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeResponse parses the standard response envelope.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// dataMap returns the response data as a map for field assertions.
func dataMap(t *testing.T, resp response.Response) map[string]interface{} {
	t.Helper()

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data is not an object: %v", resp.Data)
	return data
}
