package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/streamhive/backend/internal/application"
	"github.com/streamhive/backend/pkg/apperr"
	"github.com/streamhive/backend/pkg/response"
	"github.com/streamhive/backend/pkg/validation"
)

// fail translates an application error into the response envelope.
func fail(c *gin.Context, err error) {
	resp := response.Error(c, apperr.HTTPStatus(err), apperr.Message(err), nil)
	c.JSON(resp.StatusCode, resp)
}

// badRequest reports a binding/validation failure with field details.
func badRequest(c *gin.Context, err error) {
	resp := response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
	c.JSON(resp.StatusCode, resp)
}

// openUpload turns a multipart file header into the application upload
// shape. The caller owns closing via the returned func.
func openUpload(fh *multipart.FileHeader) (*application.Upload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	up := &application.Upload{
		Reader:      f,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
	}
	return up, func() { _ = f.Close() }, nil
}

func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return page, limit
}
