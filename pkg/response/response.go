package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse[T any] struct {
	StatusCode int      `json:"statusCode"`
	RequestID  string   `json:"request_id,omitempty"`
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	Data       T        `json:"data,omitempty"`
	Errors     []string `json:"errors,omitempty"`
}

func Success[T any](ctx *gin.Context, status int, data T, message string) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	resp := APIResponse[T]{
		StatusCode: status,
		RequestID:  ctx.GetString("request_id"),
		Success:    true,
		Message:    message,
		Data:       data,
	}
	ctx.JSON(status, resp)
	return resp
}

func Error(ctx *gin.Context, status int, message string, errs []string) APIResponse[any] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return APIResponse[any]{
		StatusCode: status,
		RequestID:  ctx.GetString("request_id"),
		Success:    false,
		Message:    message,
		Errors:     errs,
	}
}
