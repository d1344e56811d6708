package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WebResponse is the uniform envelope returned by every endpoint.
type WebResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  string      `json:"errors,omitempty"`
}

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, WebResponse{
		Code:    status,
		Message: http.StatusText(status),
		Data:    data,
	})
}

func respondError(c *gin.Context, status int, errs string) {
	c.JSON(status, WebResponse{
		Code:    status,
		Message: http.StatusText(status),
		Errors:  errs,
	})
}
