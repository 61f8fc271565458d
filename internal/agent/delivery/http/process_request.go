package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

var errEmptyMessage = errors.New("message is required")

// processQueryReq binds and validates the query request body.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return req, errEmptyMessage
	}
	return req, nil
}
