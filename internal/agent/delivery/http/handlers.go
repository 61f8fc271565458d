package http

import (
	"github.com/gin-gonic/gin"

	"travel-concierge/pkg/response"
)

// Query godoc
// @Summary     Process a travel query
// @Description Routes one free-text message through the decision pipeline and returns the answer with its decision trace.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "User message"
// @Success     200  {object} queryResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/agent/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessQuery(ctx, req.Message)
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessQuery: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newQueryResp(output))
}
