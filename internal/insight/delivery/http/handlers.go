package http

import (
	"github.com/gin-gonic/gin"

	"smart-daily-planner/pkg/response"
	"smart-daily-planner/pkg/scope"
)

// Summarize godoc
// @Summary     Summarise notes
// @Description Summarises the caller's notes with key points, links between them and study tips.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body summarizeReq true "Note ids"
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/ai/summarize [POST]
func (h *handler) Summarize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSummarizeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Summarize(ctx, req.toInput(scope.GetUserIDFromContext(ctx)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Summarize: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSummaryResp(out))
}

// Advise godoc
// @Summary     Productivity coaching
// @Description Tips over the given tasks and notes. Signed-in callers who send none get advice on their stored ones.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body adviseReq false "Tasks and notes"
// @Success     200 {object} adviceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/ai/coach [POST]
func (h *handler) Advise(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAdviseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Advise(ctx, req.toInput(scope.GetUserIDFromContext(ctx)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Advise: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, adviceResp{Tips: orEmpty(out.Tips), Source: out.Source})
}
