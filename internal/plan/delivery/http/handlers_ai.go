package http

import (
	"github.com/gin-gonic/gin"

	"smart-daily-planner/pkg/response"
	"smart-daily-planner/pkg/scope"
)

// EstimateDurations godoc
// @Summary     Estimate task durations
// @Description Works without a session. Signed-in callers get estimates adjusted by their correction history.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Tasks"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/ai/analyze-durations [POST]
func (h *handler) EstimateDurations(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.EstimateDurations(ctx, req.toInput(scope.GetUserIDFromContext(ctx)))
	if err != nil {
		h.l.Errorf(ctx, "uc.EstimateDurations: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, analyzeResp{TaskAnalyses: orEmpty(out.Analyses), Source: out.Source})
}

// Suggest godoc
// @Summary     Suggest optimisations
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Tasks and date"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/ai/suggestions [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Suggest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, suggestResp{Suggestions: orEmpty(out.Suggestions), Source: out.Source})
}

// BuildSchedule godoc
// @Summary     Build a schedule
// @Description Works without a session. Signed-in callers that send no fixed_schedules get their stored ones merged.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Date, tasks, suggestions and fixed schedules"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/ai/schedule [POST]
func (h *handler) BuildSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.uc.BuildSchedule(ctx, req.toInput(scope.GetUserIDFromContext(ctx)))
	if err != nil {
		h.l.Errorf(ctx, "uc.BuildSchedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newScheduleResp(res))
}
