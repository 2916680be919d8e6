package http

import (
	"github.com/gin-gonic/gin"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/pkg/response"
	"smart-daily-planner/pkg/scope"
)

// StartSession godoc
// @Summary     Start a planning session
// @Description Loads the selected tasks and the weekday's fixed schedules. The session starts in the select stage.
// @Tags        PlanningSessions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body startReq true "Plan date and selected task ids"
// @Success     200  {object} sessionResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/sessions [POST]
func (h *handler) StartSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStartReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.StartSession(ctx, req.toInput(scope.GetUserIDFromContext(ctx)))
	h.respondSession(c, "uc.StartSession", s, err)
}

// GetSession godoc
// @Summary     Get a planning session
// @Tags        PlanningSessions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/plans/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()
	s, err := h.uc.GetSession(ctx, scope.GetUserIDFromContext(ctx), c.Param("id"))
	h.respondSession(c, "uc.GetSession", s, err)
}

// AnalyzeDurations godoc
// @Summary     Refine task durations
// @Description Allowed in the select stage. Falls back to the stored estimates when the model is unavailable.
// @Tags        PlanningSessions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/plans/sessions/{id}/analyze [POST]
func (h *handler) AnalyzeDurations(c *gin.Context) {
	ctx := c.Request.Context()
	s, err := h.uc.AnalyzeDurations(ctx, scope.GetUserIDFromContext(ctx), c.Param("id"))
	h.respondSession(c, "uc.AnalyzeDurations", s, err)
}

// AdjustDuration godoc
// @Summary     Adjust a task duration
// @Description Allowed in the select and optimize stages. A change from the stored estimate is recorded as a correction.
// @Tags        PlanningSessions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string    true "Session ID"
// @Param       task_id path string    true "Task ID"
// @Param       body    body adjustReq true "New duration in minutes"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/plans/sessions/{id}/tasks/{task_id}/duration [PUT]
func (h *handler) AdjustDuration(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAdjustReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.AdjustDuration(ctx, req.toInput(scope.GetUserIDFromContext(ctx)))
	h.respondSession(c, "uc.AdjustDuration", s, err)
}

// GenerateSuggestions godoc
// @Summary     Generate optimisation suggestions
// @Tags        PlanningSessions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/plans/sessions/{id}/suggestions [POST]
func (h *handler) GenerateSuggestions(c *gin.Context) {
	ctx := c.Request.Context()
	s, err := h.uc.GenerateSuggestions(ctx, scope.GetUserIDFromContext(ctx), c.Param("id"))
	h.respondSession(c, "uc.GenerateSuggestions", s, err)
}

// SetSuggestion godoc
// @Summary     Accept or reject a suggestion
// @Tags        PlanningSessions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id    path string           true "Session ID"
// @Param       index path int              true "Suggestion index"
// @Param       body  body setSuggestionReq true "Decision"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/plans/sessions/{id}/suggestions/{index} [PUT]
func (h *handler) SetSuggestion(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetSuggestionReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.uc.SetSuggestion(ctx, req.toInput(scope.GetUserIDFromContext(ctx)))
	h.respondSession(c, "uc.SetSuggestion", s, err)
}

// GenerateSchedule godoc
// @Summary     Build the day's schedule
// @Description Merges the tasks, accepted suggestions and fixed schedules. Can be repeated to regenerate.
// @Tags        PlanningSessions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/plans/sessions/{id}/schedule [POST]
func (h *handler) GenerateSchedule(c *gin.Context) {
	ctx := c.Request.Context()
	s, err := h.uc.GenerateSchedule(ctx, scope.GetUserIDFromContext(ctx), c.Param("id"))
	h.respondSession(c, "uc.GenerateSchedule", s, err)
}

// Save godoc
// @Summary     Save the plan
// @Description Upserts the plan for the session's date and moves the session to review.
// @Tags        PlanningSessions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     200 {object} saveResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/sessions/{id}/save [POST]
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Save(ctx, scope.GetUserIDFromContext(ctx), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Save: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, saveResp{Plan: newPlanResp(out.Plan), Session: newSessionResp(out.Session)})
}

func (h *handler) respondSession(c *gin.Context, op string, s model.PlanningSession, err error) {
	if err != nil {
		h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newSessionResp(s))
}
