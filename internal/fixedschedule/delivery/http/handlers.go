package http

import (
	"github.com/gin-gonic/gin"

	"smart-daily-planner/pkg/response"
	"smart-daily-planner/pkg/scope"
)

// Create godoc
// @Summary     Create a fixed schedule
// @Description Registers an immovable commitment (class, meeting) on the given weekdays (0=Sunday).
// @Tags        FixedSchedules
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Fixed schedule"
// @Success     200  {object} itemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/fixed-schedules [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	f, err := h.uc.Create(ctx, req.toInput(scope.GetUserIDFromContext(ctx)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, itemResp{FixedSchedule: newFixedResp(f)})
}

// List godoc
// @Summary     List fixed schedules
// @Tags        FixedSchedules
// @Produce     json
// @Security    BearerAuth
// @Param       weekday query int false "Only entries active on this weekday (0-6)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/fixed-schedules [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	list, err := h.uc.List(ctx, req.toInput(scope.GetUserIDFromContext(ctx)))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(list))
}

// Update godoc
// @Summary     Replace a fixed schedule
// @Tags        FixedSchedules
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Fixed schedule ID"
// @Param       body body updateReq true "Fixed schedule"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/fixed-schedules/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	f, err := h.uc.Update(ctx, req.toInput(scope.GetUserIDFromContext(ctx)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, itemResp{FixedSchedule: newFixedResp(f)})
}

// Delete godoc
// @Summary     Delete a fixed schedule
// @Tags        FixedSchedules
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Fixed schedule ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/fixed-schedules/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, scope.GetUserIDFromContext(ctx), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
