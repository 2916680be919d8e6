package http

import (
	"github.com/gin-gonic/gin"

	"smart-daily-planner/pkg/response"
	"smart-daily-planner/pkg/scope"
)

// Record godoc
// @Summary     Record a duration correction
// @Description Appends a user override of an AI duration estimate. The category is inferred when omitted.
// @Tags        Corrections
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body recordReq true "Correction"
// @Success     200  {object} recordResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/corrections [POST]
func (h *handler) Record(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecordReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Record(ctx, req.toInput(scope.GetUserIDFromContext(ctx)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Record: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRecordResp(output))
}

// List godoc
// @Summary     List recent corrections
// @Description Returns the newest corrections (at most 50) and the category patterns derived from them.
// @Tags        Corrections
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Max records (default 50)"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/corrections [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput(scope.GetUserIDFromContext(ctx)))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}
