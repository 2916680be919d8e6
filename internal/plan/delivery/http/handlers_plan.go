package http

import (
	"github.com/gin-gonic/gin"

	"smart-daily-planner/internal/plan"
	"smart-daily-planner/pkg/response"
	"smart-daily-planner/pkg/scope"
)

// ListPlans godoc
// @Summary     List saved plans
// @Tags        Plans
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Max plans (default 30, max 100)"
// @Success     200 {object} listPlansResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans [GET]
func (h *handler) ListPlans(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListPlansReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	list, err := h.uc.ListPlans(ctx, plan.ListPlansInput{UserID: scope.GetUserIDFromContext(ctx), Limit: req.Limit})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListPlans: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListPlansResp(list))
}

// GetPlan godoc
// @Summary     Get the plan for a date
// @Tags        Plans
// @Produce     json
// @Security    BearerAuth
// @Param       date path string true "Plan date (YYYY-MM-DD)"
// @Success     200 {object} planResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/plans/{date} [GET]
func (h *handler) GetPlan(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.uc.GetPlan(ctx, scope.GetUserIDFromContext(ctx), c.Param("date"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetPlan: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newPlanResp(p))
}
