package http

import (
	"github.com/gin-gonic/gin"

	"smart-daily-planner/pkg/response"
	"smart-daily-planner/pkg/scope"
)

// Create godoc
// @Summary     Create a note
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Note data"
// @Success     200  {object} noteItemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Router      /api/v1/notes [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	n, err := h.uc.Create(ctx, req.toInput(scope.GetUserIDFromContext(ctx)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, noteItemResp{Note: newNoteResp(n)})
}

// List godoc
// @Summary     List notes
// @Description Most recently edited first.
// @Tags        Notes
// @Produce     json
// @Security    BearerAuth
// @Param       task_id query string false "Only notes attached to this task"
// @Param       limit   query int    false "Page size (default: 20)"
// @Param       offset  query int    false "Page offset"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/notes [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, req.toInput(scope.GetUserIDFromContext(ctx)))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a note
// @Tags        Notes
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Note ID"
// @Success     200 {object} noteItemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	n, err := h.uc.Detail(ctx, scope.GetUserIDFromContext(ctx), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, noteItemResp{Note: newNoteResp(n)})
}

// Update godoc
// @Summary     Update a note
// @Description Omitted fields keep their value; an empty task_id detaches the note.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Note ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} noteItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	n, err := h.uc.Update(ctx, req.toInput(scope.GetUserIDFromContext(ctx)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, noteItemResp{Note: newNoteResp(n)})
}

// Delete godoc
// @Summary     Delete a note
// @Tags        Notes
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Note ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, scope.GetUserIDFromContext(ctx), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}
