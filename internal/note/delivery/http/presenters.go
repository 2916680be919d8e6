package http

import (
	"time"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/note"
)

type createReq struct {
	Title   string `json:"title"   binding:"required,max=255"`
	Content string `json:"content"`
	TaskID  string `json:"task_id"`
}

func (r createReq) toInput(userID string) note.CreateInput {
	return note.CreateInput{UserID: userID, Title: r.Title, Content: r.Content, TaskID: r.TaskID}
}

type listReq struct {
	TaskID string `form:"task_id"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput(userID string) note.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return note.ListInput{UserID: userID, TaskID: r.TaskID, Limit: limit, Offset: max(r.Offset, 0)}
}

// updateReq uses pointers so an omitted field keeps its stored value.
type updateReq struct {
	ID      string  `json:"-"`
	Title   *string `json:"title"   binding:"omitempty,max=255"`
	Content *string `json:"content"`
	TaskID  *string `json:"task_id"`
}

func (r updateReq) toInput(userID string) note.UpdateInput {
	return note.UpdateInput{UserID: userID, ID: r.ID, Title: r.Title, Content: r.Content, TaskID: r.TaskID}
}

type noteResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	TaskID    string    `json:"task_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newNoteResp(n model.Note) noteResp {
	return noteResp{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		TaskID:    n.TaskID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

type noteItemResp struct {
	Note noteResp `json:"note"`
}

type listResp struct {
	Notes  []noteResp `json:"notes"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out note.ListOutput) listResp {
	notes := make([]noteResp, len(out.Notes))
	for i, n := range out.Notes {
		notes[i] = newNoteResp(n)
	}
	return listResp{Notes: notes, Total: out.Total, Limit: out.Limit, Offset: out.Offset}
}
