package http

import (
	"smart-daily-planner/internal/coach"
	"smart-daily-planner/internal/insight"
	"smart-daily-planner/internal/model"
)

type summarizeReq struct {
	NoteIDs []string `json:"note_ids" binding:"required,min=1,max=20"`
}

func (r summarizeReq) toInput(userID string) insight.SummarizeInput {
	return insight.SummarizeInput{UserID: userID, NoteIDs: r.NoteIDs}
}

type adviseTaskReq struct {
	Title    string           `json:"title" binding:"required"`
	Priority model.Priority   `json:"priority"`
	Status   model.TaskStatus `json:"status"`
	DueDate  string           `json:"due_date"`
}

type adviseNoteReq struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// adviseReq may be empty. Signed-in callers then get their stored tasks and
// notes.
type adviseReq struct {
	Tasks []adviseTaskReq `json:"tasks" binding:"max=100,dive"`
	Notes []adviseNoteReq `json:"notes" binding:"max=20,dive"`
}

func (r adviseReq) toInput(userID string) insight.AdviseInput {
	in := insight.AdviseInput{UserID: userID}
	for _, t := range r.Tasks {
		in.Tasks = append(in.Tasks, coach.Task{Title: t.Title, Priority: t.Priority, Status: t.Status, DueDate: t.DueDate})
	}
	for _, n := range r.Notes {
		in.Notes = append(in.Notes, coach.Note{Title: n.Title, Content: n.Content})
	}
	return in
}

type summaryResp struct {
	Summary     string       `json:"summary"`
	KeyPoints   []string     `json:"key_points"`
	Connections []string     `json:"connections"`
	Tips        []string     `json:"tips"`
	Source      model.Source `json:"source"`
}

func newSummaryResp(s coach.Summary) summaryResp {
	return summaryResp{
		Summary:     s.Summary,
		KeyPoints:   orEmpty(s.KeyPoints),
		Connections: orEmpty(s.Connections),
		Tips:        orEmpty(s.Tips),
		Source:      s.Source,
	}
}

type adviceResp struct {
	Tips   []string     `json:"tips"`
	Source model.Source `json:"source"`
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
