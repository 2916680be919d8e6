package http

import (
	"time"

	"smart-daily-planner/internal/fixedschedule"
	"smart-daily-planner/internal/model"
)

// --- Request DTOs ---

type fieldsReq struct {
	Title         string `json:"title"          binding:"required,min=1,max=255"`
	Description   string `json:"description"    binding:"max=2000"`
	StartTime     string `json:"start_time"     binding:"required"`
	EndTime       string `json:"end_time"       binding:"required"`
	DaysOfWeek    []int  `json:"days_of_week"   binding:"required,min=1"`
	IsRecurring   *bool  `json:"is_recurring"`
	PriorityLevel int    `json:"priority_level" binding:"omitempty,min=1,max=3"`
	IsMovable     bool   `json:"is_movable"`
}

func (r fieldsReq) toFields() fixedschedule.Fields {
	recurring := true
	if r.IsRecurring != nil {
		recurring = *r.IsRecurring
	}
	return fixedschedule.Fields{
		Title:         r.Title,
		Description:   r.Description,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		DaysOfWeek:    r.DaysOfWeek,
		IsRecurring:   recurring,
		PriorityLevel: r.PriorityLevel,
		IsMovable:     r.IsMovable,
	}
}

type createReq struct {
	fieldsReq
}

func (r createReq) toInput(userID string) fixedschedule.CreateInput {
	return fixedschedule.CreateInput{UserID: userID, Fields: r.toFields()}
}

type listReq struct {
	Weekday *int `form:"weekday" binding:"omitempty,min=0,max=6"`
}

func (r listReq) toInput(userID string) fixedschedule.ListInput {
	return fixedschedule.ListInput{UserID: userID, Weekday: r.Weekday}
}

type updateReq struct {
	ID string `json:"-"`
	fieldsReq
}

func (r updateReq) validate() error {
	if r.ID == "" {
		return errIDRequired
	}
	return nil
}

func (r updateReq) toInput(userID string) fixedschedule.UpdateInput {
	return fixedschedule.UpdateInput{UserID: userID, ID: r.ID, Fields: r.toFields()}
}

// --- Response DTOs ---

type fixedResp struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	DaysOfWeek    []int     `json:"days_of_week"`
	IsRecurring   bool      `json:"is_recurring"`
	PriorityLevel int       `json:"priority_level"`
	IsMovable     bool      `json:"is_movable"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newFixedResp(f model.FixedSchedule) fixedResp {
	return fixedResp{
		ID:            f.ID,
		Title:         f.Title,
		Description:   f.Description,
		StartTime:     f.StartTime,
		EndTime:       f.EndTime,
		DaysOfWeek:    f.DaysOfWeek,
		IsRecurring:   f.IsRecurring,
		PriorityLevel: f.PriorityLevel,
		IsMovable:     f.IsMovable,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

type itemResp struct {
	FixedSchedule fixedResp `json:"fixed_schedule"`
}

type listResp struct {
	FixedSchedules []fixedResp `json:"fixed_schedules"`
}

func (h *handler) newListResp(list []model.FixedSchedule) listResp {
	out := make([]fixedResp, len(list))
	for i, f := range list {
		out[i] = newFixedResp(f)
	}
	return listResp{FixedSchedules: out}
}
