package usecase

import (
	"context"

	"github.com/google/uuid"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/note/repository"
)

// memRepo is an in-memory note store for tests.
type memRepo struct {
	notes map[string]model.Note
	err   error
	calls int
}

func newMemRepo(notes ...model.Note) *memRepo {
	m := &memRepo{notes: make(map[string]model.Note)}
	for _, n := range notes {
		m.notes[n.ID] = n
	}
	return m
}

func (m *memRepo) CreateNote(_ context.Context, opt repository.CreateNoteOptions) (model.Note, error) {
	m.calls++
	if m.err != nil {
		return model.Note{}, m.err
	}
	n := model.Note{ID: uuid.NewString(), UserID: opt.UserID, Title: opt.Title, Content: opt.Content, TaskID: opt.TaskID}
	m.notes[n.ID] = n
	return n, nil
}

func (m *memRepo) GetOneNote(_ context.Context, opt repository.GetOneNoteOptions) (model.Note, error) {
	m.calls++
	if m.err != nil {
		return model.Note{}, m.err
	}
	n, ok := m.notes[opt.ID]
	if !ok || n.UserID != opt.UserID {
		return model.Note{}, nil
	}
	return n, nil
}

func (m *memRepo) ListNotes(_ context.Context, opt repository.ListNotesOptions) ([]model.Note, int, error) {
	m.calls++
	if m.err != nil {
		return nil, 0, m.err
	}
	var out []model.Note
	for _, n := range m.notes {
		if n.UserID == opt.UserID && (opt.TaskID == "" || n.TaskID == opt.TaskID) {
			out = append(out, n)
		}
	}
	return out, len(out), nil
}

func (m *memRepo) ListNotesByIDs(_ context.Context, opt repository.ListNotesByIDsOptions) ([]model.Note, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Note
	for _, id := range opt.IDs {
		if n, ok := m.notes[id]; ok && n.UserID == opt.UserID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memRepo) UpdateNote(_ context.Context, opt repository.UpdateNoteOptions) (model.Note, error) {
	m.calls++
	if m.err != nil {
		return model.Note{}, m.err
	}
	n, ok := m.notes[opt.ID]
	if !ok || n.UserID != opt.UserID {
		return model.Note{}, nil
	}
	n.Title, n.Content, n.TaskID = opt.Title, opt.Content, opt.TaskID
	m.notes[n.ID] = n
	return n, nil
}

func (m *memRepo) DeleteNote(_ context.Context, opt repository.DeleteNoteOptions) (bool, error) {
	m.calls++
	if m.err != nil {
		return false, m.err
	}
	n, ok := m.notes[opt.ID]
	if !ok || n.UserID != opt.UserID {
		return false, nil
	}
	delete(m.notes, opt.ID)
	return true, nil
}
