package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/note"
	repo "smart-daily-planner/internal/note/repository"
)

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func validate(title, content, taskID string) error {
	if title == "" {
		return note.ErrTitleRequired
	}
	if utf8.RuneCountInString(content) > note.MaxContentLength {
		return note.ErrContentTooLong
	}
	if taskID != "" && !validID(taskID) {
		return note.ErrInvalidTaskID
	}
	return nil
}

func (uc *implUseCase) Create(ctx context.Context, input note.CreateInput) (model.Note, error) {
	if input.UserID == "" {
		return model.Note{}, note.ErrUnauthorized
	}
	title := strings.TrimSpace(input.Title)
	if err := validate(title, input.Content, input.TaskID); err != nil {
		return model.Note{}, err
	}

	n, err := uc.repo.CreateNote(ctx, repo.CreateNoteOptions{
		UserID:  input.UserID,
		Title:   title,
		Content: input.Content,
		TaskID:  input.TaskID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateNote: %v", err)
		return model.Note{}, err
	}
	return n, nil
}

func (uc *implUseCase) List(ctx context.Context, input note.ListInput) (note.ListOutput, error) {
	if input.UserID == "" {
		return note.ListOutput{}, note.ErrUnauthorized
	}
	if input.TaskID != "" && !validID(input.TaskID) {
		return note.ListOutput{}, note.ErrInvalidTaskID
	}

	notes, total, err := uc.repo.ListNotes(ctx, repo.ListNotesOptions{
		UserID: input.UserID,
		TaskID: input.TaskID,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListNotes: %v", err)
		return note.ListOutput{}, err
	}
	return note.ListOutput{Notes: notes, Total: total, Limit: input.Limit, Offset: input.Offset}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, userID, id string) (model.Note, error) {
	if userID == "" {
		return model.Note{}, note.ErrUnauthorized
	}
	if !validID(id) {
		return model.Note{}, note.ErrNoteNotFound
	}
	n, err := uc.repo.GetOneNote(ctx, repo.GetOneNoteOptions{ID: id, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneNote: %v", err)
		return model.Note{}, err
	}
	if n.ID == "" {
		return model.Note{}, note.ErrNoteNotFound
	}
	return n, nil
}

func (uc *implUseCase) Update(ctx context.Context, input note.UpdateInput) (model.Note, error) {
	existing, err := uc.Detail(ctx, input.UserID, input.ID)
	if err != nil {
		return model.Note{}, err
	}

	opt := repo.UpdateNoteOptions{
		ID:      existing.ID,
		UserID:  input.UserID,
		Title:   existing.Title,
		Content: existing.Content,
		TaskID:  existing.TaskID,
	}
	if input.Title != nil {
		opt.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		opt.Content = *input.Content
	}
	if input.TaskID != nil {
		opt.TaskID = *input.TaskID
	}
	if err := validate(opt.Title, opt.Content, opt.TaskID); err != nil {
		return model.Note{}, err
	}

	n, err := uc.repo.UpdateNote(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateNote: %v", err)
		return model.Note{}, err
	}
	if n.ID == "" {
		return model.Note{}, note.ErrNoteNotFound
	}
	return n, nil
}

func (uc *implUseCase) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return note.ErrUnauthorized
	}
	if !validID(id) {
		return note.ErrNoteNotFound
	}
	deleted, err := uc.repo.DeleteNote(ctx, repo.DeleteNoteOptions{ID: id, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteNote: %v", err)
		return err
	}
	if !deleted {
		return note.ErrNoteNotFound
	}
	return nil
}

func (uc *implUseCase) GetByIDs(ctx context.Context, userID string, ids []string) ([]model.Note, error) {
	if userID == "" {
		return nil, note.ErrUnauthorized
	}
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if validID(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return []model.Note{}, nil
	}

	found, err := uc.repo.ListNotesByIDs(ctx, repo.ListNotesByIDsOptions{UserID: userID, IDs: valid})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetByIDs ListNotesByIDs: %v", err)
		return nil, err
	}

	byID := make(map[string]model.Note, len(found))
	for _, n := range found {
		byID[n.ID] = n
	}
	out := make([]model.Note, 0, len(valid))
	seen := make(map[string]bool, len(valid))
	for _, id := range valid {
		n, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, n)
	}
	return out, nil
}
