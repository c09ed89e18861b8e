package services

import (
	"context"

	"notedeck/app/dto"
	"notedeck/app/models"
	"notedeck/app/repo"
)

const defaultPageSize = 10

type NoteService struct{ notes *repo.NoteRepository }

func NewNoteService(notes *repo.NoteRepository) *NoteService {
	return &NoteService{notes: notes}
}

func (s *NoteService) Create(ctx context.Context, req dto.CreateNoteRequest) (*models.Note, error) {
	n := models.Note{Title: req.Title, Content: req.Content, IsImportant: req.IsImportant, UserID: req.UserID}
	if err := s.notes.Create(ctx, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *NoteService) Get(ctx context.Context, id uint) (*models.Note, error) {
	return s.notes.FindByID(ctx, id)
}

func (s *NoteService) List(ctx context.Context) ([]models.Note, error) {
	return s.notes.ListAll(ctx)
}

func (s *NoteService) ListByUser(ctx context.Context, userID uint) ([]models.Note, error) {
	return s.notes.ListByUserID(ctx, userID)
}

func (s *NoteService) Update(ctx context.Context, id uint, patch dto.NotePatch) (*models.Note, error) {
	return s.notes.Update(ctx, id, patch)
}

func (s *NoteService) Delete(ctx context.Context, id uint) (*models.Note, error) {
	return s.notes.Delete(ctx, id)
}

func (s *NoteService) DeleteByUser(ctx context.Context, userID uint) (int64, error) {
	return s.notes.DeleteByUserID(ctx, userID)
}

// Search combines a title substring filter and an importance filter with AND;
// both inactive returns every note, newest first.
func (s *NoteService) Search(ctx context.Context, title string, importantOnly bool) ([]models.Note, error) {
	return s.notes.Search(ctx, title, importantOnly)
}

// Paginated returns the requested 1-indexed page. Out-of-range input is
// clamped rather than rejected: page below 1 becomes 1, a non-positive limit
// becomes the default page size. A page past the end is empty data with
// valid metadata.
func (s *NoteService) Paginated(ctx context.Context, page, limit int) (*dto.NotePage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	notes, total, err := s.notes.Paginated(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return &dto.NotePage{Data: notes, Page: page, Limit: limit, Total: total, Pages: pages}, nil
}

// WithUsers lists every note paired with its owner, newest first. The user
// side carries only id and username; the password never leaves this shape.
func (s *NoteService) WithUsers(ctx context.Context) ([]dto.NoteWithUser, error) {
	notes, err := s.notes.ListWithUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NoteWithUser, 0, len(notes))
	for _, n := range notes {
		owner := dto.UserSummary{ID: n.User.ID, Username: n.User.Username}
		n.User = models.User{}
		out = append(out, dto.NoteWithUser{Note: n, User: owner})
	}
	return out, nil
}
