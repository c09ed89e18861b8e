package services

import (
	"context"

	"notedeck/app/dto"
	"notedeck/app/models"
	"notedeck/app/repo"
)

type UserService struct {
	users *repo.UserRepository
	notes *repo.NoteRepository
}

func NewUserService(users *repo.UserRepository, notes *repo.NoteRepository) *UserService {
	return &UserService{users: users, notes: notes}
}

func (s *UserService) Create(ctx context.Context, username, password string) (*models.User, error) {
	u := models.User{Username: username, Password: password}
	if err := s.users.Create(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.ListAll(ctx)
}

func (s *UserService) Update(ctx context.Context, id uint, patch dto.UserPatch) (*models.User, error) {
	return s.users.Update(ctx, id, patch)
}

// Delete removes the user; the store cascades the user's notes away.
func (s *UserService) Delete(ctx context.Context, id uint) (*models.User, error) {
	return s.users.Delete(ctx, id)
}

// WithNotes returns the user together with all their notes and counts derived
// from that list. Returns (nil, nil) for an unknown user.
func (s *UserService) WithNotes(ctx context.Context, id uint) (*dto.UserWithNotes, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	notes, err := s.notes.ListByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	stats := dto.NoteStats{TotalNotes: len(notes)}
	for _, n := range notes {
		if n.IsImportant {
			stats.ImportantNotes++
		}
	}
	return &dto.UserWithNotes{User: *u, Notes: notes, Stats: stats}, nil
}
