package repo

import (
	"context"
	"errors"
	"time"

	"notedeck/app/dto"
	"notedeck/app/models"

	"gorm.io/gorm"
)

// newestFirst orders by creation time; id breaks ties for notes created
// within the same second (epoch-second storage).
const newestFirst = "notes.created_at DESC, notes.id DESC"

type NoteRepository struct{ db *gorm.DB }

func NewNoteRepository(db *gorm.DB) *NoteRepository { return &NoteRepository{db: db} }

// Create inserts the note with a server-assigned timestamp. Whatever the
// caller put in CreatedAt is overwritten here.
func (r *NoteRepository) Create(ctx context.Context, n *models.Note) error {
	n.CreatedAt = time.Now()
	if err := r.db.WithContext(ctx).Omit("User").Create(n).Error; err != nil {
		return translate("create note", "notes", err)
	}
	return nil
}

// FindByID returns (nil, nil) when no note has the given id.
func (r *NoteRepository) FindByID(ctx context.Context, id uint) (*models.Note, error) {
	var n models.Note
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translate("find note by id", "notes", err)
	}
	return &n, nil
}

func (r *NoteRepository) ListAll(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.WithContext(ctx).Find(&notes).Error; err != nil {
		return nil, translate("list notes", "notes", err)
	}
	return notes, nil
}

// ListByUserID returns an empty slice both for a user without notes and for
// an unknown user.
func (r *NoteRepository) ListByUserID(ctx context.Context, userID uint) ([]models.Note, error) {
	notes := []models.Note{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&notes).Error; err != nil {
		return nil, translate("list notes by user", "notes", err)
	}
	return notes, nil
}

// Update applies the non-nil fields of the patch and returns the updated row,
// or (nil, nil) when the id does not exist. created_at is never touched.
func (r *NoteRepository) Update(ctx context.Context, id uint, patch dto.NotePatch) (*models.Note, error) {
	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.IsImportant != nil {
		updates["is_important"] = *patch.IsImportant
	}
	if patch.UserID != nil {
		updates["user_id"] = *patch.UserID
	}

	existing, err := r.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	if len(updates) == 0 {
		return existing, nil
	}
	if err := r.db.WithContext(ctx).Model(existing).Omit("User").Updates(updates).Error; err != nil {
		return nil, translate("update note", "notes", err)
	}
	return r.FindByID(ctx, id)
}

// Delete removes the note and returns the deleted row, or (nil, nil) when the
// id does not exist.
func (r *NoteRepository) Delete(ctx context.Context, id uint) (*models.Note, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Note{}, id).Error; err != nil {
		return nil, translate("delete note", "notes", err)
	}
	return existing, nil
}

// DeleteByUserID bulk-deletes a user's notes and reports how many went away.
func (r *NoteRepository) DeleteByUserID(ctx context.Context, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Note{})
	if res.Error != nil {
		return 0, translate("delete notes by user", "notes", res.Error)
	}
	return res.RowsAffected, nil
}

// Search filters by title substring and/or importance; both filters empty
// means every note. Results come back newest first.
//
// Substring matching uses LIKE, so case sensitivity is the engine's: SQLite
// is case-insensitive for ASCII unless search.case_sensitive flips the
// case_sensitive_like pragma at connect time.
func (r *NoteRepository) Search(ctx context.Context, title string, importantOnly bool) ([]models.Note, error) {
	q := r.db.WithContext(ctx).Model(&models.Note{})
	if title != "" {
		q = q.Where("title LIKE ?", "%"+title+"%")
	}
	if importantOnly {
		q = q.Where("is_important = ?", true)
	}
	notes := []models.Note{}
	if err := q.Order(newestFirst).Find(&notes).Error; err != nil {
		return nil, translate("search notes", "notes", err)
	}
	return notes, nil
}

// Paginated returns one page of notes (newest first) and the unfiltered total
// count. page is 1-indexed; a page past the end yields an empty slice.
func (r *NoteRepository) Paginated(ctx context.Context, page, limit int) ([]models.Note, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Note{}).Count(&total).Error; err != nil {
		return nil, 0, translate("count notes", "notes", err)
	}
	notes := []models.Note{}
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).Order(newestFirst).Offset(offset).Limit(limit).Find(&notes).Error; err != nil {
		return nil, 0, translate("paginate notes", "notes", err)
	}
	return notes, total, nil
}

// ListWithUsers returns notes newest first with the owning user loaded
// through an inner join; a note without a matching user is excluded, which
// the foreign key makes impossible anyway.
func (r *NoteRepository) ListWithUsers(ctx context.Context) ([]models.Note, error) {
	notes := []models.Note{}
	if err := r.db.WithContext(ctx).InnerJoins("User").Order(newestFirst).Find(&notes).Error; err != nil {
		return nil, translate("list notes with users", "notes", err)
	}
	return notes, nil
}
