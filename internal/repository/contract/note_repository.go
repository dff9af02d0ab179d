package contract

import (
	"context"

	"notes-be/internal/entity"
)

// NoteRepository is implemented by every note store. Lookups report an
// absent note as (nil, nil); Delete succeeds whether or not the note exists.
type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) (*entity.Note, error)
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*entity.Note, error)
	FindAll(ctx context.Context) ([]*entity.Note, error)
}
