package cache

import (
	"context"
	"encoding/json"
	"time"

	"notes-be/internal/entity"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/repository/contract"
)

const keyPrefix = "note:"

var _ contract.NoteRepository = (*NoteRepository)(nil)

// NoteRepository serves FindById from a Backend and keeps it in step with
// updates and deletes. Backend failures are logged and fall through to the
// wrapped store.
type NoteRepository struct {
	next    contract.NoteRepository
	backend Backend
	ttl     time.Duration
	logger  logger.ILogger
}

func NewNoteRepository(next contract.NoteRepository, backend Backend, ttl time.Duration, log logger.ILogger) *NoteRepository {
	return &NoteRepository{
		next:    next,
		backend: backend,
		ttl:     ttl,
		logger:  log,
	}
}

func key(id string) string {
	return keyPrefix + id
}

func (r *NoteRepository) store(ctx context.Context, note *entity.Note) {
	data, err := json.Marshal(note)
	if err != nil {
		return
	}
	if err := r.backend.Set(ctx, key(string(note.Id)), data, r.ttl); err != nil {
		r.logger.Warn("Cache", "Failed to store note", map[string]interface{}{"id": note.Id, "error": err.Error()})
	}
}

func (r *NoteRepository) evict(ctx context.Context, id string) {
	if err := r.backend.Delete(ctx, key(id)); err != nil {
		r.logger.Warn("Cache", "Failed to evict note", map[string]interface{}{"id": id, "error": err.Error()})
	}
}

func (r *NoteRepository) Create(ctx context.Context, note *entity.Note) error {
	if err := r.next.Create(ctx, note); err != nil {
		return err
	}
	// sequential stores may hand out an id that was cached before a delete
	r.evict(ctx, string(note.Id))
	return nil
}

func (r *NoteRepository) Update(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	updated, err := r.next.Update(ctx, note)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		r.evict(ctx, string(note.Id))
		return nil, nil
	}
	r.store(ctx, updated)
	return updated, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *NoteRepository) FindById(ctx context.Context, id string) (*entity.Note, error) {
	data, found, err := r.backend.Get(ctx, key(id))
	if err != nil {
		r.logger.Warn("Cache", "Failed to read note", map[string]interface{}{"id": id, "error": err.Error()})
	}
	if found {
		var note entity.Note
		if err := json.Unmarshal(data, &note); err == nil {
			return &note, nil
		}
		r.evict(ctx, id)
	}

	note, err := r.next.FindById(ctx, id)
	if err != nil || note == nil {
		return note, err
	}
	r.store(ctx, note)
	return note, nil
}

func (r *NoteRepository) FindAll(ctx context.Context) ([]*entity.Note, error) {
	return r.next.FindAll(ctx)
}
