package memory

import (
	"context"
	"sync"
	"time"

	"notes-be/internal/entity"
	"notes-be/internal/repository/contract"
)

var _ contract.NoteRepository = (*NoteRepository)(nil)

// NoteRepository keeps notes in insertion order and assigns sequential
// integer ids. All writes, id assignment included, hold the write lock.
type NoteRepository struct {
	mu    sync.RWMutex
	notes []entity.Note
}

func NewNoteRepository(seed ...entity.Note) *NoteRepository {
	notes := make([]entity.Note, len(seed))
	copy(notes, seed)
	return &NoteRepository{notes: notes}
}

// nextId must be called with the write lock held.
func (r *NoteRepository) nextId() int64 {
	var maxId int64
	for _, n := range r.notes {
		if v, ok := n.Id.Int(); ok && v > maxId {
			maxId = v
		}
	}
	return maxId + 1
}

func (r *NoteRepository) indexOf(id string) int {
	seq, ok := entity.NoteID(id).Int()
	if !ok {
		return -1
	}
	for i, n := range r.notes {
		if v, ok := n.Id.Int(); ok && v == seq {
			return i
		}
	}
	return -1
}

func (r *NoteRepository) Create(ctx context.Context, note *entity.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	note.Id = entity.NoteIDFromInt(r.nextId())
	if note.Date.IsZero() {
		note.Date = time.Now().UTC().Truncate(time.Millisecond)
	}
	r.notes = append(r.notes, *note)
	return nil
}

func (r *NoteRepository) Update(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(string(note.Id))
	if i < 0 {
		return nil, nil
	}

	now := time.Now()
	stored := &r.notes[i]
	stored.Content = note.Content
	stored.Important = note.Important
	stored.UpdatedAt = &now

	updated := *stored
	return &updated, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		r.notes = append(r.notes[:i], r.notes[i+1:]...)
	}
	return nil
}

// FindById treats an id that is not an integer as absent.
func (r *NoteRepository) FindById(ctx context.Context, id string) (*entity.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	note := r.notes[i]
	return &note, nil
}

func (r *NoteRepository) FindAll(ctx context.Context) ([]*entity.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]*entity.Note, len(r.notes))
	for i := range r.notes {
		note := r.notes[i]
		notes[i] = &note
	}
	return notes, nil
}
