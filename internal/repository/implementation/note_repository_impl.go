package implementation

import (
	"context"
	"errors"
	"time"

	"notes-be/internal/entity"
	"notes-be/internal/mapper"
	"notes-be/internal/model"
	"notes-be/internal/repository/contract"
	"notes-be/internal/repository/specification"
	"notes-be/internal/repository/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, contract.MalformedID(id, err)
	}
	return uid, nil
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	m.Id = uuid.New()
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	// postgres keeps microseconds
	m.Date = m.Date.UTC().Truncate(time.Microsecond)
	if err := validation.Struct(m); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	id, err := parseID(string(note.Id))
	if err != nil {
		return nil, err
	}

	var m model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	m.Content = note.Content
	m.Important = note.Important
	if err := validation.Struct(&m); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// Delete soft-deletes the row. A malformed id cannot match a row, so it
// succeeds like any other absent id.
func (r *NoteRepositoryImpl) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&model.Note{}, "id = ?", uid).Error
}

func (r *NoteRepositoryImpl) FindById(ctx context.Context, id string) (*entity.Note, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var m model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: uid})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Note, error) {
	var models []*model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specification.OrderBy{Field: "date"})
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
