package mapper

import (
	"time"

	"notes-be/internal/dto"
	"notes-be/internal/entity"
	"notes-be/internal/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	return &entity.Note{
		Id:        entity.NoteID(n.Id.String()),
		Content:   n.Content,
		Important: n.Important,
		Date:      n.Date,
		UpdatedAt: updatedAt,
	}
}

// ToModel expects a note whose id is empty or a valid UUID.
func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	var id uuid.UUID
	if n.Id != "" {
		id, _ = uuid.Parse(string(n.Id))
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	return &model.Note{
		Id:        id,
		Content:   n.Content,
		Important: n.Important,
		Date:      n.Date,
		UpdatedAt: updatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

func (m *NoteMapper) DocumentToEntity(d *model.NoteDocument) *entity.Note {
	if d == nil {
		return nil
	}
	return &entity.Note{
		Id:        entity.NoteID(d.ID.Hex()),
		Content:   d.Content,
		Important: d.Important,
		Date:      d.Date,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDocument expects a note whose id is empty or valid ObjectID hex.
func (m *NoteMapper) ToDocument(n *entity.Note) *model.NoteDocument {
	if n == nil {
		return nil
	}

	var id bson.ObjectID
	if n.Id != "" {
		id, _ = bson.ObjectIDFromHex(string(n.Id))
	}

	return &model.NoteDocument{
		ID:        id,
		Content:   n.Content,
		Important: n.Important,
		Date:      n.Date,
		UpdatedAt: n.UpdatedAt,
	}
}

func (m *NoteMapper) DocumentsToEntities(docs []*model.NoteDocument) []*entity.Note {
	entities := make([]*entity.Note, len(docs))
	for i, d := range docs {
		entities[i] = m.DocumentToEntity(d)
	}
	return entities
}

func (m *NoteMapper) ToResponse(n *entity.Note) *dto.NoteResponse {
	if n == nil {
		return nil
	}
	return &dto.NoteResponse{
		Id:        n.Id,
		Content:   n.Content,
		Important: n.Important,
		Date:      n.Date,
	}
}

func (m *NoteMapper) ToResponses(notes []*entity.Note) []*dto.NoteResponse {
	res := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		res[i] = m.ToResponse(n)
	}
	return res
}
