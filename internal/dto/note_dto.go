package dto

import (
	"time"

	"notes-be/internal/entity"
)

type CreateNoteRequest struct {
	Content   string `json:"content" validate:"required"`
	Important *bool  `json:"important"`
}

type UpdateNoteRequest struct {
	Id        string `json:"-"`
	Content   string `json:"content" validate:"required"`
	Important bool   `json:"important"`
}

type NoteResponse struct {
	Id        entity.NoteID `json:"id"`
	Content   string        `json:"content"`
	Important bool          `json:"important"`
	Date      time.Time     `json:"date"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
