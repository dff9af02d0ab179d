package memory

import (
	"time"

	"notes-be/internal/entity"
)

// SampleNotes returns the notes a fresh demo instance starts with.
func SampleNotes() []entity.Note {
	return []entity.Note{
		{
			Id:        entity.NoteIDFromInt(1),
			Content:   "HTML is easy",
			Date:      time.Date(2022, 5, 30, 17, 30, 31, 98_000_000, time.UTC),
			Important: true,
		},
		{
			Id:        entity.NoteIDFromInt(2),
			Content:   "Browser can execute only Javascript",
			Date:      time.Date(2022, 5, 30, 18, 39, 34, 91_000_000, time.UTC),
			Important: false,
		},
		{
			Id:        entity.NoteIDFromInt(3),
			Content:   "GET and POST are the most important methods of HTTP protocol",
			Date:      time.Date(2022, 5, 30, 19, 20, 14, 298_000_000, time.UTC),
			Important: true,
		},
	}
}
