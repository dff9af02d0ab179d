package entity

import (
	"time"
)

type Note struct {
	Id        NoteID
	Content   string
	Important bool
	Date      time.Time
	UpdatedAt *time.Time
}
