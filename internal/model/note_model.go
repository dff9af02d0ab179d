package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Note struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content   string         `gorm:"type:text;not null" validate:"required,min=5"`
	Important bool           `gorm:"not null;default:false"`
	Date      time.Time      `gorm:"not null;index"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Note) TableName() string {
	return "notes"
}
