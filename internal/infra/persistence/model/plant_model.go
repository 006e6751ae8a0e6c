package model

import (
	"time"

	"github.com/google/uuid"
)

// PlantModel mirrors the 'plants' table. Uses is stored as a JSON array.
type PlantModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"type:text;uniqueIndex;not null"`
	ScientificName string    `gorm:"type:text"`
	Description    string    `gorm:"type:text"`
	Uses           []string  `gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlantModel) TableName() string {
	return "plants"
}
