package entity

import (
	"time"

	"github.com/google/uuid"
)

// Plant is a read-only entry of the herbal catalog.
type Plant struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ScientificName string    `json:"scientific_name"`
	Description    string    `json:"description"`
	Uses           []string  `json:"uses"`
	CreatedAt      time.Time `json:"created_at"`
}
