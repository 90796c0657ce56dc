package skill

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is assigned to skills first seen through the recruiting feed.
const DefaultCategory = "General"

type Skill struct {
	ID        uuid.UUID
	Name      string
	Category  string
	CreatedAt time.Time
}
