package employee

import (
	"time"
)

type Employee struct {
	ID         string
	Name       string
	Department string
	Position   string
	CreatedAt  time.Time
}
