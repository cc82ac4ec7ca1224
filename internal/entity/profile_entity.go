// FILE: internal/entity/profile_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	Id        uuid.UUID
	Email     string
	FirstName *string
	LastName  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
