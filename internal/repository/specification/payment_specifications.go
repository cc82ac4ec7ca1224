package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(status) = LOWER(?)", s.Status)
}

type ByProvider struct {
	Provider string
}

func (s ByProvider) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("payment_provider = ?", s.Provider)
}

type OwnedBy struct {
	UserID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// NewestFirst is the canonical ordering of the admin transactions table.
type NewestFirst struct{}

func (s NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}
