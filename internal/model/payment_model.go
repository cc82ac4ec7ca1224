package model

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Amount           float64    `gorm:"type:numeric;not null;default:0"`
	Status           string     `gorm:"type:varchar(50);not null;index"`
	PaymentMethod    string     `gorm:"type:varchar(100)"`
	TransactionId    *string    `gorm:"type:varchar(255)"`
	PaymentReference *string    `gorm:"type:varchar(255);index"`
	PaymentProvider  *string    `gorm:"type:varchar(100)"`
	Currency         string     `gorm:"type:varchar(10)"`
	UserId           *uuid.UUID `gorm:"type:uuid;index"`
	Profile          *Profile   `gorm:"foreignKey:UserId;references:Id"`
	CreatedAt        time.Time  `gorm:"autoCreateTime;index:idx_payments_created_at,sort:desc"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime"`
}

func (Payment) TableName() string {
	return "payments"
}
