package main

import (
	"log"
	"time"

	"payment-dashboard-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func strPtr(s string) *string {
	return &s
}

// SeedPayments populates the database with sample profiles and transactions
// covering every status bucket, an orphaned payment and an NGN row.
func SeedPayments(db *gorm.DB) {
	ada := model.Profile{
		Id:        uuid.New(),
		Email:     "ada.obi@example.com",
		FirstName: strPtr("Ada"),
		LastName:  strPtr("Obi"),
	}
	john := model.Profile{
		Id:    uuid.New(),
		Email: "john.okafor@example.com",
	}

	for _, p := range []model.Profile{ada, john} {
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Warn: Failed to seed profile %s: %v", p.Email, err)
		}
	}

	now := time.Now()
	payments := []model.Payment{
		{
			Id:               uuid.New(),
			Amount:           15000,
			Status:           "paid",
			PaymentMethod:    "card",
			TransactionId:    strPtr("TXN-0001"),
			PaymentReference: strPtr("ref_9x2ka01"),
			PaymentProvider:  strPtr("paystack"),
			Currency:         "NGN",
			UserId:           &ada.Id,
			CreatedAt:        now.Add(-1 * time.Hour),
		},
		{
			Id:            uuid.New(),
			Amount:        49.99,
			Status:        "Pending",
			PaymentMethod: "bank_transfer",
			TransactionId: strPtr("TXN-0002"),
			Currency:      "USD",
			UserId:        &john.Id,
			CreatedAt:     now.Add(-2 * time.Hour),
		},
		{
			Id:               uuid.New(),
			Amount:           25,
			Status:           "failed",
			PaymentMethod:    "card",
			TransactionId:    strPtr("TXN-0003"),
			PaymentReference: strPtr("ref_m31bb77"),
			PaymentProvider:  strPtr("paystack"),
			Currency:         "USD",
			UserId:           &ada.Id,
			CreatedAt:        now.Add(-3 * time.Hour),
		},
		{
			// Orphaned payment: the owning profile was deleted.
			Id:            uuid.New(),
			Amount:        120,
			Status:        "Completed",
			PaymentMethod: "ussd",
			TransactionId: strPtr("TXN-0004"),
			Currency:      "USD",
			CreatedAt:     now.Add(-26 * time.Hour),
		},
		{
			Id:            uuid.New(),
			Amount:        9.5,
			Status:        "refunded",
			PaymentMethod: "card",
			TransactionId: strPtr("TXN-0005"),
			Currency:      "USD",
			UserId:        &john.Id,
			CreatedAt:     now.Add(-48 * time.Hour),
		},
	}

	seeded := 0
	for _, p := range payments {
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Warn: Failed to seed payment %s: %v", *p.TransactionId, err)
			continue
		}
		seeded++
	}

	log.Printf("✅ Seeded %d payments and 2 profiles", seeded)
}
