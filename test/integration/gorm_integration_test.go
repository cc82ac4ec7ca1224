package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"payment-dashboard-be/internal/entity"
	"payment-dashboard-be/internal/repository/specification"
	"payment-dashboard-be/internal/repository/unitofwork"
	"payment-dashboard-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.PaymentRepository())
	assert.NotNil(t, uow.ProfileRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Payment Repository", func(t *testing.T) {
		count, err := uow.PaymentRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Payment count: %d", count)
	})

	t.Run("Check Profile Repository", func(t *testing.T) {
		count, err := uow.ProfileRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Profile count: %d", count)
	})

	t.Run("Check Payment With Profile Join", func(t *testing.T) {
		ctx := context.Background()

		profileId := uuid.New()
		profile := &entity.Profile{
			Id:        profileId,
			Email:     "test-integration-" + uuid.New().String() + "@example.com",
			FirstName: strPtr("Integration"),
			LastName:  strPtr("Test"),
		}

		err := uow.ProfileRepository().Create(ctx, profile)
		assert.NoError(t, err)

		// Transaction Test
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		paymentId := uuid.New()
		payment := &entity.Payment{
			Id:            paymentId,
			Amount:        42.5,
			Status:        "paid",
			PaymentMethod: "card",
			TransactionId: strPtr("TXN-IT-" + uuid.New().String()),
			Currency:      "USD",
			UserId:        &profileId,
		}

		err = uow.PaymentRepository().Create(ctx, payment)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		// Read it back with the join preloaded
		found, err := uow.PaymentRepository().FindOne(context.Background(), specification.ByID{ID: paymentId})
		assert.NoError(t, err)
		assert.NotNil(t, found)
		if found != nil {
			assert.NotNil(t, found.Profile)
			if found.Profile != nil {
				assert.Equal(t, profile.Email, found.Profile.Email)
			}
		}

		t.Log("Successfully created Payment with Profile in Transaction")
	})

	t.Run("Check Newest First Ordering", func(t *testing.T) {
		payments, err := uow.PaymentRepository().FindAll(context.Background(), specification.NewestFirst{})
		assert.NoError(t, err)
		for i := 1; i < len(payments); i++ {
			assert.False(t, payments[i].CreatedAt.After(payments[i-1].CreatedAt))
		}
	})
}
