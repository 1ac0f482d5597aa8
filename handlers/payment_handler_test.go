package handlers

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fauzanakmal/travel_agency/database"
	"github.com/fauzanakmal/travel_agency/models"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open gorm over sqlmock: %v", err)
	}

	orig := database.DB
	database.DB = gormDB
	t.Cleanup(func() {
		database.DB = orig
		sqlDB.Close()
	})
	return mock
}

// Two submissions racing past the unlocked fast path must not both create a
// pending payment: the locked re-check inside the transaction rejects the
// second one.
func TestRecordPaymentBlocksConcurrentPending(t *testing.T) {
	mock := newMockDB(t)
	bookingID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bookings".*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow(bookingID.String(), "waiting_payment"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	booking := &models.Booking{ID: bookingID, Status: "waiting_payment"}
	payment := &models.Payment{
		BookingID:   bookingID,
		Amount:      10_000_000,
		PaymentType: "dp",
		Status:      "pending",
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return recordPayment(tx, booking, payment)
	})
	if !errors.Is(err, errPendingPayment) {
		t.Fatalf("error = %v, want errPendingPayment", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
