package jobs

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fauzanakmal/travel_agency/database"
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

func expectExpiredDraftScan(mock sqlmock.Sqlmock, bookingID, userID, departureID uuid.UUID) {
	mock.ExpectQuery(`SELECT \* FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "code", "user_id", "departure_id", "status", "total_pilgrims", "expires_at"}).
			AddRow(bookingID.String(), "TRV-SWEEPTST", userID.String(), departureID.String(), "draft", 4, time.Now().Add(-time.Hour)))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email"}).
			AddRow(userID.String(), "Ahmad Fauzi", "ahmad@example.com"))
}

// A draft that gets a payment between the scan and the status update must
// keep its seats: the cancel matches 0 rows, so no quota goes back.
func TestSweepExpiredDraftsSkipsRestoreWhenPaymentRaced(t *testing.T) {
	mock := newMockDB(t)
	expectExpiredDraftScan(mock, uuid.New(), uuid.New(), uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	SweepExpiredDrafts()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSweepExpiredDraftsRestoresQuota(t *testing.T) {
	mock := newMockDB(t)
	expectExpiredDraftScan(mock, uuid.New(), uuid.New(), uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "departures" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	SweepExpiredDrafts()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
