package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"guesthouse/infras/otel/mocks"
	"guesthouse/infras/postgres"
	"guesthouse/internal/domains/booking/model"
	"guesthouse/internal/domains/booking/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookingID = "6f1c2b1e-8d3a-4e52-9b7d-3c1f0a2b4d5e"

var (
	queryLock    = regexp.QuoteMeta(`SELECT pg_advisory_xact_lock(hashtext($1))`)
	queryBooking = `SELECT (.+) FROM room_bookings WHERE room_bookings.id = \$1 FOR UPDATE`
	queryOverlap = `SELECT EXISTS\(\s*SELECT 1 FROM room_bookings`
	queryUpdate  = `UPDATE room_bookings SET (.+) WHERE`
)

func newRepository(t *testing.T) (repository.Booking, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func bookingRows(status string, start, end time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "requester_id", "room_type", "ac", "start_at", "end_at", "status"}).
		AddRow(bookingID, "student-1", "Single", false, start, end, status)
}

func TestBookingRepository_Approve(t *testing.T) {
	start := time.Date(2026, 11, 2, 14, 0, 0, 0, time.UTC)
	end := time.Date(2026, 11, 4, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "assigns free room",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(queryLock).WithArgs("G01").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(queryBooking).WithArgs(bookingID).WillReturnRows(bookingRows(model.StatusPending, start, end))
				mock.ExpectQuery(queryOverlap).
					WithArgs("G01", bookingID, start, end).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec(queryUpdate).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "overlapping approved stay",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(queryLock).WithArgs("G01").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(queryBooking).WithArgs(bookingID).WillReturnRows(bookingRows(model.StatusPending, start, end))
				mock.ExpectQuery(queryOverlap).
					WithArgs("G01", bookingID, start, end).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectRollback()
			},
			wantErr: repository.ErrRoomOccupied,
		},
		{
			name: "exclusion constraint on write",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(queryLock).WithArgs("G01").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(queryBooking).WithArgs(bookingID).WillReturnRows(bookingRows(model.StatusPending, start, end))
				mock.ExpectQuery(queryOverlap).
					WithArgs("G01", bookingID, start, end).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec(queryUpdate).WillReturnError(&pq.Error{Code: "23P01"})
				mock.ExpectRollback()
			},
			wantErr: repository.ErrRoomOccupied,
		},
		{
			name: "booking not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(queryLock).WithArgs("G01").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(queryBooking).WithArgs(bookingID).WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
			},
			wantErr: repository.ErrBookingNotFound,
		},
		{
			name: "booking already rejected",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(queryLock).WithArgs("G01").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(queryBooking).WithArgs(bookingID).WillReturnRows(bookingRows(model.StatusRejected, start, end))
				mock.ExpectRollback()
			},
			wantErr: repository.ErrBookingNotPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)
			tt.setupMock(mock)

			booking, err := repo.Approve(context.Background(), bookingID, "G01", "admin")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, model.StatusApproved, booking.Status)
				require.NotNil(t, booking.AssignedRoomNumber)
				assert.Equal(t, "G01", *booking.AssignedRoomNumber)
				assert.Equal(t, "admin", booking.ModifiedBy)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepository_Reject(t *testing.T) {
	start := time.Date(2026, 11, 2, 14, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	t.Run("pending booking", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(queryBooking).WithArgs(bookingID).WillReturnRows(bookingRows(model.StatusPending, start, end))
		mock.ExpectExec(queryUpdate).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		booking, err := repo.Reject(context.Background(), bookingID, "admin")
		require.NoError(t, err)
		assert.Equal(t, model.StatusRejected, booking.Status)
		assert.Nil(t, booking.AssignedRoomNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already approved", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(queryBooking).WithArgs(bookingID).WillReturnRows(bookingRows(model.StatusApproved, start, end))
		mock.ExpectRollback()

		_, err := repo.Reject(context.Background(), bookingID, "admin")
		assert.ErrorIs(t, err, repository.ErrBookingNotPending)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_BusyRoomNumbers(t *testing.T) {
	repo, mock := newRepository(t)

	interval := model.Interval{
		Start: time.Date(2026, 11, 2, 14, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 11, 3, 11, 0, 0, 0, time.UTC),
	}

	mock.ExpectPrepare(`SELECT DISTINCT room_bookings.assigned_room_number FROM room_bookings\s+WHERE (.+)room_bookings.start_at < (.+)room_bookings.end_at > `).
		ExpectQuery().
		WithArgs(model.StatusApproved, interval.End, interval.Start).
		WillReturnRows(sqlmock.NewRows([]string{"assigned_room_number"}).AddRow("F03").AddRow("G01"))

	rooms, err := repo.BusyRoomNumbers(context.Background(), interval)
	require.NoError(t, err)
	assert.Equal(t, []string{"F03", "G01"}, rooms)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOverlapFilter(t *testing.T) {
	interval := model.Interval{
		Start: time.Date(2026, 11, 2, 14, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 11, 3, 11, 0, 0, 0, time.UTC),
	}

	filter := repository.OverlapFilter(interval)
	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "room_bookings.start_at < :range_end")
	assert.Contains(t, where, "room_bookings.end_at > :range_start")
	assert.Equal(t, interval.End, args["range_end"])
	assert.Equal(t, interval.Start, args["range_start"])
	assert.Equal(t, model.StatusApproved, args["status"])
}
