//go:build integration

// Run against a migrated database:
//
//	GUESTHOUSE_TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/domains/booking/repository/...
//
// sqlmock replays one connection's script, so it cannot show two transactions racing for the same room.
package repository_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"guesthouse/infras/otel/mocks"
	"guesthouse/infras/postgres"
	"guesthouse/internal/domains/booking/model"
	"guesthouse/internal/domains/booking/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const concurrentApprovals = 8

func integrationDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv("GUESTHOUSE_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("GUESTHOUSE_TEST_DATABASE_URL not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)

	db.SetMaxOpenConns(concurrentApprovals + 2)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestBookingRepository_ConcurrentApprovalsAllocateOnce(t *testing.T) {
	db := integrationDB(t)
	ctx := context.Background()
	repo := repository.New(&postgres.Connection{Read: db, Write: db}, mocks.NewOtel())

	requester := uuid.NewString()
	_, err := db.ExecContext(ctx, `INSERT INTO users (id, name, email, password) VALUES ($1, 'Race Test', $2, 'x')`,
		requester, requester+"@example.com")
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = db.ExecContext(context.Background(), `DELETE FROM users WHERE id = $1`, requester)
	})

	// Each candidate overlaps every other one by at least a night.
	base := time.Date(2099, time.March, 1, 14, 0, 0, 0, time.UTC)
	ids := make([]string, concurrentApprovals)

	for i := range ids {
		booking := model.Booking{
			ID:             uuid.NewString(),
			RequesterID:    requester,
			GuestName:      "Race Test",
			GuestEmail:     "race@example.com",
			GuestPhone:     "0000000000",
			GuestAddress:   "-",
			Occupation:     "-",
			GovernmentID:   "-",
			RoomType:       "Single",
			StartAt:        base.Add(time.Duration(i) * time.Hour),
			EndAt:          base.AddDate(0, 0, 2),
			Purpose:        "-",
			TransactionRef: "-",
			ReceiptURL:     "-",
			Nights:         2,
			Status:         model.StatusPending,
		}

		require.NoError(t, repo.Insert(ctx, booking))
		ids[i] = booking.ID
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		approved []string
		occupied int
		failures []error
	)

	start := make(chan struct{})

	for _, id := range ids {
		wg.Add(1)

		go func(id string) {
			defer wg.Done()
			<-start

			_, err := repo.Approve(ctx, id, "G01", "admin-race")

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				approved = append(approved, id)
			case errors.Is(err, repository.ErrRoomOccupied):
				occupied++
			default:
				failures = append(failures, err)
			}
		}(id)
	}

	close(start)
	wg.Wait()

	require.Empty(t, failures)
	assert.Len(t, approved, 1)
	assert.Equal(t, concurrentApprovals-1, occupied)

	var pending int
	require.NoError(t, db.GetContext(ctx, &pending,
		`SELECT COUNT(*) FROM room_bookings WHERE requester_id = $1 AND status = 'pending' AND assigned_room_number IS NULL`, requester))
	assert.Equal(t, concurrentApprovals-1, pending)
}
