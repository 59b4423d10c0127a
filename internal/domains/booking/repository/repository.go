package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"guesthouse/infras/otel"
	"guesthouse/infras/postgres"
	"guesthouse/internal/domains/booking/model"
	"guesthouse/shared"
	"guesthouse/shared/constant"
	gDto "guesthouse/shared/dto"
	"guesthouse/shared/logger"
	gRepo "guesthouse/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingNotPending = errors.New("booking already processed")
	ErrRoomOccupied      = errors.New("room is already booked for an overlapping stay")
)

const (
	argRangeStart    = "range_start"
	argRangeEnd      = "range_end"
	argCurrentStatus = "current_status"

	queryRoomLock       = `SELECT pg_advisory_xact_lock(hashtext($1))`
	queryLockBooking    = `SELECT %s FROM room_bookings WHERE room_bookings.id = $1 FOR UPDATE`
	queryRoomOverlapped = `SELECT EXISTS(
		SELECT 1 FROM room_bookings
		WHERE assigned_room_number = $1
			AND status = 'approved'
			AND id <> $2
			AND start_at < $4
			AND end_at > $3
	)`
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	BusyRoomNumbers(ctx context.Context, interval model.Interval) ([]string, error)
	Approve(ctx context.Context, id, roomNumber, user string) (model.Booking, error)
	Reject(ctx context.Context, id, user string) (model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// OverlapFilter matches approved bookings whose stay intersects interval.
func OverlapFilter(interval model.Interval) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusApproved, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: argRangeEnd, Field: model.FieldStartAt, Value: interval.End, Operator: gDto.FilterOperatorLess, Table: model.TableName},
			gDto.Filter{ArgName: argRangeStart, Field: model.FieldEndAt, Value: interval.Start, Operator: gDto.FilterOperatorGreater, Table: model.TableName},
		},
	}
}

func (r *repositoryImpl) BusyRoomNumbers(ctx context.Context, interval model.Interval) (rooms []string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.BusyRoomNumbers")
	defer scope.End()

	where, args := r.BuildWhereClause(ctx, OverlapFilter(interval))
	query := fmt.Sprintf("SELECT DISTINCT %s.%s FROM %s %s ORDER BY 1", model.TableName, model.FieldAssignedRoomNumber, model.TableName, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	rooms = []string{}
	if err = prepare.SelectContext(ctx, &rooms, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get busy rooms (%s): %w", model.EntityName, err)
	}

	return rooms, nil
}

// Approve assigns roomNumber to a pending booking. Approvals for the same room are serialized
// by an advisory lock, and the overlap re-check happens inside the same transaction as the write.
func (r *repositoryImpl) Approve(ctx context.Context, id, roomNumber, user string) (booking model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Approve")
	defer scope.End()

	scope.SetAttributes(map[string]any{"booking.id": id, "room.number": roomNumber})

	err = r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, queryRoomLock, roomNumber); err != nil {
			return fmt.Errorf("failed to lock room %s: %w", roomNumber, err)
		}

		locked, err := r.lockPending(ctx, tx, id)
		if err != nil {
			return err
		}

		var occupied bool
		if err := tx.GetContext(ctx, &occupied, queryRoomOverlapped, roomNumber, id, locked.StartAt, locked.EndAt); err != nil {
			return fmt.Errorf("failed to check room overlap: %w", err)
		}

		if occupied {
			return ErrRoomOccupied
		}

		fields := shared.TransformFields(struct {
			Status             string `db:"status"`
			AssignedRoomNumber string `db:"assigned_room_number"`
		}{Status: model.StatusApproved, AssignedRoomNumber: roomNumber}, user)

		if err := r.UpdateTx(ctx, tx, fields, pendingByID(id)); err != nil {
			return err //nolint:wrapcheck
		}

		locked.Status = model.StatusApproved
		locked.AssignedRoomNumber = &roomNumber
		locked.ModifiedBy = user
		locked.ModifiedAt, _ = fields[constant.FieldModifiedAt].(time.Time)
		booking = locked

		return nil
	})
	if err != nil {
		scope.TraceError(err)

		return model.Booking{}, mapConstraintError(err)
	}

	return booking, nil
}

// Reject moves a pending booking to rejected. Terminal bookings are reported as ErrBookingNotPending.
func (r *repositoryImpl) Reject(ctx context.Context, id, user string) (booking model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Reject")
	defer scope.End()

	err = r.WithTx(ctx, func(tx *sqlx.Tx) error {
		locked, err := r.lockPending(ctx, tx, id)
		if err != nil {
			return err
		}

		fields := shared.TransformFields(struct {
			Status string `db:"status"`
		}{Status: model.StatusRejected}, user)

		if err := r.UpdateTx(ctx, tx, fields, pendingByID(id)); err != nil {
			return err //nolint:wrapcheck
		}

		locked.Status = model.StatusRejected
		locked.ModifiedBy = user
		locked.ModifiedAt, _ = fields[constant.FieldModifiedAt].(time.Time)
		booking = locked

		return nil
	})
	if err != nil {
		scope.TraceError(err)

		return model.Booking{}, err
	}

	return booking, nil
}

func (r *repositoryImpl) lockPending(ctx context.Context, tx *sqlx.Tx, id string) (model.Booking, error) {
	var booking model.Booking

	err := tx.GetContext(ctx, &booking, fmt.Sprintf(queryLockBooking, r.SelectColumns(ctx)), id)
	if errors.Is(err, sql.ErrNoRows) {
		return booking, ErrBookingNotFound
	}

	if err != nil {
		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	if !booking.IsPending() {
		return booking, ErrBookingNotPending
	}

	return booking, nil
}

func pendingByID(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq},
			gDto.Filter{ArgName: argCurrentStatus, Field: model.FieldStatus, Value: model.StatusPending, Operator: gDto.FilterOperatorEq},
		},
	}
}

// mapConstraintError turns a violation of the approved-stay exclusion constraint into ErrRoomOccupied.
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeExclusionViolation {
		return ErrRoomOccupied
	}

	return err
}
