package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"guesthouse/config"
	"guesthouse/infras/otel"
	"guesthouse/infras/s3"
	"guesthouse/internal/domains/booking/model"
	"guesthouse/internal/domains/booking/model/dto"
	"guesthouse/internal/domains/booking/repository"
	notifModel "guesthouse/internal/domains/notification/model"
	notification "guesthouse/internal/domains/notification/service"
	roomModel "guesthouse/internal/domains/room/model"
	roomRepo "guesthouse/internal/domains/room/repository"
	"guesthouse/shared"
	"guesthouse/shared/cache"
	"guesthouse/shared/constant"
	gDto "guesthouse/shared/dto"
	"guesthouse/shared/failure"
	"guesthouse/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"

	receiptDirectory = "receipts"
	bytesPerMB       = 1 << 20
	displayLayout    = "2006-01-02 15:04"

	argReminderFrom = "reminder_from"
	argReminderTo   = "reminder_to"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, req dto.ListBookingsRequest) (dto.GetBookingsResponse, error)
	ListPending(ctx context.Context) (dto.GetBookingsResponse, error)
	ListForRequester(ctx context.Context, requesterID string) (dto.GetBookingsResponse, error)
	Approve(ctx context.Context, id string, req dto.ApproveBookingRequest) (dto.BookingResponse, error)
	Reject(ctx context.Context, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	SendCheckInReminders(ctx context.Context, day time.Time) (int, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	s3       s3.S3
	notifier notification.Notification
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	s3 s3.S3,
	notifier notification.Notification,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		s3:       s3,
		notifier: notifier,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create records a pending booking. No room is allocated until an administrator approves it.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	interval, err := model.ParseInterval(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	if err = s.checkPolicy(interval); err != nil {
		return res, err
	}

	total, err := model.Price(req.RoomType, req.AC != nil && *req.AC, interval)
	if err != nil {
		return res, failure.ValidationField("room_type", "has no nightly rate for the requested AC preference") // nolint:wrapcheck
	}

	if req.Receipt == nil || req.ReceiptFile == nil {
		return res, failure.ValidationField(constant.FormFileReceipt, "is required") // nolint:wrapcheck
	}

	if maxSize := int64(s.cfg.Booking.ReceiptMaxSizeMB) * bytesPerMB; maxSize > 0 && req.Receipt.Size > maxSize {
		return res, failure.ValidationField(constant.FormFileReceipt, fmt.Sprintf("must not exceed %d MB", s.cfg.Booking.ReceiptMaxSizeMB)) // nolint:wrapcheck
	}

	fileName := uuid.NewString() + path.Ext(req.Receipt.Filename)

	receiptURL, err := s.s3.Upload(ctx, receiptDirectory, fileName, req.Receipt.Header.Get(constant.RequestHeaderContentType), req.ReceiptFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload receipt")

		return res, fmt.Errorf("failed to upload receipt: %w", err)
	}

	booking := req.ToModel(user, interval, total, receiptURL)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		go s.deleteReceipt(context.WithoutCancel(ctx), receiptURL)

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	s.notifier.Notify(ctx, notificationFor(notifModel.KindRequestReceived, booking))

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllBooking)
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkID(id); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err != nil {
		booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get booking")

			return res, fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return res, failure.NotFound("booking not found") // nolint:wrapcheck
		}

		res.FromModel(booking)

		go func(res dto.BookingResponse) {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save booking to cache")
			}
		}(res)
	} else {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")
	}

	if !canView(ctx, res.RequesterID) {
		return dto.BookingResponse{}, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, req dto.ListBookingsRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, params, req.ToFilter())
}

// ListPending returns every pending booking, oldest first.
func (s *serviceImpl) ListPending(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListPending")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req := dto.ListBookingsRequest{Status: model.StatusPending}
	params := gDto.QueryParams{SortBy: model.TableName + "." + constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	return s.list(ctx, params, req.ToFilter())
}

// ListForRequester returns the bookings submitted by requesterID, newest first.
func (s *serviceImpl) ListForRequester(ctx context.Context, requesterID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListForRequester")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req := dto.ListBookingsRequest{RequesterID: requesterID}
	params := gDto.QueryParams{SortBy: model.TableName + "." + constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	return s.list(ctx, params, req.ToFilter())
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	total := len(bookings)
	if params.Limit > 0 {
		total, err = s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count bookings")

			return res, fmt.Errorf("failed to count bookings: %w", err)
		}
	}

	res.FromModels(bookings, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// Approve assigns a room to a pending booking. The room must exist, match the requested category
// and not be under maintenance; the overlap check and the write are done atomically by the repository.
func (s *serviceImpl) Approve(ctx context.Context, id string, req dto.ApproveBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Approve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkID(id); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !booking.IsPending() {
		return res, failure.Conflict("booking already processed") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomNumber, roomModel.FieldRoomNumber, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.RoomNumber == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if !room.Matches(booking.RoomType, booking.AC) {
		return res, failure.ValidationField("room_number", "does not match the requested room type and AC preference") // nolint:wrapcheck
	}

	if !room.Assignable() {
		return res, failure.ValidationField("room_number", "is under maintenance") // nolint:wrapcheck
	}

	approved, err := s.repo.Approve(ctx, id, room.RoomNumber, user)
	if err != nil {
		return res, transitionError(err, "approve")
	}

	log.Info().Str("booking_id", id).Str("room_number", room.RoomNumber).Msg("booking approved")

	res.FromModel(approved)

	s.notifier.Notify(ctx, notificationFor(notifModel.KindApproved, approved))
	s.invalidate(ctx, id)

	return res, nil
}

// Reject closes a pending booking. Bookings already processed are a conflict and are not re-notified.
func (s *serviceImpl) Reject(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Reject")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkID(id); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rejected, err := s.repo.Reject(ctx, id, user)
	if err != nil {
		return res, transitionError(err, "reject")
	}

	log.Info().Str("booking_id", id).Msg("booking rejected")

	res.FromModel(rejected)

	s.notifier.Notify(ctx, notificationFor(notifModel.KindRejected, rejected))
	s.invalidate(ctx, id)

	return res, nil
}

// Delete removes a booking in any state together with its receipt. No notification is sent.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkID(id); err != nil {
		return err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldReceiptURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go s.deleteReceipt(context.WithoutCancel(ctx), booking.ReceiptURL)

	s.invalidate(ctx, id)

	return nil
}

// SendCheckInReminders notifies every approved booking whose stay starts on the day after day.
func (s *serviceImpl) SendCheckInReminders(ctx context.Context, day time.Time) (sent int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SendCheckInReminders")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	from := timezone.StartOfDay(day).AddDate(0, 0, 1)
	to := from.AddDate(0, 0, 1)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusApproved, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: argReminderFrom, Field: model.FieldStartAt, Value: from, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
			gDto.Filter{ArgName: argReminderTo, Field: model.FieldStartAt, Value: to, Operator: gDto.FilterOperatorLess, Table: model.TableName},
		},
	}
	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldStartAt, SortDir: gDto.SortDirAsc}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get upcoming bookings")

		return 0, fmt.Errorf("failed to get upcoming bookings: %w", err)
	}

	for _, booking := range bookings {
		s.notifier.Notify(ctx, notificationFor(notifModel.KindCheckInReminder, booking))
	}

	return len(bookings), nil
}

func (s *serviceImpl) checkPolicy(interval model.Interval) error {
	policy := s.cfg.Booking

	if policy.AdvanceNoticeDays > 0 {
		earliest := timezone.StartOfDay(timezone.Now()).AddDate(0, 0, policy.AdvanceNoticeDays)
		if interval.Start.Before(earliest) {
			return failure.ValidationField("check_in", fmt.Sprintf("must be at least %d day(s) in advance", policy.AdvanceNoticeDays)) // nolint:wrapcheck
		}
	}

	if policy.MaxStayNights > 0 && interval.Nights() > policy.MaxStayNights {
		return failure.ValidationField("check_out", fmt.Sprintf("stay must not exceed %d night(s)", policy.MaxStayNights)) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()
}

func (s *serviceImpl) deleteReceipt(ctx context.Context, url string) {
	if url == constant.Empty {
		return
	}

	if err := s.s3.Delete(ctx, receiptDirectory, s.s3.ObjectName(url)); err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to delete receipt")
	}
}

// checkID reports ids that cannot name a stored booking as not found before they reach the uuid column.
func checkID(id string) error {
	if uuid.Validate(id) != nil {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return nil
}

func transitionError(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrBookingNotFound):
		return failure.NotFound("booking not found") // nolint:wrapcheck
	case errors.Is(err, repository.ErrBookingNotPending):
		return failure.Conflict("booking already processed") // nolint:wrapcheck
	case errors.Is(err, repository.ErrRoomOccupied):
		return failure.Conflict(repository.ErrRoomOccupied.Error()) // nolint:wrapcheck
	default:
		log.Error().Err(err).Msgf("failed to %s booking", action)

		return fmt.Errorf("failed to %s booking: %w", action, err)
	}
}

// canView hides other requesters' bookings from students.
func canView(ctx context.Context, requesterID string) bool {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleAdmin {
		return true
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return user != constant.Empty && user == requesterID
}

func notificationFor(kind string, booking model.Booking) notifModel.Notification {
	payload := notifModel.Payload{
		BookingID:  booking.ID,
		GuestName:  booking.GuestName,
		RoomType:   booking.RoomType,
		AC:         booking.AC,
		CheckIn:    timezone.Format(booking.StartAt, displayLayout),
		CheckOut:   timezone.Format(booking.EndAt, displayLayout),
		Nights:     booking.Nights,
		TotalPrice: booking.TotalPrice,
	}

	if booking.AssignedRoomNumber != nil {
		payload.RoomNumber = *booking.AssignedRoomNumber
	}

	return notifModel.Notification{
		Kind:          kind,
		Recipient:     booking.GuestEmail,
		RecipientName: booking.GuestName,
		Payload:       payload,
	}
}
