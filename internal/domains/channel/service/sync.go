package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"stayledger/infras/ota"
	bookingDto "stayledger/internal/domains/booking/model/dto"
	bookingRepo "stayledger/internal/domains/booking/repository"
	"stayledger/internal/domains/channel/model"
	"stayledger/internal/domains/channel/model/dto"
	"stayledger/internal/domains/channel/repository"
	"stayledger/internal/domains/channel/task"
	inventoryModel "stayledger/internal/domains/inventory/model"
	"stayledger/shared"
	"stayledger/shared/actor"
	"stayledger/shared/constant"
	"stayledger/shared/daterange"
	"stayledger/shared/failure"
	"stayledger/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	reservationCancelled = "CANCELLED"

	conflictArchivePrefix = "channel-conflicts"
	maxLastError          = 500
)

// group is every local room sold on the channel as one external room type and rate plan.
type group struct {
	externalRoomID string
	ratePlanID     string
	roomIDs        []string
}

func groupMappings(mappings []model.Mapping) []group {
	index := make(map[[2]string]int)
	groups := make([]group, 0, len(mappings))

	for _, m := range mappings {
		k := [2]string{m.ExternalRoomID, m.RatePlanID}

		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{externalRoomID: m.ExternalRoomID, ratePlanID: m.RatePlanID})
		}

		groups[i].roomIDs = append(groups[i].roomIDs, m.RoomID)
	}

	return groups
}

func (s *serviceImpl) SyncInventory(ctx context.Context, connectionID string, r daterange.Range) (res dto.SyncResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.SyncInventory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res = dto.SyncResult{ConnectionID: connectionID, Kind: task.KindPush}

	conn, provider, creds, err := s.prepare(ctx, connectionID)
	if err != nil {
		return res, err
	}

	if r.Nights() <= 0 {
		today := daterange.Today()
		r = daterange.Range{CheckIn: today, CheckOut: today.AddDate(0, 0, max(s.cfg.Channel.PushHorizonDays, 1))}
	}

	scope.SetAttributes(map[string]any{
		"channel.connection_id": connectionID,
		"channel.range":         r.String(),
	})

	mappings, err := s.repo.GetMappings(ctx, connectionID)
	if err != nil {
		err = s.finish(ctx, conn, &res, fmt.Errorf("failed to get room mappings: %w", err))

		return res, err
	}

	var errs []error

	for _, g := range groupMappings(mappings) {
		updates, err := s.groupUpdates(ctx, conn.HotelID, g, r)
		if err == nil {
			err = provider.PushAvailability(ctx, creds, updates)
		}

		if err != nil {
			log.Error().Err(err).Str("connection_id", connectionID).Str("external_room_id", g.externalRoomID).
				Msg("failed to push availability")

			res.Failed++
			errs = append(errs, fmt.Errorf("room %s: %w", g.externalRoomID, err))

			continue
		}

		res.Succeeded++
	}

	err = s.finish(ctx, conn, &res, errors.Join(errs...))

	return res, err
}

// groupUpdates opens a date when any room of the group is free; price is the cheapest free room.
func (s *serviceImpl) groupUpdates(ctx context.Context, hotelID string, g group, r daterange.Range) ([]ota.AvailabilityUpdate, error) {
	dates := r.Dates()
	updates := make([]ota.AvailabilityUpdate, len(dates))

	for i, d := range dates {
		updates[i] = ota.AvailabilityUpdate{
			ExternalRoomID: g.externalRoomID,
			RatePlanID:     g.ratePlanID,
			Date:           d.Format(constant.DateOnlyFormat),
		}
	}

	var fallback int64

	for _, roomID := range g.roomIDs {
		room, err := s.rooms.GetForHotel(ctx, hotelID, roomID)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		if fallback == 0 || room.BasePrice < fallback {
			fallback = room.BasePrice
		}

		if !room.Active {
			continue
		}

		days, err := s.inventory.Availability(ctx, roomID, r)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		for i, day := range days {
			if i >= len(updates) || day.Status != inventoryModel.StatusAvailable {
				continue
			}

			if !updates[i].Open || room.BasePrice < updates[i].Price {
				updates[i].Price = room.BasePrice
			}

			updates[i].Open = true
		}
	}

	for i := range updates {
		if !updates[i].Open {
			updates[i].Price = fallback
		}
	}

	return updates, nil
}

func (s *serviceImpl) PullBookings(ctx context.Context, connectionID string, since time.Time) (res dto.SyncResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".channel.PullBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res = dto.SyncResult{ConnectionID: connectionID, Kind: task.KindPull}

	conn, provider, creds, err := s.prepare(ctx, connectionID)
	if err != nil {
		return res, err
	}

	startedAt := timezone.Now()

	if since.IsZero() {
		since = pullSince(conn.LastPullAt, startedAt, s.cfg.Channel.PullLookbackDays)
	}

	scope.SetAttributes(map[string]any{
		"channel.connection_id": connectionID,
		"channel.since":         since.Format(time.RFC3339),
	})

	mappings, err := s.repo.GetMappings(ctx, connectionID)
	if err != nil {
		err = s.finish(ctx, conn, &res, fmt.Errorf("failed to get room mappings: %w", err))

		return res, err
	}

	reservations, err := provider.PullReservations(ctx, creds, since)
	if err != nil {
		err = s.finish(ctx, conn, &res, failure.ChannelSyncError(err))

		return res, err
	}

	ctx = actor.With(ctx, actor.System)

	var errs []error

	for _, rsv := range reservations {
		if err := s.importReservation(ctx, conn, mappings, rsv, &res); err != nil {
			log.Error().Err(err).Str("connection_id", connectionID).Str("external_booking_id", rsv.ExternalBookingID).
				Msg("failed to import reservation")

			res.Failed++
			errs = append(errs, fmt.Errorf("reservation %s: %w", rsv.ExternalBookingID, err))
		}
	}

	if err = errors.Join(errs...); err == nil {
		conn.LastPullAt = &startedAt
	}

	err = s.finish(ctx, conn, &res, err)

	return res, err
}

// pullSince reaches lookbackDays behind the watermark so late deliveries are pulled again;
// without a watermark it reaches behind now.
func pullSince(lastPullAt *time.Time, now time.Time, lookbackDays int) time.Time {
	from := now
	if lastPullAt != nil {
		from = *lastPullAt
	}

	return from.AddDate(0, 0, -lookbackDays)
}

// importReservation books rsv on the first mapped room that is free, or logs a conflict.
func (s *serviceImpl) importReservation(ctx context.Context, conn model.Connection, mappings []model.Mapping, rsv ota.Reservation, res *dto.SyncResult) error {
	if rsv.ExternalBookingID == constant.Empty || rsv.Status == reservationCancelled {
		res.Skipped++

		return nil
	}

	exists, err := s.bookings.ExternalExists(ctx, conn.ID, rsv.ExternalBookingID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if exists {
		res.Skipped++

		return nil
	}

	stay, err := daterange.Parse(rsv.CheckIn, rsv.CheckOut)
	if err != nil {
		return s.logConflict(ctx, conn, rsv, nil, model.ReasonInvalidPayload, err.Error(), res)
	}

	candidates := candidateRooms(mappings, rsv)
	if len(candidates) == 0 {
		return s.logConflict(ctx, conn, rsv, nil, model.ReasonUnmappedRoom,
			fmt.Sprintf("external room %q is not mapped", rsv.ExternalRoomID), res)
	}

	var last error

	for _, roomID := range candidates {
		_, err := s.bookings.CreateFromChannel(ctx, bookingDto.ChannelBooking{
			HotelID:           conn.HotelID,
			RoomID:            roomID,
			ConnectionID:      conn.ID,
			ExternalBookingID: rsv.ExternalBookingID,
			Source:            conn.Channel,
			GuestName:         rsv.GuestName,
			GuestPhone:        rsv.GuestPhone,
			GuestEmail:        rsv.GuestEmail,
			GuestCount:        rsv.GuestCount,
			Range:             stay,
			TotalAmount:       rsv.TotalAmount,
		})

		switch {
		case err == nil:
			log.Info().Str("connection_id", conn.ID).Str("external_booking_id", rsv.ExternalBookingID).Str("room_id", roomID).
				Msg("channel reservation imported")

			res.Succeeded++

			return nil
		case errors.Is(err, bookingRepo.ErrDuplicateExternal):
			res.Skipped++

			return nil
		case failure.IsKind(err, failure.KindInventoryConflict), failure.IsKind(err, failure.KindBadRequest):
			last = err

			continue
		default:
			return err //nolint:wrapcheck
		}
	}

	reason := model.ReasonInventoryConflict
	if !failure.IsKind(last, failure.KindInventoryConflict) {
		reason = model.ReasonInvalidPayload
	}

	roomID := candidates[0]

	return s.logConflict(ctx, conn, rsv, &roomID, reason, last.Error(), res)
}

// candidateRooms keeps mapping order; a mapping without a rate plan matches every plan.
func candidateRooms(mappings []model.Mapping, rsv ota.Reservation) []string {
	var rooms []string

	for _, m := range mappings {
		if m.ExternalRoomID != rsv.ExternalRoomID {
			continue
		}

		if m.RatePlanID != constant.Empty && rsv.RatePlanID != constant.Empty && m.RatePlanID != rsv.RatePlanID {
			continue
		}

		rooms = append(rooms, m.RoomID)
	}

	return rooms
}

func (s *serviceImpl) logConflict(ctx context.Context, conn model.Connection, rsv ota.Reservation, roomID *string, reason, message string, res *dto.SyncResult) error {
	key := fmt.Sprintf("%s/%s/%s.json", conflictArchivePrefix, conn.ID, rsv.ExternalBookingID)

	raw := rsv.Raw
	if len(raw) == 0 {
		var err error
		if raw, err = json.Marshal(rsv); err != nil {
			log.Warn().Err(err).Str("external_booking_id", rsv.ExternalBookingID).Msg("failed to encode conflicting reservation")
		}
	}

	if err := s.archive.PutObject(ctx, s.cfg.Channel.ConflictArchiveBucket, key, "application/json", raw); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to archive conflicting reservation")

		key = constant.Empty
	}

	err := s.repo.InsertConflict(ctx, model.Conflict{
		ID:                uuid.NewString(),
		ConnectionID:      conn.ID,
		HotelID:           conn.HotelID,
		ExternalBookingID: rsv.ExternalBookingID,
		RoomID:            roomID,
		CheckIn:           rsv.CheckIn,
		CheckOut:          rsv.CheckOut,
		Reason:            reason,
		Message:           message,
		ArchiveKey:        key,
		Status:            model.ConflictStatusOpen,
		CreatedAt:         timezone.Now(),
	})
	if errors.Is(err, repository.ErrDuplicateConflict) {
		res.Skipped++

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to log channel conflict: %w", err)
	}

	log.Warn().Str("connection_id", conn.ID).Str("external_booking_id", rsv.ExternalBookingID).Str("reason", reason).
		Msg("channel conflict logged")

	res.Conflicts++

	return nil
}

// prepare loads an active connection, opens its credentials and marks it SYNCING.
func (s *serviceImpl) prepare(ctx context.Context, connectionID string) (model.Connection, ota.Provider, ota.Credentials, error) {
	var creds ota.Credentials

	conn, err := s.load(ctx, connectionID)
	if err != nil {
		return conn, nil, creds, err
	}

	if !conn.Active {
		return conn, nil, creds, failure.InvalidState("connection %s is inactive", connectionID) // nolint:wrapcheck
	}

	provider, err := s.providers.Provider(conn.Channel)
	if err != nil {
		return conn, nil, creds, s.finish(ctx, conn, &dto.SyncResult{}, failure.ChannelSyncError(err))
	}

	plain, err := s.box.Open(conn.Credentials, credentialAAD(conn.HotelID, conn.Channel))
	if err == nil {
		err = json.Unmarshal(plain, &creds)
	}

	if err != nil {
		return conn, nil, creds, s.finish(ctx, conn, &dto.SyncResult{},
			failure.ChannelSyncError(fmt.Errorf("failed to open credentials: %w", err)))
	}

	err = s.repo.UpdateConnection(ctx, map[string]any{model.FieldSyncStatus: model.SyncStatusSyncing},
		shared.FilterByID(conn.ID, model.FieldID, model.ConnectionTableName))
	if err != nil {
		log.Error().Err(err).Str("connection_id", connectionID).Msg("failed to mark connection syncing")

		return conn, nil, creds, fmt.Errorf("failed to mark connection syncing: %w", err)
	}

	return conn, provider, creds, nil
}

// finish stores the outcome of a run on the connection and returns runErr as a ChannelSyncError.
func (s *serviceImpl) finish(ctx context.Context, conn model.Connection, res *dto.SyncResult, runErr error) error {
	now := timezone.Now()
	req := map[string]any{}

	if runErr != nil {
		msg := shared.Truncate(runErr.Error(), maxLastError)

		res.LastError = msg
		req[model.FieldSyncStatus] = model.SyncStatusError
		req[model.FieldLastError] = msg
	} else {
		req[model.FieldSyncStatus] = model.SyncStatusIdle
		req[model.FieldLastError] = nil
		req[model.FieldLastSyncAt] = now
	}

	if conn.LastPullAt != nil {
		req[model.FieldLastPullAt] = *conn.LastPullAt
	}

	if err := s.repo.UpdateConnection(ctx, req, shared.FilterByID(conn.ID, model.FieldID, model.ConnectionTableName)); err != nil {
		log.Error().Err(err).Str("connection_id", conn.ID).Msg("failed to store sync outcome")

		if runErr == nil {
			return fmt.Errorf("failed to store sync outcome: %w", err)
		}
	}

	if runErr == nil {
		log.Info().Str("connection_id", conn.ID).Str("kind", res.Kind).Int("succeeded", res.Succeeded).
			Int("failed", res.Failed).Int("skipped", res.Skipped).Int("conflicts", res.Conflicts).Msg("channel sync finished")

		return nil
	}

	if failure.GetKind(runErr) == failure.KindChannelSyncError {
		return runErr
	}

	return failure.ChannelSyncError(runErr)
}
