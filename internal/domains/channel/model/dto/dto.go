package dto

import (
	"stayledger/internal/domains/channel/model"
	"stayledger/shared"
	"stayledger/shared/constant"
	gDto "stayledger/shared/dto"
	"stayledger/shared/timezone"
)

type ConnectRequest struct {
	Channel         string `json:"channel"           validate:"required,oneof=BOOKING_COM EXPEDIA AGODA AIRBNB"`
	ExternalHotelID string `json:"external_hotel_id" validate:"required,max=100"`
	APIKey          string `json:"api_key"           validate:"required,max=255"`
}

type ConnectionResponse struct {
	ID              string `json:"id"`
	HotelID         string `json:"hotel_id"`
	Channel         string `json:"channel"`
	ExternalHotelID string `json:"external_hotel_id"`
	Active          bool   `json:"active"`
	SyncStatus      string `json:"sync_status"`
	LastSyncAt      string `json:"last_sync_at,omitempty"`
	LastPullAt      string `json:"last_pull_at,omitempty"`
	LastError       string `json:"last_error,omitempty"`
	gDto.Metadata
}

func (r *ConnectionResponse) FromModel(m model.Connection) {
	r.ID = m.ID
	r.HotelID = m.HotelID
	r.Channel = m.Channel
	r.ExternalHotelID = m.ExternalHotelID
	r.Active = m.Active
	r.SyncStatus = m.SyncStatus

	if m.LastSyncAt != nil {
		r.LastSyncAt = timezone.Format(*m.LastSyncAt, constant.DateFormat)
	}

	if m.LastPullAt != nil {
		r.LastPullAt = timezone.Format(*m.LastPullAt, constant.DateFormat)
	}

	if m.LastError != nil {
		r.LastError = *m.LastError
	}

	r.Metadata.FromModel(m.Metadata)
}

type MappingRequest struct {
	RoomID         string `json:"room_id"          validate:"required"`
	ExternalRoomID string `json:"external_room_id" validate:"required,max=100"`
	RatePlanID     string `json:"rate_plan_id"     validate:"omitempty,max=100"`
}

type ReplaceMappingsRequest struct {
	Mappings []MappingRequest `json:"mappings" validate:"dive"`
}

type MappingResponse struct {
	RoomID         string `json:"room_id"`
	ExternalRoomID string `json:"external_room_id"`
	RatePlanID     string `json:"rate_plan_id,omitempty"`
}

func MappingsFromModels(models []model.Mapping) []MappingResponse {
	res := make([]MappingResponse, len(models))
	for i, m := range models {
		res[i] = MappingResponse{RoomID: m.RoomID, ExternalRoomID: m.ExternalRoomID, RatePlanID: m.RatePlanID}
	}

	return res
}

type SyncRequest struct {
	Kind string `json:"kind" validate:"required,oneof=push pull"`
}

// SyncResult summarizes one push or pull run.
type SyncResult struct {
	ConnectionID string `json:"connection_id"`
	Kind         string `json:"kind"`
	Succeeded    int    `json:"succeeded"`
	Failed       int    `json:"failed"`
	Skipped      int    `json:"skipped"`
	Conflicts    int    `json:"conflicts"`
	LastError    string `json:"last_error,omitempty"`
}

type ResolveConflictRequest struct {
	Note string `json:"note" validate:"required,max=255"`
}

type ConflictResponse struct {
	ID                string `json:"id"`
	ConnectionID      string `json:"connection_id"`
	ExternalBookingID string `json:"external_booking_id"`
	RoomID            string `json:"room_id,omitempty"`
	CheckIn           string `json:"check_in"`
	CheckOut          string `json:"check_out"`
	Reason            string `json:"reason"`
	Message           string `json:"message"`
	ArchiveKey        string `json:"archive_key,omitempty"`
	Status            string `json:"status"`
	ResolvedBy        string `json:"resolved_by,omitempty"`
	ResolvedAt        string `json:"resolved_at,omitempty"`
	ResolutionNote    string `json:"resolution_note,omitempty"`
	CreatedAt         string `json:"created_at"`
}

func (r *ConflictResponse) FromModel(m model.Conflict) {
	r.ID = m.ID
	r.ConnectionID = m.ConnectionID
	r.ExternalBookingID = m.ExternalBookingID
	r.CheckIn = m.CheckIn
	r.CheckOut = m.CheckOut
	r.Reason = m.Reason
	r.Message = m.Message
	r.ArchiveKey = m.ArchiveKey
	r.Status = m.Status
	r.ResolutionNote = m.ResolutionNote
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)

	if m.RoomID != nil {
		r.RoomID = *m.RoomID
	}

	if m.ResolvedBy != nil {
		r.ResolvedBy = *m.ResolvedBy
	}

	if m.ResolvedAt != nil {
		r.ResolvedAt = timezone.Format(*m.ResolvedAt, constant.DateFormat)
	}
}

type GetConflictsResponse struct {
	Conflicts []ConflictResponse `json:"conflicts"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetConflictsResponse) FromModels(models []model.Conflict, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Conflicts = make([]ConflictResponse, len(models))
	for i, mod := range models {
		r.Conflicts[i].FromModel(mod)
	}
}
