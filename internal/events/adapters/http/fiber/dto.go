package fiber

import "people-counting-service/internal/events/core/domain"

// CountEventResponse represents one stored sensor reading
// @Description Count event DTO
type CountEventResponse struct {
	ID         int64  `json:"id" example:"42"`
	Timestamp  string `json:"timestamp" example:"2025-01-15 10:30:00"`
	Direction  string `json:"direction" example:"in"`
	Count      int64  `json:"count" example:"3"`
	RawPayload string `json:"raw_payload"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"internal_server_error"`
}

func toCountEventResponse(e domain.CountEvent) CountEventResponse {
	return CountEventResponse{
		ID:         e.ID,
		Timestamp:  e.Timestamp,
		Direction:  string(e.Direction),
		Count:      e.Count,
		RawPayload: e.RawPayload,
	}
}
