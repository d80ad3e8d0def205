package fiber

type DirectionTotalResponse struct {
	Direction string `json:"direction" example:"in"`
	Total     int64  `json:"total" example:"128"`
}

type HourlyTotalResponse struct {
	Hour      string `json:"hour" example:"2025-01-15 10:00:00"`
	Direction string `json:"direction" example:"in"`
	Count     int64  `json:"count" example:"17"`
}

// StatsResponse represents the aggregate view of the counts table
// @Description Totals per direction and per local hour
type StatsResponse struct {
	Summary []DirectionTotalResponse `json:"summary"`
	Hourly  []HourlyTotalResponse    `json:"hourly"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"internal_server_error"`
}
