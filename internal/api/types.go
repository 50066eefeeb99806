package api

import "github.com/Abbub1/schedsim/internal/schedule"

// ScheduleRequest represents the body of a schedule call
type ScheduleRequest struct {
	Quantum   *int64             `json:"quantum,omitempty"`
	Processes []schedule.Process `json:"processes"`
}

// ScheduleResponse represents the results of every algorithm that ran
type ScheduleResponse struct {
	Results []schedule.Result `json:"results"`
}

// ErrorResponse represents error info
type ErrorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// cacheKey represents what a cached response depends on
type cacheKey struct {
	Algorithms []schedule.Algorithm `json:"algorithms"`
	Quantum    int64                `json:"quantum"`
	Processes  []schedule.Process   `json:"processes"`
}
