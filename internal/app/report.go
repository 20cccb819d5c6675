package app

import (
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/alextm0/identity-shift-sub002/internal/engine"
)

type WeeklyReportRequest struct {
	SprintID string // empty selects the active sprint
	Now      *time.Time
	Window   domain.ReportWindow
}

func NewWeeklyReportRequest() WeeklyReportRequest {
	return WeeklyReportRequest{Window: domain.WindowWeek}
}

type WeeklyReportResponse struct {
	Sprint         *domain.Sprint
	WindowStart    time.Time
	WindowEnd      time.Time
	Summary        domain.WeeklySummary
	IntegrityScore int
	Alerts         []engine.Alert
	DaysLogged     int
	// ProofCoverage is the share of days with progress that carry adequate
	// proof, in [0,1]. It is 1 when no day logged progress.
	ProofCoverage float64
}

type HistoryRequest struct {
	SprintID string
	Now      *time.Time
	Weeks    int
}

func NewHistoryRequest() HistoryRequest {
	return HistoryRequest{Weeks: 4}
}

type HistoryResponse struct {
	Sprint  *domain.Sprint
	Reports []WeeklyReportResponse // oldest first
}

type ReportErrorCode string

const (
	ReportErrInvalidWindow ReportErrorCode = "INVALID_WINDOW"
	ReportErrInvalidWeeks  ReportErrorCode = "INVALID_WEEKS"
	ReportErrNoSprint      ReportErrorCode = "NO_SPRINT"
)

type ReportError struct {
	Code    ReportErrorCode
	Message string
}

func (e *ReportError) Error() string {
	return string(e.Code) + ": " + e.Message
}
