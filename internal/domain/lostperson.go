package domain

import "time"

// ReportStatus is the workflow state of a lost person report.
type ReportStatus string

const (
	ReportReported  ReportStatus = "reported"
	ReportSearching ReportStatus = "searching"
	ReportFound     ReportStatus = "found"
	ReportResolved  ReportStatus = "resolved"
)

// ValidReportStatus reports whether s is an allowed report status.
func ValidReportStatus(s string) bool {
	switch ReportStatus(s) {
	case ReportReported, ReportSearching, ReportFound, ReportResolved:
		return true
	}
	return false
}

// ReportPriority ranks search urgency.
type ReportPriority string

const (
	PriorityCritical ReportPriority = "critical"
	PriorityHigh     ReportPriority = "high"
	PriorityMedium   ReportPriority = "medium"
	PriorityLow      ReportPriority = "low"
)

// PriorityForReport derives the initial search priority. Children and the
// elderly are always critical; otherwise priority escalates with time
// missing.
func PriorityForReport(age int, timeMissing time.Duration) ReportPriority {
	if age <= 12 || age >= 65 {
		return PriorityCritical
	}
	if timeMissing > 2*time.Hour {
		return PriorityHigh
	}
	return PriorityMedium
}

// LostPersonReport tracks a missing person through the search workflow.
type LostPersonReport struct {
	ID               string
	EventID          string
	ReporterID       string
	PersonName       string
	Age              int
	Gender           string
	LastSeenLocation Location
	PhotoURL         string
	Status           ReportStatus
	Priority         ReportPriority
	ReportedAt       time.Time
}

// ReportFilter narrows lost person report listings. Zero values mean "any".
type ReportFilter struct {
	EventID  string
	Status   string
	Priority string
}
