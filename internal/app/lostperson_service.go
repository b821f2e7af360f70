package app

import (
	"context"

	"github.com/darshita2110/Crowd-Management-System/internal/clock"
	"github.com/darshita2110/Crowd-Management-System/internal/domain"
)

// ReportRepository persists lost person reports.
type ReportRepository interface {
	CreateReport(ctx context.Context, report domain.LostPersonReport) error
	GetReport(ctx context.Context, id string) (domain.LostPersonReport, error)
	ListReports(ctx context.Context, filter domain.ReportFilter, limit int) ([]domain.LostPersonReport, error)
	SetReportStatus(ctx context.Context, id string, status domain.ReportStatus) (domain.LostPersonReport, error)
}

// LostPersonService runs the lost person report workflow.
type LostPersonService struct {
	repo  ReportRepository
	clock clock.Clock
}

func NewLostPersonService(repo ReportRepository, clk clock.Clock) *LostPersonService {
	return &LostPersonService{
		repo:  repo,
		clock: clk,
	}
}

type ReportInput struct {
	EventID          string
	ReporterID       string
	PersonName       string
	Age              int
	Gender           string
	LastSeenLocation domain.Location
	PhotoURL         string
}

// CreateReport files a new report in the reported state with a priority
// derived from the missing person's age.
func (s *LostPersonService) CreateReport(ctx context.Context, in ReportInput) (domain.LostPersonReport, error) {
	if in.EventID == "" || in.ReporterID == "" {
		return domain.LostPersonReport{}, domain.ErrInvalidID
	}
	if in.PersonName == "" {
		return domain.LostPersonReport{}, domain.ErrPersonNameRequired
	}

	report := domain.LostPersonReport{
		ID:               newRecordID(reportIDPrefix),
		EventID:          in.EventID,
		ReporterID:       in.ReporterID,
		PersonName:       in.PersonName,
		Age:              in.Age,
		Gender:           in.Gender,
		LastSeenLocation: in.LastSeenLocation,
		PhotoURL:         in.PhotoURL,
		Status:           domain.ReportReported,
		Priority:         domain.PriorityForReport(in.Age, 0),
		ReportedAt:       s.clock.Now(),
	}

	if err := s.repo.CreateReport(ctx, report); err != nil {
		return domain.LostPersonReport{}, err
	}
	return report, nil
}

func (s *LostPersonService) GetReport(ctx context.Context, id string) (domain.LostPersonReport, error) {
	if id == "" {
		return domain.LostPersonReport{}, domain.ErrInvalidID
	}
	return s.repo.GetReport(ctx, id)
}

// ListReports returns matching reports newest-first.
func (s *LostPersonService) ListReports(ctx context.Context, filter domain.ReportFilter) ([]domain.LostPersonReport, error) {
	return s.repo.ListReports(ctx, filter, defaultListLimit)
}

// UpdateStatus moves a report through the search workflow.
func (s *LostPersonService) UpdateStatus(ctx context.Context, id, status string) (domain.LostPersonReport, error) {
	if id == "" {
		return domain.LostPersonReport{}, domain.ErrInvalidID
	}
	if !domain.ValidReportStatus(status) {
		return domain.LostPersonReport{}, domain.ErrInvalidReportStatus
	}
	return s.repo.SetReportStatus(ctx, id, domain.ReportStatus(status))
}
