package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nurseguard/backend/internal/pdf"
	"github.com/nurseguard/backend/internal/repository"
)

// ReportService renders the alert archive as a downloadable PDF.
type ReportService struct {
	monitor *MonitoringService
	pdfGen  *pdf.PDFGenerator
	logger  *zap.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(monitor *MonitoringService, pdfGen *pdf.PDFGenerator, logger *zap.Logger) *ReportService {
	return &ReportService{
		monitor: monitor,
		pdfGen:  pdfGen,
		logger:  logger,
	}
}

// AlertReport renders the archived alerts matching the query as a PDF,
// together with the current patient risk overview.
func (s *ReportService) AlertReport(q repository.HistoryQuery, now time.Time) ([]byte, error) {
	alerts := s.monitor.QueryHistory(q, now)

	period := "all alerts"
	if q.MaxAge > 0 {
		period = fmt.Sprintf("last %s", q.MaxAge)
	}
	if q.Severity != "" {
		period = fmt.Sprintf("%s, severity %s", period, q.Severity)
	}

	s.logger.Info("generating alert report",
		zap.String("period", period),
		zap.Int("alerts", len(alerts)),
	)

	data := &pdf.ReportData{
		Title:       "AI NurseGuard Alert Report",
		Period:      period,
		GeneratedAt: now,
		Alerts:      alerts,
		Patients:    s.monitor.Patients(),
		Risks:       s.monitor.RiskScores(),
	}

	out, err := s.pdfGen.Generate(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate alert report: %w", err)
	}
	return out, nil
}
