package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/nurseguard/backend/pkg/model"
)

// PDFGenerator renders alert reports for shift handovers
type PDFGenerator struct {
	logger *zap.Logger
}

// NewPDFGenerator creates a new PDFGenerator
func NewPDFGenerator(logger *zap.Logger) *PDFGenerator {
	return &PDFGenerator{
		logger: logger,
	}
}

// ReportData contains all data needed for report generation
type ReportData struct {
	Title       string
	Period      string
	GeneratedAt time.Time
	Alerts      []model.Alert
	Risks       map[string]model.RiskScore
	Patients    []model.Patient
}

// Generate creates a PDF report from the provided data
func (g *PDFGenerator) Generate(data *ReportData) ([]byte, error) {
	g.logger.Info("generating PDF report",
		zap.String("period", data.Period),
		zap.Int("alerts", len(data.Alerts)),
	)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	g.addTitle(pdf, data)
	g.addSeveritySummary(pdf, data.Alerts)
	g.addAlertLog(pdf, data.Alerts)
	g.addRiskOverview(pdf, data.Patients, data.Risks)

	var buf bytes.Buffer
	err := pdf.Output(&buf)
	if err != nil {
		g.logger.Error("failed to generate PDF", zap.Error(err))
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	g.logger.Info("PDF report generated successfully",
		zap.Int("size_bytes", buf.Len()),
	)

	return buf.Bytes(), nil
}

// addTitle adds the report title and header information
func (g *PDFGenerator) addTitle(pdf *gofpdf.Fpdf, data *ReportData) {
	title := data.Title
	if title == "" {
		title = "Alert Report"
	}

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Period: %s", data.Period), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated: %s", data.GeneratedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(10)
}

// addSectionHeader adds a section header
func (g *PDFGenerator) addSectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(0, 10, title, "", 1, "L", true, 0, "")
	pdf.Ln(3)
	pdf.SetFont("Arial", "", 10)
}

// addSeveritySummary adds the per-severity alert counts
func (g *PDFGenerator) addSeveritySummary(pdf *gofpdf.Fpdf, alerts []model.Alert) {
	g.addSectionHeader(pdf, "Summary")

	if len(alerts) == 0 {
		pdf.CellFormat(0, 8, "No alerts recorded during this period.", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	counts := make(map[model.Severity]int)
	confidenceSum := 0
	for _, alert := range alerts {
		counts[alert.SeverityLevel]++
		confidenceSum += alert.ConfidenceScore
	}
	avg := float64(confidenceSum) / float64(len(alerts))

	pdf.CellFormat(0, 6, fmt.Sprintf("Total alerts: %d", len(alerts)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("High: %d, Medium: %d, Low: %d",
		counts[model.SeverityHigh], counts[model.SeverityMedium], counts[model.SeverityLow]), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Average confidence: %.1f%%", avg), "", 1, "L", false, 0, "")
	pdf.Ln(5)
}

// addAlertLog adds the chronological alert listing
func (g *PDFGenerator) addAlertLog(pdf *gofpdf.Fpdf, alerts []model.Alert) {
	g.addSectionHeader(pdf, "Alert Log")

	if len(alerts) == 0 {
		pdf.CellFormat(0, 8, "No alerts recorded.", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	for _, alert := range alerts {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("%s  %s  [%s]", alert.FormattedTime, alert.ID, alert.SeverityLevel), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)

		pdf.CellFormat(0, 5, fmt.Sprintf("  Patient: %s (Room %d, %s)", alert.PatientName, alert.RoomNumber, alert.Ward), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("  Condition: %s (%d%% confidence)", alert.Condition, alert.ConfidenceScore), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("  Vitals: HR %d bpm, SpO2 %d%%, Temp %.1f C, BP %s, RR %d",
			alert.Vitals.HeartRate, alert.Vitals.SpO2, alert.Vitals.Temperature,
			alert.Vitals.BloodPressure, alert.Vitals.RespiratoryRate), "", 1, "L", false, 0, "")
		if alert.TriggerDetail != "" {
			pdf.CellFormat(0, 5, fmt.Sprintf("  Detection: %s", alert.TriggerDetail), "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}
	pdf.Ln(5)
}

// addRiskOverview adds the per-patient risk score listing
func (g *PDFGenerator) addRiskOverview(pdf *gofpdf.Fpdf, patients []model.Patient, risks map[string]model.RiskScore) {
	g.addSectionHeader(pdf, "Patient Risk Overview")

	if len(patients) == 0 || len(risks) == 0 {
		pdf.CellFormat(0, 8, "No risk data available.", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	for _, patient := range patients {
		risk, ok := risks[patient.ID]
		if !ok {
			continue
		}
		pdf.CellFormat(0, 6, fmt.Sprintf("Room %d  %s (%s): %d (%s)",
			patient.Room, patient.Name, patient.Ward, risk.Score, risk.Label), "", 1, "L", false, 0, "")
	}
	pdf.Ln(5)
}
