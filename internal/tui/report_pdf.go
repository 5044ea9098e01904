package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"pomo/internal/database"
	"pomo/internal/models"
)

func modeTitle(mode string) string {
	switch mode {
	case models.ModeWork:
		return "Work"
	case models.ModeShortBreak:
		return "Short Break"
	case models.ModeLongBreak:
		return "Long Break"
	}
	return mode
}

// GeneratePDFReport writes a focus report for date (YYYY-MM-DD) into dir and
// returns the report path.
func GeneratePDFReport(store *database.Store, date, dir string) (string, error) {
	sessions, err := store.SessionsForDay(date)
	if err != nil {
		return "", err
	}
	summary, err := store.DaySummary(date)
	if err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Focus Report: %s", date))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	if len(sessions) == 0 {
		pdf.Cell(0, 8, "No completed intervals.")
		pdf.Ln(8)
	}
	for _, sess := range sessions {
		line := fmt.Sprintf("%s  %-11s  %s",
			sess.CompletedAt.Format("15:04"),
			modeTitle(sess.Mode),
			FormatDuration(time.Duration(sess.DurationSeconds)*time.Second))
		if sess.Mode == models.ModeWork {
			line += fmt.Sprintf("  (session %d)", sess.SessionNumber)
		}
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Work sessions: %d", summary.WorkSessions))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Focused: %s", FormatDuration(time.Duration(summary.FocusSeconds)*time.Second)))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("On break: %s", FormatDuration(time.Duration(summary.BreakSeconds)*time.Second)))

	path := filepath.Join(dir, fmt.Sprintf("pomo-%s.pdf", date))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}
	return path, nil
}
