package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pomo/internal/models"
)

func TestGeneratePDFReport(t *testing.T) {
	store := openTestStore(t)
	completed := time.Date(2026, 8, 26, 10, 25, 0, 0, time.UTC)
	_, err := store.RecordSession(models.Session{
		Mode:            models.ModeWork,
		StartedAt:       completed.Add(-25 * time.Minute),
		CompletedAt:     completed,
		DurationSeconds: 1500,
		SessionNumber:   1,
	})
	if err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}

	dir := t.TempDir()
	path, err := GeneratePDFReport(store, "2026-08-26", dir)
	if err != nil {
		t.Fatalf("GeneratePDFReport failed: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("report written outside target dir: %s", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("report file is empty")
	}
}

func TestGeneratePDFReportEmptyDay(t *testing.T) {
	store := openTestStore(t)
	if _, err := GeneratePDFReport(store, "2026-01-01", t.TempDir()); err != nil {
		t.Fatalf("empty day report failed: %v", err)
	}
}

func TestModeTitle(t *testing.T) {
	if modeTitle(models.ModeWork) != "Work" || modeTitle(models.ModeShortBreak) != "Short Break" || modeTitle(models.ModeLongBreak) != "Long Break" {
		t.Fatalf("unexpected mode titles")
	}
	if modeTitle("mystery") != "mystery" {
		t.Fatalf("unknown modes should pass through")
	}
}
