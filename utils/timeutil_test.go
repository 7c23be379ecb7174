package utils

import (
	"testing"
	"time"
)

func TestBackupFileName(t *testing.T) {
	SetLocation("Asia/Karachi")

	// 09:00 UTC is 14:00 in Karachi (UTC+5, no DST)
	ts := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	got := BackupFileName(ts)
	want := "backup_2024-05-01_14-00-00.zip"
	if got != want {
		t.Errorf("BackupFileName = %s, want %s", got, want)
	}
}

func TestArchiveFileName(t *testing.T) {
	got := ArchiveFileName("2024-01-01", "2024-03-31")
	want := "archive_2024-01-01_to_2024-03-31.zip"
	if got != want {
		t.Errorf("ArchiveFileName = %s, want %s", got, want)
	}
}

func TestLocalizedDate(t *testing.T) {
	SetLocation("Asia/Karachi")

	ts := time.Date(2024, 5, 1, 9, 30, 15, 0, time.UTC)
	got := LocalizedDate(ts)
	want := "05/01/2024, 02:30:15 PM"
	if got != want {
		t.Errorf("LocalizedDate = %s, want %s", got, want)
	}
}
