package utils

import "time"

var appLocation *time.Location

func init() {
	SetLocation("Asia/Karachi")
}

// SetLocation switches the timezone used for backup names and
// localized listing dates. Falls back to UTC for unknown names.
func SetLocation(name string) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		loc = time.UTC
	}
	appLocation = loc
}

// BackupFileName builds the blob name for a full backup taken at t,
// e.g. backup_2024-05-01_14-30-00.zip.
func BackupFileName(t time.Time) string {
	return "backup_" + t.In(appLocation).Format("2006-01-02_15-04-05") + ".zip"
}

// ArchiveFileName builds the blob name for an archive bundle,
// e.g. archive_2024-01-01_to_2024-03-31.zip.
func ArchiveFileName(startDate, endDate string) string {
	return "archive_" + startDate + "_to_" + endDate + ".zip"
}

// LocalizedDate renders a storage timestamp for the listing endpoint,
// e.g. 05/01/2024, 02:30:00 PM.
func LocalizedDate(t time.Time) string {
	return t.In(appLocation).Format("01/02/2006, 03:04:05 PM")
}
