package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/services"
)

// Start wires the two daily jobs: full backup at 02:00 and retention
// cleanup at 03:00, both in the configured timezone. The returned cron
// runs on its own goroutine.
func Start(backup *services.BackupService, notify *services.NotifyService, timezone string) (*cron.Cron, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}

	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc("0 2 * * *", func() {
		log.Println("⏰ Auto Backup Running...")
		fileName, err := backup.Create(context.Background())
		if err != nil {
			log.Println("❌ Auto backup failed:", err)
			notify.Send("Backup failed", fmt.Sprintf("Scheduled backup failed: %v", err))
			return
		}
		notify.Send("Backup completed", fmt.Sprintf("Backup uploaded: %s", fileName))
	})
	if err != nil {
		return nil, err
	}

	_, err = c.AddFunc("0 3 * * *", func() {
		log.Println("🧹 Cleanup Old Backups...")
		deleted, err := backup.Cleanup(context.Background())
		if err != nil {
			log.Println("❌ Cleanup failed:", err)
			return
		}
		if deleted == 0 {
			log.Println("✅ No old backups to delete")
			return
		}
		log.Printf("🗑️ Deleted %d old backups\n", deleted)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
