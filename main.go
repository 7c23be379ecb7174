package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/config"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/controllers"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/idgen"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/middleware"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/migration"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/repositories"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/routes"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/scheduler"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/services"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/storage"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/utils"
)

func main() {

	app := fiber.New()

	config.LoadConfig()
	utils.SetLocation(config.AppTimezone)

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()

	store, err := storage.NewMinioStore(config.StorageEndpoint, config.StorageAccessKey, config.StorageSecretKey, config.StorageUseSSL)
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	backupAuth := middleware.NewStaticPassword(config.BackupPassword)
	adminAuth := middleware.NewStaticPassword(config.AdminPassword)

	backupService := services.NewBackupService(repositories.NewBackupRepository(db), store, config.BackupBucket, config.RetentionDays)
	archiveService := services.NewArchiveService(repositories.NewArchiveRepository(db), store, config.ArchiveBucket)
	notifyService := services.NewNotifyService(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword, config.NotifyReceiver)

	// Setup CORS middleware
	config.SetupCORS(app)

	// Setup routes
	routes.SetupBackupRoutes(app, controllers.NewBackupController(backupService, backupAuth))
	routes.SetupSnapshotRoutes(app, controllers.NewSnapshotController(db, adminAuth))
	routes.SetupReportRoutes(app, controllers.NewReportController(db))
	routes.SetupArchiveRoutes(app, controllers.NewArchiveController(db, archiveService, adminAuth))
	routes.SetupMiscRoutes(app, controllers.NewPingController(db), controllers.NewInvoiceController(db))

	// Daily backup and cleanup jobs
	if _, err := scheduler.Start(backupService, notifyService, config.AppTimezone); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
