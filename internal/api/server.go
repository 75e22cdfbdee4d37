package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/withsocio/socio-backend/config"
	"github.com/withsocio/socio-backend/infra/queue"
	"github.com/withsocio/socio-backend/internal/api/rest/handlers"
	"github.com/withsocio/socio-backend/internal/api/rest/middleware"
	"github.com/withsocio/socio-backend/internal/domain"
	"github.com/withsocio/socio-backend/internal/mail"
	"github.com/withsocio/socio-backend/internal/repository"
	"github.com/withsocio/socio-backend/internal/services"
	"github.com/withsocio/socio-backend/pkg/cloudinary"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Content-Type, Accept, x-admin-password",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260115

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.Application{},
		&domain.InterviewScore{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	producer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	cld, err := cloudinary.New(cfg.CloudinaryURL)
	if err != nil {
		log.Fatalf("cloudinary init error: %v", err)
	}
	uploader := cloudinary.NewResumeUploader(cld)
	mailer := mail.NewMailer(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.MailFrom,
		cfg.MailFromName,
	)
	templates := mail.Templates{
		BaseURL:      cfg.SiteBaseURL,
		CareersEmail: cfg.CareersEmail,
	}

	// ---------- Repositories ----------
	appRepo := repository.NewApplicationRepository(db)
	scoreRepo := repository.NewScoreRepository(db)

	// ---------- Services ----------
	appSvc := services.NewApplicationService(appRepo, uploader, producer, cfg.ResumeFolder)
	scoreSvc := services.NewScoreService(scoreRepo)
	notifySvc := services.NewNotifyService(mailer, templates)
	exportSvc := services.NewExportService(appRepo)

	// ---------- Handlers ----------
	applyHandler := handlers.NewApplyHandler(appSvc)
	applicantHandler := handlers.NewApplicantHandler(appSvc)
	scoreHandler := handlers.NewScoreHandler(scoreSvc)
	notifyHandler := handlers.NewNotifyHandler(notifySvc)
	exportHandler := handlers.NewExportHandler(exportSvc)
	campusHandler := handlers.NewCampusHandler()

	// ---------- Routes ----------
	app.Post("/api/apply", applyHandler.Submit)
	app.Get("/api/campuses/:campusId", campusHandler.Get)

	admin := app.Group("/api/admin", middleware.AdminAuth(cfg.AdminPassword))
	admin.Get("/applicants", applicantHandler.List)
	admin.Post("/applicants", applicantHandler.UpdateStatus)
	admin.Get("/scores", scoreHandler.List)
	admin.Post("/scores", scoreHandler.Upsert)
	admin.Post("/notify", notifyHandler.Send)
	admin.Get("/export", exportHandler.Download)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}
