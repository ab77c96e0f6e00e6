package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "shul/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"shul/internal/auth"
	"shul/internal/cache"
	"shul/internal/config"
	"shul/internal/db"
	"shul/internal/handler"
	"shul/internal/hebcal"
	"shul/internal/kesher"
	"shul/internal/mailer"
	"shul/internal/model"
	"shul/internal/repository"
	"shul/internal/router"
	"shul/internal/service"
	"shul/internal/storage"
)

// @title Synagogue Site API
// @version 1.0
// @description Content-managed synagogue website backend: announcements, prayer times, gallery, memorial days, donations, and Hebrew calendar data.
// @host localhost:3000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Announcement{},
		&model.PrayerTime{},
		&model.ImageCategory{},
		&model.Image{},
		&model.MemorialDay{},
		&model.Contact{},
		&model.Event{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	fileStore, err := storage.NewDisk(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload dir init: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	announcementRepo := repository.NewAnnouncementRepository(gormDB)
	prayerTimeRepo := repository.NewPrayerTimeRepository(gormDB)
	imageRepo := repository.NewImageRepository(gormDB)
	memorialRepo := repository.NewMemorialDayRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)

	// Outbound clients
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	contactMailer := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SynagogueEmail)
	gateway := kesher.NewClient(kesher.Config{
		APIURL:        cfg.KesherAPIURL,
		Username:      cfg.KesherUsername,
		Password:      cfg.KesherPassword,
		Terminal:      cfg.KesherTerminal,
		PublicBaseURL: cfg.PublicBaseURL,
		TestMode:      cfg.KesherTestMode,
	})
	hebcalClient := hebcal.NewClient()

	// Services
	authService := service.NewAuthService(userRepo, jwtService)
	announcementService := service.NewAnnouncementService(announcementRepo)
	prayerTimeService := service.NewPrayerTimeService(prayerTimeRepo)
	galleryService := service.NewGalleryService(imageRepo, fileStore)
	memorialService := service.NewMemorialService(memorialRepo)
	contactService := service.NewContactService(contactRepo, contactMailer)
	eventService := service.NewEventService(eventRepo)
	calendarService := service.NewCalendarService(hebcalClient, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)
	prayerTimeHandler := handler.NewPrayerTimeHandler(prayerTimeService)
	galleryHandler := handler.NewGalleryHandler(galleryService)
	memorialHandler := handler.NewMemorialHandler(memorialService)
	contactHandler := handler.NewContactHandler(contactService)
	eventHandler := handler.NewEventHandler(eventService)
	paymentHandler := handler.NewPaymentHandler(gateway)
	calendarHandler := handler.NewCalendarHandler(calendarService)

	router.Register(
		e,
		cfg,
		jwtService,
		userRepo,
		authHandler,
		announcementHandler,
		prayerTimeHandler,
		galleryHandler,
		memorialHandler,
		contactHandler,
		eventHandler,
		paymentHandler,
		calendarHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown: %v", err)
	}
}
