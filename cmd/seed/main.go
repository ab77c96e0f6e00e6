package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shul/internal/config"
	"shul/internal/db"
	apperrors "shul/internal/errors"
	"shul/internal/model"
	"shul/internal/repository"
)

// seedPrayerTime is one row of the default prayer schedule.
type seedPrayerTime struct {
	name      string
	time      string
	dayOfWeek *int
	isHoliday bool
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Announcement{},
		&model.PrayerTime{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	if err := seedAdmin(ctx, repository.NewUserRepository(gormDB)); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	if err := seedPrayerTimes(ctx, repository.NewPrayerTimeRepository(gormDB)); err != nil {
		log.Fatalf("Failed to seed prayer times: %v", err)
	}

	if err := seedWelcomeAnnouncement(ctx, repository.NewAnnouncementRepository(gormDB)); err != nil {
		log.Fatalf("Failed to seed welcome announcement: %v", err)
	}

	log.Println("Seed completed successfully!")
}

// seedAdmin upserts the administrator account from ADMIN_USERNAME and
// ADMIN_PASSWORD. Both are required so a default credential never ships.
func seedAdmin(ctx context.Context, users repository.UserRepository) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	existing, err := users.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	if existing != nil {
		existing.PasswordHash = string(hash)
		existing.Role = model.RoleAdmin
		if err := users.Update(ctx, existing); err != nil {
			return err
		}
		log.Printf("Updated admin user %q", username)
		return nil
	}

	if err := users.Create(ctx, &model.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}); err != nil {
		return err
	}
	log.Printf("Created admin user %q", username)
	return nil
}

// seedPrayerTimes loads the default weekly and holiday schedule if the table
// is empty. Existing schedules are never touched.
func seedPrayerTimes(ctx context.Context, prayerTimes repository.PrayerTimeRepository) error {
	count, err := prayerTimes.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Prayer times already present (%d rows), skipping", count)
		return nil
	}

	var rows []seedPrayerTime
	// Sunday through Thursday share the weekday schedule.
	for day := 0; day <= 4; day++ {
		d := day
		rows = append(rows,
			seedPrayerTime{name: "שחרית", time: "06:30", dayOfWeek: &d},
			seedPrayerTime{name: "מנחה", time: "18:30", dayOfWeek: &d},
			seedPrayerTime{name: "ערבית", time: "19:15", dayOfWeek: &d},
		)
	}
	friday := 5
	saturday := 6
	rows = append(rows,
		seedPrayerTime{name: "שחרית", time: "06:30", dayOfWeek: &friday},
		seedPrayerTime{name: "מנחה וקבלת שבת", time: "18:45", dayOfWeek: &friday},
		seedPrayerTime{name: "שחרית של שבת", time: "08:30", dayOfWeek: &saturday},
		seedPrayerTime{name: "מנחה של שבת", time: "17:30", dayOfWeek: &saturday},
		seedPrayerTime{name: "ערבית ומוצאי שבת", time: "19:45", dayOfWeek: &saturday},
		seedPrayerTime{name: "שחרית של חג", time: "08:30", isHoliday: true},
		seedPrayerTime{name: "מנחה של חג", time: "17:30", isHoliday: true},
		seedPrayerTime{name: "ערבית של חג", time: "19:45", isHoliday: true},
	)

	for _, row := range rows {
		if err := prayerTimes.Create(ctx, &model.PrayerTime{
			Name:      row.name,
			Time:      row.time,
			DayOfWeek: row.dayOfWeek,
			IsHoliday: row.isHoliday,
		}); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d prayer times", len(rows))
	return nil
}

// seedWelcomeAnnouncement publishes a starter announcement when the site has
// none at all.
func seedWelcomeAnnouncement(ctx context.Context, announcements repository.AnnouncementRepository) error {
	existing, err := announcements.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("Announcements already present (%d rows), skipping", len(existing))
		return nil
	}

	now := time.Now()
	if err := announcements.Create(ctx, &model.Announcement{
		Title:     "ברוכים הבאים לאתר בית הכנסת",
		Content:   "האתר החדש שלנו עלה לאוויר. כאן תוכלו למצוא זמני תפילות, הודעות ואירועים קהילתיים.",
		StartDate: now,
		EndDate:   now.AddDate(0, 1, 0),
		IsActive:  true,
	}); err != nil {
		return err
	}
	log.Println("Seeded welcome announcement")
	return nil
}
