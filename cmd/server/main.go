package main

import (
	"context"

	"staffhub/internal/config"
	"staffhub/internal/model"
	"staffhub/internal/server"
	"staffhub/internal/service"
	"staffhub/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	logger := logrus.New()
	if cfg.AppEnv == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseDSN())
	if err != nil {
		logger.Fatalf("failed to connect database: %v", err)
	}
	if err := migrate(db); err != nil {
		logger.Fatalf("migration failed: %v", err)
	}
	if err := seedAdminUser(db, cfg, logger); err != nil {
		logger.Fatalf("failed to seed admin user: %v", err)
	}

	redisClient := connectRedis(cfg, logger)

	sender := service.NewSMTPSender(cfg.MailFrom, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost, cfg.SMTPPort)
	mailer := service.NewMailDispatcher(sender, cfg.BaseURL, cfg.MailQueueSize, cfg.MailMaxAttempts)
	defer mailer.Close()

	srv := server.NewServer(db, redisClient, cfg, mailer, logger)

	logger.WithField("port", cfg.Port).Info("starting server")
	if err := srv.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Todo{},
		&model.DailyUpdate{},
		&model.WorkingHoursSummary{},
		&model.Leave{},
	)
}

func connectRedis(cfg *config.Config, logger *logrus.Logger) *redis.Client {
	if cfg.RedisURL == "" {
		logger.Warn("REDIS_URL not set, team hours cache and live updates disabled")
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Fatalf("invalid REDIS_URL: %v", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.WithError(err).Warn("redis unreachable, continuing without cache")
		return nil
	}

	logger.Info("connected to redis")
	return client
}

// seedAdminUser guarantees one superuser admin exists. The superuser cannot
// be created through the API, so without the seed there is no way into the
// hierarchy.
func seedAdminUser(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", cfg.AdminEmail).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("admin user already exists, skipping seed")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.User{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashedPassword),
		FirstName:    "System",
		LastName:     "Administrator",
		Role:         model.RoleAdmin,
		IsActive:     true,
		IsSuperuser:  true,
		IsVerified:   true,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.WithField("email", cfg.AdminEmail).Info("admin user seeded")
	return nil
}
