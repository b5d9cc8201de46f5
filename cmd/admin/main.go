package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/wandertours/travel-admin/pkg/blog"
	"github.com/wandertours/travel-admin/pkg/booking"
	"github.com/wandertours/travel-admin/pkg/dashboard"
	"github.com/wandertours/travel-admin/pkg/directory"
	"github.com/wandertours/travel-admin/pkg/feedback"
	"github.com/wandertours/travel-admin/pkg/login"
	"github.com/wandertours/travel-admin/pkg/notification"
	"github.com/wandertours/travel-admin/pkg/schedule"
	"github.com/wandertours/travel-admin/pkg/storage"
	"github.com/wandertours/travel-admin/pkg/travelpackage"
	"github.com/wandertours/travel-admin/pkg/twofa"
)

type AdminDbConfig struct {
	Host     string `env:"ADMIN_PG_HOST" env-default:"localhost"`
	Port     uint16 `env:"ADMIN_PG_PORT" env-default:"5432"`
	Database string `env:"ADMIN_PG_DATABASE" env-default:"travel_admin_db"`
	User     string `env:"ADMIN_PG_USER" env-default:"travel_admin"`
	Password string `env:"ADMIN_PG_PASSWORD" env-default:"pwd"`
	Schema   string `env:"ADMIN_PG_SCHEMA" env-default:"public"`
}

func (d AdminDbConfig) toDatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable&search_path=%s,public",
		d.User, d.Password, d.Host, d.Port, d.Database, d.Schema)
}

type EmailConfig struct {
	Host     string `env:"EMAIL_HOST" env-default:"localhost"`
	Port     int    `env:"EMAIL_PORT" env-default:"1025"`
	Username string `env:"EMAIL_USERNAME" env-default:"noreply@example.com"`
	Password string `env:"EMAIL_PASSWORD" env-default:"pwd"`
	From     string `env:"EMAIL_FROM" env-default:"noreply@example.com"`
	TLS      bool   `env:"EMAIL_TLS" env-default:"false"`
}

type PhilSMSConfig struct {
	APIToken string `env:"PHILSMS_API_TOKEN"`
	SenderID string `env:"PHILSMS_SENDER_ID"`
	Endpoint string `env:"PHILSMS_ENDPOINT"`
}

type TwofaConfig struct {
	HMACSecret string `env:"TWOFA_HMAC_SECRET"`
}

type S3Config struct {
	Region        string `env:"S3_REGION" env-default:"us-east-1"`
	BaseEndpoint  string `env:"S3_ENDPOINT"`
	AccessKey     string `env:"S3_ACCESS_KEY"`
	SecretKey     string `env:"S3_SECRET_KEY"`
	PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
}

type DirectoryConfig struct {
	BaseURL  string `env:"DIRECTORY_BASE_URL"`
	APIToken string `env:"DIRECTORY_API_TOKEN"`
}

type Config struct {
	Addr            string `env:"ADMIN_ADDR" env-default:":4000"`
	AdminDbConfig   AdminDbConfig
	EmailConfig     EmailConfig
	PhilSMSConfig   PhilSMSConfig
	TwofaConfig     TwofaConfig
	S3Config        S3Config
	DirectoryConfig DirectoryConfig
}

// loadEnvFile loads environment variables from .env file if it exists.
// Only sets variables that are not already set in the environment.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		slog.Error("Failed to get current working directory", "error", err)
		return
	}
	envFile := filepath.Join(cwd, ".env")

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		slog.Info("No .env file found", "path", envFile)
		return
	}

	if err := godotenv.Load(envFile); err != nil {
		slog.Error("Failed to load .env file", "error", err, "path", envFile)
		return
	}

	slog.Info("Configuration loaded from .env file", "path", envFile)
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
	}))
	slog.SetDefault(logger)

	loadEnvFile()

	config := Config{}
	cleanenv.ReadEnv(&config)

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, config.AdminDbConfig.toDatabaseURL())
	if err != nil {
		slog.Error("Failed to create database pool", "error", err)
		os.Exit(-1)
	}
	defer pool.Close()

	notificationManager, err := notification.NewNotificationManagerWithOptions(
		notification.WithSMTP(notification.SMTPConfig{
			Host:     config.EmailConfig.Host,
			Port:     config.EmailConfig.Port,
			TLS:      config.EmailConfig.TLS,
			Username: config.EmailConfig.Username,
			Password: config.EmailConfig.Password,
			From:     config.EmailConfig.From,
		}),
		notification.WithPhilSMS(notification.PhilSMSConfig{
			APIToken: config.PhilSMSConfig.APIToken,
			SenderID: config.PhilSMSConfig.SenderID,
			Endpoint: config.PhilSMSConfig.Endpoint,
		}),
		notification.WithDefaultTemplates(),
	)
	if err != nil {
		slog.Error("Failed to create notification manager", "error", err)
		os.Exit(-1)
	}

	codeHasher, err := twofa.NewCodeHasher(config.TwofaConfig.HMACSecret)
	if err != nil {
		slog.Error("TWOFA_HMAC_SECRET must be set", "error", err)
		os.Exit(-1)
	}

	objectStore, err := storage.NewS3ObjectStore(ctx, storage.S3Config{
		Region:        config.S3Config.Region,
		BaseEndpoint:  config.S3Config.BaseEndpoint,
		AccessKey:     config.S3Config.AccessKey,
		SecretKey:     config.S3Config.SecretKey,
		PublicBaseURL: config.S3Config.PublicBaseURL,
	})
	if err != nil {
		slog.Error("Failed to create object store", "error", err)
		os.Exit(-1)
	}

	twoFaService := twofa.NewTwoFaService(
		twofa.NewPostgresChallengeRepository(pool),
		notificationManager,
		codeHasher,
	)
	loginService := login.NewLoginService(
		login.NewPostgresAdminRepository(pool),
		twoFaService,
		login.NewArgon2Hasher(),
	)

	packageRepo := travelpackage.NewPostgresPackageRepository(pool)
	packageService := travelpackage.NewPackageService(packageRepo, objectStore)

	bookingRepo := booking.NewPostgresBookingRepository(pool)
	bookingService := booking.NewBookingService(bookingRepo, packageRepo, notificationManager)

	blogService := blog.NewBlogService(blog.NewPostgresBlogRepository(pool), objectStore)

	scheduleService := schedule.NewScheduleService(
		schedule.NewPostgresScheduleRepository(pool),
		bookingRepo,
		packageRepo,
	)

	dashboardService := dashboard.NewDashboardService(bookingRepo, packageRepo)

	userDirectory := directory.NewRESTDirectory(directory.RESTDirectoryConfig{
		BaseURL:  config.DirectoryConfig.BaseURL,
		APIToken: config.DirectoryConfig.APIToken,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	login.NewHandler(loginService).RegisterRoutes(r)
	travelpackage.NewHandler(packageService).RegisterRoutes(r)
	booking.NewHandler(bookingService).RegisterRoutes(r)
	blog.NewHandler(blogService).RegisterRoutes(r)
	schedule.NewHandler(scheduleService).RegisterRoutes(r)
	feedback.NewHandler(feedback.NewPostgresFeedbackRepository(pool)).RegisterRoutes(r)
	dashboard.NewHandler(dashboardService).RegisterRoutes(r)
	directory.NewHandler(userDirectory).RegisterRoutes(r)

	slog.Info("Starting admin server", "addr", config.Addr)
	if err := http.ListenAndServe(config.Addr, r); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(-1)
	}
}
