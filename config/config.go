package config

import (
	"Henteklar/models"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/api/option"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	fs "cloud.google.com/go/firestore"
)

const (
	DriverFirestore = "firestore"
	DriverPostgres  = "postgres"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Port        string `validate:"required,numeric"`
	AppEnv      string `validate:"required"`
	StoreDriver string `validate:"oneof=firestore postgres"`
	Timezone    string `validate:"required"`
	LogFile     bool
	JWTSecret   string `validate:"required,min=16"`

	FirebaseCredentialsPath string
	FirebaseProjectID       string
	FirebaseAPIKey          string

	DBHost     string `validate:"required_if=StoreDriver postgres"`
	DBUser     string `validate:"required_if=StoreDriver postgres"`
	DBPassword string
	DBName     string `validate:"required_if=StoreDriver postgres"`
	DBPort     string `validate:"required_if=StoreDriver postgres"`
	DBSSLMode  string

	GoogleClientID        string
	GoogleClientSecret    string
	MicrosoftClientID     string
	MicrosoftClientSecret string
	MicrosoftTenant       string
	OAuthRedirectBase     string `validate:"omitempty,url"`

	AWSRegion    string
	SESFromEmail string `validate:"omitempty,email"`
	SESFromName  string
	AppBaseURL   string `validate:"omitempty,url"`

	TranslationsFile string
}

// Load reads the configuration from the environment. Call godotenv.Load first
// to pick up a .env file.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                    getenv("PORT", "8000"),
		AppEnv:                  getenv("APP_ENV", "development"),
		StoreDriver:             getenv("STORE_DRIVER", DriverFirestore),
		Timezone:                getenv("TIMEZONE", "Europe/Oslo"),
		LogFile:                 os.Getenv("LOG_FILE") == "true",
		JWTSecret:               os.Getenv("JWT_SECRET"),
		FirebaseCredentialsPath: os.Getenv("FIREBASE_CREDENTIALS_PATH"),
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseAPIKey:          os.Getenv("FIREBASE_API_KEY"),
		DBHost:                  os.Getenv("DB_HOST"),
		DBUser:                  os.Getenv("DB_USER"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  os.Getenv("DB_NAME"),
		DBPort:                  getenv("DB_PORT", "5432"),
		DBSSLMode:               os.Getenv("DB_SSLMODE"),
		GoogleClientID:          os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:      os.Getenv("GOOGLE_CLIENT_SECRET"),
		MicrosoftClientID:       os.Getenv("MICROSOFT_CLIENT_ID"),
		MicrosoftClientSecret:   os.Getenv("MICROSOFT_CLIENT_SECRET"),
		MicrosoftTenant:         getenv("MICROSOFT_TENANT", "common"),
		OAuthRedirectBase:       os.Getenv("OAUTH_REDIRECT_BASE"),
		AWSRegion:               getenv("AWS_REGION", "eu-north-1"),
		SESFromEmail:            os.Getenv("SES_FROM_EMAIL"),
		SESFromName:             getenv("SES_FROM_NAME", "Henteklar"),
		AppBaseURL:              os.Getenv("APP_BASE_URL"),
		TranslationsFile:        os.Getenv("TRANSLATIONS_FILE"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	return cfg, nil
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitLogger builds a colored console logger, teed into a JSON file under
// logs/ when toFile is set.
func InitLogger(env string, toFile bool) (*zap.Logger, error) {
	consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
	consoleEncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleLevel := zapcore.InfoLevel
	if env == "development" {
		consoleLevel = zapcore.DebugLevel
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig), zapcore.AddSync(os.Stdout), consoleLevel),
	}

	if toFile {
		if err := os.MkdirAll("logs", 0755); err != nil {
			return nil, fmt.Errorf("failed to create logs directory: %w", err)
		}
		name := filepath.Join("logs", fmt.Sprintf("%s_%s.log", env, time.Now().Format("2006-01-02_15-04-05")))
		logFile, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}

		fileEncoderConfig := zap.NewProductionEncoderConfig()
		fileEncoderConfig.TimeKey = "timestamp"
		fileEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig), zapcore.AddSync(logFile), zapcore.DebugLevel))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// InitDatabase opens the PostgreSQL store and migrates its tables.
func InitDatabase(cfg *Config, logger *zap.Logger) (*gorm.DB, error) {
	sslmode := cfg.DBSSLMode
	if sslmode == "" {
		if strings.Contains(cfg.DBHost, "render.com") {
			sslmode = "require"
		} else {
			sslmode = "disable"
		}
	}

	logger.Info("connecting to database",
		zap.String("host", cfg.DBHost),
		zap.String("user", cfg.DBUser),
		zap.String("dbname", cfg.DBName),
		zap.String("port", cfg.DBPort),
		zap.String("sslmode", sslmode))

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, sslmode, cfg.Timezone)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.Account{},
		&models.Child{},
		&models.CheckinLog{},
		&models.HistoryEntry{},
		&models.CalendarEvent{},
		&models.Settings{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	logger.Info("connected to database")
	return db, nil
}

// Firebase holds the clients of one Firebase app.
type Firebase struct {
	App       *firebase.App
	Auth      *auth.Client
	Messaging *messaging.Client
	Firestore *fs.Client
}

// InitFirebase initializes the Firebase app. The Firestore client is only
// opened when withFirestore is set.
func InitFirebase(ctx context.Context, cfg *Config, withFirestore bool) (*Firebase, error) {
	var opts []option.ClientOption
	if cfg.FirebaseCredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsPath))
	}
	var appConfig *firebase.Config
	if cfg.FirebaseProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Auth client: %w", err)
	}
	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Messaging client: %w", err)
	}

	fb := &Firebase{App: app, Auth: authClient, Messaging: messagingClient}
	if withFirestore {
		fb.Firestore, err = app.Firestore(ctx)
		if err != nil {
			return nil, fmt.Errorf("error getting Firestore client: %w", err)
		}
	}
	return fb, nil
}

func (f *Firebase) Close() error {
	if f.Firestore != nil {
		return f.Firestore.Close()
	}
	return nil
}
