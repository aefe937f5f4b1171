package main

import (
	"Henteklar/config"
	"Henteklar/controllers"
	"Henteklar/models"
	"Henteklar/routes"
	"Henteklar/services"
	"Henteklar/websocket"
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := config.InitLogger(cfg.AppEnv, cfg.LogFile)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	fb, err := config.InitFirebase(ctx, cfg, cfg.StoreDriver == config.DriverFirestore)
	if err != nil {
		logger.Fatal("failed to initialize Firebase", zap.Error(err))
	}
	defer fb.Close()

	repos, err := config.OpenStores(cfg, fb, logger)
	if err != nil {
		logger.Fatal("failed to open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}

	// Identity
	var verifier services.IdentityVerifier
	if cfg.FirebaseAPIKey != "" {
		toolkit, err := services.NewIdentityToolkitClient(ctx, cfg.FirebaseAPIKey)
		if err != nil {
			logger.Fatal("failed to create identity toolkit client", zap.Error(err))
		}
		verifier = toolkit
	} else {
		logger.Warn("FIREBASE_API_KEY not set, password and provider sign-in disabled")
	}
	identity := services.NewFirebaseIdentity(fb.Auth, cfg.AppBaseURL)
	tokens := services.NewTokenIssuer(cfg.JWTSecret)
	providers := services.NewOAuthProviders(services.OAuthSettings{
		GoogleClientID:        cfg.GoogleClientID,
		GoogleClientSecret:    cfg.GoogleClientSecret,
		MicrosoftClientID:     cfg.MicrosoftClientID,
		MicrosoftClientSecret: cfg.MicrosoftClientSecret,
		MicrosoftTenant:       cfg.MicrosoftTenant,
		RedirectBase:          cfg.OAuthRedirectBase,
	})

	mailer, err := services.NewEmailService(ctx, cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, logger)
	if err != nil {
		logger.Fatal("failed to initialize email service", zap.Error(err))
	}

	// Services
	var overrides []models.Translation
	if cfg.TranslationsFile != "" {
		overrides, err = services.LoadTranslations(cfg.TranslationsFile)
		if err != nil {
			logger.Fatal("failed to load translations", zap.Error(err))
		}
		logger.Info("loaded translation overrides", zap.Int("count", len(overrides)))
	}
	translationService := services.NewTranslationService(overrides...)
	guardianService := services.NewGuardianService(repos.Accounts, repos.Children, logger)
	visibilityService := services.NewVisibilityService(guardianService, repos.Children, repos.Logs, repos.History, cfg.Location(), logger)
	childService := services.NewChildService(repos.Children, repos.History, guardianService, logger)
	accountService := services.NewAccountService(repos.Accounts, repos.Children, identity, mailer, logger)
	authService := services.NewAuthService(repos.Accounts, verifier, identity, tokens, providers, mailer, logger)
	calendarService := services.NewCalendarService(repos.Calendar, logger)
	settingsService := services.NewSettingsService(repos.Settings, logger)

	hub := websocket.NewHub(logger)
	attendanceService := services.NewAttendanceService(repos.Children, repos.Logs, cfg.Location(), logger)
	attendanceService.Publisher = hub
	attendanceService.Notifier = services.NewNotificationService(fb.Messaging, translationService, repos.Accounts, logger)

	// Set services in controllers
	controllers.SetLogger(logger)
	controllers.SetTranslationService(translationService)
	controllers.SetAuthService(authService)
	controllers.SetChildService(childService)
	controllers.SetVisibilityService(visibilityService)
	controllers.SetAttendanceService(attendanceService)
	controllers.SetAccountService(accountService)
	controllers.SetCalendarService(calendarService)
	controllers.SetSettingsService(settingsService)
	controllers.SetWebSocketHub(hub)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	routes.RegisterRoutes(r, tokens, authService)

	logger.Info("starting server",
		zap.String("port", cfg.Port),
		zap.String("store", cfg.StoreDriver),
		zap.Int("oauth_providers", len(providers)))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
