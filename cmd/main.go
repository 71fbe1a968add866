package main

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"jobhive/api/handler"
	apiMiddleware "jobhive/api/middleware"
	"jobhive/api/routes"
	"jobhive/config"
	"jobhive/internal/repository"
	"jobhive/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	db := config.ConnectionDb()
	validate := validator.New()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if err := config.Migrate(db); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}

	sessionLifetime := service.SessionLifetime
	if raw := os.Getenv("SESSION_LIFETIME"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			logger.Fatal("SESSION_LIFETIME must be a positive number of seconds")
		}
		sessionLifetime = time.Duration(seconds) * time.Second
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	employerRepo := repository.NewEmployerRepository(db)
	applicantRepo := repository.NewApplicantRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	securityRepo := repository.NewSecurityLogRepository(db)

	passwordHasher := service.BcryptPasswordHasher{}

	sessionService := service.NewSessionService(
		sessionRepo,
		logger,
		service.RealClock{},
		service.SessionConfig{Lifetime: sessionLifetime},
	)
	authService := service.NewAuthService(
		userRepo,
		employerRepo,
		applicantRepo,
		sessionService,
		securityRepo,
		passwordHasher,
	)
	jobService := service.NewJobService(jobRepo)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo)
	profileService := service.NewProfileService(
		userRepo,
		employerRepo,
		applicantRepo,
		sessionService,
		passwordHasher,
	)

	cookies := apiMiddleware.NewSessionCookies(sessionLifetime)
	cookies.Domain = os.Getenv("COOKIE_DOMAIN")
	cookies.Secure = os.Getenv("COOKIE_SECURE") != "false"

	authHandler := handler.NewAuthHandler(authService, validate, cookies)
	jobHandler := handler.NewJobHandler(jobService, validate)
	applicationHandler := handler.NewApplicationHandler(applicationService, validate)
	profileHandler := handler.NewProfileHandler(profileService, validate, cookies)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{Sessions: sessionService, Cookies: cookies}
	router := routes.NewRouter(app, authHandler, jobHandler, applicationHandler, profileHandler, authMiddleware)
	router.RegisterRoutes()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", addr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
