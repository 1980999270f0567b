package routes

import (
	"log"

	"jobghar/internal/config"
	"jobghar/internal/database"
	"jobghar/internal/delivery/http/handler"
	"jobghar/internal/delivery/http/middleware"
	"jobghar/internal/domain/user"
	"jobghar/internal/infrastructure/storage"
	"jobghar/internal/pkg/jwt"
	"jobghar/internal/repository"
	"jobghar/internal/usecase"
	"jobghar/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"
)

type Registry struct {
	cfg    config.Config
	authMw *middleware.AuthMiddleware

	health       *handler.HealthHandler
	auth         *handler.AuthHandler
	jobs         *handler.JobHandler
	applications *handler.ApplicationHandler
	wsHandler    *ws.Handler

	uploadDir string
}

func NewRegistry(cfg config.Config, db database.DB, cache usecase.JobListCache, hub *ws.Hub, logger *log.Logger) (*Registry, error) {
	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	userRepo := repository.NewPostgresUserRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)

	cvStorage, err := storage.NewLocal(cfg.Upload.Dir)
	if err != nil {
		return nil, err
	}

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	jobUC := usecase.NewJobUsecase(jobRepo, cache, logger)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, userRepo, ws.NewNotifier(hub))

	return &Registry{
		cfg:    cfg,
		authMw: middleware.NewAuthMiddleware(jwtSvc),

		health:       handler.NewHealthHandler(),
		auth:         handler.NewAuthHandler(authUC),
		jobs:         handler.NewJobHandler(jobUC),
		applications: handler.NewApplicationHandler(applicationUC, cvStorage, cfg.Upload.MaxSizeBytes),
		wsHandler:    ws.NewHandler(hub, logger),

		uploadDir: cvStorage.Dir(),
	}, nil
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	auth := r.authMw.Middleware()
	employerOnly := middleware.RequireRole(user.RoleEmployer)

	r.health.RegisterRoutes(app)

	r.auth.RegisterRoutes(app.Group("/auth"))
	r.jobs.RegisterRoutes(app.Group("/job"), auth)
	r.applications.RegisterRoutes(app.Group("/applications", auth))

	app.Get("/ws/applications", r.wsHandler.HandleApplicationsWS, auth, employerOnly)

	// Stored CVs stay retrievable at the reference path saved on the
	// application record.
	app.Use("/uploads", static.New(r.uploadDir))
}
