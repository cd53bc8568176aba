package handlers

import (
	"MachCatalog/internal/config"
	"MachCatalog/internal/middleware"
	"MachCatalog/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	authService *service.AuthService,
	catalogService *service.CatalogService,
	imageService *service.ImageService,
	contactService *service.ContactService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	authHandler := NewAuthHandler(authService, logger)
	machineHandler := NewMachineHandler(catalogService, logger)
	imageHandler := NewImageHandler(imageService, logger, config)
	contactHandler := NewContactHandler(contactService, logger)

	// Public routes
	r.Get("/api/machines", machineHandler.ListPublic)
	r.Post("/api/admin/login", authHandler.Login)
	r.Post("/api/contact", contactHandler.Submit)

	// Admin routes (bearer-токен обязателен)
	r.Get("/api/admin/machines", machineHandler.ListAdmin)
	r.Post("/api/admin/machines", machineHandler.Create)
	r.Put("/api/admin/machines/{id}", machineHandler.Update)
	r.Delete("/api/admin/machines/{id}", machineHandler.Delete)
	r.Post("/api/admin/machines/{id}/image", imageHandler.Upload)
	r.Delete("/api/admin/machines/{id}/images/{imageID}", imageHandler.Delete)

	return &Handler{Router: r}
}
