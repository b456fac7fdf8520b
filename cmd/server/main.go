// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/adspark/adspark-backend/internal/ai"
	"github.com/adspark/adspark-backend/internal/auth"
	"github.com/adspark/adspark-backend/internal/config"
	"github.com/adspark/adspark-backend/internal/controller"
	"github.com/adspark/adspark-backend/internal/db"
	"github.com/adspark/adspark-backend/internal/repository"
	"github.com/adspark/adspark-backend/internal/service"
	"github.com/adspark/adspark-backend/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer conn.Close()
	logger.Info("connected to database")

	store, err := storage.NewImageStore(cfg.UploadDir)
	if err != nil {
		logger.Fatal("failed to prepare upload dir", zap.Error(err))
	}

	generator, err := ai.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Fatal("failed to create gemini client", zap.Error(err))
	}

	adminRepo := &repository.AdminRepository{DB: conn}
	userRepo := &repository.UserRepository{DB: conn}
	campaignRepo := &repository.CampaignRepository{DB: conn}
	postRepo := &repository.PostRepository{DB: conn}

	authService := &service.AuthService{
		AdminRepo: adminRepo,
		UserRepo:  userRepo,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
	}
	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
		UserRepo:     userRepo,
		Store:        store,
		Logger:       logger,
	}
	contentService := &service.ContentService{
		CampaignRepo: campaignRepo,
		PostRepo:     postRepo,
		Generator:    generator,
		Timeout:      cfg.GenerationTimeout,
		Logger:       logger,
	}

	authController := &controller.AuthController{AuthService: authService, Logger: logger}
	campaignController := &controller.CampaignController{
		CampaignService: campaignService,
		Store:           store,
		Logger:          logger,
	}
	contentController := &controller.ContentController{
		ContentService:  contentService,
		CampaignService: campaignService,
		Logger:          logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Get("/api/auth/list", authController.List)
	r.Post("/api/auth/register", authController.Register)
	r.Post("/api/auth/login", authController.Login)

	r.Get("/api/campaigns/target", campaignController.Target)
	r.Get("/api/campaigns/images/{filename}", campaignController.Image)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin(cfg.JWTSecret, adminRepo))
		r.Post("/api/campaigns", campaignController.Create)
		r.Get("/api/campaigns", campaignController.List)
		r.Delete("/api/campaigns/{id}", campaignController.Delete)
		r.Post("/api/campaigns/{id}/generate-post", contentController.GeneratePost)
	})

	r.Post("/api/gemini", contentController.Generate)
	r.Post("/api/gemini/{campaignID}", contentController.CampaignSummary)

	logger.Info("server listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
