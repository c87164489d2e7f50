package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"unitutor/internal/config"
	"unitutor/internal/database"
	"unitutor/internal/jobs"
	"unitutor/internal/middleware"
	"unitutor/internal/modules/admin"
	"unitutor/internal/modules/auth"
	"unitutor/internal/modules/chat"
	"unitutor/internal/modules/profile"
	"unitutor/internal/modules/rating"
	"unitutor/internal/modules/session"
	"unitutor/internal/modules/ticket"
	"unitutor/internal/modules/tutors"
	jwtsvc "unitutor/internal/pkg/jwt"
	"unitutor/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	chatRepo := repository.NewChatRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := chat.NewHub()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	profileService := profile.NewService(profileRepo)
	profileHandler := profile.NewHandler(profileService)

	tutorsService := tutors.NewService(profileRepo, userRepo, ratingRepo)
	tutorsHandler := tutors.NewHandler(tutorsService)

	sessionService := session.NewService(sessionRepo, userRepo)
	sessionHandler := session.NewHandler(sessionService)

	ratingService := rating.NewService(ratingRepo, sessionRepo)
	ratingHandler := rating.NewHandler(ratingService)

	chatService := chat.NewService(chatRepo, sessionRepo, userRepo, hub)
	chatHandler := chat.NewHandler(chatService, hub, j)

	ticketService := ticket.NewService(ticketRepo)
	ticketHandler := ticket.NewHandler(ticketService)

	adminService := admin.NewService(sessionRepo, ticketRepo, userRepo, profileRepo, ratingRepo)
	adminHandler := admin.NewHandler(adminService)

	sweeper := jobs.NewDisputeSweeper(sessionRepo, cfg.DisputeGrace)
	if err := sweeper.Start(cfg.DisputeCron); err != nil {
		log.Fatal(err)
	}
	defer sweeper.Stop()

	r := gin.Default()
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		tutorsHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			profileHandler.RegisterRoutes(protected)
			sessionHandler.RegisterRoutes(protected)
			ratingHandler.RegisterRoutes(protected)
			chatHandler.RegisterRoutes(protected)
			ticketHandler.RegisterRoutes(protected)

			adminGroup := protected.Group("/")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminGroup)
			}
		}
	}

	// websocket carries its token as a query parameter
	chatHandler.RegisterWS(r, "/api/v1")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
