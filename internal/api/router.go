package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pawnecta/petsitting-backend/internal/address"
	addressHttp "github.com/pawnecta/petsitting-backend/internal/address/http"
	"github.com/pawnecta/petsitting-backend/internal/agenda"
	agendaHttp "github.com/pawnecta/petsitting-backend/internal/agenda/http"
	"github.com/pawnecta/petsitting-backend/internal/application"
	applicationHttp "github.com/pawnecta/petsitting-backend/internal/application/http"
	"github.com/pawnecta/petsitting-backend/internal/auth"
	"github.com/pawnecta/petsitting-backend/internal/availability"
	availabilityHttp "github.com/pawnecta/petsitting-backend/internal/availability/http"
	"github.com/pawnecta/petsitting-backend/internal/booking"
	bookingHttp "github.com/pawnecta/petsitting-backend/internal/booking/http"
	"github.com/pawnecta/petsitting-backend/internal/chat"
	chatHttp "github.com/pawnecta/petsitting-backend/internal/chat/http"
	"github.com/pawnecta/petsitting-backend/internal/media"
	mediaHttp "github.com/pawnecta/petsitting-backend/internal/media/http"
	"github.com/pawnecta/petsitting-backend/internal/notification"
	notificationHttp "github.com/pawnecta/petsitting-backend/internal/notification/http"
	"github.com/pawnecta/petsitting-backend/internal/pet"
	petHttp "github.com/pawnecta/petsitting-backend/internal/pet/http"
	"github.com/pawnecta/petsitting-backend/internal/review"
	reviewHttp "github.com/pawnecta/petsitting-backend/internal/review/http"
	"github.com/pawnecta/petsitting-backend/internal/sitter"
	sitterHttp "github.com/pawnecta/petsitting-backend/internal/sitter/http"
	"github.com/pawnecta/petsitting-backend/internal/user"
	userHttp "github.com/pawnecta/petsitting-backend/internal/user/http"
)

// Config holds everything the router needs to assemble the HTTP surface.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService         user.Service
	SitterService       sitter.Service
	PetService          pet.Service
	AddressService      address.Service
	AvailabilityService availability.Service
	BookingService      booking.Service
	ApplicationService  application.Service
	AgendaService       agenda.Service
	NotificationService notification.Service
	ReviewService       review.Service
	ChatService         chat.Service
	MediaService        media.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Auth) and registers routes for
// every module under /v1.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:8081",
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware validates the JWT and loads role flags for the caller.
	authMiddleware := auth.AuthRequired(cfg.JWTManager, NewIdentityLoader(cfg.UserService))
	sitterMiddleware := RequireSitter()
	adminMiddleware := RequireAdmin()

	authHandler := NewAuthHandler(cfg.UserService, cfg.JWTManager)
	userHandler := userHttp.NewHandler(cfg.UserService)
	sitterHandler := sitterHttp.NewHandler(cfg.SitterService)
	petHandler := petHttp.NewHandler(cfg.PetService)
	addressHandler := addressHttp.NewHandler(cfg.AddressService)
	availabilityHandler := availabilityHttp.NewHandler(cfg.AvailabilityService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	applicationHandler := applicationHttp.NewHandler(cfg.ApplicationService)
	agendaHandler := agendaHttp.NewHandler(cfg.AgendaService)
	notificationHandler := notificationHttp.NewHandler(cfg.NotificationService)
	reviewHandler := reviewHttp.NewHandler(cfg.ReviewService)
	chatHandler := chatHttp.NewHandler(cfg.ChatService)
	mediaHandler := mediaHttp.NewHandler(cfg.MediaService)

	v1 := r.Group("/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
		v1.GET("/me", authMiddleware, authHandler.Me)
		v1.PATCH("/me", authMiddleware, authHandler.UpdateMe)

		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		sitterHttp.RegisterRoutes(v1, sitterHandler, authMiddleware, sitterMiddleware)
		petHttp.RegisterRoutes(v1, petHandler, authMiddleware)
		addressHttp.RegisterRoutes(v1, addressHandler, authMiddleware)
		availabilityHttp.RegisterRoutes(v1, availabilityHandler, authMiddleware, sitterMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, sitterMiddleware, adminMiddleware)
		applicationHttp.RegisterRoutes(v1, applicationHandler, authMiddleware, sitterMiddleware)
		agendaHttp.RegisterRoutes(v1, agendaHandler, authMiddleware, sitterMiddleware)
		notificationHttp.RegisterRoutes(v1, notificationHandler, authMiddleware)
		reviewHttp.RegisterRoutes(v1, reviewHandler, authMiddleware, adminMiddleware)
		chatHttp.RegisterRoutes(v1, chatHandler, authMiddleware)
		mediaHttp.RegisterRoutes(v1, mediaHandler, authMiddleware)
	}

	return r
}
