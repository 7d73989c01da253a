package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/pawnecta/petsitting-backend/internal/address"
	"github.com/pawnecta/petsitting-backend/internal/agenda"
	"github.com/pawnecta/petsitting-backend/internal/api"
	"github.com/pawnecta/petsitting-backend/internal/application"
	"github.com/pawnecta/petsitting-backend/internal/auth"
	"github.com/pawnecta/petsitting-backend/internal/availability"
	"github.com/pawnecta/petsitting-backend/internal/booking"
	"github.com/pawnecta/petsitting-backend/internal/chat"
	"github.com/pawnecta/petsitting-backend/internal/media"
	"github.com/pawnecta/petsitting-backend/internal/notification"
	"github.com/pawnecta/petsitting-backend/internal/pet"
	"github.com/pawnecta/petsitting-backend/internal/pkg/storage"
	"github.com/pawnecta/petsitting-backend/internal/review"
	"github.com/pawnecta/petsitting-backend/internal/sitter"
	"github.com/pawnecta/petsitting-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	DBPool      *pgxpool.Pool
	RedisClient *redis.Client

	StoragePath string

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	SearchCacheTTL time.Duration
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Notification module, wired before the modules that emit events.
	notificationRepo := notification.NewPgxRepository(cfg.DBPool)
	notificationService := notification.NewService(notificationRepo)
	notifier := notification.NewNotifier(notificationService)

	// Pet module
	petRepo := pet.NewPgxRepository(cfg.DBPool)
	petService := pet.NewService(petRepo)

	// Address module
	addressRepo := address.NewPgxRepository(cfg.DBPool)
	addressService := address.NewService(addressRepo)

	// Availability module
	availabilityRepo := availability.NewPgxRepository(cfg.DBPool)
	availabilityService := availability.NewService(availabilityRepo, time.Now)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, petService, addressService, notifier)

	// Application module
	applicationRepo := application.NewPgxRepository(cfg.DBPool)
	applicationService := application.NewService(applicationRepo, bookingRepo, notifier)

	// Agenda projection
	agendaService := agenda.NewService(bookingRepo, applicationService)

	// Sitter module
	sitterRepo := sitter.NewPgxRepository(cfg.DBPool)
	sitterService := sitter.NewService(sitterRepo, cfg.RedisClient, cfg.SearchCacheTTL)

	// Review module
	reviewRepo := review.NewPgxRepository(cfg.DBPool)
	reviewService := review.NewService(reviewRepo)

	// Chat module
	chatRepo := chat.NewPgxRepository(cfg.DBPool)
	chatService := chat.NewService(chatRepo)

	// Media module
	mediaRepo := media.NewPgxRepository(cfg.DBPool)
	mediaService := media.NewService(mediaRepo, store)

	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		UserService:         userService,
		SitterService:       sitterService,
		PetService:          petService,
		AddressService:      addressService,
		AvailabilityService: availabilityService,
		BookingService:      bookingService,
		ApplicationService:  applicationService,
		AgendaService:       agendaService,
		NotificationService: notificationService,
		ReviewService:       reviewService,
		ChatService:         chatService,
		MediaService:        mediaService,
		JWTManager:          jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
