package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/courtside/club-backend/internal/announcement"
	"github.com/courtside/club-backend/internal/api"
	"github.com/courtside/club-backend/internal/auth"
	"github.com/courtside/club-backend/internal/club"
	"github.com/courtside/club-backend/internal/config"
	"github.com/courtside/club-backend/internal/court"
	"github.com/courtside/club-backend/internal/media"
	"github.com/courtside/club-backend/internal/payment"
	"github.com/courtside/club-backend/internal/pkg/cache"
	"github.com/courtside/club-backend/internal/pkg/storage"
	"github.com/courtside/club-backend/internal/reservation"
	"github.com/courtside/club-backend/internal/user"
	"github.com/courtside/club-backend/internal/wallet"
)

const paymentKeyTTL = 15 * time.Minute

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	RedisClient  *redis.Client
	Locale       *config.Locale
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	MediaDir     string
	PendingTTL   time.Duration
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router             *gin.Engine
	JWTManager         *auth.JWTManager
	ReservationService reservation.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	reportCache := cache.New(cfg.RedisClient)

	localStorage, err := storage.NewLocalStorage(cfg.MediaDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init media storage: %w", err)
	}

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Club Module
	clubRepo := club.NewPgxRepository(cfg.DBPool)
	clubService := club.NewService(clubRepo, userService)

	// Court Module
	courtRepo := court.NewPgxRepository(cfg.DBPool)
	courtService := court.NewService(courtRepo, clubService)

	// Wallet Module
	walletRepo := wallet.NewPgxRepository(cfg.DBPool)
	walletService := wallet.NewService(walletRepo)

	// Payment Module
	paymentFetcher := payment.NewPgxRepository(cfg.DBPool)
	paymentService := payment.NewService(paymentFetcher, payment.NewKeyCache(paymentKeyTTL))

	// Reservation Module
	reservationRepo := reservation.NewPgxRepository(cfg.DBPool)
	reservationService := reservation.NewService(
		reservationRepo,
		courtService,
		clubService,
		walletService,
		reportCache,
		cfg.PendingTTL,
	)

	// Announcement Module
	annRepo := announcement.NewPgxRepository(cfg.DBPool)
	annService := announcement.NewService(annRepo)

	// Media Module
	mediaRepo := media.NewRepository(cfg.DBPool)
	mediaService := media.NewService(mediaRepo, localStorage)

	// API Router Config
	routerParams := api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		Locale:             cfg.Locale,
		UserService:        userService,
		ClubService:        clubService,
		CourtService:       courtService,
		WalletService:      walletService,
		PaymentService:     paymentService,
		ReservationService: reservationService,
		AnnService:         annService,
		MediaService:       mediaService,
		JWTManager:         jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:             router,
		JWTManager:         jwtManager,
		ReservationService: reservationService,
	}, nil
}
