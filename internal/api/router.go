package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/courtside/club-backend/internal/announcement"
	annHttp "github.com/courtside/club-backend/internal/announcement/http"
	"github.com/courtside/club-backend/internal/auth"
	"github.com/courtside/club-backend/internal/club"
	clubHttp "github.com/courtside/club-backend/internal/club/http"
	"github.com/courtside/club-backend/internal/config"
	"github.com/courtside/club-backend/internal/court"
	courtHttp "github.com/courtside/club-backend/internal/court/http"
	"github.com/courtside/club-backend/internal/media"
	mediaHttp "github.com/courtside/club-backend/internal/media/http"
	"github.com/courtside/club-backend/internal/payment"
	paymentHttp "github.com/courtside/club-backend/internal/payment/http"
	"github.com/courtside/club-backend/internal/pkg/metrics"
	"github.com/courtside/club-backend/internal/reservation"
	reservationHttp "github.com/courtside/club-backend/internal/reservation/http"
	"github.com/courtside/club-backend/internal/user"
	userHttp "github.com/courtside/club-backend/internal/user/http"
	"github.com/courtside/club-backend/internal/wallet"
	walletHttp "github.com/courtside/club-backend/internal/wallet/http"
)

// Config bundles everything the router needs to assemble the API.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Locale       *config.Locale

	UserService        user.Service
	ClubService        club.Service
	CourtService       court.Service
	WalletService      wallet.Service
	PaymentService     payment.Service
	ReservationService reservation.Service
	AnnService         announcement.Service
	MediaService       media.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth, Metrics)
// and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(metrics.Middleware())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// sysAdminMiddleware: Further checks if the authenticated user has System Admin privileges.
	sysAdminMiddleware := RequireSystemAdmin(cfg.UserService)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewUserHandler(cfg.UserService, cfg.JWTManager)
	clubHandler := clubHttp.NewHandler(cfg.ClubService)
	courtHandler := courtHttp.NewHandler(cfg.CourtService, cfg.ClubService)
	walletHandler := walletHttp.NewHandler(cfg.WalletService, cfg.ClubService)
	paymentHandler := paymentHttp.NewHandler(cfg.PaymentService, cfg.ClubService)
	reservationHandler := reservationHttp.NewHandler(cfg.ReservationService, cfg.ClubService)
	annHandler := annHttp.NewHandler(cfg.AnnService, cfg.ClubService)
	mediaHandler := mediaHttp.NewHandler(cfg.MediaService, cfg.ClubService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		v1.GET("/locale", func(c *gin.Context) {
			c.JSON(http.StatusOK, cfg.Locale)
		})

		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, sysAdminMiddleware)
		clubHttp.RegisterRoutes(v1, clubHandler, authMiddleware)
		courtHttp.RegisterRoutes(v1, courtHandler, authMiddleware)
		walletHttp.RegisterRoutes(v1, walletHandler, authMiddleware)
		paymentHttp.RegisterRoutes(v1, paymentHandler, authMiddleware)
		reservationHttp.RegisterRoutes(v1, reservationHandler, authMiddleware)
		annHttp.RegisterRoutes(v1, annHandler, authMiddleware)
		mediaHttp.RegisterRoutes(v1, mediaHandler, authMiddleware)
	}

	return r
}
