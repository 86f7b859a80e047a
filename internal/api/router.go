package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bandroomhq/bandroom-backend/internal/auth"
	"github.com/bandroomhq/bandroom-backend/internal/concert"
	concertHttp "github.com/bandroomhq/bandroom-backend/internal/concert/http"
	"github.com/bandroomhq/bandroom-backend/internal/ensemble"
	ensembleHttp "github.com/bandroomhq/bandroom-backend/internal/ensemble/http"
	"github.com/bandroomhq/bandroom-backend/internal/member"
	memberHttp "github.com/bandroomhq/bandroom-backend/internal/member/http"
	"github.com/bandroomhq/bandroom-backend/internal/reservation"
	reservationHttp "github.com/bandroomhq/bandroom-backend/internal/reservation/http"
)

// Config carries the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	MemberService      member.Service
	ReservationService reservation.Service
	EnsembleService    ensemble.Service
	ConcertService     concert.Service

	JWTManager *auth.JWTManager
}

// NewRouter assembles middleware and registers routes for all modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := RequireAdmin(cfg.MemberService)

	memberHandler := memberHttp.NewHandler(cfg.MemberService, cfg.JWTManager)
	reservationHandler := reservationHttp.NewHandler(cfg.ReservationService, cfg.MemberService)
	ensembleHandler := ensembleHttp.NewHandler(cfg.EnsembleService)
	concertHandler := concertHttp.NewHandler(cfg.ConcertService)

	v1 := r.Group("/v1")
	{
		memberHttp.RegisterRoutes(v1, memberHandler, authMiddleware, adminMiddleware)
		reservationHttp.RegisterRoutes(v1, reservationHandler, authMiddleware)
		ensembleHttp.RegisterRoutes(v1, ensembleHandler, authMiddleware)
		concertHttp.RegisterRoutes(v1, concertHandler, authMiddleware)
	}

	return r
}
