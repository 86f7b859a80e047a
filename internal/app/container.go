package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/bandroomhq/bandroom-backend/internal/api"
	"github.com/bandroomhq/bandroom-backend/internal/auth"
	"github.com/bandroomhq/bandroom-backend/internal/concert"
	"github.com/bandroomhq/bandroom-backend/internal/ensemble"
	"github.com/bandroomhq/bandroom-backend/internal/member"
	"github.com/bandroomhq/bandroom-backend/internal/pkg/storage"
	"github.com/bandroomhq/bandroom-backend/internal/reservation"
	"github.com/bandroomhq/bandroom-backend/internal/schedule"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	DBPool      *pgxpool.Pool
	RedisClient *redis.Client

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	RoomOpen  int
	RoomClose int

	StoragePath string
	PollTTL     time.Duration
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// The one validator instance encodes the room's opening hours; every
	// booking path shares it.
	validator, err := schedule.NewValidator(cfg.RoomOpen, cfg.RoomClose)
	if err != nil {
		return nil, fmt.Errorf("invalid room opening hours: %w", err)
	}

	fileStore, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init file storage failed: %w", err)
	}

	// Member Module
	memberRepo := member.NewPgxRepository(cfg.DBPool)
	memberService := member.NewService(memberRepo, passwordHasher)

	// Reservation Module
	reservationRepo := reservation.NewPgxRepository(cfg.DBPool)
	reservationService := reservation.NewService(reservationRepo, validator)

	// Ensemble Module
	ensembleRepo := ensemble.NewRedisRepository(cfg.RedisClient, cfg.PollTTL)
	ensembleService := ensemble.NewService(ensembleRepo, reservationService)

	// Concert Module
	concertRepo := concert.NewPgxRepository(cfg.DBPool)
	concertService := concert.NewService(concertRepo, fileStore, storage.NewImageProcessor())

	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		MemberService:      memberService,
		ReservationService: reservationService,
		EnsembleService:    ensembleService,
		ConcertService:     concertService,
		JWTManager:         jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
