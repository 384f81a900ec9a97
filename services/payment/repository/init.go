package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/bekzodtm/shoppay/internal/pkg/database"
	"github.com/bekzodtm/shoppay/internal/pkg/models"
)

// PaymentRepo implements the payment repository interface
type PaymentRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewPaymentRepo creates a new payment repository instance
func NewPaymentRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *PaymentRepo {
	return &PaymentRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
