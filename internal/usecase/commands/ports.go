package commands

import (
	"context"
	"time"

	"autofin/internal/domain/car"
	"autofin/internal/domain/user"
)

type CarReadStore interface {
	FindAll(ctx context.Context) ([]car.Car, error)
	FindByID(ctx context.Context, id int32) (*car.Car, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*user.User, error)
	Exists(ctx context.Context, userID string) (bool, error)
	Create(ctx context.Context, u user.User) error
	UpdateSearchParams(ctx context.Context, userID string, downPayment, budgetMo float64, quotedAt time.Time) error
}
