package repository

import (
	"context"
	"time"

	"autofin/internal/domain/user"
	"autofin/internal/infra"
	"autofin/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (*user.User, error) {
	var u user.User
	var quotedAt pgtype.Timestamptz
	err := r.pool.QueryRow(ctx, `
SELECT user_id, credit_score, down_payment, budget_mo, quoted_at
FROM users
WHERE user_id = $1
`, userID).Scan(&u.ID, &u.CreditScore, &u.DownPayment, &u.BudgetMo, &quotedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	u.QuotedAt = pgconv.TimePtrFromPgtype(quotedAt)
	return &u, nil
}

func (r *UserRepository) Exists(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)`, userID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO users (user_id, credit_score, down_payment, budget_mo, quoted_at)
VALUES ($1, $2, $3, $4, $5)
`, u.ID, u.CreditScore,
		pgconv.Float64ToNumeric(u.DownPayment),
		pgconv.Float64ToNumeric(u.BudgetMo),
		pgconv.TimePtrToPgtype(u.QuotedAt))
	if err != nil {
		if isPgErrCode(err, pgUniqueViolation) {
			return infra.WrapRepoErr("user already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

// UpdateSearchParams persists the parameters of the latest search together
// with the rebuild timestamp.
func (r *UserRepository) UpdateSearchParams(ctx context.Context, userID string, downPayment, budgetMo float64, quotedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE users
SET down_payment = $2, budget_mo = $3, quoted_at = $4
WHERE user_id = $1
`, userID,
		pgconv.Float64ToNumeric(downPayment),
		pgconv.Float64ToNumeric(budgetMo),
		pgconv.TimePtrToPgtype(&quotedAt))
	if err != nil {
		return infra.WrapRepoErr("failed to update search params", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
