package repository

import (
	"context"
	"errors"

	"autofin/internal/domain/offer"
	"autofin/internal/infra"
	"autofin/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isPgErrCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// OfferRepository persists offers for all users in a single table keyed by
// (user_id, offer_id). Every operation is scoped to one user.
type OfferRepository struct {
	pool *pgxpool.Pool
}

func NewOfferRepository(pool *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{pool: pool}
}

const offerColumns = `offer_id, car_id, loan_amount, capital_sum, interest_sum, total_sum, interest_rate, term_mo, installments, claimed`

func (r *OfferRepository) Insert(ctx context.Context, userID string, d offer.Draft) (int64, error) {
	var offerID int64
	err := r.pool.QueryRow(ctx, `
INSERT INTO offers (
  user_id, car_id, loan_amount, capital_sum, interest_sum, total_sum,
  interest_rate, term_mo, installments, claimed
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING offer_id
`, userID, d.CarID,
		pgconv.Float64ToNumeric(d.LoanAmount),
		pgconv.Float64ToNumeric(d.CapitalSum),
		pgconv.Float64ToNumeric(d.InterestSum),
		pgconv.Float64ToNumeric(d.TotalSum),
		d.InterestRate, d.TermMo, d.Installments, d.Claimed,
	).Scan(&offerID)
	if err != nil {
		switch {
		case isPgErrCode(err, pgUniqueViolation):
			return 0, infra.WrapRepoErr("offer already exists for this car", err, infra.KindDuplicateKey)
		case isPgErrCode(err, pgForeignKeyViolation):
			return 0, infra.WrapRepoErr("offer references missing user or car", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to insert offer", err)
	}
	return offerID, nil
}

func (r *OfferRepository) FindByID(ctx context.Context, userID string, offerID int64) (*offer.Offer, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+offerColumns+`
FROM offers
WHERE user_id = $1 AND offer_id = $2
`, userID, offerID)

	o, err := scanOffer(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer by id", err)
	}
	return &o, nil
}

func (r *OfferRepository) FindAll(ctx context.Context, userID string) ([]offer.Offer, error) {
	return r.findMany(ctx, `
SELECT `+offerColumns+`
FROM offers
WHERE user_id = $1
ORDER BY offer_id
`, userID)
}

func (r *OfferRepository) FindClaimed(ctx context.Context, userID string) ([]offer.Offer, error) {
	return r.findMany(ctx, `
SELECT `+offerColumns+`
FROM offers
WHERE user_id = $1 AND claimed
ORDER BY offer_id
`, userID)
}

func (r *OfferRepository) SetClaimed(ctx context.Context, userID string, offerID int64, claimed bool) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE offers
SET claimed = $3
WHERE user_id = $1 AND offer_id = $2
`, userID, offerID, claimed)
	if err != nil {
		return infra.WrapRepoErr("failed to update claimed flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}

// UpdateTerms replaces the financial fields of an offer after a successful
// loan-amount renegotiation. Id and claimed flag are untouched.
func (r *OfferRepository) UpdateTerms(ctx context.Context, userID string, offerID int64, t offer.Terms) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE offers
SET loan_amount = $3, capital_sum = $4, interest_sum = $5, total_sum = $6,
    interest_rate = $7, term_mo = $8, installments = $9
WHERE user_id = $1 AND offer_id = $2
`, userID, offerID,
		pgconv.Float64ToNumeric(t.LoanAmount),
		pgconv.Float64ToNumeric(t.CapitalSum),
		pgconv.Float64ToNumeric(t.InterestSum),
		pgconv.Float64ToNumeric(t.TotalSum),
		t.InterestRate, t.TermMo, t.Installments)
	if err != nil {
		return infra.WrapRepoErr("failed to update offer terms", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OfferRepository) DeleteByID(ctx context.Context, userID string, offerID int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM offers WHERE user_id = $1 AND offer_id = $2`, userID, offerID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OfferRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM offers WHERE user_id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to clear offers", err)
	}
	return nil
}

func (r *OfferRepository) Exists(ctx context.Context, userID string, offerID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM offers WHERE user_id = $1 AND offer_id = $2)`,
		userID, offerID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check offer existence", err)
	}
	return exists, nil
}

func (r *OfferRepository) CountForUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM offers WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count offers", err)
	}
	return count, nil
}

func (r *OfferRepository) findMany(ctx context.Context, query string, userID string) ([]offer.Offer, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	defer rows.Close()

	var offers []offer.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer", err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate offers", err)
	}
	return offers, nil
}

func scanOffer(row rowScanner) (offer.Offer, error) {
	var o offer.Offer
	err := row.Scan(
		&o.ID, &o.CarID, &o.LoanAmount, &o.CapitalSum, &o.InterestSum,
		&o.TotalSum, &o.InterestRate, &o.TermMo, &o.Installments, &o.Claimed,
	)
	if err != nil {
		return offer.Offer{}, err
	}
	return o, nil
}
