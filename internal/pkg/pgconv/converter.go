package pgconv

import (
	"database/sql"
	"errors"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidNumericValue = errors.New("invalid numeric value in pgtype")

func Float64FromNumeric(pn pgtype.Numeric) (float64, error) {
	if !pn.Valid {
		return 0, ErrInvalidNumericValue
	}
	value, err := pn.Float64Value()
	if err != nil {
		return 0, ErrInvalidNumericValue
	}
	return value.Float64, nil
}

func Float64ToNumeric(f float64) pgtype.Numeric {
	bf := new(big.Float).SetFloat64(f)
	// Keep two fractional digits, matching the currency columns. Rounded half
	// away from zero: truncation would store values like 0.29 (binary
	// 0.2899...) one cent low.
	scaled := new(big.Float).Mul(bf, big.NewFloat(100))
	half := big.NewFloat(0.5)
	if scaled.Signbit() {
		half.Neg(half)
	}
	rounded, _ := scaled.Add(scaled, half).Int(nil)
	return pgtype.Numeric{Int: rounded, Exp: -2, Valid: true}
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := pt.Time
	return &t
}

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
