package listing

import (
	"errors"

	"autofin/internal/domain/car"
	"autofin/internal/domain/offer"
)

var ErrZeroTermMonths = errors.New("offer has zero term months")

// Listing is the flattened car+offer view returned to callers. It is built
// per response and never persisted. Financed is false for catalog-only rows
// (guest search), in which case the offer fields are zero.
type Listing struct {
	CarID        int32
	Brand        string
	Model        string
	Year         int32
	Price        float64
	Kms          float64
	OfferID      int64
	LoanAmount   float64
	CapitalSum   float64
	InterestSum  float64
	TotalSum     float64
	InterestRate float64
	TermMo       float64
	Installments string
	Claimed      bool
	PaymentMo    float64
	Financed     bool
}

// Merge combines a car with one of its offers into a single flat record and
// computes the derived monthly payment. A zero term is a data-integrity
// error, never coerced to zero or infinity.
func Merge(c car.Car, o offer.Offer) (Listing, error) {
	if o.TermMo == 0 {
		return Listing{}, ErrZeroTermMonths
	}
	return Listing{
		CarID:        c.ID,
		Brand:        c.Brand,
		Model:        c.Model,
		Year:         c.Year,
		Price:        c.Price,
		Kms:          c.Kms,
		OfferID:      o.ID,
		LoanAmount:   o.LoanAmount,
		CapitalSum:   o.CapitalSum,
		InterestSum:  o.InterestSum,
		TotalSum:     o.TotalSum,
		InterestRate: o.InterestRate,
		TermMo:       o.TermMo,
		Installments: o.Installments,
		Claimed:      o.Claimed,
		PaymentMo:    o.TotalSum / o.TermMo,
		Financed:     true,
	}, nil
}

// FromCar builds a catalog-only listing with no financing information.
func FromCar(c car.Car) Listing {
	return Listing{
		CarID: c.ID,
		Brand: c.Brand,
		Model: c.Model,
		Year:  c.Year,
		Price: c.Price,
		Kms:   c.Kms,
	}
}
