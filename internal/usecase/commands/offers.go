package commands

import (
	"context"
	"errors"

	"autofin/internal/domain/listing"
	"autofin/internal/domain/offer"
	"autofin/internal/infra"
	"autofin/internal/infra/quote"
	"autofin/internal/pkg/errs"
	"autofin/internal/usecase/shared"
)

type OfferCommands interface {
	Claim(ctx context.Context, userID string, offerID int64) error
	Unclaim(ctx context.Context, userID string, offerID int64) error
	UpdateLoanAmount(ctx context.Context, userID string, offerID int64, loanAmount float64) (*listing.Listing, error)
}

type offerCommandsImpl struct {
	cars   CarReadStore
	users  UserRepository
	offers shared.OfferRepository
	quotes quote.Client
}

func NewOfferCommands(
	cars CarReadStore,
	users UserRepository,
	offers shared.OfferRepository,
	quotes quote.Client,
) OfferCommands {
	return &offerCommandsImpl{cars: cars, users: users, offers: offers, quotes: quotes}
}

func (o *offerCommandsImpl) Claim(ctx context.Context, userID string, offerID int64) error {
	return o.setClaimed(ctx, userID, offerID, true)
}

func (o *offerCommandsImpl) Unclaim(ctx context.Context, userID string, offerID int64) error {
	return o.setClaimed(ctx, userID, offerID, false)
}

func (o *offerCommandsImpl) setClaimed(ctx context.Context, userID string, offerID int64, claimed bool) error {
	store, err := o.bindStore(userID)
	if err != nil {
		return err
	}

	var markErr error
	if claimed {
		markErr = store.MarkClaimed(ctx, offerID)
	} else {
		markErr = store.MarkUnclaimed(ctx, offerID)
	}
	if markErr != nil {
		if infra.IsKind(markErr, infra.KindNotFound) {
			return errs.Mark(markErr, errs.ErrOfferNotFound)
		}
		return markErr
	}
	return nil
}

// UpdateLoanAmount renegotiates one offer with the rate service at a new
// principal, keeping the user's stored budget and down payment. A decline
// here is an error, unlike during search, because the caller asked for this
// specific offer.
func (o *offerCommandsImpl) UpdateLoanAmount(ctx context.Context, userID string, offerID int64, loanAmount float64) (*listing.Listing, error) {
	u, err := o.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, err
	}

	store, err := o.bindStore(userID)
	if err != nil {
		return nil, err
	}

	current, err := store.GetByID(ctx, offerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOfferNotFound)
		}
		return nil, err
	}

	c, err := o.cars.FindByID(ctx, current.CarID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCarNotFound)
		}
		return nil, err
	}

	approval, err := o.quotes.Quote(ctx, quote.Request{
		LoanAmount:   loanAmount,
		CreditScore:  u.CreditScore,
		PytBudget:    u.BudgetMo,
		VehicleMake:  c.Brand,
		VehicleModel: c.Model,
		VehicleYear:  c.Year,
		VehicleKms:   c.Kms,
		ListPrice:    c.Price,
		DownPayment:  u.DownPayment,
	})
	if err != nil {
		if errors.Is(err, quote.ErrDeclined) {
			return nil, errs.Mark(err, errs.ErrQuoteDeclined)
		}
		return nil, errs.Wrap(err, "failed to renegotiate loan amount")
	}

	terms := offer.Terms{
		LoanAmount:   approval.Amount,
		CapitalSum:   approval.CapitalSum,
		InterestSum:  approval.InterestSum,
		TotalSum:     approval.TotalSum,
		InterestRate: approval.InterestRate,
		TermMo:       approval.TermMo,
		Installments: approval.Installments,
	}
	if err := store.UpdateTerms(ctx, offerID, terms); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOfferNotFound)
		}
		return nil, err
	}

	updated, err := store.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	merged, err := listing.Merge(*c, *updated)
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

func (o *offerCommandsImpl) bindStore(userID string) (*shared.OfferStore, error) {
	if userID == "" {
		return nil, errs.Mark(errs.New("user id is required"), errs.ErrEmptyUserID)
	}
	store := shared.NewOfferStore(o.offers)
	if err := store.Bind(userID); err != nil {
		return nil, err
	}
	return store, nil
}
