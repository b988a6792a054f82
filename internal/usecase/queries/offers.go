package queries

import (
	"context"

	"autofin/internal/domain/car"
	"autofin/internal/domain/listing"
	"autofin/internal/domain/offer"
	"autofin/internal/infra"
	"autofin/internal/pkg/errs"
	"autofin/internal/usecase/shared"
)

// CarReader is the catalog lookup the read side needs.
type CarReader interface {
	FindByID(ctx context.Context, id int32) (*car.Car, error)
}

type OfferQueries interface {
	GetOfferDetails(ctx context.Context, userID string, offerID int64) (*listing.Listing, error)
	GetClaimedOffers(ctx context.Context, userID string) ([]listing.Listing, error)
}

type offerQueriesImpl struct {
	cars   CarReader
	offers shared.OfferRepository
}

func NewOfferQueries(cars CarReader, offers shared.OfferRepository) OfferQueries {
	return &offerQueriesImpl{cars: cars, offers: offers}
}

func (q *offerQueriesImpl) GetOfferDetails(ctx context.Context, userID string, offerID int64) (*listing.Listing, error) {
	store, err := q.bindStore(userID)
	if err != nil {
		return nil, err
	}

	o, err := store.GetByID(ctx, offerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOfferNotFound)
		}
		return nil, err
	}

	merged, err := q.merge(ctx, *o)
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

func (q *offerQueriesImpl) GetClaimedOffers(ctx context.Context, userID string) ([]listing.Listing, error) {
	store, err := q.bindStore(userID)
	if err != nil {
		return nil, err
	}

	claimed, err := store.GetClaimed(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]listing.Listing, 0, len(claimed))
	for _, o := range claimed {
		merged, err := q.merge(ctx, o)
		if err != nil {
			return nil, err
		}
		listings = append(listings, merged)
	}
	return listings, nil
}

func (q *offerQueriesImpl) merge(ctx context.Context, o offer.Offer) (listing.Listing, error) {
	c, err := q.cars.FindByID(ctx, o.CarID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return listing.Listing{}, errs.Mark(err, errs.ErrCarNotFound)
		}
		return listing.Listing{}, err
	}
	return listing.Merge(*c, o)
}

func (q *offerQueriesImpl) bindStore(userID string) (*shared.OfferStore, error) {
	if userID == "" {
		return nil, errs.Mark(errs.New("user id is required"), errs.ErrEmptyUserID)
	}
	store := shared.NewOfferStore(q.offers)
	if err := store.Bind(userID); err != nil {
		return nil, err
	}
	return store, nil
}
