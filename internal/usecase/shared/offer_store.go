package shared

import (
	"context"

	"autofin/internal/domain/offer"
	"autofin/internal/pkg/errs"
)

var (
	ErrStoreUnbound = errs.New("offer store is not bound to a user")
	ErrStoreRebound = errs.New("offer store is already bound to another user")
)

// OfferRepository is the persistence surface behind the per-user store.
type OfferRepository interface {
	Insert(ctx context.Context, userID string, d offer.Draft) (int64, error)
	FindByID(ctx context.Context, userID string, offerID int64) (*offer.Offer, error)
	FindAll(ctx context.Context, userID string) ([]offer.Offer, error)
	FindClaimed(ctx context.Context, userID string) ([]offer.Offer, error)
	SetClaimed(ctx context.Context, userID string, offerID int64, claimed bool) error
	UpdateTerms(ctx context.Context, userID string, offerID int64, t offer.Terms) error
	DeleteByID(ctx context.Context, userID string, offerID int64) error
	DeleteAllForUser(ctx context.Context, userID string) error
	Exists(ctx context.Context, userID string, offerID int64) (bool, error)
	CountForUser(ctx context.Context, userID string) (int64, error)
}

// OfferStore is a repository handle bound to exactly one user for its
// lifetime. It replaces shared mutable "current user" state with an explicit
// per-request object.
type OfferStore struct {
	repo   OfferRepository
	userID string
}

func NewOfferStore(repo OfferRepository) *OfferStore {
	return &OfferStore{repo: repo}
}

// Bind fixes the store to a user. Binding the same user again is a no-op;
// binding a different user onto a bound store is a programming error.
func (s *OfferStore) Bind(userID string) error {
	if userID == "" {
		return errs.Mark(errs.New("bind requires a user id"), ErrStoreUnbound)
	}
	if s.userID != "" && s.userID != userID {
		return ErrStoreRebound
	}
	s.userID = userID
	return nil
}

func (s *OfferStore) UserID() string {
	return s.userID
}

func (s *OfferStore) Add(ctx context.Context, d offer.Draft) (int64, error) {
	if err := s.bound(); err != nil {
		return 0, err
	}
	return s.repo.Insert(ctx, s.userID, d)
}

func (s *OfferStore) GetByID(ctx context.Context, offerID int64) (*offer.Offer, error) {
	if err := s.bound(); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, s.userID, offerID)
}

func (s *OfferStore) GetAll(ctx context.Context) ([]offer.Offer, error) {
	if err := s.bound(); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, s.userID)
}

func (s *OfferStore) GetClaimed(ctx context.Context) ([]offer.Offer, error) {
	if err := s.bound(); err != nil {
		return nil, err
	}
	return s.repo.FindClaimed(ctx, s.userID)
}

func (s *OfferStore) MarkClaimed(ctx context.Context, offerID int64) error {
	if err := s.bound(); err != nil {
		return err
	}
	return s.repo.SetClaimed(ctx, s.userID, offerID, true)
}

func (s *OfferStore) MarkUnclaimed(ctx context.Context, offerID int64) error {
	if err := s.bound(); err != nil {
		return err
	}
	return s.repo.SetClaimed(ctx, s.userID, offerID, false)
}

func (s *OfferStore) UpdateTerms(ctx context.Context, offerID int64, t offer.Terms) error {
	if err := s.bound(); err != nil {
		return err
	}
	return s.repo.UpdateTerms(ctx, s.userID, offerID, t)
}

func (s *OfferStore) RemoveByID(ctx context.Context, offerID int64) error {
	if err := s.bound(); err != nil {
		return err
	}
	return s.repo.DeleteByID(ctx, s.userID, offerID)
}

func (s *OfferStore) Clear(ctx context.Context) error {
	if err := s.bound(); err != nil {
		return err
	}
	return s.repo.DeleteAllForUser(ctx, s.userID)
}

func (s *OfferStore) Exists(ctx context.Context, offerID int64) (bool, error) {
	if err := s.bound(); err != nil {
		return false, err
	}
	return s.repo.Exists(ctx, s.userID, offerID)
}

func (s *OfferStore) Count(ctx context.Context) (int64, error) {
	if err := s.bound(); err != nil {
		return 0, err
	}
	return s.repo.CountForUser(ctx, s.userID)
}

func (s *OfferStore) bound() error {
	if s.userID == "" {
		return ErrStoreUnbound
	}
	return nil
}
