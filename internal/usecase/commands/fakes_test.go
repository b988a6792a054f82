//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"autofin/internal/domain/car"
	"autofin/internal/domain/offer"
	"autofin/internal/domain/user"
	"autofin/internal/infra"
	"autofin/internal/infra/quote"
	"autofin/internal/pkg/errs"
)

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errs.New("no rows"), infra.KindNotFound)
}

type fakeCarRepo struct {
	cars []car.Car
}

func (f *fakeCarRepo) FindAll(context.Context) ([]car.Car, error) {
	out := make([]car.Car, len(f.cars))
	copy(out, f.cars)
	return out, nil
}

func (f *fakeCarRepo) FindByID(_ context.Context, id int32) (*car.Car, error) {
	for _, c := range f.cars {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, notFound("car not found")
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]user.User
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	m := make(map[string]user.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) FindByID(_ context.Context, userID string) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, notFound("user not found")
	}
	return &u, nil
}

func (f *fakeUserRepo) Exists(_ context.Context, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.users[userID]
	return ok, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) UpdateSearchParams(_ context.Context, userID string, downPayment, budgetMo float64, quotedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return notFound("user not found")
	}
	u.DownPayment = downPayment
	u.BudgetMo = budgetMo
	u.QuotedAt = &quotedAt
	f.users[userID] = u
	return nil
}

// memOfferRepo is an in-memory offer table keyed by user. It is safe for the
// concurrent inserts of a cache rebuild.
type memOfferRepo struct {
	mu     sync.Mutex
	nextID int64
	byUser map[string][]offer.Offer
}

func newMemOfferRepo() *memOfferRepo {
	return &memOfferRepo{nextID: 1, byUser: make(map[string][]offer.Offer)}
}

func (m *memOfferRepo) Insert(_ context.Context, userID string, d offer.Draft) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o := offer.Offer{
		ID:           m.nextID,
		CarID:        d.CarID,
		LoanAmount:   d.LoanAmount,
		CapitalSum:   d.CapitalSum,
		InterestSum:  d.InterestSum,
		TotalSum:     d.TotalSum,
		InterestRate: d.InterestRate,
		TermMo:       d.TermMo,
		Installments: d.Installments,
		Claimed:      d.Claimed,
	}
	m.nextID++
	m.byUser[userID] = append(m.byUser[userID], o)
	return o.ID, nil
}

func (m *memOfferRepo) FindByID(_ context.Context, userID string, offerID int64) (*offer.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.byUser[userID] {
		if o.ID == offerID {
			found := o
			return &found, nil
		}
	}
	return nil, notFound("offer not found")
}

func (m *memOfferRepo) FindAll(_ context.Context, userID string) ([]offer.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]offer.Offer, len(m.byUser[userID]))
	copy(out, m.byUser[userID])
	return out, nil
}

func (m *memOfferRepo) FindClaimed(_ context.Context, userID string) ([]offer.Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []offer.Offer
	for _, o := range m.byUser[userID] {
		if o.Claimed {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOfferRepo) SetClaimed(_ context.Context, userID string, offerID int64, claimed bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, o := range m.byUser[userID] {
		if o.ID == offerID {
			m.byUser[userID][i].Claimed = claimed
			return nil
		}
	}
	return notFound("offer not found")
}

func (m *memOfferRepo) UpdateTerms(_ context.Context, userID string, offerID int64, t offer.Terms) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, o := range m.byUser[userID] {
		if o.ID == offerID {
			m.byUser[userID][i].LoanAmount = t.LoanAmount
			m.byUser[userID][i].CapitalSum = t.CapitalSum
			m.byUser[userID][i].InterestSum = t.InterestSum
			m.byUser[userID][i].TotalSum = t.TotalSum
			m.byUser[userID][i].InterestRate = t.InterestRate
			m.byUser[userID][i].TermMo = t.TermMo
			m.byUser[userID][i].Installments = t.Installments
			return nil
		}
	}
	return notFound("offer not found")
}

func (m *memOfferRepo) DeleteByID(_ context.Context, userID string, offerID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	offers := m.byUser[userID]
	for i, o := range offers {
		if o.ID == offerID {
			m.byUser[userID] = append(offers[:i:i], offers[i+1:]...)
			return nil
		}
	}
	return notFound("offer not found")
}

func (m *memOfferRepo) DeleteAllForUser(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byUser, userID)
	return nil
}

func (m *memOfferRepo) Exists(_ context.Context, userID string, offerID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.byUser[userID] {
		if o.ID == offerID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memOfferRepo) CountForUser(_ context.Context, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.byUser[userID])), nil
}

// fakeQuoteClient records every request and answers via a per-test function.
type fakeQuoteClient struct {
	mu      sync.Mutex
	calls   []quote.Request
	quoteFn func(quote.Request) (*quote.Approval, error)
}

func (f *fakeQuoteClient) Quote(_ context.Context, req quote.Request) (*quote.Approval, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()
	return f.quoteFn(req)
}

func (f *fakeQuoteClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// approveAll grants every request a fixed-rate 36 month plan priced off the
// requested amount.
func approveAll(req quote.Request) (*quote.Approval, error) {
	return &quote.Approval{
		Amount:       req.LoanAmount,
		CapitalSum:   req.LoanAmount,
		InterestSum:  req.LoanAmount * 0.1,
		TotalSum:     req.LoanAmount * 1.1,
		InterestRate: 5.5,
		TermMo:       36,
		Installments: "[]",
	}, nil
}
