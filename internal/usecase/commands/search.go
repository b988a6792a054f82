package commands

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"autofin/internal/domain/listing"
	"autofin/internal/domain/offer"
	"autofin/internal/domain/user"
	"autofin/internal/infra"
	"autofin/internal/infra/quote"
	"autofin/internal/pkg/clock"
	"autofin/internal/pkg/config"
	"autofin/internal/pkg/errs"
	"autofin/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// GuestUserID is the sentinel some frontends send instead of an empty id.
const GuestUserID = "no user"

type SearchParams struct {
	UserID      string
	DownPayment string
	BudgetMo    string
	SortBy      string
	SortAsc     string
}

type SearchCommands interface {
	Search(ctx context.Context, p SearchParams) ([]listing.Listing, error)
}

type searchCommandsImpl struct {
	cars    CarReadStore
	users   UserRepository
	offers  shared.OfferRepository
	quotes  quote.Client
	clock   clock.Clock
	fanOut  int
	rebuild singleflight.Group // deduplicates identical in-flight searches
	byUser  sync.Map           // user id -> *sync.Mutex serializing rebuilds
}

func NewSearchCommands(
	cars CarReadStore,
	users UserRepository,
	offers shared.OfferRepository,
	quotes quote.Client,
	clk clock.Clock,
	cfg config.Config,
) SearchCommands {
	fanOut := cfg.Quote.FanOut
	if fanOut < 1 {
		fanOut = 1
	}
	return &searchCommandsImpl{
		cars:   cars,
		users:  users,
		offers: offers,
		quotes: quotes,
		clock:  clk,
		fanOut: fanOut,
	}
}

// Search validates inputs, decides cache-hit vs cache-miss for the user's
// offer store, and returns the merged, sorted result set. All validation
// happens before any upstream call.
func (s *searchCommandsImpl) Search(ctx context.Context, p SearchParams) ([]listing.Listing, error) {
	ascending, err := parseSortDirection(p.SortAsc)
	if err != nil {
		return nil, err
	}

	if p.UserID == "" || p.UserID == GuestUserID {
		return s.searchGuest(ctx, p.SortBy, ascending)
	}

	if !listing.IsSortKey(p.SortBy) {
		return nil, errs.Mark(errs.New("sort key "+p.SortBy), errs.ErrUnsupportedSortKey)
	}

	downPayment, err := strconv.ParseFloat(p.DownPayment, 64)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidAmount)
	}
	budgetMo, err := strconv.ParseFloat(p.BudgetMo, 64)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidAmount)
	}

	offers, err := s.loadOffers(ctx, p.UserID, downPayment, budgetMo)
	if err != nil {
		return nil, err
	}

	listings := make([]listing.Listing, 0, len(offers))
	for _, o := range offers {
		c, err := s.cars.FindByID(ctx, o.CarID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, errs.ErrCarNotFound)
			}
			return nil, err
		}
		merged, err := listing.Merge(*c, o)
		if err != nil {
			return nil, err
		}
		listings = append(listings, merged)
	}

	return listing.Sort(listings, p.SortBy, ascending)
}

// Guest searches see the whole catalog sorted by price, with financing
// unknown.
func (s *searchCommandsImpl) searchGuest(ctx context.Context, sortBy string, ascending bool) ([]listing.Listing, error) {
	if sortBy != listing.KeyPrice {
		return nil, errs.Mark(errs.New("guest search sorts by price only"), errs.ErrUnsupportedSortKey)
	}

	cars, err := s.cars.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]listing.Listing, 0, len(cars))
	for _, c := range cars {
		listings = append(listings, listing.FromCar(c))
	}
	return listing.Sort(listings, listing.KeyPrice, ascending)
}

// loadOffers returns the user's current offer set, rebuilding it when the
// search parameters changed or the store is empty. Concurrent identical
// searches share a single rebuild; concurrent searches with different
// parameters serialize on the user lock, each rebuilding with its own
// parameters.
func (s *searchCommandsImpl) loadOffers(ctx context.Context, userID string, downPayment, budgetMo float64) ([]offer.Offer, error) {
	result, err, _ := s.rebuild.Do(flightKey(userID, downPayment, budgetMo), func() (any, error) {
		mu := s.lockFor(userID)
		mu.Lock()
		defer mu.Unlock()

		u, err := s.users.FindByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, errs.ErrUserNotFound)
			}
			return nil, err
		}

		store := shared.NewOfferStore(s.offers)
		if err := store.Bind(userID); err != nil {
			return nil, err
		}

		count, err := store.Count(ctx)
		if err != nil {
			return nil, err
		}

		stale := u.DownPayment != downPayment || u.BudgetMo != budgetMo || count == 0
		if stale {
			if err := s.repopulate(ctx, u, store, downPayment, budgetMo); err != nil {
				return nil, err
			}
		}

		return store.GetAll(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.([]offer.Offer), nil
}

func (s *searchCommandsImpl) lockFor(userID string) *sync.Mutex {
	mu, _ := s.byUser.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func flightKey(userID string, downPayment, budgetMo float64) string {
	return userID + "|" +
		strconv.FormatFloat(downPayment, 'f', -1, 64) + "|" +
		strconv.FormatFloat(budgetMo, 'f', -1, 64)
}

// repopulate persists the new search parameters, clears the store, and
// fans out one quote call per catalog car with bounded concurrency. A
// decline or an unreachable rate service skips that one car; persistence
// failures abort the search.
func (s *searchCommandsImpl) repopulate(ctx context.Context, u *user.User, store *shared.OfferStore, downPayment, budgetMo float64) error {
	if err := s.users.UpdateSearchParams(ctx, u.ID, downPayment, budgetMo, s.clock.Now()); err != nil {
		return err
	}
	if err := store.Clear(ctx); err != nil {
		return err
	}

	cars, err := s.cars.FindAll(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanOut)
	for _, c := range cars {
		g.Go(func() error {
			approval, err := s.quotes.Quote(gctx, quote.Request{
				LoanAmount:   c.Price,
				CreditScore:  u.CreditScore,
				PytBudget:    budgetMo,
				VehicleMake:  c.Brand,
				VehicleModel: c.Model,
				VehicleYear:  c.Year,
				VehicleKms:   c.Kms,
				ListPrice:    c.Price,
				DownPayment:  downPayment,
			})
			if err != nil {
				if errors.Is(err, quote.ErrDeclined) {
					slog.Debug("quote declined", "user_id", u.ID, "car_id", c.ID)
				} else {
					slog.Warn("quote failed, skipping car", "user_id", u.ID, "car_id", c.ID, "error", err)
				}
				return nil
			}

			_, err = store.Add(gctx, offer.Draft{
				CarID:        c.ID,
				LoanAmount:   approval.Amount,
				CapitalSum:   approval.CapitalSum,
				InterestSum:  approval.InterestSum,
				TotalSum:     approval.TotalSum,
				InterestRate: approval.InterestRate,
				TermMo:       approval.TermMo,
				Installments: approval.Installments,
				Claimed:      false,
			})
			return err
		})
	}
	return g.Wait()
}

func parseSortDirection(token string) (bool, error) {
	switch token {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errs.Mark(errs.New("sort direction "+token), errs.ErrInvalidSortDirection)
	}
}
