//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"autofin/internal/domain/offer"
	"autofin/internal/domain/user"
	"autofin/internal/infra"
	"autofin/internal/infra/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	cars   *repository.CarRepository
	users  *repository.UserRepository
	offers *repository.OfferRepository
}

func (s *RepositoryTestSuite) SetupSuite() {
	pool := setupDB(s.T())
	seedCars(s.T(), pool)

	s.cars = repository.NewCarRepository(pool)
	s.users = repository.NewUserRepository(pool)
	s.offers = repository.NewOfferRepository(pool)
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) TestCarRepository() {
	ctx := context.Background()

	s.Run("FindAllはID順で走行距離をkm換算して返す", func() {
		cars, err := s.cars.FindAll(ctx)
		require.NoError(s.T(), err)
		require.Len(s.T(), cars, 3)

		assert.Equal(s.T(), "Civic", cars[0].Model)
		assert.InDelta(s.T(), 30000*1.609344, cars[0].Kms, 0.01)
		assert.Equal(s.T(), 21000.0, cars[0].Price)
	})

	s.Run("存在しないIDはNOT_FOUND", func() {
		_, err := s.cars.FindByID(ctx, 9999)
		assert.True(s.T(), infra.IsKind(err, infra.KindNotFound))
	})
}

func (s *RepositoryTestSuite) TestUserRepository() {
	ctx := context.Background()

	s.Run("登録と取得の往復", func() {
		u := user.User{ID: "dave123", CreditScore: 123, DownPayment: 1000, BudgetMo: 250}
		require.NoError(s.T(), s.users.Create(ctx, u))

		got, err := s.users.FindByID(ctx, "dave123")
		require.NoError(s.T(), err)
		assert.Equal(s.T(), int32(123), got.CreditScore)
		assert.Equal(s.T(), 1000.0, got.DownPayment)
		assert.Nil(s.T(), got.QuotedAt)

		exists, err := s.users.Exists(ctx, "dave123")
		require.NoError(s.T(), err)
		assert.True(s.T(), exists)
	})

	s.Run("検索条件の更新でquoted_atが記録される", func() {
		u := user.User{ID: "erin456", CreditScore: 456, DownPayment: 1000, BudgetMo: 250}
		require.NoError(s.T(), s.users.Create(ctx, u))

		quotedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(s.T(), s.users.UpdateSearchParams(ctx, "erin456", 5000.29, 800.58, quotedAt))

		got, err := s.users.FindByID(ctx, "erin456")
		require.NoError(s.T(), err)
		assert.Equal(s.T(), 5000.29, got.DownPayment, "セント単位まで往復で一致する")
		assert.Equal(s.T(), 800.58, got.BudgetMo)
		require.NotNil(s.T(), got.QuotedAt)
		assert.True(s.T(), got.QuotedAt.Equal(quotedAt))
	})

	s.Run("未登録IDの更新はNOT_FOUND", func() {
		err := s.users.UpdateSearchParams(ctx, "ghost000", 1000, 250, time.Now())
		assert.True(s.T(), infra.IsKind(err, infra.KindNotFound))
	})
}

func (s *RepositoryTestSuite) TestOfferRepository() {
	ctx := context.Background()

	u := user.User{ID: "frank789", CreditScore: 789, DownPayment: 1000, BudgetMo: 250}
	require.NoError(s.T(), s.users.Create(ctx, u))

	draft := offer.Draft{
		CarID:        1,
		LoanAmount:   20000.00,
		CapitalSum:   20000.00,
		InterestSum:  2000.00,
		TotalSum:     22000.00,
		InterestRate: 5.5,
		TermMo:       48,
		Installments: `[{"month":1,"amount":458.33}]`,
	}

	s.Run("挿入と取得の往復", func() {
		offerID, err := s.offers.Insert(ctx, "frank789", draft)
		require.NoError(s.T(), err)

		got, err := s.offers.FindByID(ctx, "frank789", offerID)
		require.NoError(s.T(), err)

		want := offer.Offer{
			ID:           offerID,
			CarID:        draft.CarID,
			LoanAmount:   draft.LoanAmount,
			CapitalSum:   draft.CapitalSum,
			InterestSum:  draft.InterestSum,
			TotalSum:     draft.TotalSum,
			InterestRate: draft.InterestRate,
			TermMo:       draft.TermMo,
			Installments: draft.Installments,
		}
		if diff := cmp.Diff(want, *got); diff != "" {
			s.T().Errorf("offer mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("同一ユーザー同一車両の重複はDUPLICATE_KEY", func() {
		_, err := s.offers.Insert(ctx, "frank789", draft)
		assert.True(s.T(), infra.IsKind(err, infra.KindDuplicateKey))
	})

	s.Run("未登録ユーザーへの挿入はFOREIGN_KEY_VIOLATED", func() {
		_, err := s.offers.Insert(ctx, "ghost000", draft)
		assert.True(s.T(), infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	s.Run("成約フラグと条件更新", func() {
		d := draft
		d.CarID = 2
		offerID, err := s.offers.Insert(ctx, "frank789", d)
		require.NoError(s.T(), err)

		require.NoError(s.T(), s.offers.SetClaimed(ctx, "frank789", offerID, true))

		claimed, err := s.offers.FindClaimed(ctx, "frank789")
		require.NoError(s.T(), err)
		require.Len(s.T(), claimed, 1)
		assert.Equal(s.T(), offerID, claimed[0].ID)

		terms := offer.Terms{
			LoanAmount:   15000.00,
			CapitalSum:   15000.00,
			InterestSum:  1200.00,
			TotalSum:     16200.00,
			InterestRate: 4.9,
			TermMo:       36,
			Installments: `[{"month":1,"amount":450.00}]`,
		}
		require.NoError(s.T(), s.offers.UpdateTerms(ctx, "frank789", offerID, terms))

		got, err := s.offers.FindByID(ctx, "frank789", offerID)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), 15000.0, got.LoanAmount)
		assert.Equal(s.T(), 36.0, got.TermMo)
		assert.True(s.T(), got.Claimed, "条件更新後も成約フラグは保持")
	})

	s.Run("全削除で件数がゼロになる", func() {
		count, err := s.offers.CountForUser(ctx, "frank789")
		require.NoError(s.T(), err)
		assert.Positive(s.T(), count)

		require.NoError(s.T(), s.offers.DeleteAllForUser(ctx, "frank789"))

		count, err = s.offers.CountForUser(ctx, "frank789")
		require.NoError(s.T(), err)
		assert.Zero(s.T(), count)
	})

	s.Run("別ユーザーのオファーには触れない", func() {
		other := user.User{ID: "gina321", CreditScore: 321, DownPayment: 1000, BudgetMo: 250}
		require.NoError(s.T(), s.users.Create(ctx, other))

		d := draft
		d.CarID = 3
		offerID, err := s.offers.Insert(ctx, "gina321", d)
		require.NoError(s.T(), err)

		err = s.offers.SetClaimed(ctx, "frank789", offerID, true)
		assert.True(s.T(), infra.IsKind(err, infra.KindNotFound))
	})
}
