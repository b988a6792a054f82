//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"autofin/internal/domain/listing"
	"autofin/internal/handler/api"
	"autofin/internal/pkg/errs"
	"autofin/tests/common/httptest"
	commandsmock "autofin/tests/mock/commands"
	queriesmock "autofin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOfferCommands
	mockQueries  *queriesmock.MockOfferQueries
	handler      *api.OfferHandler
}

func (s *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOfferCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOfferQueries(s.mockCtrl)
	s.handler = api.NewOfferHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/offers/claimed", s.handler.GetClaimed)
	s.router.GET("/offers/:offer_id", s.handler.GetOffer)
	s.router.POST("/offers/:offer_id/claim", s.handler.Claim)
	s.router.POST("/offers/:offer_id/unclaim", s.handler.Unclaim)
	s.router.PUT("/offers/:offer_id/loan-amount", s.handler.UpdateLoanAmount)
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

func (s *OfferHandlerTestSuite) TestClaim() {
	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Claim(gomock.Any(), "alice700", int64(10)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/offers/10/claim?user_id=alice700", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: non-numeric offer id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/offers/abc/claim?user_id=alice700", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: unknown offer returns 404", func() {
		s.mockCommands.EXPECT().Claim(gomock.Any(), "alice700", int64(99)).
			Return(errs.ErrOfferNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/offers/99/claim?user_id=alice700", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: missing user id returns 400", func() {
		s.mockCommands.EXPECT().Claim(gomock.Any(), "", int64(10)).
			Return(errs.ErrEmptyUserID).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/offers/10/claim", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *OfferHandlerTestSuite) TestUnclaim() {
	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Unclaim(gomock.Any(), "alice700", int64(10)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/offers/10/unclaim?user_id=alice700", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *OfferHandlerTestSuite) TestGetOffer() {
	result := &listing.Listing{CarID: 1, Model: "Civic", OfferID: 10, TotalSum: 22000, TermMo: 48, Financed: true}

	s.Run("success: returns 200 with merged listing", func() {
		s.mockQueries.EXPECT().GetOfferDetails(gomock.Any(), "alice700", int64(10)).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/10?user_id=alice700", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"Civic"`)
	})

	s.Run("error: unknown offer returns 404", func() {
		s.mockQueries.EXPECT().GetOfferDetails(gomock.Any(), "alice700", int64(99)).
			Return(nil, errs.ErrOfferNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/99?user_id=alice700", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *OfferHandlerTestSuite) TestGetClaimed() {
	s.Run("success: returns 200 with claimed listings", func() {
		s.mockQueries.EXPECT().GetClaimedOffers(gomock.Any(), "alice700").
			Return([]listing.Listing{{OfferID: 10, Claimed: true, Financed: true}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/claimed?user_id=alice700", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"claimed":true`)
	})

	s.Run("success: no claimed offers returns empty array", func() {
		s.mockQueries.EXPECT().GetClaimedOffers(gomock.Any(), "alice700").
			Return([]listing.Listing{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/claimed?user_id=alice700", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

func (s *OfferHandlerTestSuite) TestUpdateLoanAmount() {
	result := &listing.Listing{CarID: 1, OfferID: 10, LoanAmount: 15000, TotalSum: 16500, TermMo: 36, Financed: true}

	s.Run("success: returns 200 with renegotiated listing", func() {
		s.mockCommands.EXPECT().UpdateLoanAmount(gomock.Any(), "alice700", int64(10), 15000.0).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/offers/10/loan-amount?user_id=alice700", map[string]any{"loan_amount": 15000})
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"loanAmount":15000`)
	})

	s.Run("error: missing loan amount returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/offers/10/loan-amount?user_id=alice700", map[string]any{})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: negative loan amount returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/offers/10/loan-amount?user_id=alice700", map[string]any{"loan_amount": -1})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: declined renegotiation returns 422", func() {
		s.mockCommands.EXPECT().UpdateLoanAmount(gomock.Any(), "alice700", int64(10), 90000.0).
			Return(nil, errs.ErrQuoteDeclined).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/offers/10/loan-amount?user_id=alice700", map[string]any{"loan_amount": 90000})
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}
