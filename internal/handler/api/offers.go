package api

import (
	"net/http"
	"strconv"

	reqdto "autofin/internal/handler/dto/request"
	resdto "autofin/internal/handler/dto/response"
	"autofin/internal/handler/httperr"
	"autofin/internal/usecase/commands"
	"autofin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	offerCommands commands.OfferCommands
	offerQueries  queries.OfferQueries
}

func NewOfferHandler(offerCommands commands.OfferCommands, offerQueries queries.OfferQueries) *OfferHandler {
	return &OfferHandler{
		offerCommands: offerCommands,
		offerQueries:  offerQueries,
	}
}

// @Summary Claim an offer
// @Tags offers
// @Produce json
// @Param offer_id path int true "Offer id"
// @Param user_id query string true "User id"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{offer_id}/claim [post]
func (h *OfferHandler) Claim(c *gin.Context) {
	offerID, ok := h.offerID(c)
	if !ok {
		return
	}

	if err := h.offerCommands.Claim(c.Request.Context(), c.Query("user_id"), offerID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Release a claimed offer
// @Tags offers
// @Produce json
// @Param offer_id path int true "Offer id"
// @Param user_id query string true "User id"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{offer_id}/unclaim [post]
func (h *OfferHandler) Unclaim(c *gin.Context) {
	offerID, ok := h.offerID(c)
	if !ok {
		return
	}

	if err := h.offerCommands.Unclaim(c.Request.Context(), c.Query("user_id"), offerID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get one offer with its car
// @Tags offers
// @Produce json
// @Param offer_id path int true "Offer id"
// @Param user_id query string true "User id"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{offer_id} [get]
func (h *OfferHandler) GetOffer(c *gin.Context) {
	offerID, ok := h.offerID(c)
	if !ok {
		return
	}

	result, err := h.offerQueries.GetOfferDetails(c.Request.Context(), c.Query("user_id"), offerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListing(*result))
}

// @Summary List claimed offers
// @Tags offers
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {array} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Router /offers/claimed [get]
func (h *OfferHandler) GetClaimed(c *gin.Context) {
	results, err := h.offerQueries.GetClaimedOffers(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListings(results))
}

// @Summary Renegotiate the loan amount of an offer
// @Description Re-quotes the offer at a new principal with the user's stored budget and down payment. A decline leaves the offer unchanged.
// @Tags offers
// @Accept json
// @Produce json
// @Param offer_id path int true "Offer id"
// @Param user_id query string true "User id"
// @Param request body reqdto.UpdateLoanAmountRequest true "New loan amount"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /offers/{offer_id}/loan-amount [put]
func (h *OfferHandler) UpdateLoanAmount(c *gin.Context) {
	offerID, ok := h.offerID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateLoanAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.offerCommands.UpdateLoanAmount(c.Request.Context(), c.Query("user_id"), offerID, req.LoanAmount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListing(*result))
}

func (h *OfferHandler) offerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("offer_id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offer id format", nil)
		return 0, false
	}
	return id, true
}
