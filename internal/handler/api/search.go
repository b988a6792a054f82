package api

import (
	"net/http"

	reqdto "autofin/internal/handler/dto/request"
	resdto "autofin/internal/handler/dto/response"
	"autofin/internal/handler/httperr"
	"autofin/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchCommands commands.SearchCommands
}

func NewSearchHandler(searchCommands commands.SearchCommands) *SearchHandler {
	return &SearchHandler{searchCommands: searchCommands}
}

// @Summary Search cars with financing offers
// @Description Search the catalog. Known users get per-car financing offers quoted against their down payment and monthly budget; guests get the plain catalog sorted by price.
// @Tags search
// @Produce json
// @Param user_id query string false "User id; empty for guest"
// @Param downpayment query string false "Down payment amount"
// @Param budget_mo query string false "Monthly budget"
// @Param sort_by query string false "Sort key" default(price)
// @Param sort_asc query string false "Ascending order, true or false" default(true)
// @Success 200 {array} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var req reqdto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	results, err := h.searchCommands.Search(c.Request.Context(), commands.SearchParams{
		UserID:      req.UserID,
		DownPayment: req.DownPayment,
		BudgetMo:    req.BudgetMo,
		SortBy:      req.SortBy,
		SortAsc:     req.SortAsc,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromListings(results))
}
