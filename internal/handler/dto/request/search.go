package request

// SearchRequest carries the raw query parameters of a search. Amounts stay
// strings here; the usecase owns their validation.
type SearchRequest struct {
	UserID      string `form:"user_id"`
	DownPayment string `form:"downpayment"`
	BudgetMo    string `form:"budget_mo"`
	SortBy      string `form:"sort_by,default=price"`
	SortAsc     string `form:"sort_asc,default=true"`
}
