package request

type UpdateLoanAmountRequest struct {
	LoanAmount float64 `json:"loan_amount" binding:"required,gt=0"`
}
