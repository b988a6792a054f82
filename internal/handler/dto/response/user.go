package response

import (
	"time"

	"autofin/internal/domain/user"
)

type UserResponse struct {
	UserID      string     `json:"userId"`
	CreditScore int32      `json:"creditScore"`
	DownPayment float64    `json:"downPayment"`
	BudgetMo    float64    `json:"budgetMo"`
	QuotedAt    *time.Time `json:"quotedAt,omitempty"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		UserID:      u.ID,
		CreditScore: u.CreditScore,
		DownPayment: u.DownPayment,
		BudgetMo:    u.BudgetMo,
		QuotedAt:    u.QuotedAt,
	}
}
