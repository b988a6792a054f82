package user

import (
	"strconv"
	"time"
)

// Defaults applied when a user logs in for the first time.
const (
	DefaultDownPayment float64 = 1000
	DefaultBudgetMo    float64 = 250
)

// User is a shopper profile. DownPayment and BudgetMo record the parameters
// of the last search; QuotedAt stamps the last offer rebuild.
type User struct {
	ID          string
	CreditScore int32
	DownPayment float64
	BudgetMo    float64
	QuotedAt    *time.Time
}

// CreditScoreFromID derives a credit score from the last three digits of the
// user id, standing in for a bureau lookup.
func CreditScoreFromID(id string) (int32, bool) {
	if len(id) < 3 {
		return 0, false
	}
	score, err := strconv.Atoi(id[len(id)-3:])
	if err != nil {
		return 0, false
	}
	return int32(score), true
}
