package listing

import (
	"errors"
	"sort"
)

var ErrUnknownSortKey = errors.New("unknown sort key")

// Sort keys. KeyPrice is valid for any listing; the remaining keys read
// offer fields and are only meaningful for financed listings.
const (
	KeyPrice        = "price"
	KeyPaymentMo    = "payment_mo"
	KeyInterestRate = "interest_rate"
	KeyTotalSum     = "total_sum"
	KeyTermMo       = "term_mo"
)

var sortKeys = map[string]func(Listing) float64{
	KeyPrice:        func(l Listing) float64 { return l.Price },
	KeyPaymentMo:    func(l Listing) float64 { return l.PaymentMo },
	KeyInterestRate: func(l Listing) float64 { return l.InterestRate },
	KeyTotalSum:     func(l Listing) float64 { return l.TotalSum },
	KeyTermMo:       func(l Listing) float64 { return l.TermMo },
}

func IsSortKey(key string) bool {
	_, ok := sortKeys[key]
	return ok
}

// Sort returns a new slice ordered by key. Equal keys keep their input
// order, so the first record seen with an extremal value wins ties.
func Sort(items []Listing, key string, ascending bool) ([]Listing, error) {
	extract, ok := sortKeys[key]
	if !ok {
		return nil, ErrUnknownSortKey
	}

	sorted := make([]Listing, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return extract(sorted[i]) < extract(sorted[j])
		}
		return extract(sorted[i]) > extract(sorted[j])
	})
	return sorted, nil
}
