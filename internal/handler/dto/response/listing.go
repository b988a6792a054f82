package response

import (
	"github.com/jinzhu/copier"

	"autofin/internal/domain/listing"
)

// ListingResponse is one car row in a search result or offer lookup. The
// financing fields are zero when Financed is false.
type ListingResponse struct {
	CarID        int32   `json:"carId"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         int32   `json:"year"`
	Price        float64 `json:"price"`
	Kms          float64 `json:"kms"`
	OfferID      int64   `json:"offerId,omitempty"`
	LoanAmount   float64 `json:"loanAmount,omitempty"`
	CapitalSum   float64 `json:"capitalSum,omitempty"`
	InterestSum  float64 `json:"interestSum,omitempty"`
	TotalSum     float64 `json:"totalSum,omitempty"`
	InterestRate float64 `json:"interestRate,omitempty"`
	TermMo       float64 `json:"termMo,omitempty"`
	Installments string  `json:"installments,omitempty"`
	Claimed      bool    `json:"claimed"`
	PaymentMo    float64 `json:"paymentMo,omitempty"`
	Financed     bool    `json:"financed"`
}

func FromListing(l listing.Listing) *ListingResponse {
	var resp ListingResponse
	_ = copier.Copy(&resp, &l)
	return &resp
}

func FromListings(ls []listing.Listing) []*ListingResponse {
	out := make([]*ListingResponse, len(ls))
	for i, l := range ls {
		out[i] = FromListing(l)
	}
	return out
}
