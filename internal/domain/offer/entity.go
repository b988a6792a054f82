package offer

// Offer is a financing quote approved by the rate-quote service and cached
// for one user. Installments is an opaque serialized schedule; it is passed
// through to the caller unexamined.
type Offer struct {
	ID           int64
	CarID        int32
	LoanAmount   float64
	CapitalSum   float64
	InterestSum  float64
	TotalSum     float64
	InterestRate float64
	TermMo       float64
	Installments string
	Claimed      bool
}

// Draft holds the fields of an offer before the store assigns its id.
type Draft struct {
	CarID        int32
	LoanAmount   float64
	CapitalSum   float64
	InterestSum  float64
	TotalSum     float64
	InterestRate float64
	TermMo       float64
	Installments string
	Claimed      bool
}

// Terms carries the financial fields replaced when a loan amount is
// renegotiated. The offer id and claimed flag survive the update.
type Terms struct {
	LoanAmount   float64
	CapitalSum   float64
	InterestSum  float64
	TotalSum     float64
	InterestRate float64
	TermMo       float64
	Installments string
}
