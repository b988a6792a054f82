// Package quote talks to the external rate-quote API. A quote request is a
// single synchronous call per car; a non-200 response is a decline, not a
// failure of the surrounding search.
package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"autofin/internal/pkg/config"
	"autofin/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDeclined = errs.New("quote declined by rate service")

// Request carries the inputs of one rate query.
type Request struct {
	LoanAmount   float64 `json:"loanAmount"`
	CreditScore  int32   `json:"creditScore"`
	PytBudget    float64 `json:"pytBudget"`
	VehicleMake  string  `json:"vehicleMake"`
	VehicleModel string  `json:"vehicleModel"`
	VehicleYear  int32   `json:"vehicleYear"`
	VehicleKms   float64 `json:"vehicleKms"`
	ListPrice    float64 `json:"listPrice"`
	DownPayment  float64 `json:"downpayment"`
}

// Approval is a successful rate response. Installments stays opaque.
type Approval struct {
	Amount       float64
	CapitalSum   float64
	InterestSum  float64
	TotalSum     float64
	InterestRate float64
	TermMo       float64
	Installments string
}

type Client interface {
	Quote(ctx context.Context, req Request) (*Approval, error)
}

type HTTPClient struct {
	http *http.Client
	cfg  config.QuoteConfig
}

func NewHTTPClient(cfg config.QuoteConfig) *HTTPClient {
	return &HTTPClient{
		http: &http.Client{Timeout: cfg.Timeout},
		cfg:  cfg,
	}
}

// The rate service returns the term as a string.
type rateResponse struct {
	Amount       float64         `json:"amount"`
	CapitalSum   float64         `json:"capitalSum"`
	InterestSum  float64         `json:"interestSum"`
	Sum          float64         `json:"sum"`
	InterestRate float64         `json:"interestRate"`
	Term         string          `json:"term"`
	Installments json.RawMessage `json:"installments"`
}

func (c *HTTPClient) Quote(ctx context.Context, req Request) (*Approval, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode quote request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/rate", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build quote request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.cfg.APIKey)
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, errs.Wrap(err, "rate service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, ErrDeclined
	}

	var rr rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return nil, errs.Wrap(err, "failed to decode rate response")
	}

	termMo, err := strconv.ParseFloat(rr.Term, 64)
	if err != nil {
		return nil, errs.Wrap(err, "rate response has malformed term")
	}

	// installments may be absent; downstream always needs a JSON document
	installments := string(rr.Installments)
	if installments == "" {
		installments = "[]"
	}

	return &Approval{
		Amount:       rr.Amount,
		CapitalSum:   rr.CapitalSum,
		InterestSum:  rr.InterestSum,
		TotalSum:     rr.Sum,
		InterestRate: rr.InterestRate,
		TermMo:       termMo,
		Installments: installments,
	}, nil
}
