package compareoffers

import (
	"placement-workers/internal/models"
	"placement-workers/internal/scoring/offers"
)

// Input carries the offers to compare. UseSeed swaps in the demo offers
// when Offers is empty.
type Input struct {
	Offers  []models.Offer `json:"offers"`
	UseSeed bool           `json:"useSeed,omitempty"`
}

type Output struct {
	Ranked     []offers.Scored   `json:"ranked"`
	Winners    map[string]string `json:"winners"`
	TopOfferID string            `json:"topOfferId"`
	TopCompany string            `json:"topCompany"`
	TopScore   int               `json:"topScore"`
}
