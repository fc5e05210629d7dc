// Package offers scores job offers against each other and picks a winner per
// comparison row.
package offers

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"placement-workers/internal/common/validation"
	"placement-workers/internal/models"
)

// MaxOffers is the largest set Compare accepts.
const MaxOffers = 4

var (
	ErrNoOffers      = errors.New("at least one offer is required")
	ErrTooManyOffers = fmt.Errorf("at most %d offers can be compared", MaxOffers)
	ErrInvalidOffer  = errors.New("invalid offer")
)

const (
	ctcWeight       = 0.30
	growthWeight    = 0.25
	brandWeight     = 0.15
	wlbWeight       = 0.15
	insuranceWeight = 0.05
	relocWeight     = 0.05
	bonusWeight     = 0.05
)

type Scored struct {
	models.Offer
	Score int `json:"score"`
}

type Comparison struct {
	Ranked  []Scored          `json:"ranked"`
	Winners map[string]string `json:"winners"`
	Top     Scored            `json:"top"`
}

// Score returns the 0-100 weighted score of o. Compensation is relative to the
// highest CTC in all, so the same offer can score differently in another set.
func Score(o models.Offer, all []models.Offer) int {
	maxCTC := 0.0
	for _, other := range all {
		maxCTC = math.Max(maxCTC, other.CTC)
	}

	ctcNorm := 50.0
	if maxCTC > 0 {
		ctcNorm = o.CTC / maxCTC * 100
	}
	bonusNorm := 0.0
	if o.JoiningBonus > 0 {
		bonusNorm = 10
	}

	total := ctcNorm*ctcWeight +
		rating(o.GrowthRating)*growthWeight +
		rating(o.BrandRating)*brandWeight +
		rating(o.WLBRating)*wlbWeight +
		flag(o.HealthInsurance)*insuranceWeight +
		flag(o.Relocation)*relocWeight +
		bonusNorm*bonusWeight

	return int(math.Round(total))
}

func rating(v int) float64 { return float64(v) / 5 * 100 }

func flag(b bool) float64 {
	if b {
		return 100
	}
	return 0
}

// Rank scores every offer and sorts by score, highest first. Equal scores
// keep their input order.
func Rank(offers []models.Offer) []Scored {
	out := make([]Scored, len(offers))
	for i, o := range offers {
		out[i] = Scored{Offer: o, Score: Score(o, offers)}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Compare validates the set, then ranks it and resolves the row winners.
func Compare(offers []models.Offer) (Comparison, error) {
	if len(offers) == 0 {
		return Comparison{}, ErrNoOffers
	}
	if len(offers) > MaxOffers {
		return Comparison{}, ErrTooManyOffers
	}
	for i := range offers {
		if err := validation.Struct(offers[i]); err != nil {
			return Comparison{}, fmt.Errorf("%w %d: %v", ErrInvalidOffer, i, err)
		}
	}

	ranked := Rank(offers)
	return Comparison{
		Ranked:  ranked,
		Winners: Winners(offers),
		Top:     ranked[0],
	}, nil
}

// InHandMonthly is a rough monthly take-home in rupees for a CTC in lakhs.
func InHandMonthly(ctc float64) float64 {
	return ctc * 100000 * 0.7 / 12
}

// SeedOffers returns the demo offers a new comparison starts with.
func SeedOffers() []models.Offer {
	return []models.Offer{
		{
			ID: "o1", Company: "Goldman Sachs", Role: "Investment Banking Analyst",
			Domain: "Investment Banking", CTC: 28, JoiningBonus: 200000, Location: "Mumbai",
			WorkMode: models.WorkModeHybrid, HealthInsurance: true, Relocation: true,
			GrowthRating: 5, WLBRating: 2, BrandRating: 5, Notes: "High pressure, excellent exit ops",
		},
		{
			ID: "o2", Company: "McKinsey & Company", Role: "Business Analyst",
			Domain: "Consulting", CTC: 32, JoiningBonus: 0, Location: "Delhi / Mumbai",
			WorkMode: models.WorkModeHybrid, HealthInsurance: true, Relocation: true,
			GrowthRating: 5, WLBRating: 3, BrandRating: 5, Notes: "Best brand name, global exposure",
		},
		{
			ID: "o3", Company: "Hindustan Unilever", Role: "Brand Manager Trainee",
			Domain: "FMCG / Marketing", CTC: 24, JoiningBonus: 100000, Location: "Mumbai",
			WorkMode: models.WorkModeHybrid, HealthInsurance: true, Relocation: false,
			GrowthRating: 4, WLBRating: 4, BrandRating: 4, Notes: "Great brand training, structured growth",
		},
	}
}

// Domains lists the domain suggestions offered when entering an offer.
var Domains = []string{
	"Investment Banking", "Consulting", "FMCG / Marketing", "Corporate Banking",
	"Equity Research", "Digital Marketing", "Sales & BD", "Supply Chain",
	"Private Equity", "Product Management", "HR / People", "Operations",
}
