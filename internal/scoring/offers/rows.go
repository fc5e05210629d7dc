package offers

import "placement-workers/internal/models"

type Section string

const (
	SectionFinancial Section = "financial"
	SectionRole      Section = "role"
	SectionBenefits  Section = "benefits"
	SectionGrowth    Section = "growth"
)

// Row is one line of the side-by-side comparison table.
type Row struct {
	Key            string
	Label          string
	Section        Section
	HigherIsBetter bool
	Value          func(models.Offer) float64
}

func zero(models.Offer) float64 { return 0 }

func workModeRank(m models.WorkMode) float64 {
	switch m {
	case models.WorkModeRemote:
		return 3
	case models.WorkModeHybrid:
		return 2
	default:
		return 1
	}
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

var rows = []Row{
	{Key: "ctc", Label: "Total CTC", Section: SectionFinancial, HigherIsBetter: true,
		Value: func(o models.Offer) float64 { return o.CTC }},
	{Key: "inhand", Label: "Est. In-Hand", Section: SectionFinancial, HigherIsBetter: true,
		Value: func(o models.Offer) float64 { return o.CTC }},
	{Key: "bonus", Label: "Joining Bonus", Section: SectionFinancial, HigherIsBetter: true,
		Value: func(o models.Offer) float64 { return o.JoiningBonus }},
	{Key: "location", Label: "Location", Section: SectionRole, HigherIsBetter: true, Value: zero},
	{Key: "domain", Label: "Domain", Section: SectionRole, HigherIsBetter: true, Value: zero},
	{Key: "wfh", Label: "WFH Policy", Section: SectionRole, HigherIsBetter: true,
		Value: func(o models.Offer) float64 { return workModeRank(o.WorkMode) }},
	{Key: "health", Label: "Health Insurance", Section: SectionBenefits, HigherIsBetter: true,
		Value: func(o models.Offer) float64 { return boolValue(o.HealthInsurance) }},
	{Key: "relocation", Label: "Relocation Allow.", Section: SectionBenefits, HigherIsBetter: true,
		Value: func(o models.Offer) float64 { return boolValue(o.Relocation) }},
	{Key: "growth", Label: "Career Growth", Section: SectionGrowth, HigherIsBetter: true,
		Value: func(o models.Offer) float64 { return float64(o.GrowthRating) }},
	{Key: "wlb", Label: "Work-Life Balance", Section: SectionGrowth, HigherIsBetter: true,
		Value: func(o models.Offer) float64 { return float64(o.WLBRating) }},
	{Key: "brand", Label: "Brand Reputation", Section: SectionGrowth, HigherIsBetter: true,
		Value: func(o models.Offer) float64 { return float64(o.BrandRating) }},
}

// Rows returns the comparison rows in display order.
func Rows() []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	return out
}

// Winner returns the id of the only offer holding the best value for row, or
// "" when the best value is shared. A row is also skipped when the first two
// offers (or the only one) are both zero.
func Winner(row Row, offers []models.Offer) string {
	if len(offers) == 0 {
		return ""
	}
	second := offers[0]
	if len(offers) > 1 {
		second = offers[1]
	}
	if row.Value(offers[0]) == 0 && row.Value(second) == 0 {
		return ""
	}

	best := row.Value(offers[0])
	for _, o := range offers[1:] {
		v := row.Value(o)
		if (row.HigherIsBetter && v > best) || (!row.HigherIsBetter && v < best) {
			best = v
		}
	}

	winner := ""
	for _, o := range offers {
		if row.Value(o) != best {
			continue
		}
		if winner != "" {
			return ""
		}
		winner = o.ID
	}
	return winner
}

// Winners maps each row key to its winner. Rows without a winner are left out.
func Winners(offers []models.Offer) map[string]string {
	out := make(map[string]string)
	for _, r := range rows {
		if id := Winner(r, offers); id != "" {
			out[r.Key] = id
		}
	}
	return out
}
