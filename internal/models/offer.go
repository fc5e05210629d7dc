package models

type WorkMode string

const (
	WorkModeRemote WorkMode = "Remote"
	WorkModeHybrid WorkMode = "Hybrid"
	WorkModeOnSite WorkMode = "On-site"
)

// Offer is one job offer under comparison. CTC is in lakhs per annum and
// JoiningBonus in rupees.
type Offer struct {
	ID              string   `json:"id" validate:"required"`
	Company         string   `json:"company" validate:"required"`
	Role            string   `json:"role"`
	Domain          string   `json:"domain"`
	CTC             float64  `json:"ctc" validate:"gte=0"`
	JoiningBonus    float64  `json:"joiningBonus" validate:"gte=0"`
	Location        string   `json:"location"`
	WorkMode        WorkMode `json:"wfhPolicy" validate:"oneof=Remote Hybrid On-site"`
	HealthInsurance bool     `json:"healthInsurance"`
	Relocation      bool     `json:"relocation"`
	GrowthRating    int      `json:"growthRating" validate:"min=1,max=5"`
	WLBRating       int      `json:"wlbRating" validate:"min=1,max=5"`
	BrandRating     int      `json:"brandRating" validate:"min=1,max=5"`
	Notes           string   `json:"notes,omitempty"`
}
