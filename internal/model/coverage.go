package model

type CoverageTier string

const (
	TierBasic    CoverageTier = "basic"
	TierStandard CoverageTier = "standard"
	TierPremium  CoverageTier = "premium"
)

func (t CoverageTier) Valid() bool {
	switch t {
	case TierBasic, TierStandard, TierPremium:
		return true
	}
	return false
}

type CoverageFeature struct {
	Name     string `json:"name"`
	Included bool   `json:"included"`
	Limit    string `json:"limit,omitempty"`
}

type CoverageOption struct {
	Tier        CoverageTier      `json:"tier"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	BasePrice   float64           `json:"base_price"`
	Features    []CoverageFeature `json:"features"`
	ColorTag    string            `json:"color_tag"`
	Popular     bool              `json:"popular,omitempty"`
}

type Destination struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	RiskLevel float64 `json:"risk_level"`
}
