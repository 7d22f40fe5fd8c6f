package models

// InvestmentIdea is a business pitch submitted by a management admin for the
// investor pool. VerifiedBy is a free-text label naming the submitting
// institution, not a validated reference. ID is stamped at insert time.
type InvestmentIdea struct {
	ID              int64  `json:"id"`
	BusinessName    string `json:"businessName"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	FundingRequired string `json:"fundingRequired"`
	VerifiedBy      string `json:"verifiedBy"`
	RiskLevel       string `json:"riskLevel,omitempty"`
}
