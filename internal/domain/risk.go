// Package domain holds the crime-risk data types shared across packages.
package domain

// CrimeRecord is one row of the crime-rate table.
type CrimeRecord struct {
	City        string
	CrimeType   string
	RatePerLakh float64
}

// WeightRule is one row of the weights table.
type WeightRule struct {
	Factor    string
	Condition string
	Weight    float64
}

// RiskQuery is a single exposure request.
type RiskQuery struct {
	City        string
	Crime       string
	Gender      string
	FatalStatus string
	CaseStatus  string
}

// RiskResult is the response to a RiskQuery.
type RiskResult struct {
	City                string    `json:"city"`
	Crime               string    `json:"crime"`
	ExposureRiskPercent float64   `json:"exposure_risk_percent"`
	RiskLevel           RiskLevel `json:"risk_level"`
	Precautions         []string  `json:"precautions"`
	Disclaimer          string    `json:"disclaimer"`
}

// Disclaimer accompanies every RiskResult.
const Disclaimer = "The risk shown is an estimate derived from historical crime trends " +
	"and does not guarantee future events."
