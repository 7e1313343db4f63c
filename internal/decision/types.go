// Package decision proxies 4th-down calculations to the modeling
// backend. Two backend generations are in the wild with slightly
// different punt field names, so decoding accepts both.
package decision

import "encoding/json"

// CalculationRequest is the situation sent to the backend.
type CalculationRequest struct {
	CurrentYardline   int    `json:"currentYardline"`
	BallSide          string `json:"ballSide"`
	YardsToGo         int    `json:"yardsToGo"`
	Quarter           int    `json:"quarter"`
	TimeRemaining     string `json:"timeRemaining"`
	ScoreDifferential int    `json:"scoreDifferential"`
	KickerRange       int    `json:"kickerRange"`
	PunterRange       int    `json:"punterRange"`
}

// Outcome holds the expected-value breakdown for going for it or
// kicking.
type Outcome struct {
	TDProb      float64 `json:"tdProb"`
	FGProb      float64 `json:"fgProb"`
	NoScoreProb float64 `json:"noScoreProb"`
	WPA         float64 `json:"wpa"`
	ChartData   []int   `json:"chartData,omitempty"`
}

// PuntOutcome holds the punt branch. The backend has shipped both
// short and long field names for the same values.
type PuntOutcome struct {
	NetTDProb float64 `json:"netTdProb"`
	ScoreProb float64 `json:"scoreProb"`
	WinProb   float64 `json:"winProb"`
	WPA       float64 `json:"wpa"`
	ChartData []int   `json:"chartData,omitempty"`
}

func (p *PuntOutcome) UnmarshalJSON(data []byte) error {
	var aux struct {
		NetTDProb *float64 `json:"netTdProb"`
		NetTD     *float64 `json:"netTd"`
		ScoreProb *float64 `json:"scoreProb"`
		Score     *float64 `json:"score"`
		WinProb   *float64 `json:"winProb"`
		Win       *float64 `json:"win"`
		WPA       float64  `json:"wpa"`
		ChartData []int    `json:"chartData"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.NetTDProb = firstValue(aux.NetTDProb, aux.NetTD)
	p.ScoreProb = firstValue(aux.ScoreProb, aux.Score)
	p.WinProb = firstValue(aux.WinProb, aux.Win)
	p.WPA = aux.WPA
	p.ChartData = aux.ChartData
	return nil
}

func firstValue(candidates ...*float64) float64 {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return 0
}

// Recommendation is the backend's pick; older backends omit it.
type Recommendation struct {
	Decision string  `json:"decision"`
	WPA      float64 `json:"wpa"`
	Win      float64 `json:"win"`
}

// CalculationResult is the full backend response.
type CalculationResult struct {
	Go             Outcome         `json:"go"`
	FG             Outcome         `json:"fg"`
	Punt           PuntOutcome     `json:"punt"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
	Error          string          `json:"error,omitempty"`
}
