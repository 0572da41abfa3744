package pricing

import "math"

// Contribution is one priced line, before presentation.
type Contribution struct {
	Category string `json:"category"`
	Lot      string `json:"lot"`
	Label    string `json:"label"`
	Qty      int    `json:"qty,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Min      int    `json:"min"`
	Max      int    `json:"max"`
}

// Amount returns the midpoint shown in breakdowns.
func (c Contribution) Amount() int {
	return (c.Min + c.Max) / 2
}

// BreakdownItem is one line of the flat estimate breakdown.
type BreakdownItem struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
	Qty    int    `json:"qty,omitempty"`
	Unit   string `json:"unit,omitempty"`
}

// Quote is the flat estimate presentation.
type Quote struct {
	Min              int             `json:"min"`
	Max              int             `json:"max"`
	Breakdown        []BreakdownItem `json:"breakdown"`
	Confidence       Confidence      `json:"confidence"`
	UncertaintyScore int             `json:"uncertaintyScore"`
}

// Engine computes deterministic estimates from answers and config tables.
type Engine struct {
	cfg *Config
}

func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Engine{cfg: cfg}
}

// Config exposes the active pricing tables.
func (e *Engine) Config() *Config {
	return e.cfg
}

// Contributions evaluates the rule table against the answers.
// Order is fixed: base price first, then rules in table order; identical
// answers always produce identical output.
func (e *Engine) Contributions(a Answers) []Contribution {
	var out []Contribution

	if projectType := a.Get(fieldTypeProjet); projectType != "" {
		if base, ok := e.cfg.BasePrices[projectType]; ok {
			out = append(out, Contribution{
				Category: "base",
				Lot:      LotDeveloppement,
				Label:    ProjectTypeLabel(projectType),
				Min:      base.Min,
				Max:      base.Max,
			})
		}
	}

	for _, r := range ruleTable {
		if !r.applies(a) {
			continue
		}

		table := e.cfg.AddOns[r.category]

		values := []string{a.Get(r.field)}
		if r.multi {
			values = a.Tokens(r.field)
		}

		for _, value := range values {
			rng, ok := table[value]
			if !ok {
				// Unrecognized answers price at zero.
				continue
			}
			c := Contribution{
				Category: r.category,
				Lot:      r.lot,
				Label:    categoryLabel(r.category, value),
				Min:      rng.Min,
				Max:      rng.Max,
			}
			if q, ok := quantified[r.category][value]; ok {
				c.Qty = q.Qty
				c.Unit = q.Unit
			}
			out = append(out, c)
		}
	}

	if rng, ok := e.cfg.AddOns["tracking"][derivedTracking(a)]; ok && !rng.IsZero() {
		out = append(out, Contribution{
			Category: "tracking",
			Lot:      LotSEOTracking,
			Label:    categoryLabel("tracking", "oui"),
			Min:      rng.Min,
			Max:      rng.Max,
		})
	}

	return out
}

// Compute runs the full estimate: contributions, totals, uncertainty
// widening and rounding.
func (e *Engine) Compute(a Answers) ([]Contribution, int, int, UncertaintyResult) {
	contribs := e.Contributions(a)

	totalMin, totalMax := 0, 0
	for _, c := range contribs {
		totalMin += c.Min
		totalMax += c.Max
	}

	// Reductions can push a sparse answer set net negative, and negative
	// totals invert under the coefficient spread. A quote never goes below
	// zero, so floor the totals before widening.
	if totalMin < 0 {
		totalMin = 0
	}
	if totalMax < 0 {
		totalMax = 0
	}

	u := ScoreUncertainty(a)
	minCoef := math.Min(e.cfg.UncertaintyCoefficients.Min, u.MinCoef)
	maxCoef := math.Max(e.cfg.UncertaintyCoefficients.Max, u.MaxCoef)

	min := roundUpHundred(float64(totalMin) * minCoef)
	max := roundUpHundred(float64(totalMax) * maxCoef)

	return contribs, min, max, u
}

// Estimate returns the flat quote presentation.
func (e *Engine) Estimate(a Answers) *Quote {
	contribs, min, max, u := e.Compute(a)

	breakdown := make([]BreakdownItem, 0, len(contribs))
	for _, c := range contribs {
		if c.Min == 0 && c.Max == 0 {
			continue
		}
		breakdown = append(breakdown, BreakdownItem{
			Label:  c.Label,
			Amount: c.Amount(),
			Qty:    c.Qty,
			Unit:   c.Unit,
		})
	}

	return &Quote{
		Min:              min,
		Max:              max,
		Breakdown:        breakdown,
		Confidence:       u.Confidence,
		UncertaintyScore: u.Score,
	}
}

// roundUpHundred rounds up to the next 100 euro step.
func roundUpHundred(v float64) int {
	return int(math.Ceil(v/100) * 100)
}
