package pricing

// LotItem is one priced line inside a lot.
type LotItem struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
	Qty    int    `json:"qty,omitempty"`
	Unit   string `json:"unit,omitempty"`
}

// Lot groups related work with its subtotal.
type Lot struct {
	Name     string    `json:"name"`
	Items    []LotItem `json:"items"`
	Subtotal int       `json:"subtotal"`
}

// LotQuote is the lot-grouped estimate presentation.
type LotQuote struct {
	Min              int        `json:"min"`
	Max              int        `json:"max"`
	Confidence       Confidence `json:"confidence"`
	UncertaintyScore int        `json:"uncertaintyScore"`
	Lots             []Lot      `json:"lots"`
	Assumptions      []string   `json:"assumptions"`
	Exclusions       []string   `json:"exclusions"`
	NextSteps        []string   `json:"nextSteps"`
}

// EstimateLots returns the lot-grouped presentation. Totals are computed
// the same way as the flat quote, only the grouping differs.
func (e *Engine) EstimateLots(a Answers) *LotQuote {
	contribs, min, max, u := e.Compute(a)

	byLot := make(map[string][]LotItem, len(lotOrder))
	subtotals := make(map[string]int, len(lotOrder))
	for _, c := range contribs {
		if c.Min == 0 && c.Max == 0 {
			continue
		}
		byLot[c.Lot] = append(byLot[c.Lot], LotItem{
			Label:  c.Label,
			Amount: c.Amount(),
			Qty:    c.Qty,
			Unit:   c.Unit,
		})
		subtotals[c.Lot] += c.Amount()
	}

	lots := make([]Lot, 0, len(byLot))
	for _, name := range lotOrder {
		items, ok := byLot[name]
		if !ok {
			continue
		}
		lots = append(lots, Lot{
			Name:     name,
			Items:    items,
			Subtotal: subtotals[name],
		})
	}

	return &LotQuote{
		Min:              min,
		Max:              max,
		Confidence:       u.Confidence,
		UncertaintyScore: u.Score,
		Lots:             lots,
		Assumptions:      assumptions(a),
		Exclusions:       exclusions(a),
		NextSteps:        nextSteps(),
	}
}

func assumptions(a Answers) []string {
	out := []string{
		"Estimation indicative, à affiner lors d'un échange de cadrage.",
	}
	if !a.Has(fieldTypeProjet) {
		out = append(out, "Type de projet non précisé : aucune base forfaitaire appliquée.")
	}
	if !a.Has("content-complexity") {
		out = append(out, "Complexité des contenus non renseignée : hypothèse de contenus standards.")
	}
	if !a.Has("qa-level") {
		out = append(out, "Niveau de recette non renseigné : hypothèse d'une recette standard.")
	}
	budget := a.Get("budget")
	if budget == "" || budget == "je-ne-sais-pas" {
		out = append(out, "Budget non communiqué : fourchette élargie.")
	}
	return out
}

func exclusions(a Answers) []string {
	out := []string{
		"Achat de licences, abonnements SaaS et frais d'hébergement.",
		"Production de contenus photo et vidéo.",
		"Campagnes publicitaires et achat média.",
	}
	if a.Get(fieldTypeProjet) == "app-mobile" {
		out = append(out, "Frais de comptes développeur App Store / Play Store.")
	}
	return out
}

func nextSteps() []string {
	return []string{
		"Prise de contact sous 24h ouvrées.",
		"Atelier de cadrage pour affiner le périmètre.",
		"Proposition commerciale détaillée.",
	}
}
