package pricing

// Lot names, in presentation order.
const (
	LotCadrage       = "Cadrage"
	LotUXUI          = "UX/UI"
	LotDeveloppement = "Développement"
	LotIntegrations  = "Intégrations"
	LotSEOTracking   = "SEO/Tracking"
	LotQALivraison   = "QA & Livraison"
	LotPostLancement = "Post-lancement"
)

var lotOrder = []string{
	LotCadrage,
	LotUXUI,
	LotDeveloppement,
	LotIntegrations,
	LotSEOTracking,
	LotQALivraison,
	LotPostLancement,
}

// fieldTypeProjet is the answer governing most gates.
const fieldTypeProjet = "type-projet"

// gate conditions a rule on another answer. Zero-value fields are ignored.
type gate struct {
	field     string
	equals    string
	notEquals string
}

func (g gate) open(a Answers) bool {
	v := a.Get(g.field)
	if g.equals != "" && v != g.equals {
		return false
	}
	if g.notEquals != "" && v == g.notEquals {
		return false
	}
	return true
}

// rule binds an answer field to a pricing table entry and a lot.
// Rules are evaluated in order; the order fixes the breakdown order.
type rule struct {
	category string
	field    string
	multi    bool
	lot      string
	gates    []gate
}

func (r rule) applies(a Answers) bool {
	for _, g := range r.gates {
		if !g.open(a) {
			return false
		}
	}
	return true
}

var (
	webOnly     = []gate{{field: fieldTypeProjet, notEquals: "app-mobile"}}
	ecomOnly    = []gate{{field: fieldTypeProjet, equals: "ecommerce"}}
	refonteOnly = []gate{{field: fieldTypeProjet, equals: "refonte"}}
	mobileOnly  = []gate{{field: fieldTypeProjet, equals: "app-mobile"}}
)

var ruleTable = []rule{
	{category: "workshops", field: "workshops", lot: LotCadrage},
	{category: "contentLevel", field: "content-level", lot: LotCadrage},
	{category: "contentComplexity", field: "content-complexity", lot: LotCadrage},
	{category: "refonteContent", field: "refonte-content", lot: LotCadrage, gates: refonteOnly},

	{category: "design", field: "design", lot: LotUXUI},
	{category: "webTemplates", field: "web-templates", lot: LotUXUI, gates: webOnly},
	{category: "refonteRedesign", field: "refonte-redesign", lot: LotUXUI, gates: refonteOnly},

	{category: "pages", field: "nombre-pages", lot: LotDeveloppement, gates: webOnly},
	{category: "integrations", field: "fonctionnalites", lot: LotDeveloppement},
	{category: "multiLang", field: "multi-lang", lot: LotDeveloppement},
	{category: "delai", field: "delai", lot: LotDeveloppement},
	{category: "ecomProducts", field: "ecom-products", lot: LotDeveloppement, gates: ecomOnly},
	{category: "mobileScreens", field: "mobile-screens", lot: LotDeveloppement, gates: mobileOnly},
	{category: "mobilePlatforms", field: "mobile-platforms", lot: LotDeveloppement, gates: mobileOnly},
	{category: "mobileStack", field: "mobile-stack", lot: LotDeveloppement, gates: mobileOnly},
	{category: "mobileAuth", field: "mobile-auth", lot: LotDeveloppement, gates: mobileOnly},
	{category: "mobileRoles", field: "mobile-roles", lot: LotDeveloppement, gates: mobileOnly},
	{category: "backendScope", field: "backend-scope", lot: LotDeveloppement, gates: mobileOnly},

	{category: "toolConnections", field: "tool-connections", multi: true, lot: LotIntegrations},
	{category: "cms", field: "cms-needed", lot: LotIntegrations, gates: webOnly},
	{category: "ecomPayment", field: "ecom-payment", lot: LotIntegrations, gates: ecomOnly},
	{category: "ecomShipping", field: "ecom-shipping", lot: LotIntegrations, gates: ecomOnly},
	{category: "ecomInvoicing", field: "ecom-invoicing", lot: LotIntegrations, gates: ecomOnly},
	{category: "mobileFeatures", field: "mobile-features", multi: true, lot: LotIntegrations, gates: mobileOnly},
	{category: "mobileNotifications", field: "mobile-notifications", lot: LotIntegrations, gates: mobileOnly},

	{category: "seo", field: "referencement", lot: LotSEOTracking},
	{category: "refonteSeo", field: "refonte-seo", lot: LotSEOTracking, gates: refonteOnly},
	{category: "mobileAnalytics", field: "mobile-analytics", lot: LotSEOTracking, gates: mobileOnly},

	{category: "qaLevel", field: "qa-level", lot: LotQALivraison},
	{category: "storePublishing", field: "store-publishing", lot: LotQALivraison, gates: mobileOnly},

	{category: "training", field: "training", lot: LotPostLancement},
	{category: "maintenance", field: "maintenance", lot: LotPostLancement},
	{category: "mobilePostLaunch", field: "mobile-post-launch", multi: true, lot: LotPostLancement, gates: mobileOnly},
}

// tracking is derived, not answered: advanced feature sets and shops
// always get analytics wired in.
func derivedTracking(a Answers) string {
	if a.Get("fonctionnalites") == "avance" || a.Get(fieldTypeProjet) == "ecommerce" {
		return "oui"
	}
	return "non"
}

// quantified lists the per-value quantity and unit for billable units.
var quantified = map[string]map[string]struct {
	Qty  int
	Unit string
}{
	"workshops": {
		"1-atelier":    {Qty: 1, Unit: "atelier"},
		"2-3-ateliers": {Qty: 3, Unit: "atelier"},
	},
	"training": {
		"1h":   {Qty: 1, Unit: "heure"},
		"2-3h": {Qty: 3, Unit: "heure"},
	},
}
