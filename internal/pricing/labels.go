package pricing

import "fmt"

var projectTypeLabels = map[string]string{
	"site-vitrine":    "Site vitrine",
	"ecommerce":       "E-commerce",
	"application-web": "Application web",
	"app-mobile":      "Application mobile",
	"refonte":         "Refonte de site",
}

// ProjectTypeLabel returns the display label for a project type,
// falling back to the raw identifier when unrecognized.
func ProjectTypeLabel(projectType string) string {
	if label, ok := projectTypeLabels[projectType]; ok {
		return label
	}
	return projectType
}

var designLabels = map[string]string{
	"oui-complet": "Design fourni (complet)",
	"oui-partiel": "Design partiel",
	"non":         "Création design complète",
}

var integrationsLabels = map[string]string{
	"basique":       "Fonctionnalités de base",
	"intermediaire": "Fonctionnalités intermédiaires",
	"avance":        "Fonctionnalités avancées",
}

var seoLabels = map[string]string{
	"oui-complet": "Référencement SEO complet",
	"oui-basique": "Référencement SEO basique",
	"non":         "Pas de référencement",
}

var delaiLabels = map[string]string{
	"urgent":   "Délai urgent (majoration)",
	"normal":   "Délai normal",
	"flexible": "Délai flexible (réduction)",
}

var toolConnectionLabels = map[string]string{
	"crm":        "CRM",
	"emailing":   "Emailing",
	"paiement":   "Paiement",
	"notion-erp": "Notion / ERP",
}

var mobileFeatureLabels = map[string]string{
	"paiement":           "Paiement intégré",
	"notifications-push": "Notifications push",
	"geolocalisation":    "Géolocalisation",
	"chat":               "Chat / messagerie",
}

var postLaunchLabels = map[string]string{
	"maintenance-corrective":  "Maintenance corrective",
	"maintenance-evolutive":   "Maintenance évolutive",
	"rapports-statistiques":   "Rapports statistiques",
	"ab-testing":              "A/B testing",
	"campagnes-publicitaires": "Campagnes publicitaires",
}

// categoryLabel resolves the breakdown label for a single contribution.
// Categories without a per-value label use a fixed caption.
func categoryLabel(category, value string) string {
	switch category {
	case "design":
		return lookup(designLabels, value)
	case "pages":
		return fmt.Sprintf("Pages supplémentaires (%s)", value)
	case "integrations":
		return lookup(integrationsLabels, value)
	case "seo":
		return lookup(seoLabels, value)
	case "tracking":
		return "Analytics et tracking"
	case "delai":
		return lookup(delaiLabels, value)
	case "contentLevel":
		return "Accompagnement contenu"
	case "contentComplexity":
		return "Complexité des contenus"
	case "workshops":
		return "Ateliers de cadrage"
	case "webTemplates":
		return fmt.Sprintf("Conception de gabarits (%s)", value)
	case "multiLang":
		return fmt.Sprintf("Versions multilingues (%s)", value)
	case "toolConnections":
		return fmt.Sprintf("Connexion %s", lookup(toolConnectionLabels, value))
	case "cms":
		return "CMS / gestion de contenu"
	case "ecomProducts":
		return fmt.Sprintf("Catalogue produits (%s)", value)
	case "ecomPayment":
		return "Paiement en ligne"
	case "ecomShipping":
		return "Livraison & logistique"
	case "ecomInvoicing":
		return "Facturation & documents"
	case "refonteSeo":
		return "Migration SEO"
	case "refonteContent":
		return "Reprise et nettoyage de contenu"
	case "refonteRedesign":
		return "Redesign complet"
	case "mobileScreens":
		return fmt.Sprintf("Écrans de l'application (%s)", value)
	case "mobilePlatforms":
		return "Plateformes (iOS / Android)"
	case "mobileStack":
		return "Stack mobile (natif)"
	case "mobileAuth":
		return "Comptes & authentification"
	case "mobileRoles":
		return "Rôles & permissions"
	case "mobileFeatures":
		return lookup(mobileFeatureLabels, value)
	case "mobileNotifications":
		return "Notifications push"
	case "backendScope":
		return "Backend & API"
	case "storePublishing":
		return "Publication App Store / Play Store"
	case "mobilePostLaunch":
		return lookup(postLaunchLabels, value)
	case "mobileAnalytics":
		return "Analytics mobile"
	case "qaLevel":
		return "Tests & recettes"
	case "training":
		return "Formation des équipes"
	case "maintenance":
		return "Maintenance"
	default:
		return value
	}
}

func lookup(labels map[string]string, value string) string {
	if label, ok := labels[value]; ok {
		return label
	}
	return value
}
