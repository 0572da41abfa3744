package questions

var (
	webTypes     = []string{"site-vitrine", "ecommerce", "application-web", "refonte"}
	ecomTypes    = []string{"ecommerce"}
	refonteTypes = []string{"refonte"}
	mobileTypes  = []string{"app-mobile"}
)

// catalog is the ordered question table served to the wizard front end.
var catalog = []Question{
	{
		ID:       "type-projet",
		Type:     TypeSelect,
		Label:    "Quel type de projet souhaitez-vous réaliser ?",
		Required: true,
		Options: []Option{
			{Value: "site-vitrine", Label: "Site vitrine"},
			{Value: "ecommerce", Label: "Site e-commerce"},
			{Value: "application-web", Label: "Application web"},
			{Value: "app-mobile", Label: "Application mobile"},
			{Value: "refonte", Label: "Refonte d'un site existant"},
		},
	},
	{
		ID:       "nombre-pages",
		Type:     TypeSelect,
		Label:    "Combien de pages prévoyez-vous ?",
		Required: false,
		Options: []Option{
			{Value: "1-5", Label: "1 à 5 pages"},
			{Value: "6-10", Label: "6 à 10 pages"},
			{Value: "11-20", Label: "11 à 20 pages"},
			{Value: "20+", Label: "Plus de 20 pages"},
		},
		VisibleFor: webTypes,
	},
	{
		ID:       "design",
		Type:     TypeSelect,
		Label:    "Disposez-vous déjà d'un design ?",
		Required: true,
		Options: []Option{
			{Value: "oui-complet", Label: "Oui, complet"},
			{Value: "oui-partiel", Label: "Oui, partiel"},
			{Value: "non", Label: "Non, tout est à créer"},
		},
	},
	{
		ID:       "web-templates",
		Type:     TypeSelect,
		Label:    "Combien de gabarits de page faut-il concevoir ?",
		Required: false,
		Options: []Option{
			{Value: "1-2", Label: "1 à 2 gabarits"},
			{Value: "3-5", Label: "3 à 5 gabarits"},
			{Value: "6+", Label: "6 gabarits ou plus"},
		},
		VisibleFor: webTypes,
	},
	{
		ID:       "fonctionnalites",
		Type:     TypeSelect,
		Label:    "Quel niveau de fonctionnalités attendez-vous ?",
		Required: false,
		Options: []Option{
			{Value: "basique", Label: "Fonctionnalités de base"},
			{Value: "intermediaire", Label: "Fonctionnalités intermédiaires"},
			{Value: "avance", Label: "Fonctionnalités avancées"},
		},
	},
	{
		ID:       "content-level",
		Type:     TypeSelect,
		Label:    "Où en sont vos contenus ?",
		Required: false,
		Options: []Option{
			{Value: "fourni", Label: "Contenus prêts et fournis"},
			{Value: "mixte", Label: "En partie à produire"},
			{Value: "a-produire", Label: "Tout est à produire"},
		},
	},
	{
		ID:       "content-complexity",
		Type:     TypeSelect,
		Label:    "Quelle est la complexité de vos contenus ?",
		Required: false,
		Options: []Option{
			{Value: "simple", Label: "Simple"},
			{Value: "standard", Label: "Standard"},
			{Value: "complexe", Label: "Complexe"},
		},
	},
	{
		ID:       "workshops",
		Type:     TypeSelect,
		Label:    "Souhaitez-vous des ateliers de cadrage ?",
		Required: false,
		Options: []Option{
			{Value: "aucun", Label: "Aucun"},
			{Value: "1-atelier", Label: "1 atelier"},
			{Value: "2-3-ateliers", Label: "2 à 3 ateliers"},
		},
	},
	{
		ID:       "multi-lang",
		Type:     TypeSelect,
		Label:    "En combien de langues le projet doit-il exister ?",
		Required: false,
		Options: []Option{
			{Value: "1", Label: "Une seule langue"},
			{Value: "2", Label: "Deux langues"},
			{Value: "3+", Label: "Trois langues ou plus"},
		},
	},
	{
		ID:       "tool-connections",
		Type:     TypeMultiSelect,
		Label:    "Quels outils faut-il connecter ?",
		Required: false,
		Options: []Option{
			{Value: "crm", Label: "CRM"},
			{Value: "emailing", Label: "Emailing"},
			{Value: "paiement", Label: "Paiement"},
			{Value: "notion-erp", Label: "Notion / ERP"},
			{Value: "autre", Label: "Autre"},
		},
	},
	{
		ID:       "cms-needed",
		Type:     TypeSelect,
		Label:    "Avez-vous besoin d'un CMS pour gérer vos contenus ?",
		Required: false,
		Options: []Option{
			{Value: "non", Label: "Non"},
			{Value: "oui-simple", Label: "Oui, simple"},
			{Value: "oui-avance", Label: "Oui, avancé"},
		},
		VisibleFor: webTypes,
	},
	{
		ID:       "referencement",
		Type:     TypeSelect,
		Label:    "Souhaitez-vous un accompagnement SEO ?",
		Required: false,
		Options: []Option{
			{Value: "non", Label: "Non"},
			{Value: "oui-basique", Label: "Oui, basique"},
			{Value: "oui-complet", Label: "Oui, complet"},
		},
	},
	{
		ID:       "delai",
		Type:     TypeSelect,
		Label:    "Quel est votre délai ?",
		Required: true,
		Options: []Option{
			{Value: "urgent", Label: "Urgent (moins d'un mois)"},
			{Value: "normal", Label: "Normal (1 à 3 mois)"},
			{Value: "flexible", Label: "Flexible"},
		},
	},
	{
		ID:       "qa-level",
		Type:     TypeSelect,
		Label:    "Quel niveau de recette attendez-vous ?",
		Required: false,
		Options: []Option{
			{Value: "basique", Label: "Basique"},
			{Value: "standard", Label: "Standard"},
			{Value: "renforce", Label: "Renforcé"},
		},
	},
	{
		ID:       "training",
		Type:     TypeSelect,
		Label:    "Souhaitez-vous une formation à la prise en main ?",
		Required: false,
		Options: []Option{
			{Value: "aucune", Label: "Aucune"},
			{Value: "1h", Label: "1 heure"},
			{Value: "2-3h", Label: "2 à 3 heures"},
		},
	},
	{
		ID:       "maintenance",
		Type:     TypeSelect,
		Label:    "Souhaitez-vous une maintenance après livraison ?",
		Required: false,
		Options: []Option{
			{Value: "non", Label: "Non"},
			{Value: "oui-ponctuel", Label: "Oui, ponctuelle"},
			{Value: "oui-mensuel", Label: "Oui, mensuelle"},
		},
	},
	{
		ID:       "budget",
		Type:     TypeSelect,
		Label:    "Quel est votre budget indicatif ?",
		Required: false,
		Options: []Option{
			{Value: "moins-5000", Label: "Moins de 5 000€"},
			{Value: "5000-10000", Label: "5 000€ à 10 000€"},
			{Value: "10000-25000", Label: "10 000€ à 25 000€"},
			{Value: "25000+", Label: "Plus de 25 000€"},
			{Value: "je-ne-sais-pas", Label: "Je ne sais pas"},
		},
	},

	// E-commerce
	{
		ID:       "ecom-products",
		Type:     TypeSelect,
		Label:    "Combien de produits comptera votre catalogue ?",
		Required: false,
		Options: []Option{
			{Value: "0-20", Label: "Jusqu'à 20 produits"},
			{Value: "20-100", Label: "20 à 100 produits"},
			{Value: "100-500", Label: "100 à 500 produits"},
			{Value: "500+", Label: "Plus de 500 produits"},
		},
		VisibleFor: ecomTypes,
	},
	{
		ID:       "ecom-payment",
		Type:     TypeSelect,
		Label:    "Quels moyens de paiement souhaitez-vous ?",
		Required: false,
		Options: []Option{
			{Value: "stripe", Label: "Stripe uniquement"},
			{Value: "multi", Label: "Plusieurs moyens de paiement"},
		},
		VisibleFor: ecomTypes,
	},
	{
		ID:       "ecom-shipping",
		Type:     TypeSelect,
		Label:    "Quelle logistique de livraison prévoyez-vous ?",
		Required: false,
		Options: []Option{
			{Value: "simple", Label: "Simple"},
			{Value: "complexe", Label: "Complexe (transporteurs multiples)"},
		},
		VisibleFor: ecomTypes,
	},
	{
		ID:       "ecom-invoicing",
		Type:     TypeSelect,
		Label:    "Faut-il générer la facturation et les documents ?",
		Required: false,
		Options: []Option{
			{Value: "non", Label: "Non"},
			{Value: "oui", Label: "Oui"},
		},
		VisibleFor: ecomTypes,
	},

	// Refonte
	{
		ID:       "refonte-constraints",
		Type:     TypeSelect,
		Label:    "Votre site actuel impose-t-il des contraintes techniques ?",
		Required: false,
		Options: []Option{
			{Value: "non", Label: "Non"},
			{Value: "oui", Label: "Oui"},
			{Value: "je-ne-sais-pas", Label: "Je ne sais pas"},
		},
		VisibleFor: refonteTypes,
	},
	{
		ID:       "refonte-seo",
		Type:     TypeSelect,
		Label:    "Faut-il migrer le référencement existant ?",
		Required: false,
		Options: []Option{
			{Value: "non", Label: "Non"},
			{Value: "oui", Label: "Oui"},
		},
		VisibleFor: refonteTypes,
	},
	{
		ID:       "refonte-content",
		Type:     TypeSelect,
		Label:    "Faut-il reprendre et nettoyer les contenus existants ?",
		Required: false,
		Options: []Option{
			{Value: "non", Label: "Non"},
			{Value: "oui", Label: "Oui"},
		},
		VisibleFor: refonteTypes,
	},
	{
		ID:       "refonte-redesign",
		Type:     TypeSelect,
		Label:    "Souhaitez-vous un redesign complet ?",
		Required: false,
		Options: []Option{
			{Value: "non", Label: "Non"},
			{Value: "oui", Label: "Oui"},
		},
		VisibleFor: refonteTypes,
	},

	// Mobile
	{
		ID:       "mobile-screens",
		Type:     TypeSelect,
		Label:    "Combien d'écrans comptera l'application ?",
		Required: false,
		Options: []Option{
			{Value: "1-5", Label: "1 à 5 écrans"},
			{Value: "6-10", Label: "6 à 10 écrans"},
			{Value: "11-20", Label: "11 à 20 écrans"},
			{Value: "21-40", Label: "21 à 40 écrans"},
		},
		VisibleFor: mobileTypes,
	},
	{
		ID:       "mobile-platforms",
		Type:     TypeSelect,
		Label:    "Sur quelles plateformes ?",
		Required: false,
		Options: []Option{
			{Value: "ios", Label: "iOS"},
			{Value: "android", Label: "Android"},
			{Value: "ios-android", Label: "iOS et Android"},
		},
		VisibleFor: mobileTypes,
	},
	{
		ID:       "mobile-stack",
		Type:     TypeSelect,
		Label:    "Quelle stack technique privilégiez-vous ?",
		Required: false,
		Options: []Option{
			{Value: "cross-platform", Label: "Cross-platform"},
			{Value: "natif", Label: "Natif"},
		},
		VisibleFor: mobileTypes,
	},
	{
		ID:       "mobile-auth",
		Type:     TypeSelect,
		Label:    "Quel type de comptes utilisateurs ?",
		Required: false,
		Options: []Option{
			{Value: "none", Label: "Aucun"},
			{Value: "simple", Label: "Comptes simples"},
			{Value: "sso", Label: "SSO / fédération d'identité"},
		},
		VisibleFor: mobileTypes,
	},
	{
		ID:       "mobile-roles",
		Type:     TypeSelect,
		Label:    "Faut-il gérer des rôles et permissions ?",
		Required: false,
		Options: []Option{
			{Value: "aucun", Label: "Aucun"},
			{Value: "utilisateurs", Label: "Rôles utilisateurs"},
			{Value: "admin-roles", Label: "Rôles et back-office admin"},
		},
		VisibleFor: mobileTypes,
	},
	{
		ID:       "mobile-features",
		Type:     TypeMultiSelect,
		Label:    "Quelles fonctionnalités mobiles souhaitez-vous ?",
		Required: false,
		Options: []Option{
			{Value: "paiement", Label: "Paiement intégré"},
			{Value: "notifications-push", Label: "Notifications push"},
			{Value: "geolocalisation", Label: "Géolocalisation"},
			{Value: "chat", Label: "Chat / messagerie"},
			{Value: "autre", Label: "Autre"},
		},
		VisibleFor: mobileTypes,
	},
	{
		ID:       "mobile-notifications",
		Type:     TypeSelect,
		Label:    "Quel niveau de notifications push ?",
		Required: false,
		Options: []Option{
			{Value: "basique", Label: "Basique"},
			{Value: "segmentees", Label: "Segmentées"},
			{Value: "automatisees", Label: "Automatisées"},
		},
		VisibleFor: mobileTypes,
	},
	{
		ID:       "mobile-content",
		Type:     TypeSelect,
		Label:    "D'où viendront les contenus de l'application ?",
		Required: false,
		Options: []Option{
			{Value: "statique", Label: "Contenus statiques"},
			{Value: "backoffice", Label: "Back-office dédié"},
			{Value: "si-erp", Label: "SI / ERP existant"},
		},
		VisibleFor: mobileTypes,
	},
	{
		ID:       "backend-scope",
		Type:     TypeSelect,
		Label:    "Quelle ampleur pour le backend et l'API ?",
		Required: false,
		Options: []Option{
			{Value: "aucun", Label: "Aucun"},
			{Value: "simple", Label: "Simple"},
			{Value: "avance", Label: "Avancé"},
		},
		VisibleFor: mobileTypes,
	},
	{
		ID:       "store-publishing",
		Type:     TypeSelect,
		Label:    "Faut-il gérer la publication sur les stores ?",
		Required: false,
		Options: []Option{
			{Value: "non", Label: "Non"},
			{Value: "oui", Label: "Oui"},
		},
		VisibleFor: mobileTypes,
	},
	{
		ID:       "mobile-analytics",
		Type:     TypeSelect,
		Label:    "Quel suivi analytique pour l'application ?",
		Required: false,
		Options: []Option{
			{Value: "basique", Label: "Basique"},
			{Value: "avance", Label: "Avancé"},
		},
		VisibleFor: mobileTypes,
	},
	{
		ID:       "mobile-post-launch",
		Type:     TypeMultiSelect,
		Label:    "Que prévoyez-vous après le lancement ?",
		Required: false,
		Options: []Option{
			{Value: "maintenance-corrective", Label: "Maintenance corrective"},
			{Value: "maintenance-evolutive", Label: "Maintenance évolutive"},
			{Value: "rapports-statistiques", Label: "Rapports statistiques"},
			{Value: "ab-testing", Label: "A/B testing"},
			{Value: "campagnes-publicitaires", Label: "Campagnes publicitaires"},
		},
		VisibleFor: mobileTypes,
	},
}
