package pricing

import (
	"encoding/json"
	"fmt"
	"os"
)

// Range is a price contribution expressed in euros.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Amount returns the midpoint used for breakdown display.
func (r Range) Amount() int {
	return (r.Min + r.Max) / 2
}

// IsZero reports whether the range contributes nothing.
func (r Range) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// Coefficients are the global multipliers applied to the summed totals.
type Coefficients struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Config holds all pricing tables. It is the single source of truth for
// euro amounts; business rules live in the rule table.
type Config struct {
	BasePrices              map[string]Range            `json:"basePrices"`
	AddOns                  map[string]map[string]Range `json:"addOns"`
	UncertaintyCoefficients Coefficients                `json:"uncertaintyCoefficients"`
}

// LoadConfig reads a pricing config from a JSON file. An empty path
// returns the built-in tables.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse pricing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks structural soundness of the tables.
func (c *Config) Validate() error {
	if len(c.BasePrices) == 0 {
		return fmt.Errorf("basePrices must not be empty")
	}
	for projectType, r := range c.BasePrices {
		if r.Min < 0 || r.Min > r.Max {
			return fmt.Errorf("basePrices[%s]: invalid range [%d, %d]", projectType, r.Min, r.Max)
		}
	}

	for category, values := range c.AddOns {
		for value, r := range values {
			if r.Min > r.Max {
				return fmt.Errorf("addOns[%s][%s]: min %d exceeds max %d", category, value, r.Min, r.Max)
			}
		}
	}

	// Every rule must have a backing table, otherwise answers would
	// silently price at zero.
	for _, rule := range ruleTable {
		if _, ok := c.AddOns[rule.category]; !ok {
			return fmt.Errorf("addOns missing category %q required by rule table", rule.category)
		}
	}

	if c.UncertaintyCoefficients.Min <= 0 || c.UncertaintyCoefficients.Min > c.UncertaintyCoefficients.Max {
		return fmt.Errorf("uncertaintyCoefficients: invalid pair [%f, %f]",
			c.UncertaintyCoefficients.Min, c.UncertaintyCoefficients.Max)
	}

	return nil
}

// DefaultConfig returns the built-in pricing tables.
func DefaultConfig() *Config {
	return &Config{
		BasePrices: map[string]Range{
			"site-vitrine":    {Min: 2500, Max: 2500},
			"ecommerce":       {Min: 6000, Max: 6000},
			"application-web": {Min: 9000, Max: 9000},
			"app-mobile":      {Min: 12000, Max: 12000},
			"refonte":         {Min: 3000, Max: 3000},
		},
		AddOns: map[string]map[string]Range{
			"design": {
				"oui-complet": {Min: 0, Max: 0},
				"oui-partiel": {Min: 1100, Max: 1200},
				"non":         {Min: 2400, Max: 2600},
			},
			"pages": {
				"1-5":   {Min: 0, Max: 0},
				"6-10":  {Min: 1100, Max: 1200},
				"11-20": {Min: 1900, Max: 2100},
				"20+":   {Min: 3200, Max: 3400},
			},
			"integrations": {
				"basique":       {Min: 0, Max: 0},
				"intermediaire": {Min: 2100, Max: 2300},
				"avance":        {Min: 5200, Max: 5600},
			},
			"seo": {
				"non":         {Min: 0, Max: 0},
				"oui-basique": {Min: 850, Max: 950},
				"oui-complet": {Min: 2100, Max: 2300},
			},
			"tracking": {
				"oui": {Min: 550, Max: 650},
				"non": {Min: 0, Max: 0},
			},
			"delai": {
				"urgent":   {Min: 1300, Max: 1500},
				"normal":   {Min: 0, Max: 0},
				"flexible": {Min: -750, Max: -650},
			},
			"contentLevel": {
				"fourni":     {Min: 0, Max: 0},
				"mixte":      {Min: 1100, Max: 1200},
				"a-produire": {Min: 2300, Max: 2500},
			},
			"contentComplexity": {
				"simple":   {Min: 0, Max: 0},
				"standard": {Min: 750, Max: 850},
				"complexe": {Min: 1900, Max: 2100},
			},
			"workshops": {
				"aucun":        {Min: 0, Max: 0},
				"1-atelier":    {Min: 750, Max: 850},
				"2-3-ateliers": {Min: 2000, Max: 2200},
			},
			"webTemplates": {
				"1-2": {Min: 750, Max: 850},
				"3-5": {Min: 1900, Max: 2100},
				"6+":  {Min: 3900, Max: 4100},
			},
			"multiLang": {
				"1":  {Min: 0, Max: 0},
				"2":  {Min: 1100, Max: 1200},
				"3+": {Min: 2300, Max: 2500},
			},
			"toolConnections": {
				"crm":        {Min: 1100, Max: 1200},
				"emailing":   {Min: 550, Max: 650},
				"paiement":   {Min: 1150, Max: 1250},
				"notion-erp": {Min: 2300, Max: 2500},
				"autre":      {Min: 950, Max: 1050},
			},
			"cms": {
				"non":        {Min: 0, Max: 0},
				"oui-simple": {Min: 1450, Max: 1550},
				"oui-avance": {Min: 3400, Max: 3600},
			},
			"ecomProducts": {
				"0-20":    {Min: 1450, Max: 1550},
				"20-100":  {Min: 2900, Max: 3100},
				"100-500": {Min: 4850, Max: 5150},
				"500+":    {Min: 7800, Max: 8200},
			},
			"ecomPayment": {
				"stripe": {Min: 1950, Max: 2050},
				"multi":  {Min: 3900, Max: 4100},
			},
			"ecomShipping": {
				"simple":   {Min: 1450, Max: 1550},
				"complexe": {Min: 3400, Max: 3600},
			},
			"ecomInvoicing": {
				"non": {Min: 0, Max: 0},
				"oui": {Min: 1950, Max: 2050},
			},
			"refonteSeo": {
				"non": {Min: 0, Max: 0},
				"oui": {Min: 2400, Max: 2600},
			},
			"refonteContent": {
				"non": {Min: 0, Max: 0},
				"oui": {Min: 1950, Max: 2050},
			},
			"refonteRedesign": {
				"non": {Min: 0, Max: 0},
				"oui": {Min: 2900, Max: 3100},
			},
			"mobileScreens": {
				"1-5":   {Min: 0, Max: 0},
				"6-10":  {Min: 2400, Max: 2600},
				"11-20": {Min: 4850, Max: 5150},
				"21-40": {Min: 9700, Max: 10300},
			},
			"mobilePlatforms": {
				"ios":         {Min: 0, Max: 0},
				"android":     {Min: 0, Max: 0},
				"ios-android": {Min: 3900, Max: 4100},
			},
			"mobileStack": {
				"cross-platform": {Min: 0, Max: 0},
				"natif":          {Min: 7800, Max: 8200},
			},
			"mobileAuth": {
				"none":   {Min: 0, Max: 0},
				"simple": {Min: 1150, Max: 1250},
				"sso":    {Min: 2900, Max: 3100},
			},
			"mobileRoles": {
				"aucun":        {Min: 0, Max: 0},
				"utilisateurs": {Min: 1450, Max: 1550},
				"admin-roles":  {Min: 3900, Max: 4100},
			},
			"mobileFeatures": {
				"paiement":           {Min: 2400, Max: 2600},
				"notifications-push": {Min: 1150, Max: 1250},
				"geolocalisation":    {Min: 1450, Max: 1550},
				"chat":               {Min: 2900, Max: 3100},
				"autre":              {Min: 1700, Max: 1900},
			},
			"mobileNotifications": {
				"basique":      {Min: 750, Max: 850},
				"segmentees":   {Min: 1950, Max: 2050},
				"automatisees": {Min: 3400, Max: 3600},
			},
			"backendScope": {
				"aucun":  {Min: 0, Max: 0},
				"simple": {Min: 3900, Max: 4100},
				"avance": {Min: 8800, Max: 9200},
			},
			"storePublishing": {
				"non": {Min: 0, Max: 0},
				"oui": {Min: 2400, Max: 2600},
			},
			"mobileAnalytics": {
				"basique": {Min: 450, Max: 550},
				"avance":  {Min: 1650, Max: 1750},
			},
			"mobilePostLaunch": {
				"maintenance-corrective":  {Min: 1450, Max: 1550},
				"maintenance-evolutive":   {Min: 2900, Max: 3100},
				"rapports-statistiques":   {Min: 750, Max: 850},
				"ab-testing":              {Min: 1450, Max: 1550},
				"campagnes-publicitaires": {Min: 1950, Max: 2050},
			},
			"qaLevel": {
				"basique":  {Min: 0, Max: 0},
				"standard": {Min: 1450, Max: 1550},
				"renforce": {Min: 3400, Max: 3600},
			},
			"training": {
				"aucune": {Min: 0, Max: 0},
				"1h":     {Min: 380, Max: 420},
				"2-3h":   {Min: 880, Max: 920},
			},
			"maintenance": {
				"non":          {Min: 0, Max: 0},
				"oui-ponctuel": {Min: 950, Max: 1050},
				"oui-mensuel":  {Min: 2400, Max: 2600},
			},
		},
		UncertaintyCoefficients: Coefficients{Min: 0.97, Max: 1.05},
	}
}
