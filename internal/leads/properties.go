package leads

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"quote-simulator/internal/pricing"
)

// answersJSONLimit caps the serialized answers stored in the rich_text
// property. Notion rejects rich_text content above 2000 characters.
const answersJSONLimit = 1900

var prestationMap = map[string]string{
	"site-vitrine":    "Site vitrine",
	"ecommerce":       "E-commerce",
	"application-web": "Application Web",
	"app-mobile":      "Application mobile",
	"refonte":         "Refonte",
}

var budgetMap = map[string]string{
	"moins-5000":     "< 5 000€",
	"5000-10000":     "5 000€ – 10 000€",
	"10000-25000":    "10 000€ – 25 000€",
	"25000+":         "25 000€+",
	"je-ne-sais-pas": "Je ne sais pas",
}

var urgenceMap = map[string]string{
	"urgent":   "Urgent (< 1 mois)",
	"normal":   "1–3 mois",
	"flexible": "Flexible",
}

// BuildProperties assembles the Notion page properties for one lead. The
// property names and shapes match the sales database schema exactly.
func BuildProperties(contact ContactInfo, answers pricing.Answers, estimate Estimate) map[string]interface{} {
	prestation := prestationLabel(answers.Get("type-projet"))
	titleOwner := contact.Company
	if titleOwner == "" {
		titleOwner = contact.Name
	}

	props := map[string]interface{}{
		"Name": map[string]interface{}{
			"title": []interface{}{
				richText(fmt.Sprintf("%s — %s", titleOwner, prestation)),
			},
		},
		"Email": map[string]interface{}{
			"email": contact.Email,
		},
		"Prestation": map[string]interface{}{
			"select": map[string]interface{}{"name": prestation},
		},
		"Budget déclaré": map[string]interface{}{
			"select": map[string]interface{}{"name": budgetLabel(answers.Get("budget"))},
		},
		"Estimation min": map[string]interface{}{
			"number": estimate.Min,
		},
		"Estimation max": map[string]interface{}{
			"number": estimate.Max,
		},
		"Urgence": map[string]interface{}{
			"select": map[string]interface{}{"name": urgenceLabel(answers.Get("delai"))},
		},
		"Réponses (JSON)": map[string]interface{}{
			"rich_text": []interface{}{
				richText(answersJSON(answers)),
			},
		},
		"Statut": map[string]interface{}{
			"select": map[string]interface{}{"name": "New"},
		},
		"Source": map[string]interface{}{
			"select": map[string]interface{}{"name": "Website Simulator"},
		},
	}

	if contact.Phone != "" {
		props["Téléphone"] = map[string]interface{}{"phone_number": contact.Phone}
	} else {
		props["Téléphone"] = map[string]interface{}{"phone_number": nil}
	}

	entreprise := map[string]interface{}{"rich_text": []interface{}{}}
	if contact.Company != "" {
		entreprise["rich_text"] = []interface{}{richText(contact.Company)}
	}
	props["Entreprise"] = entreprise

	return props
}

func richText(content string) map[string]interface{} {
	return map[string]interface{}{
		"text": map[string]interface{}{"content": content},
	}
}

func prestationLabel(value string) string {
	if label, ok := prestationMap[value]; ok {
		return label
	}
	return "Autre"
}

// budgetLabel maps the budget answer to its select label. Absent or
// unrecognized values both collapse to the unknown sentinel, the sales
// database only carries the known set of options.
func budgetLabel(value string) string {
	if label, ok := budgetMap[value]; ok {
		return label
	}
	return "Je ne sais pas"
}

func urgenceLabel(value string) string {
	if label, ok := urgenceMap[value]; ok {
		return label
	}
	return "1–3 mois"
}

// answersJSON serializes the raw answers for the sales team, truncating to
// stay under the rich_text size limit.
func answersJSON(answers pricing.Answers) string {
	raw, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		return "{}"
	}
	s := string(raw)
	if len(s) > answersJSONLimit {
		// Back up to a rune boundary so accented answer values never
		// produce invalid UTF-8 in the rich_text property.
		cut := answersJSONLimit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "…(truncated)"
	}
	return s
}
