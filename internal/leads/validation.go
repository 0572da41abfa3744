package leads

import (
	"quote-simulator/internal/common/validation"
)

// submitSchema checks the envelope shape. Semantic checks (email and phone
// formats) run separately so their messages stay readable.
const submitSchema = `{
	"type": "object",
	"required": ["contact", "answers"],
	"properties": {
		"contact": {
			"type": "object",
			"required": ["name", "email"],
			"properties": {
				"name":    {"type": "string", "minLength": 1},
				"email":   {"type": "string", "minLength": 3},
				"phone":   {"type": "string"},
				"company": {"type": "string"}
			}
		},
		"answers": {
			"type": "object",
			"additionalProperties": {"type": "string"}
		}
	}
}`

// ValidateSubmit validates a submission request and returns the collected
// field errors. A nil error with result.Valid=false means the request is
// well-formed JSON that fails the business rules.
func ValidateSubmit(req *SubmitRequest) (*validation.ValidationResult, error) {
	doc := map[string]interface{}{
		"contact": map[string]interface{}{
			"name":    req.Contact.Name,
			"email":   req.Contact.Email,
			"phone":   req.Contact.Phone,
			"company": req.Contact.Company,
		},
		"answers": answersDoc(req.Answers),
	}

	result, err := validation.ValidateDocument(doc, submitSchema)
	if err != nil {
		return nil, err
	}

	if req.Contact.Email != "" && !validation.ValidateEmail(req.Contact.Email) {
		result.AddError("contact.email", "must be a valid email address", "FORMAT")
	}
	if req.Contact.Phone != "" && !validation.ValidatePhone(req.Contact.Phone) {
		result.AddError("contact.phone", "must be a valid phone number", "FORMAT")
	}
	return result, nil
}

func answersDoc(a map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
