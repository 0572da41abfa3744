package leads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote-simulator/internal/pricing"
)

// ==========================================================================
// Request validation
// ==========================================================================

func TestValidateSubmit(t *testing.T) {
	tests := []struct {
		name      string
		req       SubmitRequest
		wantValid bool
		wantField string
	}{
		{
			name: "valid full request",
			req: SubmitRequest{
				Contact: ContactInfo{
					Name:    "Jean Dupont",
					Email:   "jean@exemple.fr",
					Phone:   "+33 6 12 34 56 78",
					Company: "Acme",
				},
				Answers: pricing.Answers{"type-projet": "site-vitrine"},
			},
			wantValid: true,
		},
		{
			name: "valid without optional fields",
			req: SubmitRequest{
				Contact: ContactInfo{Name: "Marie", Email: "marie@exemple.fr"},
				Answers: pricing.Answers{},
			},
			wantValid: true,
		},
		{
			name: "missing name",
			req: SubmitRequest{
				Contact: ContactInfo{Email: "jean@exemple.fr"},
				Answers: pricing.Answers{},
			},
			wantValid: false,
			wantField: "contact.name",
		},
		{
			name: "missing email",
			req: SubmitRequest{
				Contact: ContactInfo{Name: "Jean"},
				Answers: pricing.Answers{},
			},
			wantValid: false,
			wantField: "contact.email",
		},
		{
			name: "malformed email",
			req: SubmitRequest{
				Contact: ContactInfo{Name: "Jean", Email: "pas-un-email"},
				Answers: pricing.Answers{},
			},
			wantValid: false,
			wantField: "contact.email",
		},
		{
			name: "malformed phone",
			req: SubmitRequest{
				Contact: ContactInfo{Name: "Jean", Email: "jean@exemple.fr", Phone: "abc"},
				Answers: pricing.Answers{},
			},
			wantValid: false,
			wantField: "contact.phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateSubmit(&tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid)
			if tt.wantField != "" {
				assert.True(t, result.HasErrors(tt.wantField),
					"expected an error on %q, got %v", tt.wantField, result.Errors)
			}
		})
	}
}
