package questions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================================================================
// Catalog shape
// ==========================================================================

func TestAll_StartsWithProjectType(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	assert.Equal(t, "type-projet", all[0].ID)
	assert.True(t, all[0].Required)
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	first[0].ID = "mutated"

	assert.Equal(t, "type-projet", All()[0].ID)
}

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, q := range All() {
		assert.False(t, seen[q.ID], "duplicate question id %q", q.ID)
		seen[q.ID] = true
	}
}

func TestCatalog_SelectQuestionsHaveOptions(t *testing.T) {
	for _, q := range All() {
		if q.Type == TypeSelect || q.Type == TypeMultiSelect {
			assert.NotEmpty(t, q.Options, "question %q has no options", q.ID)
		}
		for _, opt := range q.Options {
			assert.NotEmpty(t, opt.Value, "question %q has an option without a value", q.ID)
			assert.NotEmpty(t, opt.Label, "question %q option %q has no label", q.ID, opt.Value)
		}
	}
}

func TestCatalog_CoversPricingFields(t *testing.T) {
	fields := []string{
		"type-projet", "budget", "design", "fonctionnalites", "referencement",
		"delai", "content-level", "content-complexity", "workshops", "multi-lang",
		"tool-connections", "maintenance", "qa-level", "training",
		"nombre-pages", "web-templates", "cms-needed",
		"ecom-products", "ecom-payment", "ecom-shipping", "ecom-invoicing",
		"refonte-constraints", "refonte-seo", "refonte-content", "refonte-redesign",
		"mobile-screens", "mobile-platforms", "mobile-stack", "mobile-auth",
		"mobile-roles", "mobile-features", "mobile-notifications", "mobile-content",
		"backend-scope", "store-publishing", "mobile-analytics", "mobile-post-launch",
	}
	for _, field := range fields {
		_, ok := ByID(field)
		assert.True(t, ok, "no question for field %q", field)
	}
}

// ==========================================================================
// Visibility filtering
// ==========================================================================

func TestForProjectType(t *testing.T) {
	tests := []struct {
		name        string
		projectType string
		wantIDs     []string
		wantAbsent  []string
	}{
		{
			name:        "site vitrine sees web questions but not ecom or mobile",
			projectType: "site-vitrine",
			wantIDs:     []string{"type-projet", "nombre-pages", "cms-needed", "design"},
			wantAbsent:  []string{"ecom-products", "mobile-screens", "refonte-seo"},
		},
		{
			name:        "ecommerce adds catalog questions",
			projectType: "ecommerce",
			wantIDs:     []string{"ecom-products", "ecom-payment", "ecom-shipping", "ecom-invoicing", "nombre-pages"},
			wantAbsent:  []string{"mobile-screens", "refonte-redesign"},
		},
		{
			name:        "refonte adds migration questions",
			projectType: "refonte",
			wantIDs:     []string{"refonte-constraints", "refonte-seo", "refonte-content", "refonte-redesign"},
			wantAbsent:  []string{"ecom-payment", "mobile-platforms"},
		},
		{
			name:        "mobile drops web-only questions",
			projectType: "app-mobile",
			wantIDs:     []string{"mobile-screens", "mobile-platforms", "backend-scope", "store-publishing", "mobile-post-launch"},
			wantAbsent:  []string{"nombre-pages", "web-templates", "cms-needed", "ecom-products"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible := ForProjectType(tt.projectType)
			ids := make(map[string]bool, len(visible))
			for _, q := range visible {
				ids[q.ID] = true
			}
			for _, id := range tt.wantIDs {
				assert.True(t, ids[id], "expected %q to be visible for %q", id, tt.projectType)
			}
			for _, id := range tt.wantAbsent {
				assert.False(t, ids[id], "expected %q to be hidden for %q", id, tt.projectType)
			}
		})
	}
}

func TestForProjectType_UnknownTypeGetsUngatedQuestionsOnly(t *testing.T) {
	visible := ForProjectType("something-else")
	for _, q := range visible {
		assert.Empty(t, q.VisibleFor, "gated question %q leaked for an unknown type", q.ID)
	}
	ids := make(map[string]bool, len(visible))
	for _, q := range visible {
		ids[q.ID] = true
	}
	assert.True(t, ids["type-projet"])
	assert.True(t, ids["budget"])
}

func TestVisibleTo(t *testing.T) {
	ungated := Question{ID: "a"}
	gated := Question{ID: "b", VisibleFor: []string{"ecommerce"}}

	assert.True(t, ungated.VisibleTo("anything"))
	assert.True(t, gated.VisibleTo("ecommerce"))
	assert.False(t, gated.VisibleTo("site-vitrine"))
}

// ==========================================================================
// Lookup
// ==========================================================================

func TestByID(t *testing.T) {
	q, ok := ByID("delai")
	require.True(t, ok)
	assert.Equal(t, TypeSelect, q.Type)
	assert.Len(t, q.Options, 3)

	_, ok = ByID("nope")
	assert.False(t, ok)
}
