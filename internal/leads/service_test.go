package leads

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "quote-simulator/internal/common/errors"
	"quote-simulator/internal/common/logger"
	"quote-simulator/internal/common/notion"
	"quote-simulator/internal/pricing"
)

// ==========================================================================
// Helpers
// ==========================================================================

func validRequest() *SubmitRequest {
	return &SubmitRequest{
		Contact: ContactInfo{
			Name:    "Jean Dupont",
			Email:   "jean@exemple.fr",
			Company: "Acme SARL",
		},
		Answers: pricing.Answers{
			"type-projet": "site-vitrine",
			"design":      "oui-complet",
		},
	}
}

func newFakeNotion(t *testing.T, handler http.HandlerFunc) *notion.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return notion.NewClient("secret-token", "db-id", notion.WithBaseURL(srv.URL))
}

func newService(notionClient *notion.Client) *Service {
	return NewService(pricing.NewEngine(nil), notionClient, nil, logger.NewNoOpLogger())
}

// ==========================================================================
// Submit
// ==========================================================================

func TestSubmit_Success(t *testing.T) {
	var gotProps map[string]interface{}
	client := newFakeNotion(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Properties map[string]interface{} `json:"properties"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotProps = body.Properties

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"abc-123-def"}`))
	})

	resp, stdErr := newService(client).Submit(context.Background(), validRequest())
	require.Nil(t, stdErr)

	assert.True(t, resp.OK)
	assert.Greater(t, resp.Estimate.Min, 0)
	assert.GreaterOrEqual(t, resp.Estimate.Max, resp.Estimate.Min)
	assert.Equal(t, "https://www.notion.so/abc123def", resp.NotionURL)

	require.NotNil(t, gotProps)
	assert.Contains(t, gotProps, "Name")
	assert.Contains(t, gotProps, "Estimation min")
	assert.Contains(t, gotProps, "Réponses (JSON)")

	min := gotProps["Estimation min"].(map[string]interface{})["number"].(float64)
	assert.Equal(t, resp.Estimate.Min, int(min))
}

func TestSubmit_RecomputesEstimateServerSide(t *testing.T) {
	client := newFakeNotion(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	})
	svc := newService(client)

	req := validRequest()
	resp, stdErr := svc.Submit(context.Background(), req)
	require.Nil(t, stdErr)

	want := pricing.NewEngine(nil).Estimate(req.Answers)
	assert.Equal(t, want.Min, resp.Estimate.Min)
	assert.Equal(t, want.Max, resp.Estimate.Max)
	assert.Equal(t, want.Breakdown, resp.Breakdown)
}

func TestSubmit_ValidationError(t *testing.T) {
	client := newFakeNotion(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("notion must not be called for an invalid request")
	})

	req := validRequest()
	req.Contact.Email = "pas-un-email"

	resp, stdErr := newService(client).Submit(context.Background(), req)
	assert.Nil(t, resp)
	require.NotNil(t, stdErr)
	assert.Equal(t, stderrors.ErrCodeValidation, stdErr.Code)
	assert.Contains(t, stdErr.Details, "contact.email")
}

func TestSubmit_UnconfiguredStoreReturnsGenericNotice(t *testing.T) {
	svc := newService(notion.NewClient("", ""))

	resp, stdErr := svc.Submit(context.Background(), validRequest())
	assert.Nil(t, resp)
	require.NotNil(t, stdErr)
	assert.Equal(t, stderrors.ErrCodeExternalService, stdErr.Code)
	assert.Equal(t, "lead storage is not configured", stdErr.Details)
}

func TestSubmit_NotionFailureIsSanitized(t *testing.T) {
	client := newFakeNotion(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"secret internal detail"}`))
	})

	resp, stdErr := newService(client).Submit(context.Background(), validRequest())
	assert.Nil(t, resp)
	require.NotNil(t, stdErr)
	assert.Equal(t, stderrors.ErrCodeExternalService, stdErr.Code)
	assert.NotContains(t, stdErr.Details, "secret internal detail")
	assert.Equal(t, "lead record could not be created", stdErr.Details)
}

func TestSubmit_HTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, stderrors.HTTPStatus(stderrors.ErrCodeExternalService))
	assert.Equal(t, http.StatusBadRequest, stderrors.HTTPStatus(stderrors.ErrCodeValidation))
}
