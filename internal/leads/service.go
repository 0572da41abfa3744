package leads

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	stderrors "quote-simulator/internal/common/errors"
	"quote-simulator/internal/common/logger"
	"quote-simulator/internal/common/metrics"
	"quote-simulator/internal/common/notion"
	"quote-simulator/internal/pricing"
)

// Service handles lead submissions end to end.
type Service struct {
	engine   *pricing.Engine
	notion   *notion.Client
	notifier *Notifier
	log      logger.Logger
}

func NewService(engine *pricing.Engine, notionClient *notion.Client, notifier *Notifier, log logger.Logger) *Service {
	return &Service{
		engine:   engine,
		notion:   notionClient,
		notifier: notifier,
		log:      log,
	}
}

// Submit validates the request, computes the estimate, stores the lead in
// Notion and notifies sales. The estimate is always recomputed server-side,
// client-supplied totals are never trusted.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (*SubmitResponse, *stderrors.StandardError) {
	start := time.Now()
	log := s.log.WithFields(map[string]interface{}{
		"submissionId": uuid.NewString(),
	})

	result, err := ValidateSubmit(req)
	if err != nil {
		metrics.LeadsSubmitted.WithLabelValues("error").Inc()
		return nil, stderrors.NewInternalError("request validation could not run")
	}
	if !result.Valid {
		metrics.LeadsSubmitted.WithLabelValues("invalid").Inc()
		return nil, stderrors.NewValidationError(strings.Join(result.GetErrorMessages(), "; "))
	}

	quote := s.engine.Estimate(req.Answers)
	estimate := Estimate{Min: quote.Min, Max: quote.Max}

	if !s.notion.Configured() {
		log.Warn("lead store is not configured, submission rejected", map[string]interface{}{
			"hasNotionToken":    s.notion.HasToken(),
			"hasNotionDatabase": s.notion.HasDatabase(),
		})
		metrics.LeadsSubmitted.WithLabelValues("error").Inc()
		return nil, stderrors.NewExternalServiceError("notion", errors.New("lead storage is not configured"))
	}

	props := BuildProperties(req.Contact, req.Answers, estimate)
	page, err := s.notion.CreatePage(ctx, props)
	if err != nil {
		log.WithError(err).Error("notion page creation failed", map[string]interface{}{
			"prestation": req.Answers.Get("type-projet"),
		})
		metrics.LeadsSubmitted.WithLabelValues("error").Inc()
		metrics.LeadSubmitDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, stderrors.NewExternalServiceError("notion", errors.New("lead record could not be created"))
	}

	if s.notifier != nil {
		s.notifier.NotifyNewLead(ctx, req, estimate)
	}

	log.Info("lead submitted", map[string]interface{}{
		"notionPageId": page.ID,
		"estimateMin":  estimate.Min,
		"estimateMax":  estimate.Max,
		"confidence":   string(quote.Confidence),
	})
	metrics.LeadsSubmitted.WithLabelValues("ok").Inc()
	metrics.LeadSubmitDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())

	return &SubmitResponse{
		OK:        true,
		Estimate:  estimate,
		Breakdown: quote.Breakdown,
		NotionURL: page.URL,
	}, nil
}
