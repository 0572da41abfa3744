package leads

import (
	"context"
	"fmt"
	"strings"

	"quote-simulator/internal/common/aws"
	"quote-simulator/internal/common/config"
	"quote-simulator/internal/common/logger"
	"quote-simulator/internal/common/metrics"
)

// Notifier fans a new lead out to the sales team. Every channel is
// best-effort: a delivery failure is logged and counted but never blocks
// the submission.
type Notifier struct {
	email aws.EmailSender
	topic aws.TopicPublisher
	cfg   config.IntegrationConfig
	log   logger.Logger
}

func NewNotifier(email aws.EmailSender, topic aws.TopicPublisher, cfg config.IntegrationConfig, log logger.Logger) *Notifier {
	return &Notifier{
		email: email,
		topic: topic,
		cfg:   cfg,
		log:   log,
	}
}

// NotifyNewLead sends the configured notifications for a freshly stored lead.
func (n *Notifier) NotifyNewLead(ctx context.Context, req *SubmitRequest, estimate Estimate) {
	subject := fmt.Sprintf("Nouveau lead : %s", leadTitle(req.Contact))
	body := leadSummary(req, estimate)

	if n.cfg.AWS.SES.Enabled && n.email != nil {
		err := n.email.SendEmail(ctx, n.cfg.AWS.SES.FromEmail, n.cfg.AWS.SES.SalesEmail, subject, body)
		if err != nil {
			metrics.NotificationsSent.WithLabelValues("email", "error").Inc()
			n.log.WithError(err).Warn("sales email notification failed", map[string]interface{}{
				"channel": "email",
			})
		} else {
			metrics.NotificationsSent.WithLabelValues("email", "ok").Inc()
		}
	}

	if n.cfg.AWS.SNS.Enabled && n.topic != nil {
		err := n.topic.Publish(ctx, n.cfg.AWS.SNS.TopicARN, subject, body)
		if err != nil {
			metrics.NotificationsSent.WithLabelValues("sns", "error").Inc()
			n.log.WithError(err).Warn("sales topic notification failed", map[string]interface{}{
				"channel": "sns",
			})
		} else {
			metrics.NotificationsSent.WithLabelValues("sns", "ok").Inc()
		}
	}
}

func leadTitle(contact ContactInfo) string {
	if contact.Company != "" {
		return contact.Company
	}
	return contact.Name
}

func leadSummary(req *SubmitRequest, estimate Estimate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nom : %s\n", req.Contact.Name)
	fmt.Fprintf(&b, "Email : %s\n", req.Contact.Email)
	if req.Contact.Phone != "" {
		fmt.Fprintf(&b, "Téléphone : %s\n", req.Contact.Phone)
	}
	if req.Contact.Company != "" {
		fmt.Fprintf(&b, "Entreprise : %s\n", req.Contact.Company)
	}
	fmt.Fprintf(&b, "Prestation : %s\n", prestationLabel(req.Answers.Get("type-projet")))
	fmt.Fprintf(&b, "Estimation : %d€ – %d€\n", estimate.Min, estimate.Max)
	fmt.Fprintf(&b, "Urgence : %s\n", urgenceLabel(req.Answers.Get("delai")))
	return b.String()
}
