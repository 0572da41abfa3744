// Package leads turns a completed wizard into a CRM record: it validates
// the contact details, computes the estimate, stores the lead in Notion and
// notifies the sales team.
package leads

import (
	"quote-simulator/internal/pricing"
)

// ContactInfo is the prospect's contact block of a submission.
type ContactInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
}

// SubmitRequest is the payload accepted by POST /api/leads.
type SubmitRequest struct {
	Contact ContactInfo     `json:"contact"`
	Answers pricing.Answers `json:"answers"`
}

// Estimate is the price range echoed back to the caller.
type Estimate struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// SubmitResponse is the success payload of POST /api/leads.
type SubmitResponse struct {
	OK        bool                    `json:"ok"`
	Estimate  Estimate                `json:"estimate"`
	Breakdown []pricing.BreakdownItem `json:"breakdown"`
	NotionURL string                  `json:"notionUrl,omitempty"`
}
