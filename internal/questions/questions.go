// Package questions defines the wizard question catalog and its
// visibility rules.
package questions

// QuestionType enumerates the supported input kinds.
type QuestionType string

const (
	TypeSelect      QuestionType = "select"
	TypeMultiSelect QuestionType = "multi-select"
	TypeText        QuestionType = "text"
)

// Option is one selectable answer.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Question describes one wizard step.
// VisibleFor empty means the question applies to every project type.
type Question struct {
	ID         string       `json:"id"`
	Type       QuestionType `json:"type"`
	Label      string       `json:"label"`
	Required   bool         `json:"required"`
	Options    []Option     `json:"options,omitempty"`
	VisibleFor []string     `json:"visibleFor,omitempty"`
}

// VisibleTo reports whether the question applies to the given project type.
// An empty project type only matches unconditional questions.
func (q Question) VisibleTo(projectType string) bool {
	if len(q.VisibleFor) == 0 {
		return true
	}
	for _, t := range q.VisibleFor {
		if t == projectType {
			return true
		}
	}
	return false
}

// All returns the full ordered catalog.
func All() []Question {
	out := make([]Question, len(catalog))
	copy(out, catalog)
	return out
}

// ForProjectType returns the ordered questions visible for a project type.
func ForProjectType(projectType string) []Question {
	out := make([]Question, 0, len(catalog))
	for _, q := range catalog {
		if q.VisibleTo(projectType) {
			out = append(out, q)
		}
	}
	return out
}

// ByID returns a question by identifier.
func ByID(id string) (Question, bool) {
	for _, q := range catalog {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
