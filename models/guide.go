package models

// CapRound is one round of the centralized admission process timeline.
type CapRound struct {
	Round       string   `json:"round"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Steps       []string `json:"steps"`
}

// Tip is a short piece of counseling advice.
type Tip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FAQ is a frequently asked question with its answer.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Guide bundles the static counseling content served on the guide page.
type Guide struct {
	Rounds        []CapRound `json:"rounds"`
	Documents     []string   `json:"documents"`
	DocumentsNote string     `json:"documentsNote"`
	Tips          []Tip      `json:"tips"`
	FAQs          []FAQ      `json:"faqs"`
}
