package guide

import "cetcounselor/models"

// Service serves the static counseling-guide content. Everything here is
// editorial copy; it changes with releases, not at runtime.
type Service struct{}

// NewService creates a guide service.
func NewService() *Service {
	return &Service{}
}

// Content returns the full guide.
func (s *Service) Content() models.Guide {
	return models.Guide{
		Rounds:        capRounds,
		Documents:     requiredDocuments,
		DocumentsNote: documentsNote,
		Tips:          importantTips,
		FAQs:          faqs,
	}
}

var capRounds = []models.CapRound{
	{
		Round:       "CAP Round 1",
		Duration:    "July 15-20, 2024",
		Description: "First round of counseling with choice filling and document verification",
		Status:      "upcoming",
		Steps: []string{
			"Document verification at designated centers",
			"Choice filling and locking",
			"Provisional allotment display",
			"Confirmation of admission",
		},
	},
	{
		Round:       "CAP Round 2",
		Duration:    "July 25-30, 2024",
		Description: "Second round for remaining seats and fresh applications",
		Status:      "upcoming",
		Steps: []string{
			"Fresh choice filling for unallotted candidates",
			"Document verification for new candidates",
			"Provisional allotment display",
			"Confirmation of admission",
		},
	},
	{
		Round:       "CAP Round 3",
		Duration:    "August 5-10, 2024",
		Description: "Final round including institutional level counseling",
		Status:      "upcoming",
		Steps: []string{
			"Final choice filling",
			"Allotment of remaining seats",
			"Institutional level counseling",
			"Final admission confirmation",
		},
	},
}

var requiredDocuments = []string{
	"MHT-CET/JEE Score Card",
	"HSC Mark Sheet",
	"SSC Mark Sheet",
	"Domicile Certificate",
	"Caste Certificate (if applicable)",
	"Non-Creamy Layer Certificate (for OBC)",
	"Income Certificate",
	"Aadhar Card",
	"Passport Size Photographs",
	"Transfer Certificate",
}

const documentsNote = "Carry original documents along with photocopies. Some documents may require attestation by gazetted officer."

var importantTips = []models.Tip{
	{
		Title:       "Research Thoroughly",
		Description: "Study college infrastructure, placement records, faculty, and alumni network before making choices.",
	},
	{
		Title:       "Balanced Choice List",
		Description: "Include safe colleges (80% chance), moderate colleges (50% chance), and dream colleges (20% chance).",
	},
	{
		Title:       "Location Matters",
		Description: "Consider proximity to home, city infrastructure, cost of living, and career opportunities.",
	},
	{
		Title:       "Branch vs College",
		Description: "Sometimes a better branch in a decent college is preferable to a mediocre branch in a top college.",
	},
}

var faqs = []models.FAQ{
	{
		Question: "What is the difference between MHT-CET and JEE counseling?",
		Answer:   "MHT-CET counseling is specifically for Maharashtra state colleges and includes state quota seats. JEE counseling covers both state and all-India quota seats. Students can participate in both processes.",
	},
	{
		Question: "Can I change my choices after locking?",
		Answer:   "No, once you lock your choices, they cannot be modified. However, you can fill fresh choices in subsequent rounds if you don't get allotted or reject your allotment.",
	},
	{
		Question: "What happens if I don't report to college after allotment?",
		Answer:   "If you don't report within the specified time, your seat will be cancelled and offered to the next eligible candidate. You may lose your opportunity for that particular round.",
	},
	{
		Question: "Can I participate in multiple counseling processes?",
		Answer:   "Yes, you can participate in MHT-CET, JEE, and other state counseling processes simultaneously. However, you can only confirm admission in one college.",
	},
	{
		Question: "How many choices should I fill?",
		Answer:   "Fill as many choices as possible (usually 100+) to maximize your chances. Include colleges across different locations and fee structures.",
	},
}
