package models

import "time"

// Exam type and stream options offered at signup.
var (
	ExamTypes = []string{"MHT-CET", "JEE", "HSC"}
	Streams   = []string{"Engineering", "Pharmacy", "Agriculture"}
)

// UserProfile is the single locally stored account for an installation.
//
// Password is stored and compared in plain text. The login flow is a local
// convenience gate for a self-hosted install, not authentication; treat the
// data dir accordingly.
//
// CapList holds full College snapshots taken at the moment of adding. If the
// catalog is ever reseeded, shortlisted copies intentionally keep the old
// values.
type UserProfile struct {
	ID         string    `json:"id,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Password   string    `json:"password"`
	ExamType   string    `json:"examType"`
	Stream     string    `json:"stream"`
	JoinedDate time.Time `json:"joinedDate"`
	CapList    []College `json:"capList"`
}

// InCapList reports whether a college with the given id is already shortlisted.
func (p UserProfile) InCapList(collegeID int) bool {
	for _, c := range p.CapList {
		if c.ID == collegeID {
			return true
		}
	}
	return false
}
