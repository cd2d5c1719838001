package entity

import (
	"time"
)

// Job is a single job posting. Title, Description and Company are always
// non-empty for a persisted Job; Location falls back to "Remote" at the
// storage layer when omitted.
type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Salary       string    `json:"salary"`
	Requirements []string  `json:"requirements"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// JobPatch carries a partial update; nil fields are left untouched.
type JobPatch struct {
	Title        *string
	Description  *string
	Company      *string
	Location     *string
	Salary       *string
	Requirements *[]string
	Featured     *bool
}

// Empty reports whether the patch changes nothing.
func (p JobPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Company == nil &&
		p.Location == nil && p.Salary == nil && p.Requirements == nil && p.Featured == nil
}
