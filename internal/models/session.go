package models

// Session is a planned study session.
//
// Date is an ISO-8601 date-time that already combines the calendar date and
// Time; Time is kept separately for editing forms.
type Session struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subject  string `json:"subject"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
	Notes    string `json:"notes,omitempty"`
}

// SessionPatch is a partial update. A nil field leaves the base value as is.
type SessionPatch struct {
	Title    *string `json:"title,omitempty"`
	Subject  *string `json:"subject,omitempty"`
	Date     *string `json:"date,omitempty"`
	Time     *string `json:"time,omitempty"`
	Duration *int    `json:"duration,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// Apply returns base with every present patch field overriding it.
// The id is never patched.
func (p SessionPatch) Apply(base Session) Session {
	out := base
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Subject != nil {
		out.Subject = *p.Subject
	}
	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.Time != nil {
		out.Time = *p.Time
	}
	if p.Duration != nil {
		out.Duration = *p.Duration
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	return out
}

// IsEmpty reports whether the patch carries no field at all.
func (p SessionPatch) IsEmpty() bool {
	return p.Title == nil && p.Subject == nil && p.Date == nil &&
		p.Time == nil && p.Duration == nil && p.Notes == nil
}
