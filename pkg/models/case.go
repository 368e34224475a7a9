package models

import "time"

// CaseStatus is the lifecycle state of a case as reported by the backend.
type CaseStatus string

const (
	CaseStatusActive   CaseStatus = "active"
	CaseStatusClosed   CaseStatus = "closed"
	CaseStatusArchived CaseStatus = "archived"
)

// Case is a legal case as stored by the backend. The workspace never mutates
// cases; it only loads one as the frame for the chat, document and template
// sessions.
type Case struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ClientName  string     `json:"client_name,omitempty"`
	CaseNumber  string     `json:"case_number,omitempty"`
	Status      CaseStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
