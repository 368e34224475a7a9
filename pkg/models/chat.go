package models

import "time"

// ChatMessage is a question/answer pair as stored by the backend and returned
// from GET /api/chat/case/{id}.
type ChatMessage struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Sources   []string  `json:"sources"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatRequest is the body of POST /api/chat/.
type ChatRequest struct {
	CaseID  int64  `json:"case_id"`
	Message string `json:"message"`
}

// ChatReply is the backend's answer to a single question. KVKKWarning is a
// compliance disclaimer that accompanies every answer and is always displayed
// alongside it. The reply does not carry the persisted row id; that only
// becomes visible on the next history load.
type ChatReply struct {
	Response    string   `json:"response"`
	Sources     []string `json:"sources"`
	KVKKWarning string   `json:"kvkk_warning"`
}

// ChatEntry is one question/answer pair in the workspace's conversation
// sequence. Provenance is distinguished by the identity scheme, not a flag:
// pending entries carry a negative, locally-generated id; confirmed entries a
// positive one. The two spaces never collide by construction.
type ChatEntry struct {
	ID          int64     `json:"id"`
	CaseID      int64     `json:"case_id"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	Sources     []string  `json:"sources"`
	KVKKWarning string    `json:"kvkk_warning,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Pending reports whether the entry is still awaiting server confirmation.
func (e ChatEntry) Pending() bool { return e.ID < 0 }

// EntryFromHistory converts a server-confirmed history message into a
// conversation entry.
func EntryFromHistory(caseID int64, m ChatMessage) ChatEntry {
	return ChatEntry{
		ID:        m.ID,
		CaseID:    caseID,
		Question:  m.Message,
		Answer:    m.Response,
		Sources:   m.Sources,
		CreatedAt: m.CreatedAt,
	}
}
