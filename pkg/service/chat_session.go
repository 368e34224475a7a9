// Case chat session - optimistic conversation state for one case
package service

import (
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/unalbahadir/lawyer-assistant/pkg/models"
)

var (
	ErrEmptyQuestion   = errors.New("question is empty")
	ErrQuestionPending = errors.New("a question is already awaiting its answer")
)

// ChatSession maintains the ordered conversation sequence of one case under
// optimistic submission. A submitted question appears immediately as a pending
// entry; the server's reply replaces that entry in place — same position, new
// identity — so the transient entry and the final entry are never both
// visible. A failed submission removes the pending entry entirely.
//
// Pending entries are identified by a negative id from a local counter;
// confirmed ids are positive. Resolution is correlated purely by that id, so a
// reply that arrives after Reset (case switch) finds nothing to update and is
// dropped without effect.
type ChatSession struct {
	mu      sync.Mutex
	caseID  int64
	entries []models.ChatEntry
	pending int64 // temp id of the in-flight submission, 0 when none

	nextTemp      int64
	lastConfirmed int64
}

// NewChatSession creates an empty session. Reset binds it to a case.
func NewChatSession() *ChatSession {
	return &ChatSession{}
}

// Submit appends a pending entry for the question and returns its temporary
// id for later correlation. caseID names the case the caller intends to ask
// about; if the session has since been rebound to another case the submission
// is refused, so a question can never land in a different case's sequence.
// At most one submission may be in flight at a time; a second attempt is
// refused here, not left to the UI's button state.
func (s *ChatSession) Submit(caseID int64, question string) (int64, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return 0, ErrEmptyQuestion
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if caseID != s.caseID {
		return 0, ErrNoActiveCase
	}
	if s.pending != 0 {
		return 0, ErrQuestionPending
	}

	s.nextTemp--
	tempID := s.nextTemp
	s.entries = append(s.entries, models.ChatEntry{
		ID:        tempID,
		CaseID:    s.caseID,
		Question:  question,
		Sources:   []string{},
		CreatedAt: time.Now(),
	})
	s.pending = tempID
	return tempID, nil
}

// Resolve replaces the pending entry with id tempID in place with the
// confirmed answer. A missing tempID means the session was reset since the
// submission (case switched away); the reply belongs to a view that no longer
// exists and is silently dropped. Returns whether the entry was updated.
//
// The chat endpoint does not return the persisted row id, so the confirmed
// entry receives a millisecond-timestamp id; the true server id arrives with
// the next wholesale history load. Sequence order is never changed.
func (s *ChatSession) Resolve(tempID int64, reply models.ChatReply) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(tempID)
	if i < 0 {
		return false
	}

	e := s.entries[i]
	e.ID = s.confirmedID()
	e.Answer = reply.Response
	e.Sources = reply.Sources
	if e.Sources == nil {
		e.Sources = []string{}
	}
	e.KVKKWarning = reply.KVKKWarning
	s.entries[i] = e

	if s.pending == tempID {
		s.pending = 0
	}
	return true
}

// Reject rolls back the pending entry with id tempID, leaving the sequence as
// it was before the submission. Missing ids are ignored. Returns whether an
// entry was removed.
func (s *ChatSession) Reject(tempID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(tempID)
	if i < 0 {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	if s.pending == tempID {
		s.pending = 0
	}
	return true
}

// Reset clears the sequence and binds the session to a case. Any in-flight
// submission is forgotten; its later resolution will find nothing to update.
func (s *ChatSession) Reset(caseID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.caseID = caseID
	s.entries = nil
	s.pending = 0
}

// LoadHistory replaces the sequence wholesale with server-confirmed messages.
func (s *ChatSession) LoadHistory(caseID int64, msgs []models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.caseID = caseID
	s.entries = make([]models.ChatEntry, 0, len(msgs))
	for _, m := range msgs {
		s.entries = append(s.entries, models.EntryFromHistory(caseID, m))
	}
	s.pending = 0
}

// InFlight reports whether a submission is awaiting resolution.
func (s *ChatSession) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != 0
}

// Entries returns a copy of the conversation in submission order.
func (s *ChatSession) Entries() []models.ChatEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *ChatSession) indexOf(id int64) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// confirmedID returns a positive, strictly increasing local id for an entry
// confirmed without a server id. Caller holds s.mu.
func (s *ChatSession) confirmedID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastConfirmed {
		id = s.lastConfirmed + 1
	}
	s.lastConfirmed = id
	return id
}
