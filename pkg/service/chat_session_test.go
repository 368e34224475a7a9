package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/unalbahadir/lawyer-assistant/pkg/models"
)

func TestChatSession_SubmitResolve_ReplacesInPlace(t *testing.T) {
	s := NewChatSession()
	s.Reset(7)

	// A loaded history in front of the pending entry pins its position.
	s.LoadHistory(7, []models.ChatMessage{
		{ID: 1, Message: "earlier question", Response: "earlier answer"},
	})

	tempID, err := s.Submit(7, "What is the contract term?")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if tempID >= 0 {
		t.Fatalf("Submit() temp id = %d, want negative", tempID)
	}

	entries := s.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if !entries[1].Pending() {
		t.Fatalf("entry should be pending before resolution")
	}

	ok := s.Resolve(tempID, models.ChatReply{
		Response:    "12 months",
		Sources:     []string{"doc1.pdf"},
		KVKKWarning: "warning",
	})
	if !ok {
		t.Fatalf("Resolve() = false, want true")
	}

	entries = s.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(entries) after resolve = %d, want 2", len(entries))
	}
	got := entries[1]
	if got.Pending() {
		t.Fatalf("entry still pending after resolve")
	}
	if got.Question != "What is the contract term?" {
		t.Fatalf("Question = %q", got.Question)
	}
	if got.Answer != "12 months" {
		t.Fatalf("Answer = %q, want %q", got.Answer, "12 months")
	}
	if len(got.Sources) != 1 || got.Sources[0] != "doc1.pdf" {
		t.Fatalf("Sources = %v", got.Sources)
	}
	if got.KVKKWarning != "warning" {
		t.Fatalf("KVKKWarning = %q", got.KVKKWarning)
	}
	for _, e := range entries {
		if e.ID == tempID {
			t.Fatalf("entry with temp id %d still present after resolve", tempID)
		}
	}
}

func TestChatSession_ExactlyOneEntryPerQuestion(t *testing.T) {
	s := NewChatSession()
	s.Reset(1)

	for i, q := range []string{"first", "second", "third"} {
		tempID, err := s.Submit(1, q)
		if err != nil {
			t.Fatalf("Submit(%q) error = %v", q, err)
		}
		if !s.Resolve(tempID, models.ChatReply{Response: "a"}) {
			t.Fatalf("Resolve(%q) = false", q)
		}
		entries := s.Entries()
		if len(entries) != i+1 {
			t.Fatalf("after %q: len = %d, want %d", q, len(entries), i+1)
		}
		if entries[i].Question != q {
			t.Fatalf("order broken: entries[%d].Question = %q, want %q", i, entries[i].Question, q)
		}
	}
}

func TestChatSession_Reject_NetZero(t *testing.T) {
	s := NewChatSession()
	s.Reset(1)
	s.LoadHistory(1, []models.ChatMessage{{ID: 5, Message: "kept", Response: "kept"}})

	before := len(s.Entries())
	tempID, err := s.Submit(1, "doomed question")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !s.Reject(tempID) {
		t.Fatalf("Reject() = false, want true")
	}
	if got := len(s.Entries()); got != before {
		t.Fatalf("len after reject = %d, want %d", got, before)
	}
	if s.InFlight() {
		t.Fatalf("submission still marked in flight after reject")
	}
}

func TestChatSession_ResolveRejectUnknownID_NoOp(t *testing.T) {
	s := NewChatSession()
	s.Reset(1)
	tempID, _ := s.Submit(1, "question")

	if s.Resolve(-9999, models.ChatReply{Response: "x"}) {
		t.Fatalf("Resolve(unknown) = true, want false")
	}
	if s.Reject(-9999) {
		t.Fatalf("Reject(unknown) = true, want false")
	}
	entries := s.Entries()
	if len(entries) != 1 || entries[0].ID != tempID {
		t.Fatalf("unknown-id calls mutated the sequence: %+v", entries)
	}
}

func TestChatSession_SubmitValidation(t *testing.T) {
	s := NewChatSession()
	s.Reset(1)

	if _, err := s.Submit(1, "   \t "); err != ErrEmptyQuestion {
		t.Fatalf("Submit(blank) error = %v, want ErrEmptyQuestion", err)
	}

	if _, err := s.Submit(1, "first"); err != nil {
		t.Fatalf("Submit(first) error = %v", err)
	}
	if _, err := s.Submit(1, "second while pending"); err != ErrQuestionPending {
		t.Fatalf("Submit(second) error = %v, want ErrQuestionPending", err)
	}
}

func TestChatSession_SubmitTrimsQuestion(t *testing.T) {
	s := NewChatSession()
	s.Reset(1)

	if _, err := s.Submit(1, "  padded  "); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if got := s.Entries()[0].Question; got != "padded" {
		t.Fatalf("Question = %q, want %q", got, "padded")
	}
}

func TestChatSession_ResetDropsInFlightResolution(t *testing.T) {
	s := NewChatSession()
	s.Reset(1)

	tempID, _ := s.Submit(1, "question for case 1")

	// Case switch: reset, then the old reply arrives late.
	s.Reset(2)
	if s.Resolve(tempID, models.ChatReply{Response: "stale"}) {
		t.Fatalf("Resolve() applied against reset session")
	}
	if got := len(s.Entries()); got != 0 {
		t.Fatalf("len after stale resolve = %d, want 0", got)
	}

	// And the new case accepts submissions again.
	if _, err := s.Submit(2, "question for case 2"); err != nil {
		t.Fatalf("Submit() after reset error = %v", err)
	}
}

func TestChatSession_SubmitRefusedForUnboundCase(t *testing.T) {
	s := NewChatSession()
	s.Reset(1)

	// The caller decided to ask about case 1, but the session was rebound to
	// case 2 in between. The question must not land in case 2's sequence.
	s.Reset(2)
	if _, err := s.Submit(1, "question meant for case 1"); !errors.Is(err, ErrNoActiveCase) {
		t.Fatalf("Submit(unbound case) error = %v, want ErrNoActiveCase", err)
	}
	if got := len(s.Entries()); got != 0 {
		t.Fatalf("len after refused submit = %d, want 0", got)
	}

	if _, err := s.Submit(2, "question for case 2"); err != nil {
		t.Fatalf("Submit(bound case) error = %v", err)
	}
}

func TestChatSession_LoadHistoryReplacesWholesale(t *testing.T) {
	s := NewChatSession()
	s.Reset(3)
	if _, err := s.Submit(3, "pending"); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	s.LoadHistory(3, []models.ChatMessage{
		{ID: 10, Message: "q1", Response: "a1", Sources: []string{"d.pdf"}},
		{ID: 11, Message: "q2", Response: "a2"},
	})

	entries := s.Entries()
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].ID != 10 || entries[1].ID != 11 {
		t.Fatalf("history order broken: %+v", entries)
	}
	for _, e := range entries {
		if e.Pending() {
			t.Fatalf("history entry marked pending: %+v", e)
		}
	}
	if s.InFlight() {
		t.Fatalf("in-flight flag survived a wholesale load")
	}
}

func TestChatSession_ConfirmedIDsPositiveAndIncreasing(t *testing.T) {
	s := NewChatSession()
	s.Reset(1)

	var last int64
	for i := 0; i < 3; i++ {
		tempID, err := s.Submit(1, strings.Repeat("q", i+1))
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		s.Resolve(tempID, models.ChatReply{Response: "a"})
		id := s.Entries()[i].ID
		if id <= 0 {
			t.Fatalf("confirmed id = %d, want positive", id)
		}
		if id <= last {
			t.Fatalf("confirmed ids not increasing: %d after %d", id, last)
		}
		last = id
	}
}
