// Template draft session - one-shot draft generation, detached from the chat
package service

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/unalbahadir/lawyer-assistant/pkg/models"
)

var (
	ErrInvalidTemplateType = errors.New("unknown template type")
	ErrGenerationInFlight  = errors.New("a draft is already being generated")
)

// DraftKVKKWarning accompanies every generated draft shown to the user.
const DraftKVKKWarning = "Bu taslak AI tarafından oluşturulmuştur. Kullanmadan önce gözden geçirin ve gerekli düzenlemeleri yapın. KVKK mevzuatına uygun hareket edilmesi gerekmektedir."

// TemplateSession holds the transient draft state of the templates tab.
// Exactly one exists per case-tab visit; it is never persisted, and switching
// case or leaving the tab discards it via Reset. A failed generation keeps
// the previous draft so the user can simply retry.
type TemplateSession struct {
	backend TemplateBackend

	mu    sync.Mutex
	draft models.TemplateDraft
	epoch uint64 // bumped on Reset so an in-flight generation cannot land
}

// NewTemplateSession creates a session with the default type selected.
func NewTemplateSession(b TemplateBackend) *TemplateSession {
	return &TemplateSession{
		backend: b,
		draft:   models.TemplateDraft{TemplateType: models.TemplateDilekce},
	}
}

// SelectType changes the selected template type and discards any previously
// generated draft, so it is always clear which type produced what. A
// generation still in flight for the old type is abandoned; its result would
// otherwise appear under the wrong type.
func (s *TemplateSession) SelectType(t models.TemplateType) error {
	if !t.Valid() {
		return ErrInvalidTemplateType
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.draft = models.TemplateDraft{TemplateType: t}
	return nil
}

// Generate requests a draft for caseID with the selected type. A second call
// while one is in flight is refused without issuing a request. On failure the
// previous draft text stays as it was; generation is idempotent to retry.
func (s *TemplateSession) Generate(ctx context.Context, caseID int64) error {
	s.mu.Lock()
	if s.draft.IsGenerating {
		s.mu.Unlock()
		return ErrGenerationInFlight
	}
	s.draft.IsGenerating = true
	epoch := s.epoch
	req := models.TemplateRequest{CaseID: caseID, TemplateType: s.draft.TemplateType}
	s.mu.Unlock()

	reply, err := s.backend.GenerateTemplate(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		// Session was reset while the request was in flight; the result
		// belongs to a discarded tab visit.
		return nil
	}
	s.draft.IsGenerating = false
	if err != nil {
		return err
	}
	s.draft.Draft = reply.Draft
	s.draft.Sources = reply.Sources
	s.draft.KVKKWarning = DraftKVKKWarning
	return nil
}

// Reset discards the draft and any in-flight generation result, returning
// the session to a fresh empty prompt with the default type.
func (s *TemplateSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.draft = models.TemplateDraft{TemplateType: models.TemplateDilekce}
}

// Snapshot returns the current draft state.
func (s *TemplateSession) Snapshot() models.TemplateDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}
