// Case workspace service - coordinates chat, documents and template drafts
// for the single active case
package service

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/unalbahadir/lawyer-assistant/pkg/event"
	"github.com/unalbahadir/lawyer-assistant/pkg/models"
	"github.com/unalbahadir/lawyer-assistant/pkg/utils"
)

var (
	ErrNoActiveCase = errors.New("no case workspace is open")
	ErrInvalidTab   = errors.New("unknown tab")
)

// WorkspaceService is the top-level coordinator of the case workspace
// session: it owns the active case identity and tab, and composes the chat
// session, document tracker and template session. Opening a case fully
// supersedes the previous one; completions still in flight for the old case
// are recognized by their session token or correlation id and dropped without
// touching the new case's state. The transport has no cancellation, so this
// state-mutation cancellation is the only kind there is.
type WorkspaceService struct {
	backend Backend
	logger  *slog.Logger

	chat     *ChatSession
	docs     *DocumentTracker
	template *TemplateSession

	mu         sync.Mutex
	session    string // token of the current OpenCase, "" when closed
	phase      models.WorkspacePhase
	caseID     int64
	tab        models.Tab
	caseData   *models.Case
	loadErrors []string
}

// NewWorkspaceService creates an uninitialized workspace over the given
// backend.
func NewWorkspaceService(b Backend) *WorkspaceService {
	return &WorkspaceService{
		backend:  b,
		logger:   utils.GetLogger(),
		chat:     NewChatSession(),
		docs:     NewDocumentTracker(b),
		template: NewTemplateSession(b),
		phase:    models.PhaseUninitialized,
	}
}

// OpenCase makes caseID the active case. All three sub-collections are reset
// before any data for the new case loads, so nothing can leak across cases.
// The case metadata fetch is fatal: on failure the workspace stays closed and
// the caller is expected to navigate back to the case list. Document and
// history loads run in parallel and are individually non-fatal; their
// failures degrade to an empty view with an error banner.
func (s *WorkspaceService) OpenCase(ctx context.Context, caseID int64) error {
	token := uuid.NewString()

	s.mu.Lock()
	prev := s.caseID
	s.session = token
	s.phase = models.PhaseLoading
	s.caseID = caseID
	s.tab = models.TabChat
	s.caseData = nil
	s.loadErrors = nil
	s.mu.Unlock()

	if prev != 0 && prev != caseID {
		event.Emit(event.WorkspaceClosedEvent{CaseID: prev})
	}

	s.chat.Reset(caseID)
	s.docs.Reset(caseID)
	s.template.Reset()

	caseData, err := s.backend.GetCase(ctx, caseID)
	if err != nil {
		s.mu.Lock()
		if s.session == token {
			s.session = ""
			s.phase = models.PhaseUninitialized
			s.caseID = 0
		}
		s.mu.Unlock()
		return errors.Wrapf(err, "load case %d", caseID)
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		msgs, err := s.backend.GetChatHistory(ctx, caseID)
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.session != token {
			return
		}
		if err != nil {
			s.logger.Warn("Failed to load chat history", "caseId", caseID, "error", err)
			s.loadErrors = append(s.loadErrors, "chat history could not be loaded")
			return
		}
		s.chat.LoadHistory(caseID, msgs)
	}()

	go func() {
		defer wg.Done()
		err := s.docs.Load(ctx, caseID)
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.session != token {
			return
		}
		if err != nil {
			s.logger.Warn("Failed to load documents", "caseId", caseID, "error", err)
			s.loadErrors = append(s.loadErrors, "documents could not be loaded")
		}
	}()

	wg.Wait()

	s.mu.Lock()
	if s.session != token {
		// Superseded by a newer OpenCase while loading.
		s.mu.Unlock()
		return nil
	}
	s.caseData = caseData
	s.phase = models.PhaseReady
	s.mu.Unlock()

	s.logger.Info("Case workspace opened", "caseId", caseID, "title", caseData.Title)
	event.Emit(event.WorkspaceOpenedEvent{CaseID: caseID})
	return nil
}

// CloseCase discards the active workspace. In-flight completions for it will
// find their session token or correlation id gone and fall through.
func (s *WorkspaceService) CloseCase() {
	s.mu.Lock()
	caseID := s.caseID
	s.session = ""
	s.phase = models.PhaseUninitialized
	s.caseID = 0
	s.caseData = nil
	s.loadErrors = nil
	s.mu.Unlock()

	s.chat.Reset(0)
	s.docs.Reset(0)
	s.template.Reset()

	if caseID != 0 {
		event.Emit(event.WorkspaceClosedEvent{CaseID: caseID})
	}
}

// SwitchTab changes the active tab. Chat and document state survive the
// switch untouched; leaving the templates tab discards the draft session, so
// revisiting it always shows a fresh generation prompt.
func (s *WorkspaceService) SwitchTab(tab models.Tab) error {
	if !tab.Valid() {
		return ErrInvalidTab
	}

	s.mu.Lock()
	if s.phase != models.PhaseReady {
		s.mu.Unlock()
		return ErrNoActiveCase
	}
	leavingTemplates := s.tab == models.TabTemplates && tab != models.TabTemplates
	s.tab = tab
	caseID := s.caseID
	s.mu.Unlock()

	if leavingTemplates {
		s.template.Reset()
		event.Emit(event.TemplateChangedEvent{CaseID: caseID})
	}
	event.Emit(event.WorkspaceTabChangedEvent{CaseID: caseID, Tab: string(tab)})
	return nil
}

// SendMessage submits one question for the active case: the question appears
// immediately as a pending entry and is reconciled or rolled back when the
// backend answers. If the user switched cases before the answer arrived, the
// resolution finds no matching entry and dies quietly.
func (s *WorkspaceService) SendMessage(ctx context.Context, text string) error {
	s.mu.Lock()
	if s.phase != models.PhaseReady {
		s.mu.Unlock()
		return ErrNoActiveCase
	}
	caseID := s.caseID
	s.mu.Unlock()

	tempID, err := s.chat.Submit(caseID, text)
	if err != nil {
		return err
	}
	event.Emit(event.ChatChangedEvent{CaseID: caseID})

	reply, err := s.backend.SendMessage(ctx, models.ChatRequest{CaseID: caseID, Message: text})
	if err != nil {
		if s.chat.Reject(tempID) {
			event.Emit(event.ChatChangedEvent{CaseID: caseID})
		}
		return errors.Wrap(err, "send message")
	}

	if s.chat.Resolve(tempID, *reply) {
		event.Emit(event.ChatChangedEvent{CaseID: caseID})
	} else {
		s.logger.Debug("Dropped reply for superseded chat entry", "caseId", caseID, "tempId", tempID)
	}
	return nil
}

// UploadDocument sends one file to the backend and refreshes the document set.
func (s *WorkspaceService) UploadDocument(ctx context.Context, filename string, content io.Reader) error {
	s.mu.Lock()
	if s.phase != models.PhaseReady {
		s.mu.Unlock()
		return ErrNoActiveCase
	}
	caseID := s.caseID
	s.mu.Unlock()

	if err := s.docs.Upload(ctx, caseID, filename, content); err != nil {
		return err
	}
	event.Emit(event.DocumentsChangedEvent{CaseID: caseID})
	return nil
}

// DeleteDocument removes one document. confirmed must be true or the request
// never reaches the backend.
func (s *WorkspaceService) DeleteDocument(ctx context.Context, documentID int64, confirmed bool) error {
	s.mu.Lock()
	if s.phase != models.PhaseReady {
		s.mu.Unlock()
		return ErrNoActiveCase
	}
	caseID := s.caseID
	s.mu.Unlock()

	if err := s.docs.Delete(ctx, caseID, documentID, confirmed); err != nil {
		return err
	}
	event.Emit(event.DocumentsChangedEvent{CaseID: caseID})
	return nil
}

// RefreshDocuments re-fetches the document set, e.g. when the user revisits
// the documents tab to see whether indexing has finished.
func (s *WorkspaceService) RefreshDocuments(ctx context.Context) error {
	s.mu.Lock()
	if s.phase != models.PhaseReady {
		s.mu.Unlock()
		return ErrNoActiveCase
	}
	caseID := s.caseID
	s.mu.Unlock()

	if err := s.docs.Load(ctx, caseID); err != nil {
		return err
	}
	event.Emit(event.DocumentsChangedEvent{CaseID: caseID})
	return nil
}

// SetTemplateType selects the draft type for the templates tab.
func (s *WorkspaceService) SetTemplateType(t models.TemplateType) error {
	s.mu.Lock()
	if s.phase != models.PhaseReady {
		s.mu.Unlock()
		return ErrNoActiveCase
	}
	caseID := s.caseID
	s.mu.Unlock()

	if err := s.template.SelectType(t); err != nil {
		return err
	}
	event.Emit(event.TemplateChangedEvent{CaseID: caseID})
	return nil
}

// GenerateDraft runs one draft generation for the active case.
func (s *WorkspaceService) GenerateDraft(ctx context.Context) error {
	s.mu.Lock()
	if s.phase != models.PhaseReady {
		s.mu.Unlock()
		return ErrNoActiveCase
	}
	caseID := s.caseID
	s.mu.Unlock()

	event.Emit(event.TemplateChangedEvent{CaseID: caseID})
	err := s.template.Generate(ctx, caseID)
	event.Emit(event.TemplateChangedEvent{CaseID: caseID})
	if err != nil {
		return err
	}
	return nil
}

// State returns the full workspace snapshot for the UI.
func (s *WorkspaceService) State() models.WorkspaceState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.WorkspaceState{
		Phase:     s.phase,
		CaseID:    s.caseID,
		ActiveTab: s.tab,
		Case:      s.caseData,
		Chat:      s.chat.Entries(),
		Documents: s.docs.Snapshot(),
		Template:  s.template.Snapshot(),
		Errors:    append([]string(nil), s.loadErrors...),
	}
}

// ChatEntries returns the active conversation in submission order.
func (s *WorkspaceService) ChatEntries() []models.ChatEntry { return s.chat.Entries() }

// Documents returns the tracked document set.
func (s *WorkspaceService) Documents() []models.Document { return s.docs.Snapshot() }

// TemplateDraft returns the current draft session state.
func (s *WorkspaceService) TemplateDraft() models.TemplateDraft { return s.template.Snapshot() }
