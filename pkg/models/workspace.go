package models

// Tab identifies one of the workspace's three sub-views.
type Tab string

const (
	TabChat      Tab = "chat"
	TabDocuments Tab = "documents"
	TabTemplates Tab = "templates"
)

// Valid reports whether t is a known tab.
func (t Tab) Valid() bool {
	switch t {
	case TabChat, TabDocuments, TabTemplates:
		return true
	}
	return false
}

// WorkspacePhase is the workspace session's lifecycle state.
type WorkspacePhase string

const (
	PhaseUninitialized WorkspacePhase = "uninitialized"
	PhaseLoading       WorkspacePhase = "loading"
	PhaseReady         WorkspacePhase = "ready"
)

// WorkspaceState is the full snapshot of the active case workspace handed to
// the UI. All three sub-collections are scoped to exactly one case id at a
// time; a case switch atomically clears and reloads all of them.
type WorkspaceState struct {
	Phase     WorkspacePhase `json:"phase"`
	CaseID    int64          `json:"case_id,omitempty"`
	ActiveTab Tab            `json:"active_tab,omitempty"`
	Case      *Case          `json:"case,omitempty"`
	Chat      []ChatEntry    `json:"chat"`
	Documents []Document     `json:"documents"`
	Template  TemplateDraft  `json:"template"`
	// Errors holds the non-fatal load failures of the last OpenCase, so the
	// UI can show an error banner over an otherwise usable workspace.
	Errors []string `json:"errors,omitempty"`
}

// OpenWorkspaceRequest is the body of POST /api/workspace/open.
type OpenWorkspaceRequest struct {
	CaseID int64 `json:"case_id" binding:"required"`
}

// SwitchTabRequest is the body of POST /api/workspace/tab.
type SwitchTabRequest struct {
	Tab Tab `json:"tab" binding:"required"`
}

// SendMessageRequest is the body of POST /api/workspace/chat.
type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// SelectTemplateRequest is the body of POST /api/workspace/template.
type SelectTemplateRequest struct {
	TemplateType TemplateType `json:"template_type" binding:"required"`
}

// Response is the standard envelope for the local UI API.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// RuntimeInfo tells the UI where to reach the local API and event stream.
type RuntimeInfo struct {
	HTTPBaseURL string `json:"http_base_url"`
	WSBaseURL   string `json:"ws_base_url"`
	Port        int    `json:"port"`
}
