package event

// Event names.
const (
	WorkspaceOpened     = "workspace.opened"
	WorkspaceClosed     = "workspace.closed"
	WorkspaceTabChanged = "workspace.tabChanged"
	ChatChanged         = "chat.changed"
	DocumentsChanged    = "documents.changed"
	TemplateChanged     = "template.changed"
)

// WorkspaceOpenedEvent is emitted when a case workspace finishes loading.
type WorkspaceOpenedEvent struct {
	CaseID int64 `json:"case_id"`
}

func (e WorkspaceOpenedEvent) EventName() string { return WorkspaceOpened }

// WorkspaceClosedEvent is emitted when the active workspace is closed or
// superseded by another case.
type WorkspaceClosedEvent struct {
	CaseID int64 `json:"case_id"`
}

func (e WorkspaceClosedEvent) EventName() string { return WorkspaceClosed }

// WorkspaceTabChangedEvent is emitted when the active tab switches.
type WorkspaceTabChangedEvent struct {
	CaseID int64  `json:"case_id"`
	Tab    string `json:"tab"`
}

func (e WorkspaceTabChangedEvent) EventName() string { return WorkspaceTabChanged }

// ChatChangedEvent is emitted whenever the conversation sequence changes:
// a pending entry appended, resolved in place, rolled back, or reloaded.
type ChatChangedEvent struct {
	CaseID int64 `json:"case_id"`
}

func (e ChatChangedEvent) EventName() string { return ChatChanged }

// DocumentsChangedEvent is emitted after a document load applies.
type DocumentsChangedEvent struct {
	CaseID int64 `json:"case_id"`
}

func (e DocumentsChangedEvent) EventName() string { return DocumentsChanged }

// TemplateChangedEvent is emitted when the draft session's state changes.
type TemplateChangedEvent struct {
	CaseID int64 `json:"case_id"`
}

func (e TemplateChangedEvent) EventName() string { return TemplateChanged }
