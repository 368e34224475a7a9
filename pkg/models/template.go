package models

// TemplateType is one of the fixed set of document drafts the backend can
// generate.
type TemplateType string

const (
	TemplateDilekce  TemplateType = "dilekce"  // petition
	TemplateSozlesme TemplateType = "sozlesme" // contract
	TemplateTutanak  TemplateType = "tutanak"  // official report
)

// Valid reports whether t is a known template type.
func (t TemplateType) Valid() bool {
	switch t {
	case TemplateDilekce, TemplateSozlesme, TemplateTutanak:
		return true
	}
	return false
}

// TemplateRequest is the body of POST /api/templates/.
type TemplateRequest struct {
	CaseID       int64        `json:"case_id"`
	TemplateType TemplateType `json:"template_type"`
	Context      string       `json:"context,omitempty"`
}

// TemplateReply is the backend's generated draft.
type TemplateReply struct {
	Draft   string   `json:"draft"`
	Sources []string `json:"sources"`
}

// TemplateDraft is the transient draft state of the templates tab. It is never
// persisted; switching case or leaving the tab discards it.
type TemplateDraft struct {
	TemplateType TemplateType `json:"template_type"`
	Draft        string       `json:"draft,omitempty"`
	Sources      []string     `json:"sources,omitempty"`
	KVKKWarning  string       `json:"kvkk_warning,omitempty"`
	IsGenerating bool         `json:"is_generating"`
}
