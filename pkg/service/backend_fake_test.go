package service

import (
	"context"
	"io"

	"github.com/unalbahadir/lawyer-assistant/pkg/models"
)

// fakeBackend implements Backend with overridable function fields. Unset
// fields succeed with empty results.
type fakeBackend struct {
	getCase          func(ctx context.Context, id int64) (*models.Case, error)
	listDocuments    func(ctx context.Context, caseID int64) ([]models.Document, error)
	uploadDocument   func(ctx context.Context, caseID int64, filename string, content io.Reader) (*models.Document, error)
	deleteDocument   func(ctx context.Context, id int64) error
	sendMessage      func(ctx context.Context, req models.ChatRequest) (*models.ChatReply, error)
	getChatHistory   func(ctx context.Context, caseID int64) ([]models.ChatMessage, error)
	generateTemplate func(ctx context.Context, req models.TemplateRequest) (*models.TemplateReply, error)
}

func (f *fakeBackend) GetCase(ctx context.Context, id int64) (*models.Case, error) {
	if f.getCase != nil {
		return f.getCase(ctx, id)
	}
	return &models.Case{ID: id, Title: "Case", Status: models.CaseStatusActive}, nil
}

func (f *fakeBackend) ListDocuments(ctx context.Context, caseID int64) ([]models.Document, error) {
	if f.listDocuments != nil {
		return f.listDocuments(ctx, caseID)
	}
	return []models.Document{}, nil
}

func (f *fakeBackend) UploadDocument(ctx context.Context, caseID int64, filename string, content io.Reader) (*models.Document, error) {
	if f.uploadDocument != nil {
		return f.uploadDocument(ctx, caseID, filename, content)
	}
	return &models.Document{ID: 1, CaseID: caseID, Filename: filename}, nil
}

func (f *fakeBackend) DeleteDocument(ctx context.Context, id int64) error {
	if f.deleteDocument != nil {
		return f.deleteDocument(ctx, id)
	}
	return nil
}

func (f *fakeBackend) SendMessage(ctx context.Context, req models.ChatRequest) (*models.ChatReply, error) {
	if f.sendMessage != nil {
		return f.sendMessage(ctx, req)
	}
	return &models.ChatReply{Response: "answer", Sources: []string{}}, nil
}

func (f *fakeBackend) GetChatHistory(ctx context.Context, caseID int64) ([]models.ChatMessage, error) {
	if f.getChatHistory != nil {
		return f.getChatHistory(ctx, caseID)
	}
	return []models.ChatMessage{}, nil
}

func (f *fakeBackend) GenerateTemplate(ctx context.Context, req models.TemplateRequest) (*models.TemplateReply, error) {
	if f.generateTemplate != nil {
		return f.generateTemplate(ctx, req)
	}
	return &models.TemplateReply{Draft: "draft", Sources: []string{}}, nil
}
