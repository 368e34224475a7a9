package service

import (
	"context"
	"io"

	"github.com/unalbahadir/lawyer-assistant/pkg/models"
)

// Backend is the slice of the remote API the workspace session consumes.
// Satisfied by *backend.Client; tests substitute function-field fakes.
type Backend interface {
	GetCase(ctx context.Context, id int64) (*models.Case, error)
	ListDocuments(ctx context.Context, caseID int64) ([]models.Document, error)
	UploadDocument(ctx context.Context, caseID int64, filename string, content io.Reader) (*models.Document, error)
	DeleteDocument(ctx context.Context, id int64) error
	SendMessage(ctx context.Context, req models.ChatRequest) (*models.ChatReply, error)
	GetChatHistory(ctx context.Context, caseID int64) ([]models.ChatMessage, error)
	GenerateTemplate(ctx context.Context, req models.TemplateRequest) (*models.TemplateReply, error)
}

// DocumentBackend is the document slice of Backend.
type DocumentBackend interface {
	ListDocuments(ctx context.Context, caseID int64) ([]models.Document, error)
	UploadDocument(ctx context.Context, caseID int64, filename string, content io.Reader) (*models.Document, error)
	DeleteDocument(ctx context.Context, id int64) error
}

// TemplateBackend is the template slice of Backend.
type TemplateBackend interface {
	GenerateTemplate(ctx context.Context, req models.TemplateRequest) (*models.TemplateReply, error)
}
