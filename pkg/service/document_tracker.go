// Document lifecycle tracker - mirrors the server's view of a case's files
package service

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"github.com/unalbahadir/lawyer-assistant/pkg/models"
	"github.com/unalbahadir/lawyer-assistant/pkg/utils"
)

var ErrDeleteNotConfirmed = errors.New("document deletion requires explicit confirmation")

// DocumentTracker reflects the server-side truth of one case's documents. It
// performs no indexing logic of its own: uploads are passed through to the
// ingestion endpoint, and indexing completion becomes visible only on the
// next load. There is no polling; staleness of the indexed flag is accepted
// and corrected whenever a refresh runs.
//
// Every mutation triggers a wholesale reload. Each load carries a sequence
// number; a completed load is applied only if it is still the newest one
// issued for the currently tracked case, so a slow response can never
// overwrite the state of a case the user has since switched to.
type DocumentTracker struct {
	backend DocumentBackend
	logger  *slog.Logger

	mu      sync.Mutex
	caseID  int64
	docs    []models.Document
	loadSeq uint64
}

// NewDocumentTracker creates a tracker bound to no case. Reset binds it.
func NewDocumentTracker(b DocumentBackend) *DocumentTracker {
	return &DocumentTracker{backend: b, logger: utils.GetLogger()}
}

// Reset clears the tracked set and binds the tracker to a case. In-flight
// loads for the previous case will be discarded when they complete.
func (t *DocumentTracker) Reset(caseID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.caseID = caseID
	t.docs = nil
	t.loadSeq++
}

// Load fetches the full document set for caseID and replaces the tracked set.
// On failure the previous set stays displayed (no flash to empty) and the
// error is returned for the caller to surface once. A response that is no
// longer the newest load for the tracked case is dropped without effect.
//
// A load for a case the tracker is no longer bound to is refused outright:
// it neither fetches nor consumes a generation number, so it can never mark
// the bound case's own in-flight load as stale.
func (t *DocumentTracker) Load(ctx context.Context, caseID int64) error {
	t.mu.Lock()
	if caseID != t.caseID {
		t.mu.Unlock()
		t.logger.Debug("Refusing document load for unbound case", "caseId", caseID)
		return nil
	}
	t.loadSeq++
	seq := t.loadSeq
	t.mu.Unlock()

	docs, err := t.backend.ListDocuments(ctx, caseID)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if caseID != t.caseID || seq != t.loadSeq {
		t.logger.Debug("Discarding stale document load", "caseId", caseID, "seq", seq)
		return nil
	}
	t.docs = docs
	return nil
}

// Upload passes one file through to the ingestion endpoint and refreshes the
// set on success. The new record typically arrives not yet indexed. On
// failure the set is untouched.
func (t *DocumentTracker) Upload(ctx context.Context, caseID int64, filename string, content io.Reader) error {
	doc, err := t.backend.UploadDocument(ctx, caseID, filename, content)
	if err != nil {
		return err
	}
	t.logger.Info("Document uploaded", "caseId", caseID, "documentId", doc.ID, "filename", doc.Filename)
	return t.Load(ctx, caseID)
}

// Delete removes one document after the user has explicitly confirmed. The
// delete endpoint is never called without confirmation. On success the set is
// refreshed; on failure it is untouched.
func (t *DocumentTracker) Delete(ctx context.Context, caseID, documentID int64, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	if err := t.backend.DeleteDocument(ctx, documentID); err != nil {
		return err
	}
	t.logger.Info("Document deleted", "caseId", caseID, "documentId", documentID)
	return t.Load(ctx, caseID)
}

// Snapshot returns a copy of the tracked set.
func (t *DocumentTracker) Snapshot() []models.Document {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]models.Document, len(t.docs))
	copy(out, t.docs)
	return out
}
