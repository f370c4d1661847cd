package documents

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"lexwatch-backend/internal/extract"
	"lexwatch-backend/internal/shared/storage/object"
)

// minTextLength is the corpus admission floor. Shorter texts are almost
// always cover pages or scanning artifacts and are rejected at ingest.
const minTextLength = 100

// Service contains business logic for the document corpus.
type Service struct {
	Store object.ObjectStore
	Repo  DocumentsRepo
	Now   func() time.Time
}

// Upload saves the file to object storage, extracts its text and
// registers the document under a publication period.
func (s *Service) Upload(ctx context.Context, fileName, folder string, r io.Reader) (Document, error) {
	if strings.TrimSpace(fileName) == "" {
		return Document{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now().UTC()
	}

	if folder == "" {
		folder = now.Format("2006-01")
	} else if _, err := time.Parse("2006-01", folder); err != nil {
		return Document{}, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, folder, fileName, r)
	if err != nil {
		return Document{}, err
	}

	text, err := extract.ExtractText(ctx, s.Store, storageKey, mimeType, fileName)
	if err != nil {
		return Document{}, err
	}

	text = strings.TrimSpace(text)
	if len(text) < minTextLength {
		return Document{}, ErrTextTooShort
	}

	doc := Document{
		ID:         uuid.NewString(),
		FileName:   fileName,
		Folder:     folder,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		TextKey:    storageKey + ".extracted.txt",
		Text:       text,
		TextLength: len(text),
		CreatedAt:  now,
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// Get returns a document by ID.
func (s *Service) Get(ctx context.Context, documentID string) (Document, error) {
	if documentID == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, documentID)
}

// List returns documents in a publication period, newest-first.
func (s *Service) List(ctx context.Context, folder string, limit, offset int) ([]Document, error) {
	return s.Repo.List(ctx, folder, limit, offset)
}

// Folders returns the known publication periods.
func (s *Service) Folders(ctx context.Context) ([]string, error) {
	return s.Repo.Folders(ctx)
}
