package documents

import "context"

// DocumentsRepo defines persistence operations for the corpus.
type DocumentsRepo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, documentID string) (Document, error)
	List(ctx context.Context, folder string, limit, offset int) ([]Document, error)
	AllByFolder(ctx context.Context, folder string) ([]Document, error)
	Folders(ctx context.Context) ([]string, error)
}
