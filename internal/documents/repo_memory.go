package documents

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of DocumentsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	docs []Document
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create registers a document.
func (r *MemoryRepo) Create(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs = append(r.docs, doc)
	return nil
}

// GetByID returns a document by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, documentID string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.docs {
		if r.docs[i].ID == documentID {
			return r.docs[i], nil
		}
	}
	return Document{}, ErrNotFound
}

// List returns documents newest-first, optionally filtered by folder,
// honoring limit/offset.
func (r *MemoryRepo) List(ctx context.Context, folder string, limit, offset int) ([]Document, error) {
	docs, err := r.AllByFolder(ctx, folder)
	if err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	if offset >= len(docs) {
		return []Document{}, nil
	}

	end := len(docs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return docs[offset:end], nil
}

// AllByFolder returns every document in a folder, newest-first. An empty
// folder means the whole corpus.
func (r *MemoryRepo) AllByFolder(ctx context.Context, folder string) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	var docs []Document
	for i := range r.docs {
		if folder == "" || r.docs[i].Folder == folder {
			docs = append(docs, r.docs[i])
		}
	}
	r.mu.RUnlock()

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
	if docs == nil {
		docs = []Document{}
	}
	return docs, nil
}

// Folders returns the distinct publication periods, newest-first.
func (r *MemoryRepo) Folders(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	seen := make(map[string]struct{})
	var out []string
	for i := range r.docs {
		if _, ok := seen[r.docs[i].Folder]; ok {
			continue
		}
		seen[r.docs[i].Folder] = struct{}{}
		out = append(out, r.docs[i].Folder)
	}
	r.mu.RUnlock()

	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out, nil
}

var _ DocumentsRepo = (*MemoryRepo)(nil)
