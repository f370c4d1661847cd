package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements DocumentsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id,
    file_name,
    folder,
    mime_type,
    size_bytes,
    storage_key,
    text_key,
    body_text,
    text_length,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	var storageKey sql.NullString
	if doc.StorageKey != "" {
		storageKey = sql.NullString{String: doc.StorageKey, Valid: true}
	}
	var textKey sql.NullString
	if doc.TextKey != "" {
		textKey = sql.NullString{String: doc.TextKey, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.FileName,
		doc.Folder,
		doc.MimeType,
		doc.SizeBytes,
		storageKey,
		textKey,
		doc.Text,
		doc.TextLength,
		doc.CreatedAt,
	)
	return err
}

const selectColumns = `
SELECT id, file_name, folder, mime_type, size_bytes, storage_key, text_key, body_text, text_length, created_at
FROM documents`

// GetByID fetches a document by ID.
func (r *PGRepo) GetByID(ctx context.Context, documentID string) (Document, error) {
	const query = selectColumns + `
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	doc, err := scanDocument(r.DB.QueryRowContext(ctx, query, documentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// List returns documents newest-first with limit/offset, optionally
// filtered by folder.
func (r *PGRepo) List(ctx context.Context, folder string, limit, offset int) ([]Document, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = selectColumns + `
WHERE ($1 = '' OR folder = $1) AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, folder, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDocuments(rows)
}

// AllByFolder returns every document in a folder, newest-first.
func (r *PGRepo) AllByFolder(ctx context.Context, folder string) ([]Document, error) {
	const query = selectColumns + `
WHERE ($1 = '' OR folder = $1) AND deleted_at IS NULL
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, folder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDocuments(rows)
}

// Folders returns the distinct publication periods, newest-first.
func (r *PGRepo) Folders(ctx context.Context) ([]string, error) {
	const query = `
SELECT DISTINCT folder
FROM documents
WHERE deleted_at IS NULL
ORDER BY folder DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var folder string
		if err := rows.Scan(&folder); err != nil {
			return nil, err
		}
		out = append(out, folder)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var doc Document
	var storageKey sql.NullString
	var textKey sql.NullString
	if err := row.Scan(
		&doc.ID,
		&doc.FileName,
		&doc.Folder,
		&doc.MimeType,
		&doc.SizeBytes,
		&storageKey,
		&textKey,
		&doc.Text,
		&doc.TextLength,
		&doc.CreatedAt,
	); err != nil {
		return Document{}, err
	}
	if storageKey.Valid {
		doc.StorageKey = storageKey.String
	}
	if textKey.Valid {
		doc.TextKey = textKey.String
	}
	return doc, nil
}

func collectDocuments(rows *sql.Rows) ([]Document, error) {
	var out []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

var _ DocumentsRepo = (*PGRepo)(nil)
