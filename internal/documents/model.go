package documents

import "time"

// Document is a legal text registered in the corpus. Folder is the
// publication period in YYYY-MM form, mirroring how official journals
// group their issues.
type Document struct {
	ID         string
	FileName   string
	Folder     string
	MimeType   string
	SizeBytes  int64
	StorageKey string
	TextKey    string
	Text       string
	TextLength int
	CreatedAt  time.Time
}
