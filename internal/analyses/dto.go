package analyses

// analyzeRequest is the shared request body for analysis endpoints. Either
// DocumentID or Text must be set; Text wins when both are present.
type analyzeRequest struct {
	DocumentID string `json:"documentId"`
	Text       string `json:"text"`

	// Query drives search, Topic drives tracking, Sectors drives compliance.
	Query   string   `json:"query,omitempty"`
	Topic   string   `json:"topic,omitempty"`
	Sectors []string `json:"sectors,omitempty"`
}
