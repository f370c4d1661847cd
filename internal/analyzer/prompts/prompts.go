// Package prompts is the fixed catalog of prompt templates used by the
// analyzer. Every template asks the model for a strict JSON object with a
// closed schema; enum-valued fields enumerate their allowed labels inline.
// Template builders are pure; a caller passing the wrong inputs is a
// programmer error, not a runtime condition.
package prompts

// Step describes the fixed request parameters of one prompt sub-step: the
// system message sent with it, the completion token budget, and how many
// characters of the document prefix the template receives.
type Step struct {
	System    string
	MaxTokens int
	DocChars  int
}

// Truncate returns at most n leading characters of text. Budgets are byte
// counts; legal corpus text is effectively ASCII so this matches the
// character budgets the templates document.
func Truncate(text string, n int) string {
	if n <= 0 || len(text) <= n {
		return text
	}
	return text[:n]
}
