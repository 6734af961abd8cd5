package domain

// ChapterActivity is an immutable evidence record of chapter-level work.
type ChapterActivity struct {
	ID          string  `json:"id"`
	ChapterID   string  `json:"chapter_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Category    string  `json:"category"`
	ProofURL    *string `json:"proof_url,omitempty"`
	CreatedOn   string  `json:"created_on"`
}
