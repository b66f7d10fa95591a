package model

// Insight is a normalized entry from the external content feed
type Insight struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	PublishedDate string `json:"publishedDate,omitempty"`
	Excerpt       string `json:"excerpt,omitempty"`
	Category      string `json:"category,omitempty"`
}
