package model

// Section is one headed block of a blog post body
type Section struct {
	Heading    string   `json:"heading,omitempty"`
	Paragraphs []string `json:"paragraphs"`
}

// BlogPost is a long-form article on the site
type BlogPost struct {
	Slug          string    `json:"id"`
	Title         string    `json:"title"`
	Date          string    `json:"date"`
	PublishedTime string    `json:"publishedTime"`
	Author        string    `json:"author"`
	ReadTime      string    `json:"readTime"`
	Category      string    `json:"category"`
	Excerpt       string    `json:"excerpt"`
	Body          []Section `json:"body,omitempty"`
}

// Book is a published title listed in the press kit
type Book struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PressKit is the media/speaking information bundle
type PressKit struct {
	Name           string            `json:"name"`
	Headline       string            `json:"headline"`
	ShortBio       string            `json:"shortBio"`
	SpeakingTopics []string          `json:"speakingTopics"`
	Books          []Book            `json:"books"`
	Contact        map[string]string `json:"contact"`
}
