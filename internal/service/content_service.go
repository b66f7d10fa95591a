package service

import (
	"github.com/cgabhane/author-website/internal/apperror"
	"github.com/cgabhane/author-website/internal/model"
)

const author = "Chetan Gabhane"

var posts = []model.BlogPost{
	{
		Slug:          "cloud-migrations",
		Title:         "Why Most Cloud Migrations Fail – and How to Fix It",
		Date:          "September 2025",
		PublishedTime: "2025-09-15T10:00:00Z",
		Author:        author,
		ReadTime:      "5 min read",
		Category:      "Cloud Strategy",
		Excerpt:       "Most cloud migrations stumble not because of technology, but because of strategy and execution gaps. In this article, I share the five most common pitfalls enterprises face, and how to build a migration framework that ensures resilience and success...",
		Body: []model.Section{
			{Paragraphs: []string{
				"Cloud adoption continues to accelerate, but many enterprises still find their migration initiatives stalling or failing outright. Based on my experience leading transformation programs, here are the five most common reasons migrations fail – and practical steps to avoid them:",
			}},
			{Heading: "1. Lack of Executive Alignment", Paragraphs: []string{
				"Without clear sponsorship and buy-in across CXO stakeholders, cloud initiatives lose direction and accountability.",
			}},
			{Heading: "2. Incomplete Discovery", Paragraphs: []string{
				"Enterprises often underestimate the complexity of existing workloads. A thorough discovery process is non-negotiable.",
			}},
			{Heading: "3. Misaligned Timelines", Paragraphs: []string{
				"Unrealistic expectations can lead to rushed decisions, increased costs, and technical debt.",
			}},
			{Heading: "4. Insufficient Change Management", Paragraphs: []string{
				"Cloud is as much about people and processes as technology. Training, culture, and workflows must evolve in parallel.",
			}},
			{Heading: "5. Neglecting Security & Compliance", Paragraphs: []string{
				"Security should not be a bolt-on – it must be designed into the landing zone and migration strategy from day one.",
			}},
			{Paragraphs: []string{
				"\"Cloud migration is not a project. It's a journey of organizational change, requiring clarity, patience, and foresight.\"",
				"By addressing these areas, enterprises can transform migration from a high-risk challenge into a strategic advantage.",
			}},
		},
	},
	{
		Slug:          "ai-agents",
		Title:         "The Rise of AI Agents in Cloud Operations",
		Date:          "August 2025",
		PublishedTime: "2025-08-15T10:00:00Z",
		Author:        author,
		ReadTime:      "6 min read",
		Category:      "AI Operations",
		Excerpt:       "AI agents are no longer experimental – they're becoming the backbone of enterprise IT operations. From anomaly detection to automated remediation, here's how agentic AI is transforming the way we think about observability and incident response...",
	},
	{
		Slug:          "sovereign-cloud",
		Title:         "Sovereign Cloud: Balancing Compliance and Innovation",
		Date:          "July 2025",
		PublishedTime: "2025-07-15T10:00:00Z",
		Author:        author,
		ReadTime:      "4 min read",
		Category:      "Compliance",
		Excerpt:       "As enterprises expand across regions, sovereignty is no longer optional. The rise of data regulations in Europe and Asia is reshaping how businesses deploy and secure workloads in multi-cloud environments...",
	},
}

var pressKit = model.PressKit{
	Name:     author,
	Headline: "Cloud & AI Evangelist, Author and Strategic Advisor",
	ShortBio: "Chetan Gabhane is a Cloud Professional Leader, Author, and Strategic Advisor helping enterprises accelerate their cloud and AI journeys. With nearly two decades of experience across multicloud, private cloud, and automation, he has guided organizations through VMware-to-cloud transitions, sovereign cloud strategies, and AI-driven infrastructure adoption. He is the author of Reverse Engineering with Terraform and Navigating VMware Turmoil in the Broadcom Era.",
	SpeakingTopics: []string{
		"Why Most Cloud Migrations Fail – and How to Fix It",
		"The Rise of AI Agents in Cloud Operations",
		"Sovereign Cloud: Balancing Compliance and Innovation",
		"AI-Driven Private Cloud: Building Enterprise Resilience",
		"The Future of Multicloud in 2025 and Beyond",
	},
	Books: []model.Book{
		{Title: "Reverse Engineering with Terraform", Description: "Practical automation, integration & scalability with Terraform."},
		{Title: "Navigating VMware Turmoil in the Broadcom Era", Description: "Strategic insights for enterprises transitioning from VMware."},
	},
	Contact: map[string]string{
		"email":    "media@chetangabhane.in",
		"linkedin": "https://linkedin.com/in/chetangabhane",
		"website":  "https://chetangabhane.in",
	},
}

// ContentService serves the site's static articles and press kit
type ContentService struct{}

func NewContentService() *ContentService {
	return &ContentService{}
}

// ListPosts returns post summaries, newest first
func (s *ContentService) ListPosts() []model.BlogPost {
	out := make([]model.BlogPost, len(posts))
	for i, p := range posts {
		p.Body = nil
		out[i] = p
	}
	return out
}

// GetPost returns a full post by slug
func (s *ContentService) GetPost(slug string) (*model.BlogPost, error) {
	for _, p := range posts {
		if p.Slug == slug {
			p.Body = append([]model.Section(nil), p.Body...)
			return &p, nil
		}
	}
	return nil, apperror.NotFound("Post not found")
}

// PressKit returns the media kit
func (s *ContentService) PressKit() model.PressKit {
	kit := pressKit
	kit.SpeakingTopics = append([]string(nil), pressKit.SpeakingTopics...)
	kit.Books = append([]model.Book(nil), pressKit.Books...)
	kit.Contact = make(map[string]string, len(pressKit.Contact))
	for k, v := range pressKit.Contact {
		kit.Contact[k] = v
	}
	return kit
}
