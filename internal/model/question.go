package model

// Pillar is one of the five skill categories a question is scored under
type Pillar string

const (
	PillarCloud     Pillar = "cloud"
	PillarAI        Pillar = "ai"
	PillarDevOps    Pillar = "devops"
	PillarSecurity  Pillar = "security"
	PillarRealWorld Pillar = "realworld"
)

// Pillars lists every pillar in display order
var Pillars = []Pillar{PillarCloud, PillarAI, PillarDevOps, PillarSecurity, PillarRealWorld}

// Option is a selectable answer with its point value (0-4)
type Option struct {
	Text   string `json:"text"`
	Points int    `json:"points"`
}

// Question is an immutable assessment question
type Question struct {
	ID          int      `json:"id"`
	Pillar      Pillar   `json:"pillar"`
	Prompt      string   `json:"question"`
	Options     []Option `json:"options"`
	Explanation string   `json:"explanation,omitempty"`
}

// PublicOption is an option as shown to the visitor (points hidden)
type PublicOption struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// PublicQuestion is a question as shown to the visitor
type PublicQuestion struct {
	ID      int            `json:"id"`
	Pillar  Pillar         `json:"pillar"`
	Prompt  string         `json:"question"`
	Options []PublicOption `json:"options"`
}

// Public strips point values from the question
func (q Question) Public() PublicQuestion {
	opts := make([]PublicOption, len(q.Options))
	for i, o := range q.Options {
		opts[i] = PublicOption{Index: i, Text: o.Text}
	}
	return PublicQuestion{
		ID:      q.ID,
		Pillar:  q.Pillar,
		Prompt:  q.Prompt,
		Options: opts,
	}
}

// Answer records the option picked for one question
type Answer struct {
	QuestionID     int `json:"questionId" bson:"questionId"`
	SelectedOption int `json:"selectedOption" bson:"selectedOption"`
	Points         int `json:"points" bson:"points"`
}

// ScoreBreakdown holds per-pillar subtotals and the grand total
type ScoreBreakdown struct {
	Cloud     int `json:"cloud" bson:"cloud"`
	AI        int `json:"ai" bson:"ai"`
	DevOps    int `json:"devops" bson:"devops"`
	Security  int `json:"security" bson:"security"`
	RealWorld int `json:"realworld" bson:"realworld"`
	Total     int `json:"total" bson:"total"`
}

// Pillar returns the subtotal for p
func (b ScoreBreakdown) Pillar(p Pillar) int {
	switch p {
	case PillarCloud:
		return b.Cloud
	case PillarAI:
		return b.AI
	case PillarDevOps:
		return b.DevOps
	case PillarSecurity:
		return b.Security
	case PillarRealWorld:
		return b.RealWorld
	}
	return 0
}

// Add credits points to pillar p and to the total
func (b *ScoreBreakdown) Add(p Pillar, points int) {
	switch p {
	case PillarCloud:
		b.Cloud += points
	case PillarAI:
		b.AI += points
	case PillarDevOps:
		b.DevOps += points
	case PillarSecurity:
		b.Security += points
	case PillarRealWorld:
		b.RealWorld += points
	default:
		return
	}
	b.Total += points
}

// PillarSum is the sum of the five subtotals
func (b ScoreBreakdown) PillarSum() int {
	return b.Cloud + b.AI + b.DevOps + b.Security + b.RealWorld
}

// SkillLevel is a tier of total-score percentage with guidance content
type SkillLevel struct {
	Level       string   `json:"level"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	NextSteps   []string `json:"nextSteps"`
	TimeToNext  string   `json:"timeToNext"`
	Roles       []string `json:"roles"`
	SalaryRange string   `json:"salaryRange"`
}
