package assessment

import (
	"math"

	"github.com/cgabhane/author-website/internal/model"
)

// band is a skill level with the highest percentage it covers
type band struct {
	upper int
	level model.SkillLevel
}

// bands partition 0..100; the last one is open-ended
var bands = []band{
	{upper: 41, level: model.SkillLevel{
		Level:       "foundation",
		Title:       "Foundation Builder",
		Description: "You're at the beginning of your Cloud/AI journey with room to grow.",
		NextSteps: []string{
			"Learn cloud fundamentals (AWS/Azure basics)",
			"Complete AI/ML intro courses",
			"Build 2-3 personal projects",
		},
		TimeToNext:  "3-6 months to reach Emerging Professional",
		Roles:       []string{"Student", "Career Changer", "Junior Developer"},
		SalaryRange: "$50k-70k",
	}},
	{upper: 58, level: model.SkillLevel{
		Level:       "emerging",
		Title:       "Emerging Professional",
		Description: "You have foundational knowledge and are building practical skills.",
		NextSteps: []string{
			"Get cloud certification (AWS SAA, Azure AZ-104)",
			"Build production-ready AI project",
			"Contribute to open source",
		},
		TimeToNext:  "6-12 months to reach Skilled Practitioner",
		Roles:       []string{"Junior Cloud Engineer", "ML Engineer Intern", "DevOps Associate"},
		SalaryRange: "$70k-90k",
	}},
	{upper: 75, level: model.SkillLevel{
		Level:       "skilled",
		Title:       "Skilled Practitioner",
		Description: "You have solid mid-level skills across cloud and AI technologies.",
		NextSteps: []string{
			"Specialize: AI Ops OR Cloud Architecture",
			"Lead a migration project",
			"Mentor junior engineers",
		},
		TimeToNext:  "12-18 months to reach Expert Architect",
		Roles:       []string{"Cloud Engineer", "ML Engineer", "DevOps Engineer", "Solutions Engineer"},
		SalaryRange: "$100k-140k",
	}},
	{upper: 91, level: model.SkillLevel{
		Level:       "expert",
		Title:       "Expert Architect",
		Description: "You have senior-level expertise in cloud and AI systems.",
		NextSteps: []string{
			"Design enterprise architectures",
			"Drive AI strategy initiatives",
			"Speak at conferences",
		},
		TimeToNext:  "2-3 years to reach Industry Leader",
		Roles:       []string{"Solutions Architect", "Staff Engineer", "AI Lead", "Principal Developer"},
		SalaryRange: "$150k-220k",
	}},
	{upper: math.MaxInt, level: model.SkillLevel{
		Level:       "leader",
		Title:       "Industry Leader",
		Description: "You're operating at the highest level with deep expertise.",
		NextSteps: []string{
			"CTO/VP Engineering track",
			"Independent consulting",
			"Thought leadership & writing",
		},
		TimeToNext:  "Continue mastering emerging technologies",
		Roles:       []string{"Principal Architect", "Distinguished Engineer", "AI Evangelist", "CTO"},
		SalaryRange: "$220k-400k+",
	}},
}

// Score sums the points of each answer into its question's pillar.
// Answers for questions not in the given set are ignored.
func Score(answers []model.Answer, questions []model.Question) model.ScoreBreakdown {
	pillarOf := make(map[int]model.Pillar, len(questions))
	for _, q := range questions {
		pillarOf[q.ID] = q.Pillar
	}

	var b model.ScoreBreakdown
	for _, a := range answers {
		p, ok := pillarOf[a.QuestionID]
		if !ok {
			continue
		}
		b.Add(p, a.Points)
	}
	return b
}

// Percentage is total as a rounded share of maxTotal
func Percentage(total, maxTotal int) int {
	if maxTotal <= 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(maxTotal) * 100))
}

// Classify maps a total score to its skill level
func Classify(total, maxTotal int) model.SkillLevel {
	pct := Percentage(total, maxTotal)
	for _, b := range bands {
		if pct <= b.upper {
			return cloneLevel(b.level)
		}
	}
	return cloneLevel(bands[len(bands)-1].level)
}

// LevelByID looks up a skill level by its id (e.g. "skilled")
func LevelByID(id string) (model.SkillLevel, bool) {
	for _, b := range bands {
		if b.level.Level == id {
			return cloneLevel(b.level), true
		}
	}
	return model.SkillLevel{}, false
}

// Levels returns every skill level from lowest to highest
func Levels() []model.SkillLevel {
	out := make([]model.SkillLevel, len(bands))
	for i, b := range bands {
		out[i] = cloneLevel(b.level)
	}
	return out
}

func cloneLevel(l model.SkillLevel) model.SkillLevel {
	l.NextSteps = append([]string(nil), l.NextSteps...)
	l.Roles = append([]string(nil), l.Roles...)
	return l
}
