package assessment

import (
	"math/rand"
	"testing"

	"github.com/cgabhane/author-website/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestions_Bank(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, 15)

	perPillar := map[model.Pillar]int{}
	best := map[model.Pillar]int{}
	seen := map[int]bool{}
	for _, q := range qs {
		assert.False(t, seen[q.ID], "duplicate id %d", q.ID)
		seen[q.ID] = true
		perPillar[q.Pillar]++

		top := 0
		for _, o := range q.Options {
			assert.GreaterOrEqual(t, o.Points, 0)
			assert.LessOrEqual(t, o.Points, 4)
			if o.Points > top {
				top = o.Points
			}
		}
		best[q.Pillar] += top
	}

	for _, p := range model.Pillars {
		assert.Equal(t, 3, perPillar[p], "pillar %s", p)
		assert.Equal(t, MaxScorePerPillar, best[p], "pillar %s", p)
	}
	assert.Equal(t, TotalMaxScore, maxTotal(qs))
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	qs := Questions()
	qs[0].Options[0].Points = 99

	q, ok := QuestionByID(qs[0].ID)
	require.True(t, ok)
	assert.Equal(t, 0, q.Options[0].Points)
}

func TestQuestionByID_Unknown(t *testing.T) {
	_, ok := QuestionByID(999)
	assert.False(t, ok)
}

func TestPillarName(t *testing.T) {
	assert.Equal(t, "DevOps & Automation", PillarName(model.PillarDevOps))
	assert.Equal(t, "other", PillarName(model.Pillar("other")))
}

func TestPublicQuestions_HidePoints(t *testing.T) {
	pub := PublicQuestions()
	require.Len(t, pub, 15)
	assert.Equal(t, bank[0].Prompt, pub[0].Prompt)
	assert.Len(t, pub[0].Options, len(bank[0].Options))
	assert.Equal(t, 2, pub[0].Options[2].Index)
}

func TestScore_Empty(t *testing.T) {
	assert.Equal(t, model.ScoreBreakdown{}, Score(nil, Questions()))
	assert.Equal(t, model.ScoreBreakdown{}, Score([]model.Answer{}, Questions()))
}

func TestScore_SumsPerPillar(t *testing.T) {
	answers := []model.Answer{
		{QuestionID: 1, SelectedOption: 1, Points: 4},
		{QuestionID: 2, SelectedOption: 0, Points: 2},
		{QuestionID: 4, SelectedOption: 1, Points: 4},
		{QuestionID: 10, SelectedOption: 2, Points: 1},
		{QuestionID: 15, SelectedOption: 2, Points: 4},
	}

	got := Score(answers, Questions())

	assert.Equal(t, model.ScoreBreakdown{
		Cloud:     6,
		AI:        4,
		DevOps:    0,
		Security:  1,
		RealWorld: 4,
		Total:     15,
	}, got)
}

func TestScore_IgnoresUnknownQuestions(t *testing.T) {
	answers := []model.Answer{
		{QuestionID: 1, Points: 4},
		{QuestionID: 404, Points: 4},
	}

	got := Score(answers, Questions())

	assert.Equal(t, 4, got.Total)
	assert.Equal(t, 4, got.Cloud)
}

func TestScore_TotalIsPillarSum(t *testing.T) {
	qs := Questions()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		var answers []model.Answer
		for _, q := range qs {
			if rng.Intn(3) == 0 {
				continue
			}
			opt := rng.Intn(len(q.Options))
			answers = append(answers, model.Answer{
				QuestionID:     q.ID,
				SelectedOption: opt,
				Points:         q.Options[opt].Points,
			})
		}
		if rng.Intn(4) == 0 {
			answers = append(answers, model.Answer{QuestionID: 100 + i, Points: 3})
		}

		got := Score(answers, qs)
		assert.Equal(t, got.PillarSum(), got.Total)
		assert.Equal(t, got, Score(answers, qs), "scoring must be deterministic")
	}
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		total int
		max   int
		want  string
	}{
		{name: "zero", total: 0, max: 100, want: "foundation"},
		{name: "41 percent", total: 41, max: 100, want: "foundation"},
		{name: "42 percent", total: 42, max: 100, want: "emerging"},
		{name: "58 percent", total: 58, max: 100, want: "emerging"},
		{name: "59 percent", total: 59, max: 100, want: "skilled"},
		{name: "75 percent", total: 75, max: 100, want: "skilled"},
		{name: "76 percent", total: 76, max: 100, want: "expert"},
		{name: "91 percent", total: 91, max: 100, want: "expert"},
		{name: "92 percent", total: 92, max: 100, want: "leader"},
		{name: "full marks", total: 60, max: 60, want: "leader"},
		{name: "rounds 41.67 up to 42", total: 25, max: 60, want: "emerging"},
		{name: "rounds 40.98 up to 41", total: 25, max: 61, want: "foundation"},
		{name: "no max", total: 10, max: 0, want: "foundation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.total, tt.max).Level)
		})
	}
}

func TestClassify_Monotonic(t *testing.T) {
	rank := map[string]int{}
	for i, l := range Levels() {
		rank[l.Level] = i
	}

	prev := -1
	for total := 0; total <= TotalMaxScore; total++ {
		r := rank[Classify(total, TotalMaxScore).Level]
		assert.GreaterOrEqual(t, r, prev, "total %d", total)
		prev = r
	}
}

func TestLevelByID(t *testing.T) {
	l, ok := LevelByID("skilled")
	require.True(t, ok)
	assert.Equal(t, "Skilled Practitioner", l.Title)
	assert.Equal(t, "$100k-140k", l.SalaryRange)

	_, ok = LevelByID("wizard")
	assert.False(t, ok)
}
