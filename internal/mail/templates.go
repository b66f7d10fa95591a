package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/cgabhane/author-website/internal/assessment"
	"github.com/cgabhane/author-website/internal/model"
)

const signature = `<p>Best regards,<br>Chetan Gabhane<br>Cloud &amp; AI Evangelist</p>`

var templates = template.Must(template.New("mail").Parse(`
{{define "appointment_notification"}}
<h2>New Knowledge Exchange Request</h2>
<p>You have a new appointment request:</p>
<ul>
  <li><strong>Name:</strong> {{.Name}}</li>
  <li><strong>Email:</strong> {{.Email}}</li>
  <li><strong>Session Type:</strong> {{.SessionType}}</li>
  <li><strong>Date:</strong> {{.Date}}</li>
  <li><strong>Time:</strong> {{.Time}}</li>
  {{if .Message}}<li><strong>Message:</strong> {{.Message}}</li>{{end}}
</ul>
<p>Appointment ID: {{.ID}}</p>
{{end}}

{{define "appointment_confirmation"}}
<h2>Thank You for Your Interest</h2>
<p>Dear {{.Name}},</p>
<p>I've received your request for a <strong>{{.SessionType}}</strong> and will be in touch shortly to confirm the details.</p>
<h3>Requested Details:</h3>
<ul>
  <li><strong>Session Type:</strong> {{.SessionType}}</li>
  <li><strong>Preferred Date:</strong> {{.Date}}</li>
  <li><strong>Preferred Time:</strong> {{.Time}}</li>
</ul>
{{if .Message}}<p><strong>Your message:</strong> {{.Message}}</p>{{end}}
<p>I look forward to our conversation about cloud transformation, AI innovation, and strategic technology leadership.</p>
{{.Signature}}
{{end}}

{{define "welcome"}}
<h2>Welcome to the Newsletter</h2>
<p>Thanks for subscribing. You will receive insights on:</p>
<ul>
  {{range .Interests}}<li>{{.}}</li>{{end}}
</ul>
<p>Expect practical notes on cloud strategy, AI operations and technology leadership, no more than a couple of times a month.</p>
{{if .SiteURL}}<p>Catch up on recent articles at <a href="{{.SiteURL}}/blog">{{.SiteURL}}/blog</a>.</p>{{end}}
{{.Signature}}
{{end}}

{{define "assessment_results"}}
<h2>Your CloudAI PathFinder Results</h2>
<p>You scored <strong>{{.Total}} / {{.Max}}</strong> ({{.Percentage}}%), which places you at <strong>{{.Title}}</strong>.</p>
<p>{{.Description}}</p>
<h3>Score by Pillar</h3>
<ul>
  {{range .Pillars}}<li><strong>{{.Name}}:</strong> {{.Points}} / {{.Max}}</li>{{end}}
</ul>
<h3>Recommended Next Steps</h3>
<ol>
  {{range .NextSteps}}<li>{{.}}</li>{{end}}
</ol>
<p><strong>Typical roles:</strong> {{.Roles}}</p>
<p><strong>Salary range:</strong> {{.SalaryRange}}</p>
<p>{{.TimeToNext}}</p>
{{.Signature}}
{{end}}
`))

func render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

type appointmentView struct {
	ID          string
	Name        string
	Email       string
	SessionType string
	Date        string
	Time        string
	Message     string
	Signature   template.HTML
}

func newAppointmentView(a model.Appointment) appointmentView {
	v := appointmentView{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		SessionType: a.SessionType.DisplayName(),
		Date:        a.Date,
		Time:        a.Time,
		Signature:   template.HTML(signature),
	}
	if a.Message != nil {
		v.Message = *a.Message
	}
	return v
}

// AppointmentNotification tells the site operator about a new booking
type AppointmentNotification struct {
	From        string
	Operator    string
	Appointment model.Appointment
}

func (AppointmentNotification) Kind() Kind { return KindAppointmentNotification }

func (e AppointmentNotification) Render() (Message, error) {
	if e.Operator == "" {
		return Message{}, ErrNoRecipient
	}
	v := newAppointmentView(e.Appointment)
	html, err := render("appointment_notification", v)
	if err != nil {
		return Message{}, err
	}
	return Message{
		Kind:    e.Kind(),
		From:    e.From,
		To:      e.Operator,
		Subject: fmt.Sprintf("New %s Request", v.SessionType),
		HTML:    html,
	}, nil
}

// AppointmentConfirmation acknowledges a booking to the visitor
type AppointmentConfirmation struct {
	From        string
	Appointment model.Appointment
}

func (AppointmentConfirmation) Kind() Kind { return KindAppointmentConfirmation }

func (e AppointmentConfirmation) Render() (Message, error) {
	if e.Appointment.Email == "" {
		return Message{}, ErrNoRecipient
	}
	html, err := render("appointment_confirmation", newAppointmentView(e.Appointment))
	if err != nil {
		return Message{}, err
	}
	return Message{
		Kind:    e.Kind(),
		From:    e.From,
		To:      e.Appointment.Email,
		Subject: "Knowledge Exchange Request Received",
		HTML:    html,
	}, nil
}

var interestLabels = map[string]string{
	"cloud":      "Cloud Strategy",
	"ai":         "AI Operations",
	"leadership": "Technology Leadership",
	"compliance": "Compliance & Sovereignty",
}

// WelcomeEmail greets a new newsletter subscriber
type WelcomeEmail struct {
	From       string
	SiteURL    string
	Subscriber model.Subscriber
}

func (WelcomeEmail) Kind() Kind { return KindWelcome }

func (e WelcomeEmail) Render() (Message, error) {
	if e.Subscriber.Email == "" {
		return Message{}, ErrNoRecipient
	}
	labels := make([]string, 0, len(e.Subscriber.Interests))
	for _, i := range e.Subscriber.Interests {
		if l, ok := interestLabels[i]; ok {
			labels = append(labels, l)
		} else {
			labels = append(labels, i)
		}
	}
	html, err := render("welcome", struct {
		Interests []string
		SiteURL   string
		Signature template.HTML
	}{labels, e.SiteURL, template.HTML(signature)})
	if err != nil {
		return Message{}, err
	}
	return Message{
		Kind:    e.Kind(),
		From:    e.From,
		To:      e.Subscriber.Email,
		Subject: "Welcome to the Cloud & AI Insights Newsletter",
		HTML:    html,
	}, nil
}

// AssessmentResults sends a visitor their career readiness report
type AssessmentResults struct {
	From  string
	To    string
	Score model.ScoreBreakdown
	Level model.SkillLevel
}

func (AssessmentResults) Kind() Kind { return KindAssessmentResults }

type pillarRow struct {
	Name   string
	Points int
	Max    int
}

func (e AssessmentResults) Render() (Message, error) {
	if e.To == "" {
		return Message{}, ErrNoRecipient
	}
	rows := make([]pillarRow, 0, len(model.Pillars))
	for _, p := range model.Pillars {
		rows = append(rows, pillarRow{
			Name:   assessment.PillarName(p),
			Points: e.Score.Pillar(p),
			Max:    assessment.MaxScorePerPillar,
		})
	}

	html, err := render("assessment_results", struct {
		Total       int
		Max         int
		Percentage  int
		Title       string
		Description string
		Pillars     []pillarRow
		NextSteps   []string
		Roles       string
		SalaryRange string
		TimeToNext  string
		Signature   template.HTML
	}{
		Total:       e.Score.Total,
		Max:         assessment.TotalMaxScore,
		Percentage:  assessment.Percentage(e.Score.Total, assessment.TotalMaxScore),
		Title:       e.Level.Title,
		Description: e.Level.Description,
		Pillars:     rows,
		NextSteps:   e.Level.NextSteps,
		Roles:       strings.Join(e.Level.Roles, ", "),
		SalaryRange: e.Level.SalaryRange,
		TimeToNext:  e.Level.TimeToNext,
		Signature:   template.HTML(signature),
	})
	if err != nil {
		return Message{}, err
	}
	return Message{
		Kind:    e.Kind(),
		From:    e.From,
		To:      e.To,
		Subject: fmt.Sprintf("Your Career Readiness Results: %s", e.Level.Title),
		HTML:    html,
	}, nil
}
