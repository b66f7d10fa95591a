package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cgabhane/author-website/internal/logger"
	"github.com/cgabhane/author-website/internal/mail"
	"github.com/cgabhane/author-website/internal/model"
)

// recordingSender captures messages and can fail chosen kinds
type recordingSender struct {
	mu     sync.Mutex
	sent   []mail.Message
	failOn map[mail.Kind]bool
	calls  int
}

func newRecordingSender(failOn ...mail.Kind) *recordingSender {
	s := &recordingSender{failOn: map[mail.Kind]bool{}}
	for _, k := range failOn {
		s.failOn[k] = true
	}
	return s
}

func (s *recordingSender) Send(_ context.Context, msg mail.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failOn[msg.Kind] {
		return errors.New("smtp unavailable")
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSender) Sent() []mail.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mail.Message(nil), s.sent...)
}

func (s *recordingSender) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *recordingSender) kinds() []mail.Kind {
	var out []mail.Kind
	for _, m := range s.Sent() {
		out = append(out, m.Kind)
	}
	return out
}

var testMail = MailSettings{
	From:     "Knowledge Exchange <site@example.com>",
	Operator: "owner@example.com",
	SiteURL:  "https://example.com",
}

func newTestNotifier(t *testing.T, sender mail.Sender) *Notifier {
	return NewNotifier(sender, logger.NewTestLogger(t), time.Second)
}

// recordingBroadcaster captures published events
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []string
}

func (b *recordingBroadcaster) Publish(eventType model.EventType, _ interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, string(eventType))
}
