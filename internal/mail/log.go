package mail

import (
	"context"

	"github.com/cgabhane/author-website/internal/logger"
)

// LogSender records messages instead of delivering them. Used when mail is
// disabled.
type LogSender struct {
	log logger.Logger
}

func NewLogSender(log logger.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.log.Info("mail disabled, skipping send", map[string]interface{}{
		"kind":    string(msg.Kind),
		"to":      msg.To,
		"subject": msg.Subject,
	})
	return nil
}
