package email

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LogMailer writes messages to the log instead of sending them.
// Used when no provider key is configured.
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer creates a LogMailer.
func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

var _ Mailer = (*LogMailer)(nil)

func (m *LogMailer) Send(_ context.Context, msg Message) (SendResult, error) {
	id := "log-" + uuid.NewString()
	m.logger.Info("email_not_sent",
		zap.String("id", id),
		zap.Strings("to", msg.To),
		zap.String("reply_to", msg.ReplyTo),
		zap.String("subject", msg.Subject),
		zap.String("text", msg.Text),
	)
	return SendResult{ID: id}, nil
}
