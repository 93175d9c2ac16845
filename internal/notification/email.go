package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"gopkg.in/gomail.v2"
)

// EmailNotifier sends appointment confirmations over SMTP. When delivery
// fails (or SMTP is not configured) it spools the message to a local
// directory so it can be replayed later; it never surfaces an error to
// the booking flow.
type EmailNotifier struct {
	dialer   *gomail.Dialer
	from     string
	spoolDir string
	logger   logger.Logger
}

type spooledMessage struct {
	ID       string    `json:"id"`
	To       string    `json:"to"`
	Subject  string    `json:"subject"`
	Body     string    `json:"body"`
	Reason   string    `json:"reason"`
	QueuedAt time.Time `json:"queued_at"`
}

func NewEmailNotifier(host string, port int, username, password, from, spoolDir string, logger logger.Logger) *EmailNotifier {
	n := &EmailNotifier{
		from:     from,
		spoolDir: spoolDir,
		logger:   logger,
	}

	if host == "" {
		logger.Warn("smtp host is empty, confirmation emails will be spooled")
		return n
	}

	n.dialer = gomail.NewDialer(host, port, username, password)
	return n
}

func (n *EmailNotifier) NotifyConfirmation(ctx context.Context, email, name, checkupName string, date time.Time, timeOfDay string) {
	subject := "Your appointment is confirmed"
	body := confirmationBody(name, checkupName, date, timeOfDay)

	if err := ctx.Err(); err != nil {
		n.spool(email, subject, body, "context cancelled")
		return
	}

	if n.dialer == nil {
		n.spool(email, subject, body, "smtp disabled")
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := n.dialer.DialAndSend(msg); err != nil {
		n.logger.Error("failed to send confirmation email",
			logger.String("to", email),
			logger.String("error", err.Error()),
		)
		n.spool(email, subject, body, err.Error())
		return
	}

	n.logger.Info("confirmation email sent", logger.String("to", email))
}

func (n *EmailNotifier) spool(to, subject, body, reason string) {
	if n.spoolDir == "" {
		n.logger.Warn("spool dir is empty, confirmation email dropped",
			logger.String("to", to),
		)
		return
	}

	if err := os.MkdirAll(n.spoolDir, 0o755); err != nil {
		n.logger.Error("failed to create spool dir", logger.String("error", err.Error()))
		return
	}

	m := spooledMessage{
		ID:       uuid.New().String(),
		To:       to,
		Subject:  subject,
		Body:     body,
		Reason:   reason,
		QueuedAt: time.Now().UTC(),
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		n.logger.Error("failed to marshal spooled email", logger.String("error", err.Error()))
		return
	}

	path := filepath.Join(n.spoolDir, m.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		n.logger.Error("failed to write spooled email",
			logger.String("path", path),
			logger.String("error", err.Error()),
		)
		return
	}

	n.logger.Info("confirmation email spooled",
		logger.String("to", to),
		logger.String("path", path),
		logger.String("reason", reason),
	)
}

func confirmationBody(name, checkupName string, date time.Time, timeOfDay string) string {
	return fmt.Sprintf(
		`<html><body>
<h2>Appointment Confirmed</h2>
<p>Dear %s,</p>
<p>Your appointment has been confirmed with the following details:</p>
<ul>
<li><strong>Checkup:</strong> %s</li>
<li><strong>Date:</strong> %s</li>
<li><strong>Time:</strong> %s</li>
</ul>
<p>Please arrive 15 minutes before your scheduled time.</p>
<p>Thank you for choosing our clinic.</p>
</body></html>`,
		name, checkupName, date.Format("02 January 2006"), timeOfDay,
	)
}
