package notify

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/mcosta/finance-dashboard/internal/config"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

func (s *Sender) send(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %v: %v", e.To, err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	s.logger.Infof("Email sent to %v: %s", e.To, e.Subject)
	return nil
}

// SendCardDueReminder sends a reminder that a credit card bill is due soon
func (s *Sender) SendCardDueReminder(to, username, cardName string, dueDate time.Time, balance float64) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Upcoming Credit Card Bill Reminder"

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your card %s has a bill due on %s.\n"+
			"Current outstanding balance: %.2f BRL.\n"+
			"Please ensure sufficient funds are available.\n"+
			"\nBest regards,\nFinance Dashboard",
		username, cardName, dueDate.Format("2006-01-02"), balance,
	)
	e.Text = []byte(body)

	return s.send(e)
}

// SendPriceRefreshReport sends a partial-success report after a crypto
// price refresh batch with failures
func (s *Sender) SendPriceRefreshReport(to, username string, updated, failed int) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Crypto Price Refresh Report"

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your crypto positions were refreshed at %s.\n"+
			"Updated: %d\n"+
			"Failed: %d\n"+
			"Positions that failed keep their previous price.\n"+
			"\nBest regards,\nFinance Dashboard",
		username, time.Now().Format("2006-01-02 15:04:05"), updated, failed,
	)
	e.Text = []byte(body)

	return s.send(e)
}
