package scheduler

import (
	"context"
	"time"

	"github.com/mcosta/finance-dashboard/internal/notify"
	"github.com/mcosta/finance-dashboard/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// How many days before a card's due date the reminder goes out
const reminderLeadDays = 3

// Scheduler runs the daily background jobs: crypto price refresh and
// card due-date reminders. Job failures are logged and never fatal.
type Scheduler struct {
	cron   *cron.Cron
	svc    *service.Service
	sender *notify.Sender
	log    *logrus.Logger
}

// New initializes the scheduler with its job registrations
func New(svc *service.Service, sender *notify.Sender, log *logrus.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(),
		svc:    svc,
		sender: sender,
		log:    log,
	}
	if _, err := s.cron.AddFunc("0 6 * * *", s.refreshCryptoPrices); err != nil {
		return nil, err
	}
	if _, err := s.cron.AddFunc("0 8 * * *", s.sendDueReminders); err != nil {
		return nil, err
	}
	return s, nil
}

// Start launches the cron loop in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Scheduler started")
}

// Stop stops the cron loop, waiting for running jobs
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Scheduler stopped")
}

func (s *Scheduler) refreshCryptoPrices() {
	users, err := s.svc.ListUsers()
	if err != nil {
		s.log.Errorf("Price refresh job: failed to list users: %v", err)
		return
	}
	for _, u := range users {
		result, err := s.svc.RefreshCryptoPricesForUser(u.ID)
		if err != nil {
			s.log.Errorf("Price refresh job: user %s: %v", u.ID, err)
			continue
		}
		if result.Failed > 0 {
			if err := s.sender.SendPriceRefreshReport(u.Email, u.Username, result.Updated, result.Failed); err != nil {
				s.log.Errorf("Price refresh job: report email for %s: %v", u.Email, err)
			}
		}
	}
}

func (s *Scheduler) sendDueReminders() {
	users, err := s.svc.ListUsers()
	if err != nil {
		s.log.Errorf("Reminder job: failed to list users: %v", err)
		return
	}
	now := time.Now()
	for _, u := range users {
		ctx := context.WithValue(context.Background(), "userID", u.ID)
		cards, err := s.svc.GetCreditCards(ctx)
		if err != nil {
			s.log.Errorf("Reminder job: cards for user %s: %v", u.ID, err)
			continue
		}
		for _, card := range cards {
			due := nextDueDate(now, card.DueDate)
			days := int(due.Sub(now).Hours() / 24)
			if days != reminderLeadDays {
				continue
			}
			if err := s.sender.SendCardDueReminder(u.Email, u.Username, card.Name, due, card.CurrentBalance); err != nil {
				s.log.Errorf("Reminder job: email for %s: %v", u.Email, err)
			}
		}
	}
}

// nextDueDate resolves a day-of-month due date into the next concrete
// date on or after now, clamping to the month's last day when needed.
func nextDueDate(now time.Time, dueDay int) time.Time {
	due := dateForDay(now.Year(), now.Month(), dueDay, now.Location())
	if due.Before(now.Truncate(24 * time.Hour)) {
		next := now.AddDate(0, 1, 0)
		due = dateForDay(next.Year(), next.Month(), dueDay, now.Location())
	}
	return due
}

func dateForDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
