package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"
)

// Default window within which reminders may be sent
const (
	DefaultNotificationStartHour = 8
	DefaultNotificationEndHour   = 21
)

// Notifier delivers due-card reminders
type Notifier interface {
	SendReminder(count int) error
}

// DueFunc reports the number of cards currently due for review
type DueFunc func(now time.Time) (int, error)

// Reminder periodically checks for due reviews and notifies the learner
type Reminder struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	due       DueFunc
}

// NewReminder creates a reminder runner
func NewReminder(notifier Notifier, due DueFunc) *Reminder {
	return &Reminder{
		scheduler: gocron.NewScheduler(time.Local),
		notifier:  notifier,
		due:       due,
	}
}

// Start begins the hourly due-card check in a non-blocking manner
func (r *Reminder) Start() {
	r.scheduler.Every(1).Hour().Do(r.checkAndSendReminder)
	r.scheduler.StartAsync()
}

// Stop terminates all scheduled checks
func (r *Reminder) Stop() {
	r.scheduler.Stop()
}

// RunManualCheck forces an immediate due-card check
func (r *Reminder) RunManualCheck() error {
	now := time.Now()
	count, err := r.due(now)
	if err != nil {
		return err
	}
	if count > 0 {
		return r.notifier.SendReminder(count)
	}
	return nil
}

func (r *Reminder) checkAndSendReminder() {
	now := time.Now()
	currentHour := now.Hour()

	startHour := envHour("NOTIFICATION_START_HOUR", DefaultNotificationStartHour)
	endHour := envHour("NOTIFICATION_END_HOUR", DefaultNotificationEndHour)

	if currentHour < startHour || currentHour > endHour {
		log.Printf("Current hour %d is outside notification hours (%d-%d), skipping reminder",
			currentHour, startHour, endHour)
		return
	}

	count, err := r.due(now)
	if err != nil {
		log.Printf("Error counting due cards: %v", err)
		return
	}
	if count == 0 {
		return
	}
	if err := r.notifier.SendReminder(count); err != nil {
		log.Printf("Error sending reminder: %v", err)
	}
}

func envHour(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			return h
		}
	}
	return fallback
}
