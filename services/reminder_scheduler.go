package services

import (
	"context"
	"time"

	"backend/config"
	"backend/logger"
	"backend/models"

	"go.uber.org/zap"
)

// ReminderScheduler periodically nudges users who enabled reminders
// and have not logged anything within their chosen interval.
type ReminderScheduler struct {
	chatbot *ChatbotService
	oauth   *OAuthService
	tick    time.Duration
}

func NewReminderScheduler(chatbot *ChatbotService, oauth *OAuthService) *ReminderScheduler {
	return &ReminderScheduler{chatbot: chatbot, oauth: oauth, tick: time.Minute}
}

// Start runs the scheduler loop until the context is cancelled.
// Intended to be launched as a goroutine from main.
func (s *ReminderScheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce()
			s.oauth.CleanupExpiredStates()
		}
	}
}

func (s *ReminderScheduler) runOnce() {
	var users []models.User
	if err := config.DB.Where("reminder_enabled = ?", true).Find(&users).Error; err != nil {
		logger.Error("reminder scheduler query failed", zap.Error(err))
		return
	}

	now := time.Now()
	for _, u := range users {
		interval := time.Duration(u.ReminderInterval) * time.Minute
		if interval <= 0 {
			interval = time.Hour
		}

		last, err := LastLogTime(u.ID)
		if err == nil && now.Sub(last) < interval {
			continue
		}

		// Don't nag twice within the same interval.
		var latest models.Reminder
		if err := config.DB.Where("user_id = ?", u.ID).Order("created_at desc").First(&latest).Error; err == nil {
			if now.Sub(latest.CreatedAt) < interval {
				continue
			}
		}

		total, _, err := TodayIntake(u.ID)
		if err != nil {
			continue
		}
		EmitReminder(u.ID, "reminder", s.chatbot.ReminderMessage(total))
	}
}
