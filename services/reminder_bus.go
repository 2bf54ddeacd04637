package services

import (
	"fmt"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type reminderDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _reminder reminderDeps

func InitReminderDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_reminder = reminderDeps{db: db, rt: rt, ps: ps}
}

// EmitReminder persists a nudge and fans it out over websocket and
// push. Safe to call anywhere; a no-op before initialization.
func EmitReminder(userID uint, typ, message string) {
	if _reminder.db == nil {
		return
	}
	r := &models.Reminder{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _reminder.db.Create(r).Error

	if _reminder.rt != nil {
		_reminder.rt.Broadcast(userID, map[string]any{
			"kind":     "reminder.created",
			"reminder": r,
		})
	}
	if _reminder.ps != nil {
		_reminder.ps.PushToUser(userID, "Hydration Reminder", message, map[string]string{
			"type": typ, "reminderId": fmt.Sprintf("%d", r.ID),
		})
	}
}

// RecentReminders lists the newest nudges for the notification feed.
func RecentReminders(userID uint, limit int) ([]models.Reminder, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	var reminders []models.Reminder
	err := _reminder.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&reminders).Error
	return reminders, err
}
