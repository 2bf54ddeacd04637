package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// LogWater persists one intake entry. A missing drink type defaults to
// the seeded Water row.
func LogWater(userID uint, amount int, drinkTypeID *uint, containerID *uint, inputMethod, notes string) (*models.WaterLog, error) {
	if amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	if drinkTypeID == nil {
		if water, err := FindDrinkTypeByName("Water"); err == nil {
			drinkTypeID = &water.ID
		}
	}

	entry := models.WaterLog{
		UserID:      userID,
		Amount:      amount,
		Timestamp:   time.Now(),
		DrinkTypeID: drinkTypeID,
		ContainerID: containerID,
		InputMethod: inputMethod,
		Notes:       notes,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}

	notifyIfGoalReached(userID, amount)
	return &entry, nil
}

// notifyIfGoalReached emits a one-time event when this entry pushes the
// day's total across the user's goal.
func notifyIfGoalReached(userID uint, amount int) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return
	}
	goal := user.DailyGoal
	if goal <= 0 {
		goal = 2000
	}
	total, _, err := TodayIntake(userID)
	if err != nil {
		return
	}
	if total >= goal && total-amount < goal {
		EmitReminder(userID, "goal_reached",
			"Daily goal reached! You've logged your full hydration target for today.")
	}
}

// LogParsedIntake persists a parser result for one of the text
// surfaces (voice, chat, quick entry).
func LogParsedIntake(userID uint, parsed ParsedIntake, inputMethod string) (*models.WaterLog, error) {
	if !parsed.Recognized {
		return nil, errors.New("utterance not recognized")
	}
	dt, err := FindDrinkTypeByName(string(parsed.DrinkType))
	var dtID *uint
	if err == nil {
		dtID = &dt.ID
	}
	return LogWater(userID, parsed.VolumeML, dtID, nil, inputMethod, parsed.SourceText)
}

// TodayIntake sums today's logged milliliters, raw and scaled by each
// drink's hydration factor.
func TodayIntake(userID uint) (total int, effective float64, err error) {
	start := dayStartLocal(time.Now())
	end := start.Add(24 * time.Hour)
	return intakeBetween(userID, start, end)
}

func intakeBetween(userID uint, start, end time.Time) (int, float64, error) {
	var logs []models.WaterLog
	err := config.DB.
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, start, end).
		Find(&logs).Error
	if err != nil {
		return 0, 0, err
	}

	factors, err := hydrationFactors()
	if err != nil {
		return 0, 0, err
	}

	var total int
	var effective float64
	for _, l := range logs {
		total += l.Amount
		f := 1.0
		if l.DrinkTypeID != nil {
			if v, ok := factors[*l.DrinkTypeID]; ok {
				f = v
			}
		}
		effective += float64(l.Amount) * f
	}
	return total, effective, nil
}

// TodayProgress builds the dashboard progress payload.
func TodayProgress(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	total, effective, err := TodayIntake(userID)
	if err != nil {
		return nil, err
	}

	goal := user.DailyGoal
	if goal <= 0 {
		goal = 2000
	}
	pct := float64(total) / float64(goal)
	if pct > 1 {
		pct = 1
	}

	return map[string]interface{}{
		"consumed_ml":  total,
		"effective_ml": int(effective),
		"goal_ml":      goal,
		"percent":      pct,
		"remaining_ml": max(goal-total, 0),
	}, nil
}

// DailyTotal is one chart point.
type DailyTotal struct {
	Date  string `json:"date"`
	Total int    `json:"total_ml"`
}

// DailyTotals returns per-day sums for the last n days including
// today, zero-filled so charts have a continuous axis.
func DailyTotals(userID uint, days int) ([]DailyTotal, error) {
	if days <= 0 {
		days = 7
	}
	end := dayStartLocal(time.Now()).Add(24 * time.Hour)
	start := end.AddDate(0, 0, -days)

	var logs []models.WaterLog
	err := config.DB.
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, start, end).
		Order("timestamp asc").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]int, days)
	for _, l := range logs {
		byDay[dayStartLocal(l.Timestamp).Format("2006-01-02")] += l.Amount
	}

	out := make([]DailyTotal, 0, days)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		out = append(out, DailyTotal{Date: key, Total: byDay[key]})
	}
	return out, nil
}

// RecentLogs lists the newest entries for the dashboard feed.
func RecentLogs(userID uint, limit int) ([]models.WaterLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var logs []models.WaterLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("timestamp desc").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// LogsBetween lists entries in a date range for export.
func LogsBetween(userID uint, start, end time.Time) ([]models.WaterLog, error) {
	var logs []models.WaterLog
	err := config.DB.
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, start, end).
		Order("timestamp asc").
		Find(&logs).Error
	return logs, err
}

// DeleteLog removes a single entry, scoped to the owner.
func DeleteLog(userID, logID uint) error {
	res := config.DB.Where("id = ? AND user_id = ?", logID, userID).Delete(&models.WaterLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LastLogTime returns the timestamp of the newest entry, used by the
// reminder scheduler.
func LastLogTime(userID uint) (time.Time, error) {
	var log models.WaterLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("timestamp desc").
		First(&log).Error
	if err != nil {
		return time.Time{}, err
	}
	return log.Timestamp, nil
}
