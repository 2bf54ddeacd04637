package services

import (
	"time"

	"backend/config"
	"backend/models"
)

// DrinkBreakdown is one drink type's share of the period's intake.
type DrinkBreakdown struct {
	DrinkType string `json:"drink_type"`
	TotalML   int    `json:"total_ml"`
	Count     int    `json:"count"`
}

// WaterStats summarizes a user's recent drinking habits.
type WaterStats struct {
	WeeklyAverageML int              `json:"weekly_average_ml"`
	BestDayML       int              `json:"best_day_ml"`
	BestDayDate     string           `json:"best_day_date"`
	CurrentStreak   int              `json:"current_streak_days"`
	Breakdown       []DrinkBreakdown `json:"breakdown"`
}

// ComputeStats builds the dashboard statistics from the last seven
// days of logs plus the goal streak counted backwards from today.
func ComputeStats(userID uint) (*WaterStats, error) {
	totals, err := DailyTotals(userID, 7)
	if err != nil {
		return nil, err
	}

	stats := &WaterStats{}
	sum := 0
	for _, d := range totals {
		sum += d.Total
		if d.Total > stats.BestDayML {
			stats.BestDayML = d.Total
			stats.BestDayDate = d.Date
		}
	}
	if len(totals) > 0 {
		stats.WeeklyAverageML = sum / len(totals)
	}

	streak, err := goalStreak(userID)
	if err != nil {
		return nil, err
	}
	stats.CurrentStreak = streak

	breakdown, err := drinkBreakdown(userID, 7)
	if err != nil {
		return nil, err
	}
	stats.Breakdown = breakdown

	return stats, nil
}

// goalStreak counts consecutive days, ending today, on which the user
// met their daily goal. Today counts as soon as the goal is reached.
func goalStreak(userID uint) (int, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return 0, err
	}
	goal := user.DailyGoal
	if goal <= 0 {
		goal = 2000
	}

	streak := 0
	day := dayStartLocal(time.Now())
	for streak < 365 {
		total, _, err := intakeBetween(userID, day, day.Add(24*time.Hour))
		if err != nil {
			return 0, err
		}
		if total < goal {
			// An unfinished today does not break yesterday's streak.
			if streak == 0 && day.Equal(dayStartLocal(time.Now())) {
				day = day.Add(-24 * time.Hour)
				continue
			}
			break
		}
		streak++
		day = day.Add(-24 * time.Hour)
	}
	return streak, nil
}

func drinkBreakdown(userID uint, days int) ([]DrinkBreakdown, error) {
	since := dayStartLocal(time.Now()).Add(-time.Duration(days-1) * 24 * time.Hour)

	var logs []models.WaterLog
	if err := config.DB.
		Where("user_id = ? AND timestamp >= ?", userID, since).
		Find(&logs).Error; err != nil {
		return nil, err
	}

	names := map[uint]string{}
	var types []models.DrinkType
	if err := config.DB.Find(&types).Error; err == nil {
		for _, t := range types {
			names[t.ID] = t.Name
		}
	}

	agg := map[string]*DrinkBreakdown{}
	order := []string{}
	for _, l := range logs {
		name := "Water"
		if l.DrinkTypeID != nil {
			if n, ok := names[*l.DrinkTypeID]; ok {
				name = n
			}
		}
		b, ok := agg[name]
		if !ok {
			b = &DrinkBreakdown{DrinkType: name}
			agg[name] = b
			order = append(order, name)
		}
		b.TotalML += l.Amount
		b.Count++
	}

	out := make([]DrinkBreakdown, 0, len(order))
	for _, name := range order {
		out = append(out, *agg[name])
	}
	return out, nil
}
