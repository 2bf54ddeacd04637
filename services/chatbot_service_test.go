package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntakeCategoryBands(t *testing.T) {
	goal := 2000

	cases := []struct {
		intake int
		want   string
	}{
		{0, "no_water"},
		{1, "low_intake"},
		{599, "low_intake"},
		{600, "moderate_intake"},
		{1399, "moderate_intake"},
		{1400, "near_goal"},
		{1999, "near_goal"},
		{2000, "goal_reached"},
		{2001, "over_goal"},
		{5000, "over_goal"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IntakeCategory(tc.intake, goal), "intake=%d", tc.intake)
	}
}

func TestIntakeCategoryZeroGoalFallsBack(t *testing.T) {
	// A zero or negative goal falls back to the 2000 ml baseline.
	assert.Equal(t, "goal_reached", IntakeCategory(2000, 0))
	assert.Equal(t, "low_intake", IntakeCategory(100, -5))
}

func TestProcessMessageLogsIntake(t *testing.T) {
	bot := NewChatbotService(NewIntakeParser())

	reply, parsed := bot.ProcessMessage("I drank 500ml of water", 300, 2000)
	require.NotNil(t, parsed)
	assert.Equal(t, "logged", reply.Action)
	assert.Equal(t, 500, reply.ExtractedIntake)
	assert.Equal(t, 500, parsed.VolumeML)
	// The reply mentions both the amount and the new running total.
	assert.Contains(t, reply.Response, "500")
	assert.Contains(t, reply.Response, "800")
}

func TestProcessMessageUnrecognized(t *testing.T) {
	bot := NewChatbotService(NewIntakeParser())

	reply, parsed := bot.ProcessMessage("what a lovely day", 300, 2000)
	assert.Nil(t, parsed)
	assert.Equal(t, "unrecognized", reply.Action)
	assert.NotEmpty(t, reply.Response)
}

func TestProcessMessageHelpShortCircuits(t *testing.T) {
	bot := NewChatbotService(NewIntakeParser())

	// "help" wins even when the message also contains a parseable amount.
	reply, parsed := bot.ProcessMessage("help me log 500 ml", 0, 2000)
	assert.Nil(t, parsed)
	assert.Equal(t, "help", reply.Action)
}

func TestProcessMessageStatus(t *testing.T) {
	bot := NewChatbotService(NewIntakeParser())

	reply, parsed := bot.ProcessMessage("what's my status", 800, 2000)
	assert.Nil(t, parsed)
	assert.Equal(t, "status", reply.Action)
	assert.Contains(t, reply.Response, "800")
}

func TestReminderMessageMentionsIntake(t *testing.T) {
	bot := NewChatbotService(NewIntakeParser())

	msg := bot.ReminderMessage(1200)
	assert.True(t, strings.Contains(msg, "1200"), msg)
}
