package services

import (
	"fmt"
	"math/rand"
	"strings"
)

// ChatReply is the chatbot's answer to one message, including any
// intake the parser pulled out of it.
type ChatReply struct {
	Response        string `json:"response"`
	Action          string `json:"action"` // "logged" | "status" | "help" | "unrecognized"
	ExtractedIntake int    `json:"extracted_intake,omitempty"`
}

// ChatbotService wraps the intake parser in a sarcastic conversational
// layer. Template selection is random; everything else is
// deterministic rule matching.
type ChatbotService struct {
	parser *IntakeParser
}

func NewChatbotService(parser *IntakeParser) *ChatbotService {
	return &ChatbotService{parser: parser}
}

var chatTemplates = map[string][]string{
	"no_water": {
		"Did you forget water exists, or are you just seeing how long you can go without it?",
		"Are you still waiting for a miracle, or is water just too mainstream for you today?",
	},
	"low_intake": {
		"You've had only %d ml? You're really testing the limits of human endurance, huh?",
		"Congratulations! You've consumed %d ml. That's almost enough to keep a houseplant alive.",
		"Oh wow, %d ml! At this rate, you'll reach your goal sometime next century.",
	},
	"moderate_intake": {
		"You're at %d ml. Not terrible, but let's not throw a parade just yet.",
		"Look at you, drinking %d ml like a responsible adult. I'm almost proud.",
		"Progress! %d ml down. Try not to celebrate too early.",
	},
	"near_goal": {
		"So close with %d ml! Don't choke now.",
		"You've had %d ml. The finish line is in sight! Try not to trip over your own success.",
	},
	"goal_reached": {
		"Congrats! You've managed to drink %d ml today. I guess you're not a dehydrated zombie anymore.",
		"Achievement unlocked: Basic Human Survival! %d ml consumed.",
	},
	"over_goal": {
		"Whoa there, overachiever! %d ml is over your goal. Trying to become a fish?",
		"Impressive! %d ml is way over your goal. At least we know you won't shrivel up today.",
	},
	"logged": {
		"Fine, I logged your %d ml. That puts you at %d ml for the day.",
		"Another %d ml down the hatch. Running total: %d ml. Look at you go.",
		"%d ml recorded. You're at %d ml now. Someone's taking hydration seriously today.",
	},
	"help": {
		"Need help? Just tell me how much water you drank, like '500 ml' or 'I drank 2 glasses'.",
		"You can say things like 'I had 300ml' or 'drank 1 liter'. It's not rocket science.",
		"Tell me your water intake in ml, liters, cups, or glasses. Even you can handle that.",
	},
	"unrecognized": {
		"I have no idea what that means. Try something like '500ml' or 'a glass of water'.",
		"That's nice, but I only understand water. Say an amount like '250 ml' or '2 cups'.",
	},
	"reminder": {
		"Reminder: Water exists and you need it. Currently at %d ml. Revolutionary concept, I know.",
		"Hey there, desert dweller! You're at %d ml. Time to drink something before you turn into jerky.",
		"Water break time! You're at %d ml. I know, I know, drinking water is so mainstream.",
	},
}

// IntakeCategory buckets the running total against the daily goal.
func IntakeCategory(currentIntake, dailyGoal int) string {
	if dailyGoal <= 0 {
		dailyGoal = baseHydrationML
	}
	switch {
	case currentIntake == 0:
		return "no_water"
	case currentIntake < dailyGoal*3/10:
		return "low_intake"
	case currentIntake < dailyGoal*7/10:
		return "moderate_intake"
	case currentIntake < dailyGoal:
		return "near_goal"
	case currentIntake == dailyGoal:
		return "goal_reached"
	default:
		return "over_goal"
	}
}

func pickTemplate(category string) string {
	options := chatTemplates[category]
	if len(options) == 0 {
		options = chatTemplates["unrecognized"]
	}
	return options[rand.Intn(len(options))]
}

// ProcessMessage answers one chat message. Help and status requests
// short-circuit; otherwise the intake parser decides whether the
// message logs water.
func (s *ChatbotService) ProcessMessage(text string, currentIntake, dailyGoal int) (ChatReply, *ParsedIntake) {
	lower := strings.ToLower(strings.TrimSpace(text))

	if strings.Contains(lower, "help") || strings.Contains(lower, "how do i") {
		return ChatReply{Response: pickTemplate("help"), Action: "help"}, nil
	}
	if strings.Contains(lower, "status") || strings.Contains(lower, "progress") || strings.Contains(lower, "how much") {
		category := IntakeCategory(currentIntake, dailyGoal)
		return ChatReply{Response: formatIntake(pickTemplate(category), currentIntake), Action: "status"}, nil
	}

	parsed := s.parser.Parse(text)
	if !parsed.Recognized {
		return ChatReply{Response: pickTemplate("unrecognized"), Action: "unrecognized"}, nil
	}

	newTotal := currentIntake + parsed.VolumeML
	reply := ChatReply{
		Response:        fmt.Sprintf(pickTemplate("logged"), parsed.VolumeML, newTotal),
		Action:          "logged",
		ExtractedIntake: parsed.VolumeML,
	}
	return reply, &parsed
}

// ReminderMessage builds the nudge the scheduler sends to idle users.
func (s *ChatbotService) ReminderMessage(currentIntake int) string {
	return formatIntake(pickTemplate("reminder"), currentIntake)
}

func formatIntake(template string, intake int) string {
	if strings.Contains(template, "%d") {
		return fmt.Sprintf(template, intake)
	}
	return template
}
