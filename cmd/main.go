package main

import (
	"context"
	"log"

	"backend/config"
	"backend/logger"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	logger.InitializeLogger()
	defer logger.Close()

	config.InitDB()
	utils.InitS3()
	utils.InitRekognition()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("push service init failed: %v", err)
	}
	hub := services.NewRealtimeHub()
	services.InitReminderDeps(config.DB, hub, push)

	parser := services.NewIntakeParser()
	chatbot := services.NewChatbotService(parser)
	oauth := services.NewOAuthService()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go services.NewReminderScheduler(chatbot, oauth).Start(ctx)

	r := routes.SetupRouter(routes.Deps{
		Parser:  parser,
		Chatbot: chatbot,
		Weather: services.NewWeatherService(),
		OAuth:   oauth,
		Push:    push,
		Hub:     hub,
	})
	r.Run(":8080")
}
