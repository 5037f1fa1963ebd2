package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
)

// Диагностика: проверяет, что бот видит указанный чат
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_TOKEN is not set")
	}

	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <chat_id>", os.Args[0])
	}

	chatID, err := strconv.ParseInt(os.Args[1], 10, 64)
	if err != nil {
		log.Fatalf("Chat id must be numeric: %v", err)
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	chat, err := api.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
	})
	if err != nil {
		fmt.Printf("❌ Cannot find chat %d: %v\n", chatID, err)
		fmt.Println("💡 The bot must be a member of the chat to see it")
		os.Exit(1)
	}

	name := chat.Title
	if name == "" {
		name = chat.FirstName
		if chat.LastName != "" {
			name += " " + chat.LastName
		}
	}

	username := "No username"
	if chat.UserName != "" {
		username = "@" + chat.UserName
	}

	fmt.Println("✅ Successfully found!")
	fmt.Printf("   Name/Title: %s\n", name)
	fmt.Printf("   Type: %s\n", chat.Type)
	fmt.Printf("   ID: %d\n", chat.ID)
	fmt.Printf("   Username: %s\n", username)
	fmt.Println("\n📝 .env configuration:")
	fmt.Printf("   CHAT_TO_MONITOR=%d\n", chat.ID)
}
