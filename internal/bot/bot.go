package bot

import (
	"log"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tg_drop_monitor/internal/pkg/config"
	"tg_drop_monitor/internal/pkg/history"
	"tg_drop_monitor/internal/pkg/session/usecase"
	"tg_drop_monitor/internal/pkg/transcript"
)

type Bot struct {
	Api        *tgbotapi.BotAPI
	cfg        *config.Config
	history    *history.Buffer
	sessions   *usecase.Usecase
	transcript *transcript.Writer
	downloader Downloader
}

func New(cfg *config.Config, sessions *usecase.Usecase, buffer *history.Buffer, writer *transcript.Writer) *Bot {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	return &Bot{
		Api:        api,
		cfg:        cfg,
		history:    buffer,
		sessions:   sessions,
		transcript: writer,
		downloader: NewDownloader(api),
	}
}

func (b *Bot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.Api.GetUpdatesChan(u)

	log.Printf("Authorized on account %s", b.Api.Self.UserName)
	absOut, _ := filepath.Abs(b.cfg.OutputDir)
	log.Printf("👀 Monitoring chat %d", b.cfg.ChatID)
	log.Printf("📂 Files save location: %s", absOut)
	log.Printf("⏱️  File grouping time window: %d seconds", b.cfg.GroupWindowSeconds)

	for update := range updates {
		m := update.Message
		if m == nil || m.Chat == nil || m.Chat.ID != b.cfg.ChatID {
			continue
		}

		record := toRecord(m)
		b.history.Append(record)

		if !record.Media.Downloadable() {
			continue
		}
		if m.From == nil {
			log.Printf("❌ Cannot resolve sender of message %d, skipping", m.MessageID)
			continue
		}

		// скачивание и запись лога для разных отправителей идут параллельно
		go b.handleFileMessage(m, record)
	}
}
