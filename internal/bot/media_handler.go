package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tg_drop_monitor/internal/pkg/history"
	"tg_drop_monitor/internal/pkg/message/domain"
	"tg_drop_monitor/internal/pkg/message/format"
)

// Обработчик сообщений с файлами
func (b *Bot) handleFileMessage(m *tgbotapi.Message, record domain.MessageRecord) {
	session, created, err := b.sessions.Admit(record)
	if err != nil {
		log.Printf("❌ Cannot open drop session for message %d: %v", m.MessageID, err)
		return
	}

	label := format.SanitizeName(format.DisplayName(record.Sender))
	if created {
		log.Printf("📂 %s sent a file - created folder: %s", label, session.FolderPath)
	} else {
		log.Printf("📂 %s sent a file - added to existing group %s", label, session.ID)
	}

	fileName, err := b.downloader.Download(m, session.FolderPath)
	if err != nil {
		// сессия остается, файл просто не попадает в список
		log.Printf("❌ File download failed: %v", err)
	} else {
		session.AppendFile(fileName)
		log.Printf("✅ File saved: %s", fileName)
	}

	// лог сообщений пишется один раз, для первого файла сессии
	anchor, first := session.ClaimContext()
	if !first {
		return
	}

	before, after := history.Surrounding(b.history, record.Sender.ID, anchor, b.cfg.MessagesBefore, b.cfg.MessagesAfter)
	txtPath, err := b.transcript.WriteContext(session.FolderPath, label, before, anchor, after)
	if err != nil {
		log.Printf("❌ Saving message log failed: %v", err)
		return
	}
	log.Printf("💾 Message log saved: %s", txtPath)
}
