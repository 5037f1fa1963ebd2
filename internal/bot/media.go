package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tg_drop_monitor/internal/pkg/message/domain"
)

// mediaKind определяет тип вложения один раз на границе с API
func mediaKind(m *tgbotapi.Message) domain.MediaKind {
	switch {
	case len(m.Photo) > 0:
		return domain.MediaPhoto
	case m.Document != nil:
		return domain.MediaFile
	case m.Video != nil, m.Audio != nil, m.Voice != nil,
		m.VideoNote != nil, m.Animation != nil, m.Sticker != nil:
		return domain.MediaOther
	default:
		return domain.MediaNone
	}
}

func toRecord(m *tgbotapi.Message) domain.MessageRecord {
	text := m.Text
	if text == "" {
		text = m.Caption
	}

	var sender domain.Sender
	if m.From != nil {
		sender = domain.Sender{
			ID:        m.From.ID,
			Username:  m.From.UserName,
			FirstName: m.From.FirstName,
			LastName:  m.From.LastName,
		}
	}

	return domain.MessageRecord{
		ID:     m.MessageID,
		Sender: sender,
		Date:   m.Time(),
		Text:   text,
		Media:  mediaKind(m),
	}
}

func mediaFile(m *tgbotapi.Message) (fileID, fileName string) {
	switch {
	case len(m.Photo) > 0:
		// берем последнее (самое качественное) фото
		photo := m.Photo[len(m.Photo)-1]
		return photo.FileID, fmt.Sprintf("photo_%d.jpg", m.MessageID)
	case m.Document != nil:
		name := m.Document.FileName
		if name == "" {
			name = fmt.Sprintf("file_%d", m.MessageID)
		}
		return m.Document.FileID, name
	default:
		return "", ""
	}
}
