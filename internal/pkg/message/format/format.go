package format

import (
	"fmt"
	"strings"

	"tg_drop_monitor/internal/pkg/message/domain"
)

const TimeLayout = "2006-01-02 15:04:05"

const invalidChars = `<>:"/\|?*`

// DisplayName возвращает отображаемое имя отправителя
func DisplayName(s domain.Sender) string {
	if s.Username != "" {
		return "@" + s.Username
	}

	var parts []string
	if s.FirstName != "" {
		parts = append(parts, s.FirstName)
	}
	if s.LastName != "" {
		parts = append(parts, s.LastName)
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}

	return fmt.Sprintf("User_%d", s.ID)
}

// SanitizeName заменяет недопустимые для файловой системы символы
func SanitizeName(name string) string {
	for _, c := range invalidChars {
		name = strings.ReplaceAll(name, string(c), "_")
	}
	return name
}

// MessageLine форматирует одну строку лога сообщений
func MessageLine(msg domain.MessageRecord, senderName string) string {
	text := msg.Text
	if text == "" {
		if msg.Media != domain.MediaNone {
			text = msg.Media.Tag()
		} else {
			text = "[No text content]"
		}
	}
	return fmt.Sprintf("[%s] %s: %s", msg.Date.Format(TimeLayout), senderName, text)
}
