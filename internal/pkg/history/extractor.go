package history

import "tg_drop_monitor/internal/pkg/message/domain"

// ScanLimit ограничивает просмотр потока в каждую сторону
const ScanLimit = 50

type Source interface {
	Before(anchorID int, limit int) []domain.MessageRecord
	After(anchorID int, limit int) []domain.MessageRecord
}

// Surrounding собирает сообщения отправителя вокруг опорного сообщения.
// Нехватка сообщений не ошибка: возвращается то, что нашлось.
func Surrounding(src Source, senderID int64, anchor domain.MessageRecord, beforeCount, afterCount int) (before, after []domain.MessageRecord) {
	for _, msg := range src.Before(anchor.ID, ScanLimit) {
		if msg.Sender.ID != senderID {
			continue
		}
		before = append(before, msg)
		if len(before) >= beforeCount {
			break
		}
	}

	// скан назад идёт от новых к старым, восстанавливаем хронологию
	for i, j := 0, len(before)-1; i < j; i, j = i+1, j-1 {
		before[i], before[j] = before[j], before[i]
	}

	for _, msg := range src.After(anchor.ID, ScanLimit) {
		if msg.ID == anchor.ID || msg.Sender.ID != senderID {
			continue
		}
		after = append(after, msg)
		if len(after) >= afterCount {
			break
		}
	}

	return before, after
}
