package history

import (
	"sync"

	"tg_drop_monitor/internal/pkg/message/domain"
)

const DefaultBufferSize = 100

// Buffer хранит последние N сообщений чата
type Buffer struct {
	msgs []domain.MessageRecord
	size int
	mu   sync.RWMutex
}

func NewBuffer(size int) *Buffer {
	if size <= 0 {
		size = DefaultBufferSize
	}

	return &Buffer{
		msgs: make([]domain.MessageRecord, 0, size),
		size: size,
	}
}

func (b *Buffer) Append(msg domain.MessageRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.msgs = append(b.msgs, msg)
	if len(b.msgs) > b.size {
		b.msgs = b.msgs[len(b.msgs)-b.size:]
	}
}

// Before возвращает сообщения до anchorID, от новых к старым
func (b *Buffer) Before(anchorID int, limit int) []domain.MessageRecord {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var result []domain.MessageRecord
	for i := len(b.msgs) - 1; i >= 0 && len(result) < limit; i-- {
		if b.msgs[i].ID < anchorID {
			result = append(result, b.msgs[i])
		}
	}
	return result
}

// After возвращает сообщения после anchorID, от старых к новым
func (b *Buffer) After(anchorID int, limit int) []domain.MessageRecord {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var result []domain.MessageRecord
	for _, msg := range b.msgs {
		if len(result) >= limit {
			break
		}
		if msg.ID > anchorID {
			result = append(result, msg)
		}
	}
	return result
}
