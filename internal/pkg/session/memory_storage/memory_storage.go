package memory_storage

import (
	"sync"

	"tg_drop_monitor/internal/pkg/session/domain"
)

type slot struct {
	mu      sync.Mutex
	session *domain.SenderSession
}

// MemoryStorage держит сессии в памяти процесса.
// У каждого отправителя свой слот с собственной блокировкой,
// чтобы решения по разным отправителям не мешали друг другу.
type MemoryStorage struct {
	slots map[int64]*slot
	mu    sync.Mutex
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		slots: make(map[int64]*slot),
	}
}

func (m *MemoryStorage) slotFor(senderID int64) *slot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, exists := m.slots[senderID]
	if !exists {
		s = &slot{}
		m.slots[senderID] = s
	}
	return s
}

func (m *MemoryStorage) Lock(senderID int64) (unlock func()) {
	s := m.slotFor(senderID)
	s.mu.Lock()
	return s.mu.Unlock
}

func (m *MemoryStorage) Get(senderID int64) *domain.SenderSession {
	return m.slotFor(senderID).session
}

func (m *MemoryStorage) Put(senderID int64, session *domain.SenderSession) {
	m.slotFor(senderID).session = session
}
