package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"

	msg "tg_drop_monitor/internal/pkg/message/domain"
)

type SenderSession struct {
	ID             string
	SenderID       int64
	FirstEventTime time.Time
	FolderPath     string

	mu              sync.Mutex
	lastEventTime   time.Time
	files           []string
	contextCaptured bool
	anchor          *msg.MessageRecord
}

func NewSenderSession(senderID int64, eventTime time.Time, folderPath string, anchor msg.MessageRecord) *SenderSession {
	return &SenderSession{
		ID:             uuid.NewString(),
		SenderID:       senderID,
		FirstEventTime: eventTime,
		FolderPath:     folderPath,
		lastEventTime:  eventTime,
		anchor:         &anchor,
	}
}

func (s *SenderSession) LastEventTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastEventTime
}

// Touch продлевает сессию; время назад не сдвигается
func (s *SenderSession) Touch(eventTime time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if eventTime.After(s.lastEventTime) {
		s.lastEventTime = eventTime
	}
}

func (s *SenderSession) AppendFile(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append(s.files, name)
}

func (s *SenderSession) Files() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	files := make([]string, len(s.files))
	copy(files, s.files)
	return files
}

// ClaimContext отдаёт опорное сообщение ровно один раз за сессию.
// Повторные вызовы возвращают false, лог сообщений не перезаписывается.
func (s *SenderSession) ClaimContext() (msg.MessageRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.contextCaptured || s.anchor == nil {
		return msg.MessageRecord{}, false
	}

	s.contextCaptured = true
	anchor := *s.anchor
	s.anchor = nil
	return anchor, true
}

func (s *SenderSession) ContextCaptured() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contextCaptured
}
