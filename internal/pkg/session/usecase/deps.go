package usecase

import (
	"os"

	"tg_drop_monitor/internal/pkg/session/domain"
)

type SessionStore interface {
	// Lock берёт слот отправителя на время принятия решения,
	// возвращает функцию разблокировки
	Lock(senderID int64) (unlock func())
	Get(senderID int64) *domain.SenderSession
	Put(senderID int64, session *domain.SenderSession)
}

type DirMaker interface {
	EnsureDir(path string) error
}

type OSDirMaker struct{}

func (OSDirMaker) EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
