package usecase

import (
	"fmt"
	"path/filepath"

	msg "tg_drop_monitor/internal/pkg/message/domain"
	"tg_drop_monitor/internal/pkg/message/format"
	"tg_drop_monitor/internal/pkg/session/domain"
)

const folderTimeLayout = "2006-01-02_15-04-05"

// Admit решает, попадает ли файл в открытую сессию отправителя
// или начинает новую. Решение и выделение папки сериализованы
// по отправителю через слот хранилища.
func (u *Usecase) Admit(anchor msg.MessageRecord) (*domain.SenderSession, bool, error) {
	unlock := u.store.Lock(anchor.Sender.ID)
	defer unlock()

	eventTime := anchor.Date

	if session := u.store.Get(anchor.Sender.ID); session != nil {
		gap := eventTime.Sub(session.LastEventTime())
		if gap < 0 {
			// событие пришло с опозданием, окно не сужаем
			gap = 0
		}
		if gap <= u.window {
			session.Touch(eventTime)
			return session, false, nil
		}
	}

	label := format.SanitizeName(format.DisplayName(anchor.Sender))
	folderPath := filepath.Join(u.outputDir, label, eventTime.Format(folderTimeLayout))
	if err := u.dirs.EnsureDir(folderPath); err != nil {
		return nil, false, fmt.Errorf("create session folder %s: %w", folderPath, err)
	}

	session := domain.NewSenderSession(anchor.Sender.ID, eventTime, folderPath, anchor)
	u.store.Put(anchor.Sender.ID, session)
	return session, true, nil
}
