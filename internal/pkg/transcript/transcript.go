package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tg_drop_monitor/internal/pkg/message/domain"
	"tg_drop_monitor/internal/pkg/message/format"
)

const FileName = "messages.txt"

type Writer struct {
	now func() time.Time
}

func NewWriter() *Writer {
	return &Writer{now: time.Now}
}

// WriteContext сохраняет лог сообщений вокруг первого файла сессии.
// Вызывается не больше одного раза за сессию, под защитой ClaimContext.
func (w *Writer) WriteContext(folderPath, senderLabel string, before []domain.MessageRecord, anchor domain.MessageRecord, after []domain.MessageRecord) (string, error) {
	all := make([]domain.MessageRecord, 0, len(before)+1+len(after))
	all = append(all, before...)
	all = append(all, anchor)
	all = append(all, after...)

	var b strings.Builder
	b.WriteString("=== Telegram Message Log ===\n")
	b.WriteString(fmt.Sprintf("User: %s\n", senderLabel))
	b.WriteString(fmt.Sprintf("Record Time: %s\n", w.now().Format(format.TimeLayout)))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, msg := range all {
		b.WriteString(format.MessageLine(msg, format.DisplayName(msg.Sender)) + "\n")
	}

	txtPath := filepath.Join(folderPath, FileName)
	if err := os.WriteFile(txtPath, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("write message log: %w", err)
	}
	return txtPath, nil
}
