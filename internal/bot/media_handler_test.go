package bot

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tg_drop_monitor/internal/pkg/config"
	"tg_drop_monitor/internal/pkg/history"
	"tg_drop_monitor/internal/pkg/message/domain"
	"tg_drop_monitor/internal/pkg/session/memory_storage"
	"tg_drop_monitor/internal/pkg/session/usecase"
	"tg_drop_monitor/internal/pkg/transcript"
)

type fakeDownloader struct {
	fail bool
}

func (d *fakeDownloader) Download(m *tgbotapi.Message, dir string) (string, error) {
	if d.fail {
		return "", fmt.Errorf("transfer error")
	}
	return fmt.Sprintf("file_%d", m.MessageID), nil
}

func newTestBot(t *testing.T, dl Downloader) (*Bot, string) {
	t.Helper()
	outputDir := t.TempDir()

	cfg := &config.Config{
		ChatID:             -100,
		OutputDir:          outputDir,
		GroupWindowSeconds: 60,
		MessagesBefore:     5,
		MessagesAfter:      5,
		MessageBufferSize:  100,
	}

	store := memory_storage.NewMemoryStorage()
	return &Bot{
		cfg:        cfg,
		history:    history.NewBuffer(cfg.MessageBufferSize),
		sessions:   usecase.New(store, usecase.OSDirMaker{}, outputDir, cfg.GroupWindow()),
		transcript: transcript.NewWriter(),
		downloader: dl,
	}, outputDir
}

func fileRecord(id int, sender domain.Sender, at time.Time) domain.MessageRecord {
	return domain.MessageRecord{ID: id, Sender: sender, Date: at, Media: domain.MediaPhoto}
}

func TestHandleFileMessageScenario(t *testing.T) {
	b, outputDir := newTestBot(t, &fakeDownloader{})

	alice := domain.Sender{ID: 1, FirstName: "Alice"}
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	// фото в T=0 и документ в T=30 попадают в одну сессию
	first := fileRecord(1, alice, start)
	b.history.Append(first)
	b.handleFileMessage(&tgbotapi.Message{MessageID: 1}, first)

	second := fileRecord(2, alice, start.Add(30*time.Second))
	b.history.Append(second)
	b.handleFileMessage(&tgbotapi.Message{MessageID: 2}, second)

	folder := filepath.Join(outputDir, "Alice", "2024-03-01_12-00-00")
	session, _, err := b.sessions.Admit(fileRecord(3, alice, start.Add(31*time.Second)))
	if err != nil {
		t.Fatal(err)
	}
	if session.FolderPath != folder {
		t.Fatalf("folder: got %q, want %q", session.FolderPath, folder)
	}
	if files := session.Files(); len(files) != 2 || files[0] != "file_1" || files[1] != "file_2" {
		t.Errorf("files: got %v", files)
	}

	if _, err := os.Stat(filepath.Join(folder, transcript.FileName)); err != nil {
		t.Errorf("message log not written: %v", err)
	}

	// третий файл после простоя открывает новую сессию с новой папкой
	third := fileRecord(4, alice, start.Add(100*time.Second))
	b.history.Append(third)
	b.handleFileMessage(&tgbotapi.Message{MessageID: 4}, third)

	newFolder := filepath.Join(outputDir, "Alice", "2024-03-01_12-01-40")
	if _, err := os.Stat(filepath.Join(newFolder, transcript.FileName)); err != nil {
		t.Errorf("second session log not written: %v", err)
	}
	if newFolder == folder {
		t.Error("sessions share a folder")
	}
}

func TestHandleFileMessageDownloadFailure(t *testing.T) {
	b, outputDir := newTestBot(t, &fakeDownloader{fail: true})

	bob := domain.Sender{ID: 2, Username: "bob"}
	rec := fileRecord(1, bob, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	b.history.Append(rec)
	b.handleFileMessage(&tgbotapi.Message{MessageID: 1}, rec)

	session, created, err := b.sessions.Admit(fileRecord(2, bob, rec.Date.Add(time.Second)))
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Fatal("failed download must not tear down the session")
	}
	if files := session.Files(); len(files) != 0 {
		t.Errorf("failed download recorded files: %v", files)
	}

	// лог сообщений сохраняется даже без файлов
	folder := filepath.Join(outputDir, "@bob", "2024-03-01_12-00-00")
	if _, err := os.Stat(filepath.Join(folder, transcript.FileName)); err != nil {
		t.Errorf("message log missing: %v", err)
	}
}
