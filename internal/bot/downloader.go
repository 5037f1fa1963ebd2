package bot

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Downloader interface {
	Download(m *tgbotapi.Message, dir string) (string, error)
}

type apiDownloader struct {
	api *tgbotapi.BotAPI
}

func NewDownloader(api *tgbotapi.BotAPI) Downloader {
	return &apiDownloader{api: api}
}

// Download скачивает вложение сообщения в папку сессии
func (d *apiDownloader) Download(m *tgbotapi.Message, dir string) (string, error) {
	fileID, fileName := mediaFile(m)
	if fileID == "" {
		return "", fmt.Errorf("message %d has no downloadable media", m.MessageID)
	}

	file, err := d.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("get file info: %w", err)
	}

	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", d.api.Token, file.FilePath)

	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download file: status %s", resp.Status)
	}

	localPath := filepath.Join(dir, fileName)
	out, err := os.Create(localPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", err
	}
	return fileName, nil
}
