package domain

import "time"

type MediaKind int

const (
	MediaNone MediaKind = iota
	MediaPhoto
	MediaFile
	MediaOther
)

func (k MediaKind) Tag() string {
	switch k {
	case MediaPhoto:
		return "[Photo]"
	case MediaFile:
		return "[File]"
	case MediaOther:
		return "[Media]"
	default:
		return ""
	}
}

func (k MediaKind) Downloadable() bool {
	return k == MediaPhoto || k == MediaFile
}

type Sender struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

type MessageRecord struct {
	ID     int // позиция в потоке, строго возрастает
	Sender Sender
	Date   time.Time
	Text   string
	Media  MediaKind
}
