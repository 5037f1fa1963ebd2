package usecase

import "time"

const DefaultGroupWindow = 60 * time.Second

type Usecase struct {
	store     SessionStore
	dirs      DirMaker
	outputDir string
	window    time.Duration
}

func New(store SessionStore, dirs DirMaker, outputDir string, window time.Duration) *Usecase {
	if window <= 0 {
		window = DefaultGroupWindow
	}

	return &Usecase{
		store:     store,
		dirs:      dirs,
		outputDir: outputDir,
		window:    window,
	}
}
