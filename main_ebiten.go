//go:build ebiten

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ushitora-anqou/aqpaint/painter"
	"github.com/ushitora-anqou/aqpaint/window/ebitenwindow"
)

func run() error {
	if err := ebitenwindow.EbitenInitialize(); err != nil {
		return &painter.InitError{Platform: "ebiten", Err: err}
	}

	wind, err := ebitenwindow.NewEbitenWindow()
	if err != nil {
		return &painter.VideoModeError{Op: "set", Err: err}
	}

	// ebiten owns the main thread, so the painter waits for events in its
	// own goroutine.
	p := painter.NewPainter(wind, newRand())
	errc := make(chan error, 1)
	go func() {
		errc <- p.Run()
		wind.Done()
	}()

	if err := ebiten.RunGame(wind); err != nil {
		return &painter.InitError{Platform: "ebiten", Err: err}
	}
	return <-errc
}
