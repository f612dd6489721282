//go:build !ebiten

package main

import (
	"runtime"

	"github.com/ushitora-anqou/aqpaint/painter"
	"github.com/ushitora-anqou/aqpaint/window/sdlwindow"
)

func init() {
	// SDL expects its events to be handled on the main thread.
	runtime.LockOSThread()
}

func run() error {
	// Initialize SDL
	if err := sdlwindow.SDLInitialize(); err != nil {
		return &painter.InitError{Platform: "SDL", Err: err}
	}
	defer sdlwindow.SDLQuit()

	// Create a window
	wind, err := sdlwindow.NewSDLWindow()
	if err != nil {
		return &painter.VideoModeError{Op: "set", Err: err}
	}
	defer wind.Close()

	return painter.NewPainter(wind, newRand()).Run()
}
