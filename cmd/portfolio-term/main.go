package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/portfolio-term/audio"
	"github.com/lixenwraith/portfolio-term/command"
	"github.com/lixenwraith/portfolio-term/config"
	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/timer"
	"github.com/lixenwraith/portfolio-term/ui"
)

var (
	muteFlag  = flag.Bool("mute", false, "Disable audio cues")
	debugFlag = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	openFlag  = flag.Bool("open", false, "Open the terminal on start")
	envFlag   = flag.String("env", ".env", "Optional env file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(*debugFlag || cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	logger := slog.Default()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPORTFOLIO-TERM CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	cues := newCuePlayer(cfg, *muteFlag, logger)
	if p, ok := cues.(*audio.Player); ok {
		defer p.Close()
	}

	queue := timer.NewQueue(timer.SystemClock{})
	app := ui.NewApp(screen, ui.Options{
		Queue:    queue,
		Registry: command.NewRegistry(time.Now()),
		Cues:     cues,
		Session:  cfg.SessionSettings(),
		Logger:   logger,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	defer app.Shutdown()

	app.Start()
	if *openFlag {
		app.Session().Open()
	}

	run(screen, app)
}

// newCuePlayer initializes the speaker, falling back to silence when audio is unavailable
// Muted or disabled audio still opens the device so the mute toggle can restore it
func newCuePlayer(cfg *config.Config, mute bool, logger *slog.Logger) audio.CuePlayer {
	ac := cfg.AudioSettings()
	if mute {
		ac.Enabled = false
	}

	player := audio.NewPlayer(ac)
	if err := player.Init(); err != nil {
		if errors.Is(err, audio.ErrAudioUnavailable) {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		} else {
			logger.Error("audio init failed", "error", err)
		}
		return audio.Silent{}
	}
	if player.Muted() {
		logger.Info("audio starts muted")
	}
	return player
}

// run drives events and frames from one goroutine until the user quits
func run(screen tcell.Screen, app *ui.App) {
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	app.Draw()
	for {
		select {
		case ev := <-eventChan:
			if !app.HandleEvent(ev) {
				return
			}
		case <-frameTicker.C:
			app.Tick()
		}
	}
}
