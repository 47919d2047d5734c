package main

import (
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plus3/powertris/config"
	"github.com/plus3/powertris/frame"
	"github.com/plus3/powertris/input"
	"github.com/plus3/powertris/tetris"
)

const defaultLogFile = "powertris-term.log"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// The terminal is the screen, so logs go to a file.
	logPath := cfg.LogFile
	if logPath == "" {
		logPath = defaultLogFile
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal().Err(err).Str("path", logPath).Msg("failed to open log file")
	}
	defer logFile.Close()
	log.Logger = cfg.NewLogger(logFile)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create screen")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize screen")
	}
	defer screen.Fini()

	seed := cfg.SeedOrNow()
	log.Info().Uint64("seed", seed).Msg("starting terminal session")

	games := uint64(0)
	session := frame.NewSession(func(logger zerolog.Logger) *tetris.Engine {
		rng := tetris.NewRandom(seed + games)
		games++
		return tetris.NewEngine(cfg.Game,
			tetris.WithRandomizer(rng),
			tetris.WithLogger(logger),
		)
	}, log.Logger)

	queue := &input.Queue{}
	scheduler := frame.NewScheduler(session)
	scheduler.Register(queue)
	scheduler.Register(&frame.GravitySystem{})

	run(screen, scheduler, queue, cfg.FrameInterval())
	log.Info().Int("restarts", session.Restarts()).Msg("terminal session ended")
}

func run(screen tcell.Screen, scheduler *frame.Scheduler, queue *input.Queue, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return
				}
				if a, ok := actionForKey(ev); ok {
					queue.Push(a)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			scheduler.Once(now)
			draw(screen, scheduler.Session().Engine().Snapshot(), now)
		}
	}
}
