package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plus3/powertris/config"
	"github.com/plus3/powertris/frame"
	"github.com/plus3/powertris/tetris"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log.Logger = cfg.NewLogger(zerolog.ConsoleWriter{Out: os.Stderr})

	duration := flag.Duration("duration", 10*time.Second, "The total wall-clock duration the test should run for.")
	seed := flag.Uint64("seed", 1, "Seed for the first game; each restart uses the next seed.")
	step := flag.Duration("step", 16*time.Millisecond, "Simulated time per frame.")
	think := flag.Duration("think", 100*time.Millisecond, "Simulated time between bot moves.")
	engineLogs := flag.Bool("engine-logs", false, "Emit session and engine log events.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Info().Msg("Starting soak test...")

	clock := tetris.NewManualClock(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	start := clock.Now()

	sessionLogger := zerolog.Nop()
	if *engineLogs {
		sessionLogger = log.Logger
	}

	nextSeed := *seed
	session := frame.NewSession(func(logger zerolog.Logger) *tetris.Engine {
		rng := tetris.NewRandom(nextSeed)
		nextSeed++
		return tetris.NewEngine(cfg.Game,
			tetris.WithRandomizer(rng),
			tetris.WithClock(clock),
			tetris.WithLogger(logger),
		)
	}, sessionLogger)

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		Step:           *step,
		Think:          *think,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	scheduler := frame.NewScheduler(session)
	scheduler.Register(&BotSystem{Think: *think})
	scheduler.Register(&frame.GravitySystem{})
	scheduler.Register(&RecorderSystem{Report: report})

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info().Dur("duration", *duration).Msg("Running simulation")
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			now := clock.Advance(*step)

			updateStart := time.Now()
			scheduler.Once(now)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.SimulatedTime = clock.Now().Sub(start)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info().Int("games", len(report.Games)).Msg("Simulation finished")

	fmt.Println("\n\n--- Soak Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}
