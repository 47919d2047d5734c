package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/powertris/tetris"
)

type GameResult struct {
	Session string
	Score   int
	Level   int
	Lines   int
	Stats   tetris.Stats
}

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	Step     time.Duration
	Think    time.Duration

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	SimulatedTime  time.Duration
	UpdateTime     Stats
	Games          []GameResult
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Totals aggregates every finished game.
type Totals struct {
	Games     int
	Pieces    int
	Lines     int
	HardDrops int
	Holds     int
	BestScore int
	AvgScore  float64
	Powers    map[string]int
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) AddGame(g GameResult) {
	r.Games = append(r.Games, g)
}

func (r *Report) Totals() Totals {
	t := Totals{
		Games:  len(r.Games),
		Powers: make(map[string]int),
	}

	var scoreSum int
	for _, g := range r.Games {
		t.Pieces += g.Stats.PiecesLocked
		t.Lines += g.Lines
		t.HardDrops += g.Stats.HardDrops
		t.Holds += g.Stats.Holds
		t.BestScore = max(t.BestScore, g.Score)
		scoreSum += g.Score

		for _, p := range []tetris.Power{tetris.PowerBomb, tetris.PowerSlow, tetris.PowerWild} {
			t.Powers[p.String()] += g.Stats.PowerActivations[p]
		}
	}
	if t.Games > 0 {
		t.AvgScore = float64(scoreSum) / float64(t.Games)
	}
	return t
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Powertris Soak Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Frame Step:** {{.Step}}
- **Bot Think Interval:** {{.Think}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Simulated Game Time:** {{.SimulatedTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{with .Totals}}
## Games
- **Finished Games:** {{.Games}}
- **Pieces Locked:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}}
- **Hard Drops:** {{.HardDrops}}
- **Holds:** {{.Holds}}
- **Best Score:** {{.BestScore}}
- **Average Score:** {{printf "%.1f" .AvgScore}}
- **Power Activations:**
{{- range $name, $count := .Powers}}
  - **{{$name}}:** {{$count}}
{{- end}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
