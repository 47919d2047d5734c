package main

import (
	"errors"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plus3/powertris/config"
	"github.com/plus3/powertris/debugui"
	debugui_ebiten "github.com/plus3/powertris/debugui/ebiten"
	"github.com/plus3/powertris/frame"
	"github.com/plus3/powertris/input"
	"github.com/plus3/powertris/render"
	render_ebiten "github.com/plus3/powertris/render/ebiten"
	"github.com/plus3/powertris/tetris"
)

const (
	windowTitle = "Powertris"
	debugWidth  = 380
)

type Game struct {
	scheduler *frame.Scheduler
	renderer  *render_ebiten.Renderer
	imgui     *debugui_ebiten.ImguiBackend
	width     int
	height    int
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.imgui != nil {
		g.imgui.BeginFrame()
	}
	g.scheduler.Once(time.Now())
	if g.imgui != nil {
		g.imgui.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.scheduler.Session().Engine().Snapshot(), time.Now())

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(g.width, g.height)
	}
	return g.width, g.height
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log.Logger = cfg.NewLogger(zerolog.ConsoleWriter{Out: os.Stderr})

	seed := cfg.SeedOrNow()
	games := uint64(0)
	session := frame.NewSession(func(logger zerolog.Logger) *tetris.Engine {
		rng := tetris.NewRandom(seed + games)
		games++
		return tetris.NewEngine(cfg.Game,
			tetris.WithRandomizer(rng),
			tetris.WithLogger(logger),
		)
	}, log.Logger)

	layout := render.NewLayout(cfg.CellSize, cfg.Game.Width, cfg.Game.Height)
	width, height := layout.ScreenSize()

	game := &Game{
		scheduler: frame.NewScheduler(session),
		renderer:  render_ebiten.NewRenderer(layout),
		width:     width,
		height:    height,
	}

	keys := &keyboard{}
	game.scheduler.Register(&input.System{
		Source:   keys,
		Repeater: input.NewRepeater(cfg.RepeatDelay, cfg.RepeatInterval),
	})
	game.scheduler.Register(&frame.GravitySystem{})

	if cfg.DebugUI {
		game.width += debugWidth
		game.imgui = debugui_ebiten.NewImguiBackend(windowTitle, game.width, game.height)
		debug := debugui.Install(game.scheduler, float32(width+10))
		keys.captured = func() bool { return debug.InputState.WantCaptureKeyboard }
	} else {
		ebiten.SetWindowSize(game.width, game.height)
		ebiten.SetWindowTitle(windowTitle)
	}
	ebiten.SetTPS(cfg.TargetFPS)

	log.Info().Uint64("seed", seed).Bool("debug_ui", cfg.DebugUI).Msg("starting")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game exited")
	}
	log.Info().Int("restarts", session.Restarts()).Msg("stopped")
}
