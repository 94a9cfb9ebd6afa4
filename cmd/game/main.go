// cmd/game/main.go
package main

import (
	"flag"
	"go-robotron/internal/app"
	"go-robotron/internal/config"
	"go-robotron/internal/ledger"
	"go-robotron/internal/sound"
	"go-robotron/internal/speaker"
	"go-robotron/internal/state"
	"go-robotron/internal/utils"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func parseFlags() config.Options {
	var opts config.Options
	flag.Int64Var(&opts.Seed, "seed", 0, "random seed, 0 uses the current time")
	flag.StringVar(&opts.ScoresDir, "scores-dir", "", "directory for the high score file, \":memory:\" keeps scores in memory")
	flag.BoolVar(&opts.Mute, "mute", false, "start with sound off")
	flag.Float64Var(&opts.Volume, "volume", 1.0, "master volume from 0 to 1")
	flag.StringVar(&opts.PprofAddr, "pprof", "", "address for the pprof HTTP endpoint, e.g. localhost:6060")
	flag.Parse()
	return opts
}

func openScoreStore(dir string) ledger.Store {
	if dir == ":memory:" {
		return ledger.NewMemoryStore()
	}
	if dir == "" {
		var err error
		dir, err = ledger.DefaultDir()
		if err != nil {
			log.Printf("High scores kept in memory: %v", err)
			return ledger.NewMemoryStore()
		}
	}
	return ledger.NewFileStore(dir)
}

func newSoundManager(mute bool, volume float64) *sound.Manager {
	var sink sound.Sink
	spk, err := speaker.New(config.SoundSampleRate)
	if err != nil {
		log.Printf("Error: %v", err)
	} else {
		sink = spk
	}
	m := sound.NewManager(sink, beep.SampleRate(config.SoundSampleRate))
	m.SetVolume(volume)
	if mute {
		m.SetEnabled(false)
	}
	return m
}

func main() {
	opts := parseFlags()

	if opts.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(opts.PprofAddr, nil))
		}()
	}

	scores := ledger.New(openScoreStore(opts.ScoresDir))
	game := app.NewGame(utils.NewPRNGService(opts.Seed), scores)
	ctx := state.NewContext(game, newSoundManager(opts.Mute, opts.Volume), scores)

	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, ctx))

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Robotron 2084")
	ebiten.SetTPS(config.TickRate)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
