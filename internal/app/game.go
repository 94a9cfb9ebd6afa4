// internal/app/game.go
package app

import (
	"fmt"
	"go-robotron/internal/achievement"
	"go-robotron/internal/component"
	"go-robotron/internal/config"
	"go-robotron/internal/entity"
	"go-robotron/internal/event"
	"go-robotron/internal/interfaces"
	"go-robotron/internal/system"
	"go-robotron/internal/utils"
	"log"
)

// GameResult — итог законченной партии для экрана Game Over.
type GameResult struct {
	Score        int
	Wave         int
	Achievements component.Achievements
	NewHighScore bool
	TopTen       bool
	Rank         int // 1..10, 0 если не попал в таблицу
}

// RankingLine — строка о месте в таблице рекордов.
func (r GameResult) RankingLine() string {
	switch {
	case r.NewHighScore:
		return "NEW HIGH SCORE!"
	case r.TopTen && r.Rank > 0:
		return fmt.Sprintf("Rank #%d in Top 10!", r.Rank)
	case r.TopTen:
		return "Made it to Top 10!"
	}
	return "Keep trying for the Top 10!"
}

// Game holds the session, the entity store and the systems that advance them.
type Game struct {
	Session          *component.Session
	Store            *entity.Store
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	PlayerSystem     *system.PlayerSystem
	ProjectileSystem *system.ProjectileSystem
	RobotSystem      *system.RobotSystem
	HumanSystem      *system.HumanSystem
	ParticleSystem   *system.ParticleSystem
	CollisionSystem  *system.CollisionSystem
	StateSystem      *system.StateSystem
	WaveSystem       *system.WaveSystem
	Tracker          *achievement.Tracker

	scores interfaces.ScoreLedger
	result *GameResult
}

// NewGame creates a session at wave 1. scores may be nil.
func NewGame(rng *utils.PRNGService, scores interfaces.ScoreLedger) *Game {
	store := entity.NewStore()
	session := component.NewSession(config.StartLives)
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		Session:         session,
		Store:           store,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		scores:          scores,
	}
	g.PlayerSystem = system.NewPlayerSystem(store, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(store)
	g.RobotSystem = system.NewRobotSystem(store, rng)
	g.HumanSystem = system.NewHumanSystem(store)
	g.ParticleSystem = system.NewParticleSystem(store, rng)
	g.StateSystem = system.NewStateSystem(store, session, g.ParticleSystem, eventDispatcher)
	g.CollisionSystem = system.NewCollisionSystem(store, session, g.ParticleSystem, g.StateSystem, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(store, session, rng, eventDispatcher)
	g.Tracker = achievement.NewTracker(session, eventDispatcher)

	eventDispatcher.Subscribe(event.GameOver, g)

	g.WaveSystem.StartWave(session.Wave)
	log.Printf("New game, seed %d", rng.Seed())
	return g
}

// Tick advances the simulation by one fixed step. No-op after game over.
func (g *Game) Tick(input component.Input) {
	if !g.Session.Running() {
		return
	}
	g.Session.Tick++

	g.PlayerSystem.Update(input)
	g.ProjectileSystem.Update()
	g.RobotSystem.Update()
	g.HumanSystem.Update()
	g.ParticleSystem.Update()

	if !g.CollisionSystem.Update() {
		return
	}
	g.WaveSystem.Update()
}

// Restart resets the session in place, so systems keep their pointers.
func (g *Game) Restart() {
	*g.Session = *component.NewSession(config.StartLives)
	g.Store.ClearAll()
	g.result = nil
	g.WaveSystem.StartWave(g.Session.Wave)
	log.Println("Game restarted")
}

// Result returns the outcome of the finished session.
func (g *Game) Result() (GameResult, bool) {
	if g.result == nil {
		return GameResult{}, false
	}
	return *g.result, true
}

// OnEvent реализует интерфейс event.Listener.
func (g *Game) OnEvent(e event.Event) {
	if e.Type != event.GameOver {
		return
	}
	data, ok := e.Data.(event.GameOverData)
	if !ok {
		return
	}
	g.finish(data)
}

// finish записывает итог в таблицу рекордов. Новый рекорд
// определяется до добавления, иначе он сравнивался бы сам с собой.
func (g *Game) finish(data event.GameOverData) {
	res := GameResult{
		Score:        data.Score,
		Wave:         data.Wave,
		Achievements: data.Achievements,
	}
	if g.scores != nil {
		res.NewHighScore = g.scores.IsNewHighScore(data.Score)
		res.Rank, res.TopTen = g.scores.AddScore(data.Score, data.Wave, data.Achievements)
	}
	g.result = &res
}

// HighScore — лучший из сохранённого рекорда и текущего счёта.
func (g *Game) HighScore() int {
	best := g.Session.Score
	if g.scores != nil {
		best = max(best, g.scores.HighScore())
	}
	return best
}
