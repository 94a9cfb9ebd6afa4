package system

import (
	"go-robotron/internal/component"
	"go-robotron/internal/config"
	"go-robotron/internal/entity"
	"go-robotron/internal/event"
	"go-robotron/internal/utils"
	"testing"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fixture struct {
	store      *entity.Store
	session    *component.Session
	dispatcher *event.Dispatcher
	rec        *recorder
	particles  *ParticleSystem
	state      *StateSystem
	collision  *CollisionSystem
	waves      *WaveSystem
}

func newFixture() *fixture {
	f := &fixture{
		store:      entity.NewStore(),
		session:    component.NewSession(config.StartLives),
		dispatcher: event.NewDispatcher(),
		rec:        &recorder{},
	}
	rng := utils.NewPRNGService(7)
	for _, t := range []event.EventType{
		event.ShotFired, event.RobotDestroyed, event.HumanCaptured, event.HumanRescued,
		event.PlayerHit, event.WaveCompleted, event.GameOver,
	} {
		f.dispatcher.Subscribe(t, f.rec)
	}
	f.particles = NewParticleSystem(f.store, rng)
	f.state = NewStateSystem(f.store, f.session, f.particles, f.dispatcher)
	f.collision = NewCollisionSystem(f.store, f.session, f.particles, f.state, f.dispatcher)
	f.waves = NewWaveSystem(f.store, f.session, rng, f.dispatcher)
	return f
}

func robotAt(x, y float64, variant component.RobotVariant) *component.Robot {
	return &component.Robot{
		Position: component.Position{X: x, Y: y},
		Size:     config.RobotSize,
		Speed:    1.2,
		Health:   1,
		Variant:  variant,
	}
}

func humanAt(x, y float64) *component.Human {
	return &component.Human{
		Position: component.Position{X: x, Y: y},
		Velocity: component.Velocity{Speed: config.HumanSpeed},
		Size:     config.HumanSize,
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	f := newFixture()
	ps := NewPlayerSystem(f.store, f.dispatcher)
	for i := 0; i < 500; i++ {
		ps.Update(component.Input{Up: true, Left: true})
	}
	if f.store.Player.X != 4 || f.store.Player.Y != 4 {
		t.Errorf("Expected player clamped at (4,4), got (%f,%f)", f.store.Player.X, f.store.Player.Y)
	}
	for i := 0; i < 500; i++ {
		ps.Update(component.Input{Down: true, Right: true})
	}
	if f.store.Player.X != 796 || f.store.Player.Y != 596 {
		t.Errorf("Expected player clamped at (796,596), got (%f,%f)", f.store.Player.X, f.store.Player.Y)
	}
}

func TestDiagonalMovementCombines(t *testing.T) {
	f := newFixture()
	ps := NewPlayerSystem(f.store, f.dispatcher)
	ps.Update(component.Input{Down: true, Right: true})
	if f.store.Player.X != 403 || f.store.Player.Y != 303 {
		t.Errorf("Expected (403,303), got (%f,%f)", f.store.Player.X, f.store.Player.Y)
	}
	ps.Update(component.Input{Up: true, Down: true})
	if f.store.Player.Y != 303 {
		t.Errorf("Expected opposite flags to cancel, got y=%f", f.store.Player.Y)
	}
}

func TestBulletCap(t *testing.T) {
	f := newFixture()
	ps := NewPlayerSystem(f.store, f.dispatcher)
	all := component.Input{FireUp: true, FireDown: true, FireLeft: true, FireRight: true}
	for i := 0; i < 10; i++ {
		ps.Update(all)
		if n := len(f.store.Bullets); n > config.MaxBullets {
			t.Fatalf("Expected at most %d bullets, got %d", config.MaxBullets, n)
		}
	}
	if n := len(f.store.Bullets); n != config.MaxBullets {
		t.Errorf("Expected %d bullets, got %d", config.MaxBullets, n)
	}
	if n := f.rec.count(event.ShotFired); n != config.MaxBullets {
		t.Errorf("Expected %d ShotFired events, got %d", config.MaxBullets, n)
	}
}

func TestBulletLeavesArena(t *testing.T) {
	f := newFixture()
	f.store.AddBullet(&component.Bullet{Position: component.Position{X: 5, Y: 300}, DX: -8, Size: 3})
	f.store.AddBullet(&component.Bullet{Position: component.Position{X: 400, Y: 300}, DY: 8, Size: 3})
	NewProjectileSystem(f.store).Update()
	if n := len(f.store.Bullets); n != 1 {
		t.Fatalf("Expected 1 bullet left, got %d", n)
	}
	if f.store.Bullets[0].Y != 308 {
		t.Errorf("Expected bullet at y=308, got %f", f.store.Bullets[0].Y)
	}
}

func TestRobotMovesTowardPlayer(t *testing.T) {
	f := newFixture()
	r := robotAt(100, 300, component.Grunt)
	f.store.AddRobot(r)
	NewRobotSystem(f.store, utils.NewPRNGService(1)).Update()
	if diff := r.X - 101.2; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected robot at x=101.2, got %f", r.X)
	}
	if r.Y != 300 {
		t.Errorf("Expected robot y unchanged, got %f", r.Y)
	}
}

func TestRobotAtTargetDoesNotMove(t *testing.T) {
	f := newFixture()
	r := robotAt(400, 300, component.Grunt)
	f.store.AddRobot(r)
	NewRobotSystem(f.store, utils.NewPRNGService(1)).Update()
	if r.X != 400 || r.Y != 300 {
		t.Errorf("Expected robot to stay at (400,300), got (%f,%f)", r.X, r.Y)
	}
}

func TestFastRobotStopsAtTarget(t *testing.T) {
	f := newFixture()
	f.store.Player.X, f.store.Player.Y = 4, 300
	r := robotAt(4.5, 300, component.Grunt)
	r.Speed = 5
	f.store.AddRobot(r)
	NewRobotSystem(f.store, utils.NewPRNGService(1)).Update()
	if r.X != 4 || r.Y != 300 {
		t.Errorf("Expected robot to stop on the player at (4,300), got (%f,%f)", r.X, r.Y)
	}
}

func TestRobotsStayInBounds(t *testing.T) {
	f := newFixture()
	f.waves.StartWave(20)
	rs := NewRobotSystem(f.store, utils.NewPRNGService(3))
	hs := NewHumanSystem(f.store)
	ps := NewPlayerSystem(f.store, f.dispatcher)
	for i := 0; i < 600; i++ {
		// Игрок уходит в угол, чтобы роботы прижимались к краю.
		ps.Update(component.Input{Up: true, Left: true})
		hs.Update()
		rs.Update()
		for _, r := range f.store.Robots {
			half := r.Size / 2
			if r.X < half || r.X > config.ScreenWidth-half || r.Y < half || r.Y > config.ScreenHeight-half {
				t.Fatalf("Tick %d: robot out of bounds at (%f,%f)", i, r.X, r.Y)
			}
		}
	}
}

func TestHumanBouncesOffEdge(t *testing.T) {
	f := newFixture()
	h := humanAt(3.2, 100)
	h.DX = -1
	f.store.AddHuman(h)
	NewHumanSystem(f.store).Update()
	if h.DX != 1 {
		t.Errorf("Expected DX to flip to 1, got %f", h.DX)
	}
	if h.X != 3 {
		t.Errorf("Expected human clamped at x=3, got %f", h.X)
	}
}

func TestParticlesExpire(t *testing.T) {
	f := newFixture()
	f.particles.Explode(400, 300)
	if n := len(f.store.Particles); n != config.ExplosionParticles {
		t.Fatalf("Expected %d particles, got %d", config.ExplosionParticles, n)
	}
	for i := 0; i < config.ParticleLife-1; i++ {
		f.particles.Update()
	}
	if n := len(f.store.Particles); n != config.ExplosionParticles {
		t.Errorf("Expected particles alive before life runs out, got %d", n)
	}
	f.particles.Update()
	if n := len(f.store.Particles); n != 0 {
		t.Errorf("Expected all particles gone, got %d", n)
	}
}

func TestOneKillPerBullet(t *testing.T) {
	f := newFixture()
	f.store.Player.X, f.store.Player.Y = 700, 500
	f.store.AddRobot(robotAt(100, 100, component.Grunt))
	f.store.AddRobot(robotAt(102, 100, component.Hulk))
	f.store.AddBullet(&component.Bullet{Position: component.Position{X: 101, Y: 100}, Size: 3})

	f.collision.Update()

	if n := len(f.store.Robots); n != 1 {
		t.Fatalf("Expected 1 robot left, got %d", n)
	}
	if f.store.Robots[0].Variant != component.Hulk {
		t.Errorf("Expected the first robot in order to die")
	}
	if len(f.store.Bullets) != 0 {
		t.Errorf("Expected bullet consumed")
	}
	if f.session.Score != 100 {
		t.Errorf("Expected score 100, got %d", f.session.Score)
	}
	if f.session.Achievements.RobotsDestroyed != 1 {
		t.Errorf("Expected 1 robot destroyed, got %d", f.session.Achievements.RobotsDestroyed)
	}
	if n := f.rec.count(event.RobotDestroyed); n != 1 {
		t.Errorf("Expected 1 RobotDestroyed event, got %d", n)
	}
}

func TestRobotDiesOnceForTwoBullets(t *testing.T) {
	f := newFixture()
	f.store.Player.X, f.store.Player.Y = 700, 500
	f.store.AddRobot(robotAt(100, 100, component.Hulk))
	f.store.AddBullet(&component.Bullet{Position: component.Position{X: 100, Y: 100}, Size: 3})
	f.store.AddBullet(&component.Bullet{Position: component.Position{X: 101, Y: 100}, Size: 3})

	f.collision.Update()

	if f.session.Score != 150 {
		t.Errorf("Expected score 150, got %d", f.session.Score)
	}
	if n := len(f.store.Bullets); n != 1 {
		t.Errorf("Expected the second bullet to survive, got %d bullets", n)
	}
}

func TestCaptureBreaksStreak(t *testing.T) {
	f := newFixture()
	f.store.Player.X, f.store.Player.Y = 700, 500
	f.session.Achievements.ConsecutiveRescues = 3
	f.store.AddRobot(robotAt(100, 100, component.Grunt))
	f.store.AddHuman(humanAt(105, 100))

	f.collision.Update()

	if len(f.store.Humans) != 0 {
		t.Errorf("Expected human captured")
	}
	if f.session.Achievements.ConsecutiveRescues != 0 {
		t.Errorf("Expected streak reset, got %d", f.session.Achievements.ConsecutiveRescues)
	}
	if f.session.Score != 0 {
		t.Errorf("Expected no points for capture, got %d", f.session.Score)
	}
	if n := f.rec.count(event.HumanCaptured); n != 1 {
		t.Errorf("Expected 1 HumanCaptured event, got %d", n)
	}
}

func TestRescue(t *testing.T) {
	f := newFixture()
	f.store.AddHuman(humanAt(411, 300))
	f.store.AddHuman(humanAt(413, 300))

	f.collision.Update()

	if n := len(f.store.Humans); n != 1 {
		t.Fatalf("Expected one human out of reach, got %d left", n)
	}
	if f.session.Score != config.RescuePoints {
		t.Errorf("Expected score %d, got %d", config.RescuePoints, f.session.Score)
	}
	a := f.session.Achievements
	if a.HumansRescued != 1 || a.ConsecutiveRescues != 1 || a.MaxConsecutiveRescues != 1 {
		t.Errorf("Expected rescue counters at 1, got %+v", a)
	}
}

func TestThreeHitsEndGame(t *testing.T) {
	f := newFixture()
	for hit := 1; hit <= 3; hit++ {
		f.store.Robots = nil
		f.store.AddRobot(robotAt(f.store.Player.X+2, f.store.Player.Y, component.Grunt))
		running := f.collision.Update()
		if hit < 3 {
			if !running || f.session.Phase != component.Playing {
				t.Fatalf("Expected game to continue after hit %d", hit)
			}
			if f.session.Lives != 3-hit {
				t.Errorf("Expected %d lives, got %d", 3-hit, f.session.Lives)
			}
		} else if running {
			t.Errorf("Expected collision pass to stop on the final hit")
		}
	}
	if f.session.Phase != component.GameOver {
		t.Errorf("Expected GameOver, got %s", f.session.Phase)
	}
	if f.session.Lives != 0 {
		t.Errorf("Expected 0 lives, got %d", f.session.Lives)
	}
	if n := f.rec.count(event.PlayerHit); n != 3 {
		t.Errorf("Expected 3 PlayerHit events, got %d", n)
	}
	if n := f.rec.count(event.GameOver); n != 1 {
		t.Errorf("Expected 1 GameOver event, got %d", n)
	}
}

func TestPlayerHitRecentersAndBreaksStreak(t *testing.T) {
	f := newFixture()
	f.store.Player.X, f.store.Player.Y = 100, 100
	f.session.Achievements.ConsecutiveRescues = 4
	f.store.AddRobot(robotAt(101, 100, component.Grunt))
	f.store.AddRobot(robotAt(99, 100, component.Grunt))

	f.collision.Update()

	if f.session.Lives != 2 {
		t.Errorf("Expected one hit per tick, got %d lives", f.session.Lives)
	}
	if f.store.Player.X != 400 || f.store.Player.Y != 300 {
		t.Errorf("Expected player recentered, got (%f,%f)", f.store.Player.X, f.store.Player.Y)
	}
	if f.session.Achievements.ConsecutiveRescues != 0 {
		t.Errorf("Expected streak reset on hit")
	}
	if n := len(f.store.Particles); n != config.ExplosionParticles {
		t.Errorf("Expected explosion at player, got %d particles", n)
	}
}

func TestStartWaveCounts(t *testing.T) {
	f := newFixture()
	for _, wave := range []int{1, 2, 7} {
		f.waves.StartWave(wave)
		if n := len(f.store.Humans); n != 8 {
			t.Errorf("Wave %d: expected 8 humans, got %d", wave, n)
		}
		if n := len(f.store.Robots); n != 5+2*wave {
			t.Errorf("Wave %d: expected %d robots, got %d", wave, 5+2*wave, n)
		}
		for _, r := range f.store.Robots {
			if r.X < 4 || r.X > 796 || r.Y < 4 || r.Y > 596 {
				t.Errorf("Wave %d: robot spawned out of bounds at (%f,%f)", wave, r.X, r.Y)
			}
		}
	}
}

func TestWaveCompletion(t *testing.T) {
	f := newFixture()
	f.waves.StartWave(1)
	f.store.Robots = nil
	f.store.Humans = f.store.Humans[:5]
	f.session.Score = 700

	f.waves.Update()

	if f.session.Wave != 2 {
		t.Errorf("Expected wave 2, got %d", f.session.Wave)
	}
	if f.session.Score != 700+5*500 {
		t.Errorf("Expected score %d, got %d", 700+5*500, f.session.Score)
	}
	if n := len(f.store.Robots); n != 9 {
		t.Errorf("Expected 9 robots, got %d", n)
	}
	if n := len(f.store.Humans); n != 8 {
		t.Errorf("Expected 8 fresh humans, got %d", n)
	}
	if f.session.Achievements.PerfectWaves != 0 {
		t.Errorf("Expected no perfect wave")
	}
	if len(f.rec.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(f.rec.events))
	}
	data := f.rec.events[0].Data.(event.WaveCompletedData)
	if data.Wave != 1 || data.Survivors != 5 || data.ScoreBefore != 700 || data.Perfect {
		t.Errorf("Unexpected wave data %+v", data)
	}
}

func TestPerfectWave(t *testing.T) {
	f := newFixture()
	f.waves.StartWave(1)
	f.store.Robots = nil

	f.waves.Update()

	if f.session.Score != 4000 {
		t.Errorf("Expected 4000 bonus, got %d", f.session.Score)
	}
	if f.session.Achievements.PerfectWaves != 1 {
		t.Errorf("Expected 1 perfect wave, got %d", f.session.Achievements.PerfectWaves)
	}
}

func TestWaveContinuesWhileRobotsRemain(t *testing.T) {
	f := newFixture()
	f.waves.StartWave(1)
	f.waves.Update()
	if f.session.Wave != 1 {
		t.Errorf("Expected wave to stay at 1, got %d", f.session.Wave)
	}
}
