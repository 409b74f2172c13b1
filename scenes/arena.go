package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/hillshot/assets"
	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/events"
	"github.com/automoto/hillshot/shared/arenadata"
	"github.com/automoto/hillshot/systems"
	"github.com/automoto/hillshot/systems/factory"
	"github.com/automoto/hillshot/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the playable arena. Its donburi world holds the whole game
// state; every system runs on the host's update goroutine.
type ArenaScene struct {
	ecs  *ecs.ECS
	hud  *ui.HUDUI
	seed uint64
	once sync.Once
}

// NewArenaScene creates the arena scene. A zero seed picks one from the clock.
func NewArenaScene(seed uint64) *ArenaScene {
	return &ArenaScene{seed: seed}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	systems.SetFrameStep(as.ecs, time.Second/time.Duration(ebiten.TPS()))
	as.ecs.Update()

	if hudEntry, ok := components.HUD.First(as.ecs.World); ok {
		as.hud.Sync(components.HUD.Get(hudEntry))
	}
	as.hud.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
	as.hud.Draw(screen)
}

func (as *ArenaScene) configure() {
	seed := as.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	arena := assets.NewArenaLoader(assets.FS()).MustLoadArena(cfg.Arena.MapPath)
	as.ecs = NewArenaWorld(arena, seed, true)

	// Add renderers
	as.ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	as.ecs.AddRenderer(cfg.Default, systems.DrawOverlay)
	as.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	as.ecs.AddRenderer(cfg.Default, systems.DrawRadar)
	as.ecs.AddRenderer(cfg.Default, systems.DrawPause)

	systems.EnableAudio()

	as.hud = ui.NewHUDUI()
	log.Printf("arena %s ready: %d obstacles, seed %d", cfg.Arena.MapPath, len(arena.Obstacles)+cfg.Arena.HillCount, seed)
}

// NewArenaWorld builds the game state for an arena and registers the frame
// systems in order. Without a host, input is not polled from ebiten and the
// caller drives the Input component directly. Gameplay systems stop while
// paused; the clock stops with them.
func NewArenaWorld(arena *arenadata.Arena, seed uint64, host bool) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	if host {
		e.AddSystem(systems.UpdateInput)
	}
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.WithPauseCheck(systems.UpdateClock))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateScheduler))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateControls))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCombat))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateProjectiles))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateBounds))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateMessage))
	e.AddSystem(systems.UpdateHUD)
	e.AddSystem(systems.DispatchEvents)
	e.AddSystem(systems.UpdateAudio)

	session := factory.CreateSession(e, seed)
	factory.CreateSpace(e, cfg.Arena.Size, cfg.Arena.CellSize)
	factory.CreateCamera(e)

	factory.CreateArenaObstacles(e, arena)
	factory.CreateHills(e, components.Random.Get(session).Rand, cfg.Arena.HillCount)

	var spawn arenadata.Spawn
	if len(arena.Spawns) > 0 {
		spawn = arena.Spawns[0]
	} else {
		log.Printf("arena has no player spawn, starting at the origin")
	}
	factory.CreatePlayer(e, spawn.X, spawn.Z)

	systems.SubscribeSounds(e.World)
	systems.SubscribeMessages(e.World)
	subscribeEvents(e.World)
	return e
}

func subscribeEvents(w donburi.World) {
	if !cfg.Debug.LogEvents {
		return
	}
	events.Landed.Subscribe(w, func(w donburi.World, ev events.LandedEvent) {
		if ev.Shake {
			log.Printf("landed at %.1f, %.1f", ev.Position[0], ev.Position[2])
		}
	})
	events.Teleported.Subscribe(w, func(w donburi.World, ev events.TeleportedEvent) {
		log.Printf("returned to arena at %.1f, %.1f after %s", ev.To[0], ev.To[2], ev.At)
	})
	events.PlayerDepleted.Subscribe(w, func(w donburi.World, ev events.PlayerDepletedEvent) {
		log.Printf("player depleted after %d shots at %s", ev.ShotsFired, ev.At)
	})
}
