package systems

import (
	"testing"
	"time"

	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frame = time.Second / 60

// newTestWorld builds a world with the frame systems and no host input or
// audio output. The player stands at the origin.
func newTestWorld(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(UpdatePause)
	e.AddSystem(WithPauseCheck(UpdateClock))
	e.AddSystem(WithPauseCheck(UpdateScheduler))
	e.AddSystem(WithPauseCheck(UpdateControls))
	e.AddSystem(WithPauseCheck(UpdateCombat))
	e.AddSystem(WithPauseCheck(UpdatePlayer))
	e.AddSystem(WithPauseCheck(UpdateProjectiles))
	e.AddSystem(WithPauseCheck(UpdateEffects))
	e.AddSystem(WithPauseCheck(UpdateBounds))
	e.AddSystem(WithPauseCheck(UpdateCamera))
	e.AddSystem(WithPauseCheck(UpdateMessage))
	e.AddSystem(UpdateHUD)
	e.AddSystem(DispatchEvents)

	factory.CreateSession(e, 42)
	factory.CreateSpace(e, cfg.Arena.Size, cfg.Arena.CellSize)
	factory.CreateCamera(e)
	player := factory.CreatePlayer(e, 0, 0)
	return e, player
}

// step runs one frame of d, with held as the only pressed actions.
func step(e *ecs.ECS, d time.Duration, held ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range held {
		input.Current[a] = true
	}
	SetFrameStep(e, d)
	e.Update()
}

// run steps n frames of d with the same held actions.
func run(e *ecs.ECS, n int, d time.Duration, held ...cfg.ActionID) {
	for i := 0; i < n; i++ {
		step(e, d, held...)
	}
}

func hud(e *ecs.ECS) *components.HUDData {
	entry, _ := components.HUD.First(e.World)
	return components.HUD.Get(entry)
}

func bounds(e *ecs.ECS) *components.BoundsData {
	entry, _ := components.Bounds.First(e.World)
	return components.Bounds.Get(entry)
}

// override sets *p to v for the duration of the test.
func override[T any](t *testing.T, p *T, v T) {
	t.Helper()
	old := *p
	*p = v
	t.Cleanup(func() { *p = old })
}

func pendingSounds(e *ecs.ECS) []cfg.SoundID {
	entry, _ := components.Audio.First(e.World)
	return components.Audio.Get(entry).PendingSFX
}

func hasSound(sounds []cfg.SoundID, id cfg.SoundID) bool {
	for _, s := range sounds {
		if s == id {
			return true
		}
	}
	return false
}

// nearVec compares with an absolute tolerance; mgl64's relative comparison
// rejects tiny residues against exact zeros.
func nearVec(got, want mgl64.Vec3) bool {
	return got.Sub(want).Len() < 1e-9
}
