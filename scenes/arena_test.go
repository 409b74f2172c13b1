package scenes

import (
	"testing"
	"time"

	"github.com/automoto/hillshot/assets"
	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/shared/arenadata"
	"github.com/automoto/hillshot/shared/gamemath"
	"github.com/automoto/hillshot/systems"
	"github.com/automoto/hillshot/systems/factory"
	"github.com/automoto/hillshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func loadDefaultArena(t *testing.T) *arenadata.Arena {
	t.Helper()
	a, err := assets.LoadArena(cfg.Arena.MapPath)
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	return a
}

func obstacleBoxes(e *ecs.ECS) map[string][]gamemath.Box {
	boxes := map[string][]gamemath.Box{}
	components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		o := components.Obstacle.Get(entry)
		boxes[o.Kind] = append(boxes[o.Kind], o.Box)
	})
	return boxes
}

func TestArenaWorldLayout(t *testing.T) {
	e := NewArenaWorld(loadDefaultArena(t), 7, false)
	boxes := obstacleBoxes(e)

	if n := len(boxes[factory.KindHill]); n != cfg.Arena.HillCount {
		t.Errorf("hills = %d, want %d", n, cfg.Arena.HillCount)
	}
	half := cfg.Arena.HillSpread / 2
	for _, b := range boxes[factory.KindHill] {
		c, s := b.Center(), b.Size()
		if c[0] < -half || c[0] >= half || c[2] < -half || c[2] >= half {
			t.Errorf("hill at %v outside the spread", c)
		}
		if b.Min[1] != 0 || s[1] != cfg.Arena.HillHeight {
			t.Errorf("hill %v does not rest on the ground", b)
		}
	}

	targets := boxes[factory.KindTarget]
	if len(targets) != 1 {
		t.Fatalf("targets = %d, want 1", len(targets))
	}
	if c := targets[0].Center(); c[0] != 0 || c[1] != 10 || c[2] != -100 {
		t.Errorf("target at %v, want (0, 10, -100)", c)
	}

	player, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatalf("no player")
	}
	if pos := components.Body.Get(player).Position; pos[1] != cfg.Player.GroundHeight {
		t.Errorf("player spawned at %v", pos)
	}
}

func TestArenaWorldIsDeterministicPerSeed(t *testing.T) {
	arena := loadDefaultArena(t)
	a := obstacleBoxes(NewArenaWorld(arena, 99, false))[factory.KindHill]
	b := obstacleBoxes(NewArenaWorld(arena, 99, false))[factory.KindHill]
	c := obstacleBoxes(NewArenaWorld(arena, 100, false))[factory.KindHill]

	if len(a) != len(b) {
		t.Fatalf("hill counts differ: %d vs %d", len(a), len(b))
	}
	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("hill %d differs with the same seed: %v vs %v", i, a[i], b[i])
		}
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Errorf("different seeds produced the same hills")
	}
}

func TestIdleFramesKeepState(t *testing.T) {
	e := NewArenaWorld(loadDefaultArena(t), 1, false)
	for i := 0; i < 120; i++ {
		systems.SetFrameStep(e, time.Second/60)
		e.Update()
	}

	player, _ := tags.Player.First(e.World)
	body := components.Body.Get(player)
	if body.Position[1] != cfg.Player.GroundHeight || !body.Grounded {
		t.Errorf("idle player drifted: %+v", body.Body)
	}

	hudEntry, _ := components.HUD.First(e.World)
	hud := components.HUD.Get(hudEntry)
	if hud.Health != systems.HealthText(cfg.Player.Health) || hud.Countdown != "" || hud.Depleted {
		t.Errorf("HUD = %+v", hud)
	}
	if systems.Now(e) != 120*(time.Second/60) {
		t.Errorf("clock = %v after 120 frames", systems.Now(e))
	}
	if camera, ok := components.Camera.First(e.World); !ok || camera.HasComponent(components.ScreenShake) {
		t.Errorf("idle world is shaking")
	}
}
