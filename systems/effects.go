package systems

import (
	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects decrements flash timers and removes expired flashes
func UpdateEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
		if flash.Duration <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.Flash)
	}
}

// TriggerFlash lights an entity for the configured number of frames. A new
// hit restarts the flash.
func TriggerFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		entry.AddComponent(components.Flash)
	}
	components.Flash.Get(entry).Duration = cfg.Effects.FlashFrames
}

// Flashing reports whether an entity is lit by a recent hit.
func Flashing(entry *donburi.Entry) bool {
	return entry.HasComponent(components.Flash) && components.Flash.Get(entry).Duration > 0
}
