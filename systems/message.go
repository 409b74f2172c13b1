package systems

import (
	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMessage counts down the active notice and clears it when it expires.
func UpdateMessage(ecs *ecs.ECS) {
	state := getMessageState(ecs.World)
	if state == nil || state.DisplayTimer <= 0 {
		return
	}
	state.DisplayTimer--
	if state.DisplayTimer == 0 {
		state.Text = ""
	}
}

// ShowMessage replaces the active notice.
func ShowMessage(w donburi.World, text string) {
	state := getMessageState(w)
	if state == nil {
		return
	}
	state.Text = text
	state.DisplayTimer = cfg.Message.DisplayFrames
}

// SubscribeMessages shows notices for game events.
func SubscribeMessages(w donburi.World) {
	events.Teleported.Subscribe(w, func(w donburi.World, _ events.TeleportedEvent) {
		ShowMessage(w, cfg.Message.Returned)
	})
}

// ResetMessageState clears the active notice
func ResetMessageState(w donburi.World) {
	if state := getMessageState(w); state != nil {
		*state = components.MessageStateData{}
	}
}

func getMessageState(w donburi.World) *components.MessageStateData {
	entry, ok := components.MessageState.First(w)
	if !ok {
		return nil
	}
	return components.MessageState.Get(entry)
}
