package systems

import (
	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/shared/controls"
	"github.com/automoto/hillshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var moveActions = [...]struct {
	action cfg.ActionID
	dir    controls.Direction
}{
	{cfg.ActionMoveForward, controls.Forward},
	{cfg.ActionMoveBack, controls.Back},
	{cfg.ActionMoveLeft, controls.Left},
	{cfg.ActionMoveRight, controls.Right},
}

// UpdateControls turns this frame's input edges into player control state:
// movement flags, double-tap boosts, jumps and fire requests.
// Must run AFTER UpdateInput and BEFORE UpdateCombat.
func UpdateControls(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	// Collect first: RequestFire changes the player's archetype, and a query
	// still iterating would visit the player again.
	var players []*donburi.Entry
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		players = append(players, playerEntry)
	})

	for _, playerEntry := range players {
		handleMoveInput(ecs, input, playerEntry)
		handleJumpInput(ecs, input, playerEntry)
		if GetAction(input, cfg.ActionFire).JustPressed {
			RequestFire(playerEntry)
		}
	}
}

func handleMoveInput(ecs *ecs.ECS, input *components.InputData, playerEntry *donburi.Entry) {
	state := &components.Controls.Get(playerEntry).State

	for _, m := range moveActions {
		action := GetAction(input, m.action)
		switch {
		case action.JustPressed:
			state.SetMoveFlag(m.dir, true)
			if m.dir == controls.Forward &&
				state.TryDoubleTap(controls.ControlForward, Now(ecs), cfg.InputTiming.DoubleTapWindow) {
				state.SpeedBoost = true
				ShowMessage(ecs.World, cfg.Message.SpeedBoost)
			}
		case action.JustReleased:
			state.SetMoveFlag(m.dir, false)
		}
	}
}

func handleJumpInput(ecs *ecs.ECS, input *components.InputData, playerEntry *donburi.Entry) {
	state := &components.Controls.Get(playerEntry).State
	jump := GetAction(input, cfg.ActionJump)

	if jump.JustPressed {
		if state.Jump() {
			body := components.Body.Get(playerEntry)
			body.Velocity[1] += cfg.Player.JumpSpeed
		}
		if state.TryDoubleTap(controls.ControlJump, Now(ecs), cfg.InputTiming.DoubleTapWindow) {
			StartFlight(ecs, playerEntry)
		}
	}
	if jump.JustReleased {
		EndFlight(ecs, playerEntry)
	}
}

// StartFlight turns on the flight boost and (re)schedules its end. The last
// activation wins.
func StartFlight(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	state := &components.Controls.Get(playerEntry).State
	player := components.Player.Get(playerEntry)
	q := getScheduler(ecs)

	state.Flying = true
	ShowMessage(ecs.World, cfg.Message.FlightBoost)
	if q == nil {
		return
	}
	q.Cancel(player.FlightTask)
	player.FlightTask = q.After(cfg.InputTiming.FlightDuration, func() {
		if !playerEntry.Valid() {
			return
		}
		components.Controls.Get(playerEntry).Flying = false
		components.Player.Get(playerEntry).FlightTask = 0
	})
}

// EndFlight turns off the flight boost and drops its pending timeout.
func EndFlight(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	components.Controls.Get(playerEntry).Flying = false
	player := components.Player.Get(playerEntry)
	if q := getScheduler(ecs); q != nil && player.FlightTask != 0 {
		q.Cancel(player.FlightTask)
	}
	player.FlightTask = 0
}

// RequestFire queues a shot for the combat system.
func RequestFire(playerEntry *donburi.Entry) {
	if playerEntry.HasComponent(components.FireRequest) {
		components.FireRequest.Get(playerEntry).Count++
		return
	}
	donburi.Add(playerEntry, components.FireRequest, &components.FireRequestData{Count: 1})
}
