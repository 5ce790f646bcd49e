package demo

import (
	"log"

	"github.com/arborix/dynbvh/vec3"
)

// Layer bits, matching original_source/main.rs's LAYER_* constants.
const (
	LayerNone    uint32 = 0
	LayerStatic  uint32 = 1 << 0
	LayerTrigger uint32 = 1 << 1
	LayerPlayer  uint32 = 1 << 2
)

// TriggerEvent describes a player entering a trigger volume, returned
// by RunTriggerWalkScenario for the caller to act on — scenario
// callback dispatch happens here, after World.Query has already
// returned, never from inside it (spec.md §9).
type TriggerEvent struct {
	PlayerID, TriggerID int32
	X                   float32
}

// RunTriggerWalkScenario replays spec.md §8 scenario 2 / the wall +
// poison-zone + lever + player walk from original_source/main.rs,
// returning every overlap between the player and the poison zone
// observed as the player steps through x ∈ {0, 2, 4, 6}. Overlaps with
// the lever are not reported.
func RunTriggerWalkScenario(w *World) []TriggerEvent {
	w.CreateEntity(vec3.New(10, 0, 0), vec3.New(1, 10, 10), LayerStatic, LayerNone)

	zoneID := w.CreateEntity(vec3.New(5, 0, 0), vec3.New(2, 2, 2), LayerTrigger, LayerNone)
	leverID := w.CreateEntity(vec3.New(8, 0, 2), vec3.New(0.5, 0.5, 0.5), LayerTrigger, LayerNone)
	_ = leverID

	playerID := w.CreateEntity(vec3.New(0, 0, 0), vec3.New(0.6, 1.8, 0.6), LayerPlayer, LayerStatic|LayerTrigger)

	var events []TriggerEvent
	for _, x := range []float32{0, 2, 4, 6} {
		w.UpdatePosition(playerID, vec3.New(x, 0, 0))

		player, ok := w.Entity(playerID)
		if !ok {
			continue
		}
		for _, id := range w.Query(player.AABB()) {
			if id == playerID || id != zoneID {
				continue
			}
			events = append(events, TriggerEvent{PlayerID: playerID, TriggerID: id, X: x})
		}
	}
	return events
}

// RunLogged runs RunTriggerWalkScenario against a fresh world, logging
// each trigger event, in the log-output style of bart/cmd/main.go
// (plain log.Printf, no structured logger).
func RunLogged() {
	w := NewWorld(DefaultMargin)
	log.Println("=== world initialized ===")

	for _, ev := range RunTriggerWalkScenario(w) {
		log.Printf("entity %d entered trigger %d at x=%.1f", ev.PlayerID, ev.TriggerID, ev.X)
	}

	w.ClearAll()
	log.Printf("all entities removed, tree height = %d", w.Tree().Height())
}
