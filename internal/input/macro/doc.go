// Package macro records key sequences into registers and replays them.
//
// Recording is started with Start and a register name. While recording,
// the engine passes every key event it handles to Record; Stop saves the
// events. An uppercase register name appends to the lowercase register.
//
//	rec := macro.NewRecorder()
//	rec.Start('a')
//	// ... key events passed to rec.Record ...
//	rec.Stop()
//
// Playback is synchronous. The Player sends each recorded event through a
// handler and guards against macros that invoke themselves:
//
//	player := macro.NewPlayer(rec)
//	err := player.Play(ctx, 'a', 3, engine.HandleKey)
//
// Valid registers are a-z and 0-9 (A-Z to append).
package macro
