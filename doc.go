// Package aerobatica is the game core of a small side-scrolling shooter.
//
// A [Session] owns one [Entity] per [Kind]: the player jet, the player's
// bullet, two enemy projectiles, a homing missile, and four enemy aircraft
// that appear one after another (Vulcan jet, missile jet, helicopter,
// bomber). Destroying the bomber wins; being hit by anything lethal loses.
//
// # Frame loop
//
// The host calls [Session.Update] as often as it likes, followed by
// [Session.Draw]. Game state advances only when [TickInterval] has elapsed
// since the previous tick; input is applied on every call:
//
//	s := aerobatica.NewSession(aerobatica.Options{})
//	s.OnEvent(func(ev aerobatica.Event) {
//		if ev.Kind == aerobatica.EventVictory {
//			// ...
//		}
//	})
//	for !s.State().Terminal() {
//		s.Update(time.Now(), keyboard)
//		s.Draw(renderer)
//	}
//
// # Collaborators
//
// The core never touches a window, a keyboard or a sound device. Hosts supply
// a [Keys] implementation for input and a [Renderer] that copies a source
// rectangle of one of two sprite-sheet pages ([VariantNormal] or
// [VariantMirrored]) to the screen. The ebitenshell and termshell packages
// provide both for Ebitengine and for terminals.
//
// The playfield is a fixed [ScreenWidth] × [ScreenHeight] pixel grid with
// the origin at the top-left.
package aerobatica
