package aerobatica

import (
	"fmt"
	"strings"
)

// Key is one of the logical keys the game reacts to.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyFire
	KeyQuit

	keyCount
)

var keyNames = [keyCount]string{
	KeyLeft:  "left",
	KeyRight: "right",
	KeyUp:    "up",
	KeyDown:  "down",
	KeyFire:  "fire",
	KeyQuit:  "quit",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey maps a key name ("left", "fire", ...) to a Key. Matching is
// case-insensitive.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == name {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("aerobatica: unknown key %q", name)
}

// Keys reports the current state of the logical keys. Implementations must
// not block.
type Keys interface {
	IsKeyDown(k Key) bool
}

// KeySet is a fixed set of held keys. The zero value holds nothing.
type KeySet uint8

// NewKeySet returns a set holding the given keys.
func NewKeySet(keys ...Key) KeySet {
	var ks KeySet
	for _, k := range keys {
		ks = ks.With(k)
	}
	return ks
}

// With returns ks with k held.
func (ks KeySet) With(k Key) KeySet { return ks | 1<<k }

// Without returns ks with k released.
func (ks KeySet) Without(k Key) KeySet { return ks &^ (1 << k) }

// IsKeyDown implements Keys.
func (ks KeySet) IsKeyDown(k Key) bool { return ks&(1<<k) != 0 }

// Snapshot copies the state of keys into a KeySet.
func Snapshot(keys Keys) KeySet {
	var ks KeySet
	for k := Key(0); k < keyCount; k++ {
		if keys.IsKeyDown(k) {
			ks = ks.With(k)
		}
	}
	return ks
}

// applyInput moves and turns the player, fires the player's bullet, and
// reports whether Quit is held. Left wins over Right and Up over Down.
func (s *Session) applyInput(keys Keys) (quit bool) {
	p := &s.entities[KindPlayer]

	if keys.IsKeyDown(KeyLeft) {
		if p.Pos.X > 0 {
			p.Pos.X -= p.Vel.X
		}
		p.FacingRight = false
	} else if keys.IsKeyDown(KeyRight) {
		if p.Pos.X+p.size.W < ScreenWidth {
			p.Pos.X += p.Vel.X
		}
		p.FacingRight = true
	}

	if keys.IsKeyDown(KeyUp) {
		if p.Pos.Y > 0 {
			p.Pos.Y -= p.Vel.Y
		}
	} else if keys.IsKeyDown(KeyDown) {
		if p.Pos.Y+p.size.H < ScreenHeight {
			p.Pos.Y += p.Vel.Y
		}
	}

	if keys.IsKeyDown(KeyFire) && launch(&s.entities[KindPlayerBullet], p, p.FacingRight) {
		s.stats.Shots++
		s.log.Debug().Bool("facingRight", p.FacingRight).Int("x", s.entities[KindPlayerBullet].Pos.X).Msg("player fired")
		s.emit(EventShot, KindPlayerBullet)
	}

	return keys.IsKeyDown(KeyQuit)
}

// AnyKeys reports a key as held when any of its members holds it.
type AnyKeys []Keys

// IsKeyDown implements Keys.
func (a AnyKeys) IsKeyDown(k Key) bool {
	for _, keys := range a {
		if keys != nil && keys.IsKeyDown(k) {
			return true
		}
	}
	return false
}
