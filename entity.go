package aerobatica

// Kind identifies one of the fixed game objects. A Session owns exactly one
// Entity per Kind.
type Kind uint8

const (
	KindPlayer        Kind = iota // player jet
	KindPlayerBullet              // the player's single bullet
	KindEnemyBullet               // Vulcan jet round
	KindMissile                   // dumbfire missile
	KindHomingMissile             // homing missile (no movement logic)
	KindVulcanJet                 // first enemy, vertical sweeps
	KindMissileJet                // second enemy, horizontal sweeps
	KindHelicopter                // third enemy, diagonal bounce
	KindBomber                    // boss, vertical sweeps

	kindCount
)

var kindNames = [kindCount]string{
	KindPlayer:        "player",
	KindPlayerBullet:  "player-bullet",
	KindEnemyBullet:   "enemy-bullet",
	KindMissile:       "missile",
	KindHomingMissile: "homing-missile",
	KindVulcanJet:     "vulcan-jet",
	KindMissileJet:    "missile-jet",
	KindHelicopter:    "helicopter",
	KindBomber:        "bomber",
}

// String returns the kind's lower-case name.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// IsAircraft reports whether k is one of the four enemy aircraft.
func (k Kind) IsAircraft() bool {
	return k >= KindVulcanJet && k <= KindBomber
}

// IsProjectile reports whether k is a bullet or missile.
func (k Kind) IsProjectile() bool {
	return k >= KindPlayerBullet && k <= KindHomingMissile
}

// ParkX is where a destroyed aircraft is moved so its wreck can never take
// part in a later collision test.
const ParkX = -500

// Entity is the sprite record shared by every controller.
type Entity struct {
	Pos         Point // top-left corner in screen pixels
	Vel         Point // pixels per tick
	FacingRight bool  // selects the normal (true) or mirrored texture
	Destroyed   bool  // terminal; never reset within a session
	Onscreen    bool  // entered the screen since spawn; "in flight" for projectiles

	size Size
}

// NewEntity returns an entity with a fixed bounding-box size.
func NewEntity(pos, vel Point, size Size, facingRight bool) Entity {
	return Entity{
		Pos:         pos,
		Vel:         vel,
		FacingRight: facingRight,
		size:        size,
	}
}

// Size returns the entity's bounding-box size. It never changes.
func (e *Entity) Size() Size {
	return e.size
}

// Bounds returns the entity's current axis-aligned bounding box.
func (e *Entity) Bounds() Rect {
	return Rect{e.Pos.X, e.Pos.Y, e.size.W, e.size.H}
}

// destroy marks e destroyed. Aircraft other than the bomber are parked
// off-screen; the bomber stays put because the session ends with it.
func (e *Entity) destroy(k Kind) {
	e.Destroyed = true
	if k.IsAircraft() && k != KindBomber {
		e.Pos.X = ParkX
	}
}
