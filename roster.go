package aerobatica

// spawn describes an entity's hardcoded starting state.
type spawn struct {
	pos, vel    Point
	size        Size
	facingRight bool
	onscreen    bool
}

// roster is the fixed cast of a session, indexed by Kind.
var roster = [kindCount]spawn{
	KindPlayer:        {Point{100, 350}, Point{5, 5}, Size{126, 47}, true, true},
	KindPlayerBullet:  {Point{-200, -200}, Point{50, 0}, Size{317, 36}, true, false},
	KindEnemyBullet:   {Point{1200, 900}, Point{5, 0}, Size{317, 36}, false, false},
	KindMissile:       {Point{1500, 1000}, Point{-5, 0}, Size{509, 40}, false, false},
	KindHomingMissile: {Point{1300, 500}, Point{5, 5}, Size{509, 40}, false, false},
	KindVulcanJet:     {Point{700, -100}, Point{0, 5}, Size{140, 33}, false, false},
	KindMissileJet:    {Point{1100, 600}, Point{-5, 0}, Size{128, 32}, false, false},
	KindHelicopter:    {Point{-200, 200}, Point{5, 5}, Size{144, 41}, true, false},
	KindBomber:        {Point{500, 800}, Point{0, -5}, Size{309, 98}, false, false},
}

func (sp spawn) entity() Entity {
	e := NewEntity(sp.pos, sp.vel, sp.size, sp.facingRight)
	e.Onscreen = sp.onscreen
	return e
}

// SpawnPoint returns the off-screen position k starts the session at.
func SpawnPoint(k Kind) Point {
	return roster[k].pos
}
