package aerobatica

// axes is a bitmask of the axes an enemy travels along.
type axes uint8

const (
	axisX axes = 1 << iota
	axisY
)

// entryRule decides when an enemy counts as having entered the screen.
type entryRule uint8

const (
	entryOrigin entryRule = iota // top-left corner strictly inside the bounds
	entryFull                    // whole box strictly inside the bounds
)

// enemyMotion is one row of the enemy precedence table.
type enemyMotion struct {
	kind    Kind
	axes    axes
	entry   entryRule
	flipOnX bool // toggle facing on a horizontal bounce
}

// enemyOrder lists the enemy aircraft in precedence order. Only the first
// entry that is not destroyed moves on a given tick.
var enemyOrder = []enemyMotion{
	{kind: KindVulcanJet, axes: axisY, entry: entryOrigin},
	{kind: KindMissileJet, axes: axisX, entry: entryFull, flipOnX: true},
	{kind: KindHelicopter, axes: axisX | axisY, entry: entryOrigin, flipOnX: true},
	{kind: KindBomber, axes: axisY, entry: entryFull},
}

// activeEnemy returns the enemy eligible to move, or false once every
// aircraft has been destroyed.
func (s *Session) activeEnemy() (enemyMotion, bool) {
	for _, m := range enemyOrder {
		if !s.entities[m.kind].Destroyed {
			return m, true
		}
	}
	return enemyMotion{}, false
}

// ActiveEnemy returns the kind of the enemy that moves on the next tick.
func (s *Session) ActiveEnemy() (Kind, bool) {
	m, ok := s.activeEnemy()
	return m.kind, ok
}

// moveEnemies advances the active enemy by one tick and reports which one
// moved. All other enemies stay where they are.
func (s *Session) moveEnemies() (Kind, bool) {
	m, ok := s.activeEnemy()
	if !ok {
		return 0, false
	}
	m.step(&s.entities[m.kind])
	return m.kind, true
}

// step moves e along its axes, latches Onscreen on entry, then bounces off
// the screen edges once the entity has entered.
func (m enemyMotion) step(e *Entity) {
	if m.axes&axisX != 0 {
		e.Pos.X += e.Vel.X
	}
	if m.axes&axisY != 0 {
		e.Pos.Y += e.Vel.Y
	}

	if m.entered(e) {
		e.Onscreen = true
	}
	if !e.Onscreen {
		return
	}

	b := e.Bounds()
	if m.axes&axisX != 0 && (b.X < 0 || b.Right() > ScreenWidth) {
		e.Vel.X = -e.Vel.X
		if m.flipOnX {
			e.FacingRight = !e.FacingRight
		}
	}
	if m.axes&axisY != 0 && (b.Y < 0 || b.Bottom() > ScreenHeight) {
		e.Vel.Y = -e.Vel.Y
	}
}

// entered applies the entry rule on every axis the enemy travels along.
func (m enemyMotion) entered(e *Entity) bool {
	b := e.Bounds()
	if m.axes&axisX != 0 && !inside(b.X, b.Right(), ScreenWidth, m.entry) {
		return false
	}
	if m.axes&axisY != 0 && !inside(b.Y, b.Bottom(), ScreenHeight, m.entry) {
		return false
	}
	return true
}

func inside(lo, hi, limit int, rule entryRule) bool {
	if rule == entryOrigin {
		return lo > 0 && lo < limit
	}
	return lo > 0 && hi < limit
}
