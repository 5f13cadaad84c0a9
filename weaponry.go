package aerobatica

// muzzleGap is the horizontal gap between a shooter and its fresh projectile.
const muzzleGap = 5

// projectileTrack describes how a projectile leaves play.
type projectileTrack struct {
	kind        Kind
	retireRight bool // also retires past the right edge
}

// tracks lists the projectiles the weaponry step advances. The homing
// missile is deliberately absent: it has no flight logic.
var tracks = []projectileTrack{
	{kind: KindPlayerBullet, retireRight: true},
	{kind: KindEnemyBullet},
	{kind: KindMissile},
}

// moveWeaponry advances every projectile in flight horizontally and retires
// those that have left the screen. A retired projectile goes back to its
// spawn point, clear of enemies still waiting off-screen.
func (s *Session) moveWeaponry() {
	for _, t := range tracks {
		e := &s.entities[t.kind]
		if !e.Onscreen {
			continue
		}
		e.Pos.X += e.Vel.X
		if e.Pos.X < -e.size.W || (t.retireRight && e.Pos.X > ScreenWidth) {
			e.Pos = SpawnPoint(t.kind)
			e.Onscreen = false
		}
	}
}

// launch places projectile p at the nose of shooter and sets it flying in
// the shooter's facing direction. It is a no-op while p is in flight.
func launch(p, shooter *Entity, facingRight bool) bool {
	if p.Onscreen {
		return false
	}
	speed := p.Vel.X
	if speed < 0 {
		speed = -speed
	}
	if facingRight {
		p.Pos.X = shooter.Pos.X + shooter.size.W + muzzleGap
		p.Vel.X = speed
	} else {
		p.Pos.X = shooter.Pos.X - muzzleGap
		p.Vel.X = -speed
	}
	p.Pos.Y = shooter.Pos.Y + shooter.size.H/2
	p.FacingRight = facingRight
	p.Onscreen = true
	return true
}

// enemyGunners pairs the aircraft that can fire with their projectile.
var enemyGunners = []struct {
	shooter, round Kind
}{
	{KindVulcanJet, KindEnemyBullet},
	{KindMissileJet, KindMissile},
}

// enemyFire lets the active enemy shoot at the player once it has entered
// the screen. Enemies always fire toward the left edge, and the round starts
// wholly in front of the shooter's nose.
func (s *Session) enemyFire() {
	active, ok := s.activeEnemy()
	if !ok {
		return
	}
	for _, g := range enemyGunners {
		if g.shooter != active.kind {
			continue
		}
		shooter := &s.entities[g.shooter]
		if !shooter.Onscreen {
			return
		}
		round := &s.entities[g.round]
		if launch(round, shooter, false) {
			round.Pos.X -= round.size.W
			s.stats.EnemyShots++
			s.emit(EventEnemyShot, g.round)
		}
		return
	}
}
