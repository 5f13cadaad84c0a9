package aerobatica

// lethal lists what can shoot the player down, in the order it is tested.
var lethal = []Kind{
	KindEnemyBullet,
	KindMissile,
	KindHomingMissile,
	KindVulcanJet,
	KindMissileJet,
	KindHelicopter,
}

// targets lists what the player's bullet can destroy, in the order it is
// tested.
var targets = []Kind{
	KindVulcanJet,
	KindMissileJet,
	KindHelicopter,
	KindBomber,
}

// checkLoss tests the player against every lethal entity and resolves the
// first hit. A projectile returns to its spawn point; an aircraft that was
// rammed is destroyed along with the player.
func (s *Session) checkLoss() (Kind, bool) {
	player := &s.entities[KindPlayer]
	for _, k := range lethal {
		e := &s.entities[k]
		if e.Destroyed || !Collides(player, e) {
			continue
		}
		player.Destroyed = true
		if k.IsProjectile() {
			e.Pos = SpawnPoint(k)
			e.Onscreen = false
		} else {
			e.destroy(k)
		}
		return k, true
	}
	return 0, false
}

// checkScoring tests the player's bullet against the enemy aircraft and
// destroys the first one hit. At most one enemy falls per tick, and an enemy
// still waiting wholly off the playfield cannot be hit.
func (s *Session) checkScoring() (Kind, bool) {
	bullet := &s.entities[KindPlayerBullet]
	for _, k := range targets {
		e := &s.entities[k]
		if e.Destroyed || !e.Bounds().Visible() || !Collides(bullet, e) {
			continue
		}
		e.destroy(k)
		return k, true
	}
	return 0, false
}
