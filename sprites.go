package aerobatica

// Variant selects one of the two sprite-sheet pages.
type Variant uint8

const (
	VariantNormal   Variant = iota // sprites facing right
	VariantMirrored                // horizontally flipped sheet, sprites facing left
)

func (v Variant) String() string {
	if v == VariantMirrored {
		return "mirrored"
	}
	return "normal"
}

// Renderer is the drawing collaborator. DrawSprite copies the src region of
// the given sheet page to the screen with its top-left corner at at.
type Renderer interface {
	DrawSprite(v Variant, src Rect, at Point)
}

// Sprite sheet page dimensions. Both pages share them.
const (
	SheetWidth  = 2000
	SheetHeight = 1120
)

// SpriteRegion holds the source rectangles of one kind on both pages.
type SpriteRegion struct {
	Normal   Rect // on the VariantNormal page
	Mirrored Rect // on the VariantMirrored page
}

// ltrb builds a Rect from left, top, right and bottom edges.
func ltrb(l, t, r, b int) Rect {
	return Rect{l, t, r - l, b - t}
}

var bulletRegion = SpriteRegion{ltrb(584, 307, 945, 343), ltrb(1053, 307, 1379, 343)}

// spriteRegions is the baked source-rectangle table. Kinds without an entry
// are never drawn.
var spriteRegions = map[Kind]SpriteRegion{
	KindPlayer:       {ltrb(22, 33, 144, 76), ltrb(1855, 33, 1975, 76)},
	KindVulcanJet:    {ltrb(36, 526, 174, 557), ltrb(1825, 526, 1961, 557)},
	KindMissileJet:   {ltrb(38, 782, 165, 812), ltrb(1834, 782, 1960, 812)},
	KindHelicopter:   {ltrb(29, 1078, 170, 1120), ltrb(1825, 1078, 1969, 1120)},
	KindBomber:       {ltrb(0, 249, 335, 345), ltrb(1663, 249, 2000, 345)},
	KindPlayerBullet: bulletRegion,
	KindEnemyBullet:  bulletRegion,
}

// SourceRegion returns the page and source rectangle for kind k with the
// given facing. ok is false for kinds that have no sprite.
func SourceRegion(k Kind, facingRight bool) (v Variant, src Rect, ok bool) {
	r, ok := spriteRegions[k]
	if !ok {
		return 0, Rect{}, false
	}
	if facingRight {
		return VariantNormal, r.Normal, true
	}
	return VariantMirrored, r.Mirrored, true
}

// Regions returns a copy of the source-rectangle table.
func Regions() map[Kind]SpriteRegion {
	out := make(map[Kind]SpriteRegion, len(spriteRegions))
	for k, r := range spriteRegions {
		out[k] = r
	}
	return out
}

// drawRule is one entry of the draw list.
type drawRule struct {
	kind        Kind
	whenWrecked bool // keep drawing after Destroyed is set
}

// drawOrder is back-to-front. Idle bullets are drawn at their off-screen
// spawn points, which the renderer clips.
var drawOrder = []drawRule{
	{kind: KindPlayer, whenWrecked: true},
	{kind: KindVulcanJet},
	{kind: KindMissileJet},
	{kind: KindHelicopter},
	{kind: KindBomber, whenWrecked: true},
	{kind: KindPlayerBullet, whenWrecked: true},
	{kind: KindEnemyBullet, whenWrecked: true},
}

// Draw hands every visible entity to r in back-to-front order. It does not
// mutate the session and may be called in any state.
func (s *Session) Draw(r Renderer) {
	for _, d := range drawOrder {
		e := &s.entities[d.kind]
		if e.Destroyed && !d.whenWrecked {
			continue
		}
		v, src, ok := SourceRegion(d.kind, e.FacingRight)
		if !ok {
			continue
		}
		r.DrawSprite(v, src, e.Pos)
	}
}
