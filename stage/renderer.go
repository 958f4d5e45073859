package stage

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/orchead/ambient"
	"github.com/lixenwraith/orchead/effect"
	"github.com/lixenwraith/orchead/input"
	"github.com/lixenwraith/orchead/notice"
)

// HUD carries the counter line and control state for one frame
type HUD struct {
	Kills    string
	Visitors string
	Chaos    bool
	Muted    bool
}

// Renderer draws the surface and notice board onto a tcell screen
// Draw and Resize are called from the loop goroutine
type Renderer struct {
	screen  tcell.Screen
	surface *Surface
	board   *notice.Board

	layout Layout
	chaos  bool
	frames uint64
}

// NewRenderer creates a renderer and computes the initial layout
func NewRenderer(screen tcell.Screen, surface *Surface, board *notice.Board) *Renderer {
	r := &Renderer{screen: screen, surface: surface, board: board}
	r.Resize()
	return r
}

// Resize recomputes the layout from the screen size
func (r *Renderer) Resize() Layout {
	w, h := r.screen.Size()
	r.layout = NewLayout(w, h, ButtonLabels(r.chaos))
	return r.layout
}

// Layout returns the layout used by the last frame
func (r *Renderer) Layout() Layout { return r.layout }

// Frames returns the number of frames drawn
func (r *Renderer) Frames() uint64 { return r.frames }

// look is the resolved appearance of one frame
type look struct {
	bg       tcell.Color
	skin     tcell.Color
	eyes     tcell.Color
	dx, dy   int
	mirrored bool
	shake    int
	partyAge time.Duration
	party    bool
}

// Draw renders a full frame
func (r *Renderer) Draw(now time.Time, hud HUD) {
	if hud.Chaos != r.chaos {
		r.chaos = hud.Chaos
		r.Resize()
	}
	snap := r.surface.Snapshot()
	lk := resolve(snap, now)

	s := r.screen
	bgStyle := tcell.StyleDefault.Background(lk.bg)
	s.Fill(' ', bgStyle)

	r.drawHUD(bgStyle, hud)
	r.drawSprites(snap.Sprites, bgStyle, lk)
	r.drawOrc(bgStyle, lk)
	r.drawQuote(bgStyle)
	r.drawNotice(bgStyle)
	r.drawButtons(hud.Chaos)

	s.Show()
	r.frames++
}

func resolve(snap Snapshot, now time.Time) look {
	lk := look{bg: RgbBackground, skin: RgbOrcSkin, eyes: RgbOrcEyes}
	age := func(set map[string]time.Time, class string) (time.Duration, bool) {
		t, ok := set[class]
		if !ok {
			return 0, false
		}
		return now.Sub(t), true
	}

	// Body treatments, weakest first so later ones win
	if d, ok := age(snap.Body, effect.ClassMellonReveal); ok {
		lk.bg = Blend(RgbBackground, RgbMellon, math.Min(1, float64(d)/float64(2*time.Second))*0.35)
	}
	if _, ok := snap.Body[effect.ClassHelmsDeep]; ok {
		lk.bg = RgbHelmsDeep
	}
	if d, ok := age(snap.Body, effect.ClassSauronPulse); ok {
		lk.bg = Pulse(lk.bg, Dim(RgbSauronEye, 0.5), d, time.Second)
	}
	if _, ok := snap.Body[effect.ClassSauronMode]; ok {
		lk.bg = Blend(lk.bg, RgbBlood, 0.3)
		lk.eyes = RgbSauronEye
	}
	if d, ok := age(snap.Body, effect.ClassBloodFrenzy); ok {
		lk.bg = Pulse(lk.bg, RgbBlood, d, 400*time.Millisecond)
		lk.skin = RgbBlood
	}
	if d, ok := age(snap.Body, effect.ClassIsildur); ok {
		lk.bg = Pulse(lk.bg, RgbIsildur, d, time.Second)
	}
	if d, ok := age(snap.Body, effect.ClassHornBlast); ok {
		lk.bg = Blend(RgbHornFlash, lk.bg, float64(d)/float64(1500*time.Millisecond))
	}
	if d, ok := age(snap.Body, effect.ClassParty); ok {
		lk.party = true
		lk.partyAge = d
		lk.bg = Dim(PartyHue(d, 0.5), 0.25)
		lk.skin = PartyHue(d, 0)
	}
	if d, ok := age(snap.Body, effect.ClassScreenShake); ok {
		lk.shake = wobble(d, 60*time.Millisecond, 2)
	}

	// Focal treatments
	if d, ok := age(snap.Focal, ambient.PossessedSpin); ok {
		lk.mirrored = (d/(125*time.Millisecond))%2 == 1
	}
	if d, ok := age(snap.Focal, ambient.SauronZoom); ok {
		lk.eyes = Pulse(RgbOrcEyes, RgbSauronEye, d, 800*time.Millisecond)
	}
	if d, ok := age(snap.Focal, ambient.WindWobble); ok {
		lk.dx += int(math.Round(2 * math.Sin(2*math.Pi*float64(d)/float64(time.Second))))
	}
	if d, ok := age(snap.Focal, ambient.UrukRage); ok {
		lk.dx += wobble(d, 50*time.Millisecond, 1)
		lk.skin = Blend(lk.skin, RgbBlood, 0.6)
	}
	if d, ok := age(snap.Focal, ambient.SpiritFloat); ok {
		lk.dy -= int(math.Round(math.Sin(math.Pi * float64(d) / float64(2*time.Second))))
		lk.skin = Dim(lk.skin, 1.4)
	}
	if d, ok := age(snap.Focal, ambient.RingPulse); ok {
		lk.skin = Pulse(lk.skin, RgbPrecious, d, 750*time.Millisecond)
	}
	if d, ok := age(snap.Focal, ambient.SubtlePulse); ok {
		lk.skin = Pulse(lk.skin, Dim(lk.skin, 1.3), d, 2*time.Second)
	}
	if d, ok := age(snap.Focal, effect.ClassIsengardBounce); ok {
		lk.dy -= int(math.Abs(math.Round(2 * math.Sin(2*math.Pi*float64(d)/float64(time.Second)))))
	}
	if d, ok := age(snap.Focal, effect.ClassGollumGlow); ok {
		lk.eyes = Pulse(RgbGollum, RgbNoticeText, d, time.Second)
	}
	if d, ok := age(snap.Focal, effect.ClassPreciousGlow); ok {
		lk.skin = Pulse(lk.skin, RgbPrecious, d, 1500*time.Millisecond)
	}
	if d, ok := age(snap.Focal, effect.ClassStaffSlam); ok && d < 500*time.Millisecond {
		lk.dy++
	}
	return lk
}

// wobble alternates between -amp and +amp every step
func wobble(d, step time.Duration, amp int) int {
	if (d/step)%2 == 0 {
		return -amp
	}
	return amp
}

func (r *Renderer) drawHUD(bg tcell.Style, hud HUD) {
	label := bg.Foreground(RgbHudText)
	value := bg.Foreground(RgbHudValue).Bold(true)

	x := r.put(1, r.layout.HUD, "Orcs slain: ", label)
	r.put(x, r.layout.HUD, hud.Kills, value)

	right := "Visitors: " + hud.Visitors
	if hud.Muted {
		right = "[muted]  " + right
	}
	x = r.layout.Width - runewidth.StringWidth(right) - 1
	r.put(x, r.layout.HUD, right, label)
}

func (r *Renderer) drawSprites(sprites []Sprite, bg tcell.Style, lk look) {
	w, h := r.layout.Width, r.layout.Height
	for i, sp := range sprites {
		color := RgbGrondText
		switch sp.Group {
		case effect.GroupConfetti:
			color = PartyHue(lk.partyAge, float64(i%12)/12)
		case effect.GroupBreakfast, effect.GroupPotatoes:
			color = RgbQuoteText
		}
		x := int(sp.X*float64(w)) + lk.shake
		y := 1 + int(sp.Y*float64(h-2))
		r.put(x, y, sp.Text, bg.Foreground(color).Bold(true))
	}
}

func (r *Renderer) drawOrc(bg tcell.Style, lk look) {
	orc := r.layout.Orc
	skin := bg.Foreground(lk.skin)
	eyes := bg.Foreground(lk.eyes).Bold(true)

	for row, line := range orcArt {
		if lk.mirrored {
			line = mirror(line)
		}
		r.put(orc.X+lk.dx+lk.shake, orc.Y+lk.dy+row, line, skin)
	}
	for _, e := range eyeCells {
		col := e[0]
		if lk.mirrored {
			col = len([]rune(orcArt[e[1]])) - 1 - col
		}
		x, y := orc.X+lk.dx+lk.shake+col, orc.Y+lk.dy+e[1]
		if x >= 0 && x < r.layout.Width && y >= 0 && y < r.layout.Height {
			r.screen.SetContent(x, y, 'o', nil, eyes)
		}
	}
}

func (r *Renderer) drawQuote(bg tcell.Style) {
	text, ok := r.board.CurrentQuote()
	if !ok {
		return
	}
	text = "“" + text + "”"
	r.put(centerX(r.layout.Width, text), r.layout.QuoteRow, text, bg.Foreground(RgbQuoteText).Italic(true))
}

func (r *Renderer) drawNotice(bg tcell.Style) {
	text, phase := r.board.Notification()
	style := bg.Foreground(RgbNoticeText).Bold(true)
	switch phase {
	case notice.Hidden:
		return
	case notice.Fading:
		style = bg.Foreground(RgbNoticeFade)
	}
	r.put(centerX(r.layout.Width, text), r.layout.NoticeRow, text, style)
}

func (r *Renderer) drawButtons(chaos bool) {
	for _, b := range r.layout.Buttons {
		face := RgbButton
		if b.Name == input.ButtonChaos && chaos {
			face = RgbButtonChaos
		}
		style := tcell.StyleDefault.Background(face).Foreground(RgbButtonText)
		r.put(b.Rect.X, b.Rect.Y, " "+b.Label+" ", style)
	}
}

// put draws s from (x, y), clipping to the screen, and returns the next column
func (r *Renderer) put(x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= r.layout.Height {
		return x
	}
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= r.layout.Width {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += w
	}
	return x
}

var mirrorRunes = map[rune]rune{
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'`': '\'', '\'': '`',
	',': ',',
}

// mirror flips a line of art horizontally
func mirror(line string) string {
	rs := []rune(line)
	out := make([]rune, len(rs))
	for i, ch := range rs {
		if m, ok := mirrorRunes[ch]; ok {
			ch = m
		}
		out[len(rs)-1-i] = ch
	}
	return string(out)
}
