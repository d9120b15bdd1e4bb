package terminal

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dbview/textutil"
)

// ErrNoTerminal indicates the process has no usable terminal attached.
// Callers must treat this as fatal for the session.
var ErrNoTerminal = errors.New("terminal unavailable")

// Screen binds the Backend contract to tcell. It owns the color-pair
// table, cached dimensions, and mouse-enable state for one terminal.
// One live instance per process; a single control thread drives it.
type Screen struct {
	ts     tcell.Screen
	styles [numColors]tcell.Style
	cur    tcell.Style

	w, h    int
	regions []Region

	tr     *Translator
	events chan tcell.Event
	quit   chan struct{}

	mouse bool
	init  bool
	fini  bool
}

// New creates an unattached Screen. Init acquires the terminal.
func New() *Screen {
	return &Screen{tr: NewTranslator()}
}

// Init acquires the terminal and registers the color palette.
func (s *Screen) Init() error {
	if s.init {
		return nil
	}
	ts, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoTerminal, err)
	}
	if err := ts.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrNoTerminal, err)
	}
	s.attach(ts)
	return nil
}

// attach wires an already-initialized tcell screen. Split from Init so
// tests can drive a simulation screen through the same paths.
func (s *Screen) attach(ts tcell.Screen) {
	s.ts = ts
	for i := range palette {
		s.styles[i] = tcell.StyleDefault.
			Foreground(palette[i].fg).
			Background(palette[i].bg)
	}
	s.cur = s.styles[ColorDefault]
	s.w, s.h = ts.Size()
	s.regions = s.regions[:0]

	s.events = make(chan tcell.Event, 64)
	s.quit = make(chan struct{})
	go ts.ChannelEvents(s.events, s.quit)

	s.init = true
	s.fini = false
}

// Fini restores terminal state. Safe to call multiple times.
func (s *Screen) Fini() {
	if !s.init || s.fini {
		return
	}
	s.fini = true
	close(s.quit)
	s.ts.Fini()
}

// EmergencyRestore resets the terminal from a panic path where the
// normal Fini sequence cannot run.
func (s *Screen) EmergencyRestore() {
	if s.ts != nil && !s.fini {
		s.fini = true
		s.ts.Fini()
	}
}

// BeginFrame clears the off-screen buffer, refreshes dimensions to
// absorb asynchronous resizes, and resets the color baseline.
func (s *Screen) BeginFrame() {
	s.w, s.h = s.ts.Size()
	s.cur = s.styles[ColorDefault]
	s.regions = s.regions[:0]
	s.ts.Clear()
}

// EndFrame flushes the off-screen buffer to the terminal.
func (s *Screen) EndFrame() {
	s.ts.Show()
}

// Size returns the cached terminal dimensions.
func (s *Screen) Size() (int, int) {
	return s.w, s.h
}

// SetColor selects the current color pair and attributes. Unmapped
// identifiers fall back to the default pair.
func (s *Screen) SetColor(c Color, attrs Attr) {
	s.cur = styleFor(&s.styles, c, attrs)
}

// ResetColor restores the default pair.
func (s *Screen) ResetColor() {
	s.cur = s.styles[ColorDefault]
}

// clip returns the active drawable rectangle.
func (s *Screen) clip() Region {
	screen := Region{W: s.w, H: s.h}
	if len(s.regions) == 0 {
		return screen
	}
	return screen.Intersect(s.regions[len(s.regions)-1])
}

// DrawChar draws one rune, clipped.
func (s *Screen) DrawChar(x, y int, ch rune) {
	if !s.clip().Contains(x, y) {
		return
	}
	s.ts.SetContent(x, y, ch, nil, s.cur)
}

// DrawString draws a string, advancing by each glyph's display width.
func (s *Screen) DrawString(x, y int, str string) {
	clip := s.clip()
	if y < clip.Y || y >= clip.Y+clip.H {
		return
	}
	for _, r := range str {
		w := textutil.RuneDisplayWidth(r)
		if x >= clip.X+clip.W {
			break
		}
		if x >= clip.X {
			s.ts.SetContent(x, y, r, nil, s.cur)
		}
		x += w
	}
}

// DrawStringWidth draws str truncated or space-padded to exactly width
// display columns. The string is decoded one code point at a time and
// each glyph's column width accumulated; non-printable and zero-width
// glyphs count as one column. Drawing stops before the glyph that
// would exceed width, then the remainder is padded with spaces, which
// guarantees exact visual width regardless of byte length.
func (s *Screen) DrawStringWidth(x, y int, str string, width int) {
	if width <= 0 {
		return
	}
	used := 0
	for _, r := range str {
		w := textutil.RuneDisplayWidth(r)
		if used+w > width {
			break
		}
		s.DrawChar(x+used, y, r)
		if w == 2 {
			// tcell renders the trailing half itself; keep our
			// accounting aligned with the terminal's.
			used++
		}
		used++
	}
	for ; used < width; used++ {
		s.DrawChar(x+used, y, ' ')
	}
}

// HLine draws a horizontal run of ch. Non-positive width is a no-op.
func (s *Screen) HLine(x, y, w int, ch rune) {
	if w <= 0 {
		return
	}
	for i := 0; i < w; i++ {
		s.DrawChar(x+i, y, ch)
	}
}

// VLine draws a vertical run of ch. Non-positive height is a no-op.
func (s *Screen) VLine(x, y, h int, ch rune) {
	if h <= 0 {
		return
	}
	for i := 0; i < h; i++ {
		s.DrawChar(x, y+i, ch)
	}
}

// DrawBox draws a single-line box outline.
func (s *Screen) DrawBox(x, y, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	s.DrawChar(x, y, '┌')
	s.DrawChar(x+w-1, y, '┐')
	s.DrawChar(x, y+h-1, '└')
	s.DrawChar(x+w-1, y+h-1, '┘')
	s.HLine(x+1, y, w-2, '─')
	s.HLine(x+1, y+h-1, w-2, '─')
	s.VLine(x, y+1, h-2, '│')
	s.VLine(x+w-1, y+1, h-2, '│')
}

// FillRect fills a rectangle with ch. Non-positive dimensions are
// no-ops.
func (s *Screen) FillRect(x, y, w, h int, ch rune) {
	if w <= 0 || h <= 0 {
		return
	}
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.DrawChar(x+dx, y+dy, ch)
		}
	}
}

// ShowCursor makes the hardware cursor visible at (x, y).
func (s *Screen) ShowCursor(x, y int) {
	s.ts.ShowCursor(x, y)
}

// HideCursor hides the hardware cursor.
func (s *Screen) HideCursor() {
	s.ts.HideCursor()
}

// SetRegion replaces the region stack with a single region.
func (s *Screen) SetRegion(r Region) {
	s.regions = append(s.regions[:0], r)
}

// Region returns the active region (the whole screen when none is set).
func (s *Screen) Region() Region {
	if len(s.regions) == 0 {
		return Region{W: s.w, H: s.h}
	}
	return s.regions[len(s.regions)-1]
}

// BeginRegion pushes a region onto the clip stack.
func (s *Screen) BeginRegion(r Region) {
	s.regions = append(s.regions, r)
}

// EndRegion pops the innermost region.
func (s *Screen) EndRegion() {
	if len(s.regions) > 0 {
		s.regions = s.regions[:len(s.regions)-1]
	}
}

// ClearRegion fills the active region with spaces in the default pair.
func (s *Screen) ClearRegion() {
	r := s.Region()
	saved := s.cur
	s.cur = s.styles[ColorDefault]
	s.FillRect(r.X, r.Y, r.W, r.H, ' ')
	s.cur = saved
}

// RefreshRegion flushes pending draws. tcell has no partial flush, so
// this shows the whole buffer.
func (s *Screen) RefreshRegion() {
	s.ts.Show()
}

// Poll returns the next canonical event without blocking; EventNone
// when the queue is empty.
func (s *Screen) Poll() Event {
	select {
	case ev := <-s.events:
		return s.handleRaw(ev)
	default:
		return Event{Type: EventNone}
	}
}

// Wait blocks for the next event up to timeoutMs milliseconds;
// -1 waits indefinitely. Expiry yields EventNone.
func (s *Screen) Wait(timeoutMs int) Event {
	if timeoutMs < 0 {
		ev, ok := <-s.events
		if !ok {
			return Event{Type: EventNone}
		}
		return s.handleRaw(ev)
	}
	timer := time.NewTimer(time.Duration(timeoutMs) * time.Millisecond)
	defer timer.Stop()
	select {
	case ev, ok := <-s.events:
		if !ok {
			return Event{Type: EventNone}
		}
		return s.handleRaw(ev)
	case <-timer.C:
		return Event{Type: EventNone}
	}
}

// handleRaw absorbs backend-level bookkeeping before translation.
func (s *Screen) handleRaw(raw tcell.Event) Event {
	if re, ok := raw.(*tcell.EventResize); ok {
		s.w, s.h = re.Size()
		s.ts.Sync()
	}
	return s.tr.Translate(raw)
}

// EnableMouse toggles mouse reporting.
func (s *Screen) EnableMouse(enable bool) {
	if enable == s.mouse {
		return
	}
	s.mouse = enable
	if enable {
		s.ts.EnableMouse(tcell.MouseButtonEvents)
	} else {
		s.ts.DisableMouse()
	}
}

// interface conformance
var _ Backend = (*Screen)(nil)
