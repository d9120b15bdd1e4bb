package terminal

// Backend abstracts the terminal rendering target.
// One concrete implementation exists today (the tcell-bound Screen);
// the contract keeps the grid renderer and the modal editor independent
// of which target is active.
//
// All draw operations write to an off-screen buffer; nothing is
// guaranteed visible until EndFrame flushes. A single control thread
// owns the backend; no operation is safe to call concurrently.
type Backend interface {
	// Lifecycle
	// Init acquires the terminal. Failure (e.g. no attached terminal)
	// is fatal for the session.
	Init() error
	// Fini restores terminal state. Safe to call multiple times.
	Fini()

	// Frame
	// BeginFrame clears the off-screen buffer, refreshes cached
	// dimensions, and resets the color state to the default pair.
	BeginFrame()
	// EndFrame flushes the off-screen buffer to the terminal.
	EndFrame()

	// Size returns current terminal dimensions.
	Size() (width, height int)

	// Color state, shared per backend instance
	SetColor(c Color, attrs Attr)
	ResetColor()

	// Primitive draws. All are clipped to the screen; non-positive
	// width/height arguments are no-ops.
	DrawChar(x, y int, ch rune)
	DrawString(x, y int, s string)
	// DrawStringWidth draws s truncated or space-padded to exactly
	// width display columns, decoding one code point at a time.
	DrawStringWidth(x, y int, s string, width int)
	HLine(x, y, w int, ch rune)
	VLine(x, y, h int, ch rune)
	DrawBox(x, y, w, h int)
	FillRect(x, y, w, h int, ch rune)

	// Cursor
	ShowCursor(x, y int)
	HideCursor()

	// Region bookkeeping for callers that draw into sub-areas.
	SetRegion(r Region)
	Region() Region
	BeginRegion(r Region)
	EndRegion()
	ClearRegion()
	RefreshRegion()

	// Input
	// Poll returns the next event without blocking; EventNone when
	// nothing is pending.
	Poll() Event
	// Wait blocks until an event arrives or timeoutMs elapses.
	// A timeout of -1 waits indefinitely; expiry yields EventNone.
	Wait(timeoutMs int) Event

	// EnableMouse toggles mouse reporting (press/release/click/
	// double-click/scroll).
	EnableMouse(enable bool)
}

// Region is a coordinate rectangle in screen space. It carries no
// ownership semantics; regions may overlap freely.
type Region struct {
	X, Y, W, H int
}

// NewRegion creates a region from origin and dimensions.
func NewRegion(x, y, w, h int) Region {
	return Region{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the region has no drawable area.
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the absolute point (x, y) lies inside.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Sub returns a nested region with x, y relative to r, clipped to r's
// bounds.
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Inset returns a region shrunk by n cells on all sides.
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Intersect returns the overlap of two regions.
func (r Region) Intersect(o Region) Region {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.W, o.X+o.W)
	y2 := min(r.Y+r.H, o.Y+o.H)
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	return Region{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}
