package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestTranslateSpecialTable(t *testing.T) {
	tr := NewTranslator()
	for raw, want := range specialKeys {
		ev := tr.Translate(tcell.NewEventKey(raw, 0, tcell.ModNone))
		if ev.Type != EventKey {
			t.Errorf("raw %d: expected key event, got type %d", raw, ev.Type)
		}
		if !ev.Special {
			t.Errorf("raw %d: expected special key", raw)
		}
		if ev.Key != want {
			t.Errorf("raw %d: expected key %d, got %d", raw, want, ev.Key)
		}
	}
}

func TestTranslateCtrlRange(t *testing.T) {
	tr := NewTranslator()
	for code := 1; code <= 26; code++ {
		if _, named := specialKeys[tcell.Key(code)]; named {
			// Backspace/Tab/Enter forms belong to the special table.
			continue
		}
		ev := tr.Translate(tcell.NewEventKey(tcell.Key(code), 0, tcell.ModCtrl))
		if ev.Special {
			t.Errorf("code %d: expected non-special", code)
		}
		if ev.Mod&ModCtrl == 0 {
			t.Errorf("code %d: expected Ctrl modifier", code)
		}
		want := 'A' + rune(code) - 1
		if ev.Ch != want {
			t.Errorf("code %d: expected %q, got %q", code, want, ev.Ch)
		}
	}
}

func TestTranslateCtrlCaseInsensitive(t *testing.T) {
	tr := NewTranslator()
	ev := tr.Translate(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl))
	if !ev.IsCtrl('q') || !ev.IsCtrl('Q') {
		t.Errorf("expected IsCtrl to match both cases, got %+v", ev)
	}
	if ev.IsCtrl('r') {
		t.Error("expected IsCtrl('r') to be false")
	}
}

func TestPrintablePredicate(t *testing.T) {
	tr := NewTranslator()
	for ch := rune(32); ch <= 126; ch++ {
		ev := tr.Translate(tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone))
		if !ev.IsPrintable() {
			t.Errorf("%q: expected printable", ch)
		}
		if ev.Rune() != ch {
			t.Errorf("%q: expected Rune %q, got %q", ch, ch, ev.Rune())
		}
	}

	special := tr.Translate(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if special.IsPrintable() || special.Rune() != 0 {
		t.Errorf("special key: expected not printable, Rune 0, got %+v", special)
	}

	modified := tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt))
	if modified.IsPrintable() || modified.Rune() != 0 {
		t.Errorf("alt+x: expected not printable, got %+v", modified)
	}
}

func TestFuncKeyOrdinal(t *testing.T) {
	tr := NewTranslator()
	fkeys := []tcell.Key{
		tcell.KeyF1, tcell.KeyF2, tcell.KeyF3, tcell.KeyF4,
		tcell.KeyF5, tcell.KeyF6, tcell.KeyF7, tcell.KeyF8,
		tcell.KeyF9, tcell.KeyF10, tcell.KeyF11, tcell.KeyF12,
	}
	for i, k := range fkeys {
		ev := tr.Translate(tcell.NewEventKey(k, 0, tcell.ModNone))
		if ord := ev.FuncKey(); ord != i+1 {
			t.Errorf("F%d: expected ordinal %d, got %d", i+1, i+1, ord)
		}
	}
	up := tr.Translate(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if up.FuncKey() != 0 {
		t.Errorf("Up: expected ordinal 0, got %d", up.FuncKey())
	}
}

func TestTranslateResize(t *testing.T) {
	tr := NewTranslator()
	ev := tr.Translate(tcell.NewEventResize(120, 40))
	if ev.Type != EventResize {
		t.Fatalf("expected resize event, got type %d", ev.Type)
	}
	if ev.Width != 120 || ev.Height != 40 {
		t.Errorf("expected 120x40, got %dx%d", ev.Width, ev.Height)
	}
}

func TestTranslateNil(t *testing.T) {
	tr := NewTranslator()
	if ev := tr.Translate(nil); ev.Type != EventNone {
		t.Errorf("expected EventNone for nil, got type %d", ev.Type)
	}
	if ev := tr.Translate(tcell.NewEventInterrupt(nil)); ev.Type != EventNone {
		t.Errorf("expected EventNone for interrupt, got type %d", ev.Type)
	}
}

func TestMouseButtonPriority(t *testing.T) {
	tr := NewTranslator()

	// Left bit wins over right when both are reported.
	ev := tr.Translate(tcell.NewEventMouse(3, 4, tcell.Button1|tcell.Button2, tcell.ModNone))
	if ev.Btn != MouseBtnLeft {
		t.Errorf("expected left, got %d", ev.Btn)
	}
	if ev.Action != MouseActionPress {
		t.Errorf("expected press, got %d", ev.Action)
	}
	if ev.X != 3 || ev.Y != 4 {
		t.Errorf("expected (3,4), got (%d,%d)", ev.X, ev.Y)
	}

	tr = NewTranslator()
	ev = tr.Translate(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	if ev.Btn != MouseBtnWheelUp || ev.Action != MouseActionPress {
		t.Errorf("expected wheel-up press, got btn %d action %d", ev.Btn, ev.Action)
	}

	// A report carrying a button bit and a wheel bit resolves to the
	// button.
	tr = NewTranslator()
	ev = tr.Translate(tcell.NewEventMouse(0, 0, tcell.Button1|tcell.WheelUp, tcell.ModNone))
	if ev.Btn != MouseBtnLeft {
		t.Errorf("expected left over wheel, got %d", ev.Btn)
	}
}

func TestMouseWheelWhileDragging(t *testing.T) {
	tr := NewTranslator()

	ev := tr.Translate(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone))
	if ev.Btn != MouseBtnLeft || ev.Action != MouseActionPress {
		t.Fatalf("expected left press, got btn %d action %d", ev.Btn, ev.Action)
	}

	// Scroll with the button still held: the held bit is not newly
	// pressed, so the wheel surfaces.
	ev = tr.Translate(tcell.NewEventMouse(5, 5, tcell.Button1|tcell.WheelDown, tcell.ModNone))
	if ev.Btn != MouseBtnWheelDown || ev.Action != MouseActionPress {
		t.Errorf("expected wheel-down press mid-drag, got btn %d action %d", ev.Btn, ev.Action)
	}

	// The interleaved scroll does not break click synthesis.
	ev = tr.Translate(tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone))
	if ev.Btn != MouseBtnLeft || ev.Action != MouseActionClick {
		t.Errorf("expected click after drag+scroll, got btn %d action %d", ev.Btn, ev.Action)
	}
}

func TestMouseClickSynthesis(t *testing.T) {
	tr := NewTranslator()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	tr.now = func() time.Time { return now }

	press := func() Event {
		return tr.Translate(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone))
	}
	release := func() Event {
		return tr.Translate(tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone))
	}

	if ev := press(); ev.Action != MouseActionPress {
		t.Fatalf("expected press, got %d", ev.Action)
	}
	if ev := release(); ev.Action != MouseActionClick {
		t.Fatalf("expected click, got %d", ev.Action)
	}

	// Second click on the same cell inside the window upgrades.
	now = base.Add(200 * time.Millisecond)
	press()
	if ev := release(); ev.Action != MouseActionDoubleClick {
		t.Errorf("expected double-click, got %d", ev.Action)
	}

	// Too late: plain click again.
	now = now.Add(time.Second)
	press()
	if ev := release(); ev.Action != MouseActionClick {
		t.Errorf("expected click after window expiry, got %d", ev.Action)
	}

	// Release away from the press cell is a bare release.
	press()
	ev := tr.Translate(tcell.NewEventMouse(9, 9, tcell.ButtonNone, tcell.ModNone))
	if ev.Action != MouseActionRelease {
		t.Errorf("expected release, got %d", ev.Action)
	}
}

func TestMouseMotionDropped(t *testing.T) {
	tr := NewTranslator()
	ev := tr.Translate(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone))
	if ev.Type != EventNone {
		t.Errorf("expected no event for pure motion, got type %d", ev.Type)
	}
}
