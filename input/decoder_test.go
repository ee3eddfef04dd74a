package input

import "testing"

func feed(bytes ...byte) <-chan byte {
	ch := make(chan byte, len(bytes))
	for _, b := range bytes {
		ch <- b
	}
	return ch
}

func TestDispatchCSIArrows(t *testing.T) {
	ch := make(chan Event, 1)
	dispatchCSI(nil, 'A', ch)
	if ev := <-ch; ev.Key != KeyArrowUp {
		t.Fatalf("got %v, want KeyArrowUp", ev.Key)
	}
}

func TestDispatchTildeWithModifier(t *testing.T) {
	ch := make(chan Event, 1)
	dispatchTilde("3;5", ch)
	if ev := <-ch; ev.Key != KeyDelete {
		t.Fatalf("got %v, want KeyDelete (modifier suffix stripped)", ev.Key)
	}
}

func TestParseCSIReadsX10Mouse(t *testing.T) {
	// Cb=32 (left button, offset 32), Cx=33 (col 1), Cy=34 (row 2).
	raw := feed('M', 32, 33, 34)
	ch := make(chan Event, 1)
	parseCSI(raw, ch)

	ev := <-ch
	if ev.Key != KeyMouse {
		t.Fatalf("got %v, want KeyMouse", ev.Key)
	}
	if ev.Mouse.Button != MouseLeft || ev.Mouse.X != 1 || ev.Mouse.Y != 2 {
		t.Fatalf("unexpected mouse event %+v", ev.Mouse)
	}
}

func TestDispatchSGRMousePressAndRelease(t *testing.T) {
	ch := make(chan Event, 2)
	dispatchSGRMouse("0;10;20", 'M', ch)
	dispatchSGRMouse("0;10;20", 'm', ch)

	press := <-ch
	if press.Mouse.Button != MouseLeft || press.Mouse.X != 10 || press.Mouse.Y != 20 {
		t.Fatalf("press decode wrong: %+v", press.Mouse)
	}
	release := <-ch
	if release.Mouse.Button != MouseRelease {
		t.Fatalf("release decode wrong: %+v", release.Mouse)
	}
}

func TestParseSS3Arrow(t *testing.T) {
	raw := feed('A')
	ch := make(chan Event, 1)
	parseSS3(raw, ch)
	if ev := <-ch; ev.Key != KeyArrowUp {
		t.Fatalf("got %v, want KeyArrowUp", ev.Key)
	}
}

func TestProcessCharCtrl(t *testing.T) {
	ch := make(chan Event, 1)
	processChar(0x03, ch)
	if ev := <-ch; ev.Rune != 'c' || ev.Mod != ModCtrl {
		t.Fatalf("got %+v, want Ctrl+c", ev)
	}
}
