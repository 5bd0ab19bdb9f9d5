package input

import "testing"

func TestParseSGRMouse(t *testing.T) {
	tests := []struct {
		name string
		data string
		n    int
		ok   bool
		want mouseEvent
	}{
		{"left press", "\x1b[<0;10;5M", 10, true, mouseEvent{x: 9, y: 4, button: mouseLeft, action: mousePress}},
		{"left release", "\x1b[<0;10;5m", 10, true, mouseEvent{x: 9, y: 4, button: mouseLeft, action: mouseRelease}},
		{"right press", "\x1b[<2;1;1M", 9, true, mouseEvent{x: 0, y: 0, button: mouseRight, action: mousePress}},
		{"motion", "\x1b[<35;120;40M", 13, true, mouseEvent{x: 119, y: 39, button: mouseNone, action: mouseMove}},
		{"drag", "\x1b[<32;3;4M", 10, true, mouseEvent{x: 2, y: 3, button: mouseLeft, action: mouseDrag}},
		{"wheel", "\x1b[<64;3;4M", 10, true, mouseEvent{x: 2, y: 3, button: mouseWheel, action: mousePress}},
		{"trailing bytes", "\x1b[<0;2;2Mxyz", 9, true, mouseEvent{x: 1, y: 1, button: mouseLeft, action: mousePress}},
		{"incomplete", "\x1b[<0;10", 0, false, mouseEvent{}},
		{"zero coordinate", "\x1b[<0;0;5M", 9, false, mouseEvent{}},
		{"missing field", "\x1b[<0;5M", 7, false, mouseEvent{}},
		{"garbage", "\x1b[<0;a;5M", 9, false, mouseEvent{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ev, ok := parseSGRMouse([]byte(tt.data))
			if n != tt.n || ok != tt.ok {
				t.Fatalf("parseSGRMouse(%q) = (%d, %v), want (%d, %v)", tt.data, n, ok, tt.n, tt.ok)
			}
			if ok && ev != tt.want {
				t.Errorf("event = %+v, want %+v", ev, tt.want)
			}
		})
	}
}

func TestParseSGRMouseRunaway(t *testing.T) {
	data := []byte("\x1b[<")
	for len(data) < maxSGRLength+4 {
		data = append(data, '1')
	}
	n, _, ok := parseSGRMouse(data)
	if n != 3 || ok {
		t.Errorf("unterminated report: n = %d ok = %v, want 3 false", n, ok)
	}
}
