package input

// maxSGRLength bounds the search for an SGR terminator.
const maxSGRLength = 32

type mouseButton uint8

const (
	mouseNone mouseButton = iota
	mouseLeft
	mouseMiddle
	mouseRight
	mouseWheel
)

type mouseAction uint8

const (
	mousePress mouseAction = iota
	mouseRelease
	mouseMove
	mouseDrag
)

// mouseEvent is a decoded SGR mouse report in 0-indexed cells.
type mouseEvent struct {
	x, y   int
	button mouseButton
	action mouseAction
}

// parseSGRMouse parses a report of the form ESC [ < Btn ; X ; Y (M|m).
// It returns the number of bytes consumed and whether they held a valid
// report. A zero length means the terminator has not arrived yet.
func parseSGRMouse(data []byte) (int, mouseEvent, bool) {
	end := 3
	for end < len(data) && end < maxSGRLength {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		end++
	}
	if end >= len(data) {
		if len(data) < maxSGRLength {
			return 0, mouseEvent{}, false
		}
		return 3, mouseEvent{}, false
	}
	if data[end] != 'M' && data[end] != 'm' {
		return 3, mouseEvent{}, false
	}

	btn, x, y, ok := parseSGRParams(data[3:end])
	if !ok || x < 1 || y < 1 {
		return end + 1, mouseEvent{}, false
	}

	ev := mouseEvent{x: x - 1, y: y - 1}

	// Bits 0-1: button (3 = release), bit 5: motion, bit 6: wheel
	id := btn & 0x03
	motion := btn&32 != 0
	if btn&64 != 0 {
		ev.button = mouseWheel
		ev.action = mousePress
		return end + 1, ev, true
	}

	switch id {
	case 0:
		ev.button = mouseLeft
	case 1:
		ev.button = mouseMiddle
	case 2:
		ev.button = mouseRight
	case 3:
		ev.button = mouseNone
	}

	switch {
	case data[end] == 'm':
		ev.action = mouseRelease
	case motion && ev.button != mouseNone:
		ev.action = mouseDrag
	case motion:
		ev.action = mouseMove
	case ev.button == mouseNone:
		ev.action = mouseRelease // Legacy release encoding
	default:
		ev.action = mousePress
	}
	return end + 1, ev, true
}

// parseSGRParams splits "Btn;X;Y" into its three decimal fields.
func parseSGRParams(params []byte) (btn, x, y int, ok bool) {
	var fields [3]int
	field, digits := 0, 0
	for _, c := range params {
		switch {
		case c >= '0' && c <= '9':
			fields[field] = fields[field]*10 + int(c-'0')
			digits++
		case c == ';':
			if digits == 0 || field == 2 {
				return 0, 0, 0, false
			}
			field++
			digits = 0
		default:
			return 0, 0, 0, false
		}
	}
	if field != 2 || digits == 0 {
		return 0, 0, 0, false
	}
	return fields[0], fields[1], fields[2], true
}
