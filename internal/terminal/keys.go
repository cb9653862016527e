package terminal

import "unicode/utf8"

const (
	KeyEnter     Key = "enter"
	KeyEsc       Key = "esc"
	KeyTab       Key = "tab"
	KeyBackspace Key = "backspace"
	KeyUp        Key = "up"
	KeyDown      Key = "down"
	KeyRight     Key = "right"
	KeyLeft      Key = "left"
	KeyCtrlC     Key = "ctrl+c"
)

var arrowKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
}

// decodeKeys splits a chunk of raw tty input into key presses.
// Unrecognized escape sequences are dropped.
func decodeKeys(b []byte) []Key {
	var keys []Key
	for len(b) > 0 {
		c := b[0]
		switch {
		case c == 0x1b:
			n, k := decodeEscape(b)
			if k != "" {
				keys = append(keys, k)
			}
			b = b[n:]
			continue
		case c == '\r' || c == '\n':
			keys = append(keys, KeyEnter)
		case c == '\t':
			keys = append(keys, KeyTab)
		case c == 0x7f || c == 0x08:
			keys = append(keys, KeyBackspace)
		case c >= 0x01 && c <= 0x1a:
			keys = append(keys, Key("ctrl+"+string(rune('a'+c-1))))
		case c < 0x20:
			// other control bytes have no binding
		default:
			r, size := utf8.DecodeRune(b)
			if r != utf8.RuneError {
				keys = append(keys, Key(string(r)))
			}
			b = b[size:]
			continue
		}
		b = b[1:]
	}
	return keys
}

// decodeEscape consumes an escape sequence starting at b[0] and returns
// how many bytes it used.
func decodeEscape(b []byte) (int, Key) {
	if len(b) == 1 {
		return 1, KeyEsc
	}
	if b[1] != '[' && b[1] != 'O' {
		// alt+<key>; treat the escape on its own
		return 1, KeyEsc
	}
	// CSI / SS3: parameters then a final byte in 0x40-0x7e
	for i := 2; i < len(b); i++ {
		if b[i] >= 0x40 && b[i] <= 0x7e {
			if i == 2 {
				if k, ok := arrowKeys[b[i]]; ok {
					return i + 1, k
				}
			}
			return i + 1, ""
		}
	}
	return len(b), ""
}
