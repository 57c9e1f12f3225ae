package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments
var (
	csi      = []byte("\x1b[")
	csiReset = []byte("\x1b[0m")

	sgrFgRGB = []byte("38;2;")
	sgrBgRGB = []byte("48;2;")
	sgrFg256 = []byte("38;5;")
	sgrBg256 = []byte("48;5;")
)

// writeInt writes an integer without allocation
// Optimized for SGR parameters (0-255)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeColorParams writes SGR parameters for one color, no CSI prefix or 'm' suffix
// base is 30 for foreground, 40 for background
func writeColorParams(w *bufio.Writer, c Color, base int, mode ColorMode) {
	if idx, ok := c.Index(); ok {
		if idx < 8 {
			writeInt(w, base+int(idx))
		} else {
			writeInt(w, base+60+int(idx-8))
		}
		return
	}

	rgb, _ := c.RGB()
	if mode == ColorMode256 {
		if base == 30 {
			w.Write(sgrFg256)
		} else {
			w.Write(sgrBg256)
		}
		writeInt(w, int(RGBTo256(rgb)))
		return
	}

	if base == 30 {
		w.Write(sgrFgRGB)
	} else {
		w.Write(sgrBgRGB)
	}
	writeInt(w, int(rgb.R))
	w.WriteByte(';')
	writeInt(w, int(rgb.G))
	w.WriteByte(';')
	writeInt(w, int(rgb.B))
}

// WriteCell paints one cell: a styled cell is wrapped in a single combined SGR
// sequence and a reset, an unstyled cell is written bare
func WriteCell(w *bufio.Writer, c Cell, mode ColorMode) {
	if mode == ColorModeNone || !c.Styled() {
		w.WriteString(c.Text())
		return
	}

	w.Write(csi)
	first := true
	if !c.Fg.IsDefault() {
		writeColorParams(w, c.Fg, 30, mode)
		first = false
	}
	if !c.Bg.IsDefault() {
		if !first {
			w.WriteByte(';')
		}
		writeColorParams(w, c.Bg, 40, mode)
	}
	w.WriteByte('m')

	w.WriteString(c.Text())
	w.Write(csiReset)
}
