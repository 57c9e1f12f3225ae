package terminal

import "testing"

func TestColorKinds(t *testing.T) {
	if !ColorDefault.IsDefault() {
		t.Error("Expected ColorDefault to be default")
	}
	if idx, ok := ColorMagenta.Index(); !ok || idx != 5 {
		t.Errorf("Expected magenta index 5, got %d (named=%v)", idx, ok)
	}
	if _, ok := ColorMagenta.RGB(); ok {
		t.Error("Expected named color to report no RGB")
	}
	if idx, _ := Named(200).Index(); idx != 15 {
		t.Errorf("Expected index clamped to 15, got %d", idx)
	}
	orange := TrueColor(255, 87, 51)
	if rgb, ok := orange.RGB(); !ok || rgb != (RGB{255, 87, 51}) {
		t.Errorf("Expected rgb(255,87,51), got %v", orange)
	}
	if orange == TrueColor(255, 87, 52) {
		t.Error("Expected different RGB triples to compare unequal")
	}
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want uint8
	}{
		{"Black", RGB{0, 0, 0}, 16},
		{"White", RGB{255, 255, 255}, 231},
		{"Pure red", RGB{255, 0, 0}, 196},
		{"Pure green", RGB{0, 255, 0}, 46},
		{"Pure blue", RGB{0, 0, 255}, 21},
		{"Mid gray", RGB{128, 128, 128}, 244},
		{"Orange", RGB{255, 87, 51}, 203},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.in); got != tt.want {
				t.Errorf("Expected %d for %v, got %d", tt.want, tt.in, got)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in   string
		want ColorMode
	}{
		{"none", ColorModeNone},
		{"PLAIN", ColorModeNone},
		{"256", ColorMode256},
		{"truecolor", ColorModeTrueColor},
		{"24bit", ColorModeTrueColor},
	}
	for _, tt := range tests {
		if got := ParseColorMode(tt.in); got != tt.want {
			t.Errorf("Expected %v for %q, got %v", tt.want, tt.in, got)
		}
	}
}

func TestDetectColorModeNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if got := DetectColorMode(); got != ColorModeNone {
		t.Errorf("Expected none with NO_COLOR set, got %v", got)
	}
}
