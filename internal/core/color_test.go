package core

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		wantErr  bool
	}{
		{"#1e1e1e", RGB(30, 30, 30), false},
		{"00ffff", RGB(0, 255, 255), false},
		{" #FF6464 ", RGB(255, 100, 100), false},
		{"#fff", Color{}, true},
		{"#gg0000", Color{}, true},
		{"", Color{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHex(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseHex(%q) expected error, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("ParseHex(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(255, 100, 100).Hex(); got != "#ff6464" {
		t.Errorf("Hex() = %q, expected #ff6464", got)
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := RGB(255, 0, 128).RGBA()
	if r != 0xffff || g != 0 || b != 0x8080 || a != 0xffff {
		t.Errorf("RGBA() = (%#x, %#x, %#x, %#x)", r, g, b, a)
	}
}
