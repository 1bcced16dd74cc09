package main

import "testing"

func TestReloadsLevel(t *testing.T) {
	tests := []struct {
		path, level string
		want        bool
	}{
		{"levels/demo.json", "demo", true},
		{"levels/demo.json", "demo.json", true},
		{"levels/other.json", "demo", false},
		{"prefabs/image_layer.yaml", "demo", true},
		{"levels/DEMO.JSON", "DEMO", true},
		{"assets/sky.png", "demo", true},
	}
	for _, tc := range tests {
		if got := reloadsLevel(tc.path, tc.level); got != tc.want {
			t.Errorf("reloadsLevel(%q, %q) = %v, want %v", tc.path, tc.level, got, tc.want)
		}
	}
}

func TestPlaceholderColorStable(t *testing.T) {
	if placeholderColor("sky.png") != placeholderColor("sky.png") {
		t.Fatal("placeholder color should be stable per path")
	}
	seen := map[[4]uint8]bool{}
	for _, p := range []string{"a.png", "b.png", "c.png", "d.png", "e.png", "f.png", "g.png"} {
		c := placeholderColor(p)
		seen[[4]uint8{c.R, c.G, c.B, c.A}] = true
	}
	if len(seen) < 2 {
		t.Fatal("expected placeholder colors to vary across paths")
	}
}
