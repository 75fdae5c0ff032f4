package foreground

import "testing"

func TestMatcher(t *testing.T) {
	tests := []struct {
		name    string
		targets []string
		host    string
		exe     string
		want    bool
	}{
		{
			name: "Default Target",
			exe:  "ffxiv.exe",
			want: true,
		},
		{
			name: "Default DX11 Target",
			exe:  "ffxiv_dx11.exe",
			want: true,
		},
		{
			name: "Case Insensitive",
			exe:  "FFXIV_DX11.exe",
			want: true,
		},
		{
			name: "Unrelated Process",
			exe:  "explorer.exe",
			want: false,
		},
		{
			name: "Host Process",
			host: "stickies.exe",
			exe:  "STICKIES.EXE",
			want: true,
		},
		{
			name:    "Glob Pattern",
			targets: []string{"ffxiv*.exe"},
			exe:     "ffxiv_dx11.exe",
			want:    true,
		},
		{
			name:    "Glob Pattern Miss",
			targets: []string{"ffxiv*.exe"},
			exe:     "notepad.exe",
			want:    false,
		},
		{
			name: "Empty Name",
			exe:  "",
			want: false,
		},
		{
			name: "Whitespace Trimmed",
			exe:  "  ffxiv.exe  ",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			targets := tt.targets
			if targets == nil {
				targets = DefaultTargets()
			}
			m := NewMatcher(targets, tt.host)
			if got := m.Matches(tt.exe); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.exe, got, tt.want)
			}
		})
	}
}

func TestNewMatcherDropsEmptyEntries(t *testing.T) {
	m := NewMatcher([]string{"", "  ", "a.exe"}, "")
	if len(m.patterns) != 1 {
		t.Errorf("expected 1 pattern, got %d", len(m.patterns))
	}
}
