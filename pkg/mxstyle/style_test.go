package mxstyle

import "testing"

func TestParseAndString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"empty", "", ""},
		{"single pair", "rounded=1", "rounded=1;"},
		{"pairs keep order", "rounded=1;fillColor=#dae8fc", "rounded=1;fillColor=#dae8fc;"},
		{"bare token", "group", "group;"},
		{"mixed", "group;fillColor=none;connectable=0", "group;fillColor=none;connectable=0;"},
		{"trailing semicolon", "rounded=0;whiteSpace=wrap;html=1;", "rounded=0;whiteSpace=wrap;html=1;"},
		{"empty segments dropped", ";;rounded=1;;", "rounded=1;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.in).String(); got != tt.out {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.in, got, tt.out)
			}
		})
	}
}

func TestSet(t *testing.T) {
	s := Parse("rounded=1;fillColor=#fff")

	// Replacing keeps position
	s.Set("rounded", "0")
	if got := s.String(); got != "rounded=0;fillColor=#fff;" {
		t.Errorf("after replace: %q", got)
	}

	// New keys append
	s.Set("strokeColor", "#000")
	if got := s.String(); got != "rounded=0;fillColor=#fff;strokeColor=#000;" {
		t.Errorf("after append: %q", got)
	}
}

func TestGet(t *testing.T) {
	s := Parse("group;fillColor=#fff")

	if v, ok := s.Get("fillColor"); !ok || v != "#fff" {
		t.Errorf("Get(fillColor) = %q, %v", v, ok)
	}
	if v, ok := s.Get("group"); !ok || v != "" {
		t.Errorf("Get(group) = %q, %v", v, ok)
	}
	if _, ok := s.Get("missing"); ok {
		t.Error("Get(missing) should report absent")
	}
}

func TestAddTokenIdempotent(t *testing.T) {
	s := Parse("fillColor=none")
	s.AddToken("group")
	s.AddToken("group")
	s.AddToken("group")

	if got := s.String(); got != "fillColor=none;group;" {
		t.Errorf("AddToken not idempotent: %q", got)
	}
}

func TestHasTokenIgnoresPairs(t *testing.T) {
	s := Parse("group=1")
	if s.HasToken("group") {
		t.Error("group=1 is a pair, not a bare token")
	}
}

func TestRemove(t *testing.T) {
	s := Parse("group;fillColor=none;connectable=0")
	s.Remove("fillColor")
	if got := s.String(); got != "group;connectable=0;" {
		t.Errorf("after Remove: %q", got)
	}
}

func TestEnsureToken(t *testing.T) {
	if got := EnsureToken("fillColor=none", "group"); got != "fillColor=none;group;" {
		t.Errorf("EnsureToken append: %q", got)
	}
	if got := EnsureToken("group;fillColor=none", "group"); got != "group;fillColor=none;" {
		t.Errorf("EnsureToken existing: %q", got)
	}
}
