package request

import "testing"

func TestNew_Defaults(t *testing.T) {
	r := New("Henry Ward Beecher", true, 0, 0)
	if r.Query() != "henry ward beecher" {
		t.Errorf("Query() = %q, want lower-cased", r.Query())
	}
	if !r.Autocomplete() {
		t.Error("Autocomplete() = false")
	}
	if r.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want %d", r.Limit(), DefaultLimit)
	}
	if r.Skip() != 0 {
		t.Errorf("Skip() = %d, want 0", r.Skip())
	}
}

func TestNew_LimitClamping(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, DefaultLimit},
		{0, DefaultLimit},
		{1, 1},
		{50, 50},
		{51, MaxLimit},
		{9999, MaxLimit},
	}
	for _, tc := range tests {
		if got := New("q", true, tc.in, 0).Limit(); got != tc.want {
			t.Errorf("limit %d: got %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNew_SkipClamping(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-1, 0},
		{0, 0},
		{10, 10},
		{1000, 1000},
		{1001, MaxSkip},
	}
	for _, tc := range tests {
		if got := New("q", true, 0, tc.in).Skip(); got != tc.want {
			t.Errorf("skip %d: got %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNew_TrailingSpaceDisablesAutocomplete(t *testing.T) {
	r := New("henry ward ", true, 0, 0)
	if r.Autocomplete() {
		t.Error("Autocomplete() = true, want false for trailing space")
	}
	if r.Query() != "henry ward" {
		t.Errorf("Query() = %q", r.Query())
	}
}

func TestNew_EmptyQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\t "} {
		if r := New(q, true, 0, 0); !r.IsZero() {
			t.Errorf("IsZero() = false for %q", q)
		}
	}
}

func TestParseAutocomplete(t *testing.T) {
	falsy := []string{"false", "FALSE", "f", "0", "no", "off", " False "}
	for _, s := range falsy {
		if ParseAutocomplete(s) {
			t.Errorf("ParseAutocomplete(%q) = true", s)
		}
	}
	truthy := []string{"", "true", "1", "t", "yes", "on", "banana"}
	for _, s := range truthy {
		if !ParseAutocomplete(s) {
			t.Errorf("ParseAutocomplete(%q) = false", s)
		}
	}
}
