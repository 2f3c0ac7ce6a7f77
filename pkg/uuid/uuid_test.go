package uuid

import (
	"regexp"
	"testing"
	"time"
)

var uuidRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestNewV7_Format(t *testing.T) {
	t.Parallel()

	got := NewV7().String()
	if !uuidRe.MatchString(got) {
		t.Errorf("not a v7 UUID: %q", got)
	}
}

func TestNewV7_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool, 1000)
	for range 1000 {
		s := NewV7().String()
		if seen[s] {
			t.Fatalf("duplicate UUID: %q", s)
		}
		seen[s] = true
	}
}

func TestNewV7_TimestampOrdered(t *testing.T) {
	t.Parallel()

	a := NewV7().String()
	time.Sleep(2 * time.Millisecond)
	b := NewV7().String()
	if !(a < b) {
		t.Errorf("expected lexicographic ordering across milliseconds: %q then %q", a, b)
	}
}
