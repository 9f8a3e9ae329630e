package precaution_test

import (
	"testing"

	"github.com/jonesrussell/north-cloud/crime-risk/internal/precaution"
)

func TestDefault_KnownCrimeTypes(t *testing.T) {
	t.Parallel()

	c := precaution.Default()
	for _, crime := range []string{"theft", "robbery", "assault", "rape", "murder", "cybercrime"} {
		if got := c.Lookup(crime); len(got) != 3 {
			t.Errorf("Lookup(%q) returned %d advisories, want 3", crime, len(got))
		}
	}
	if c.Len() != 6 {
		t.Errorf("Len() = %d, want 6", c.Len())
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	t.Parallel()

	got := precaution.Default().Lookup("THEFT")
	if len(got) == 0 || got[0] != "Keep valuables out of sight" {
		t.Fatalf("Lookup(THEFT) = %v", got)
	}
}

func TestLookup_UnknownIsEmptyNotNil(t *testing.T) {
	t.Parallel()

	got := precaution.Default().Lookup("arson")
	if got == nil {
		t.Fatal("expected non-nil slice")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	t.Parallel()

	c := precaution.Default()
	first := c.Lookup("robbery")
	first[0] = "mutated"

	if second := c.Lookup("robbery"); second[0] != "Avoid isolated areas late at night" {
		t.Fatalf("catalog mutated through returned slice: %v", second)
	}
}
