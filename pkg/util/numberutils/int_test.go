package numberutils

import "testing"

func TestIsInt(t *testing.T) {
	if !IsInt("42") || !IsInt("-7") {
		t.Fatalf("expected integer strings to be recognized")
	}
	if IsInt("4.2") || IsInt("abc") || IsInt("") {
		t.Fatalf("expected non-integer strings to be rejected")
	}
}

func TestToInt(t *testing.T) {
	if ToInt("42") != 42 {
		t.Fatalf("expected 42")
	}
	if ToInt("nope") != 0 {
		t.Fatalf("expected 0 for an invalid string")
	}
}

func TestToIntWithDefault(t *testing.T) {
	if ToIntWithDefault("15", 5) != 15 {
		t.Fatalf("expected the parsed value")
	}
	if ToIntWithDefault("", 5) != 5 {
		t.Fatalf("expected the default for an empty string")
	}
}

func TestIsIntInRange(t *testing.T) {
	if !IsIntInRange(5, 1, 10) || !IsIntInRange(1, 1, 10) || !IsIntInRange(10, 1, 10) {
		t.Fatalf("expected inclusive bounds")
	}
	if IsIntInRange(0, 1, 10) || IsIntInRange(11, 1, 10) {
		t.Fatalf("expected out-of-range values to be rejected")
	}
}
