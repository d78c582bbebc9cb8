package numberutils

import "testing"

func TestIsIntInRange(t *testing.T) {
	cases := []struct {
		num  int
		want bool
	}{
		{-1, false}, {0, true}, {50, true}, {100, true}, {101, false},
	}
	for _, c := range cases {
		if got := IsIntInRange(c.num, 0, 100); got != c.want {
			t.Errorf("IsIntInRange(%d, 0, 100) = %v, want %v", c.num, got, c.want)
		}
	}
}

func TestToInt(t *testing.T) {
	if got, err := ToIntWithError(" 7 "); err != nil || got != 7 {
		t.Errorf("expected 7, got %d (%v)", got, err)
	}
	if _, err := ToIntWithError("seven"); err == nil {
		t.Error("expected an error for a non numeric string")
	}
}
