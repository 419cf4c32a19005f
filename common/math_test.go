package common

import "testing"

func TestDecimalToFixed(t *testing.T) {
	cases := []struct {
		in        float64
		precision int
		want      float64
	}{
		{2.675, 2, 2.68},
		{-2.675, 2, -2.68},
		{40.1150004, 6, 40.115},
		{-88.2472225, 6, -88.247223},
		{14602860, 2, 14602860},
	}
	for _, c := range cases {
		if got := DecimalToFixed(c.in, c.precision); got != c.want {
			t.Errorf("DecimalToFixed(%v, %d): Expected %v, but got %v", c.in, c.precision, c.want, got)
		}
	}
}

func TestDecimalString(t *testing.T) {
	if got := DecimalString(40.115, 6); got != "40.115000" {
		t.Errorf("Expected 40.115000, but got %s", got)
	}
	if got := DecimalString(3.14159, 2); got != "3.14" {
		t.Errorf("Expected 3.14, but got %s", got)
	}
}

func TestRound(t *testing.T) {
	if Round(2.5) != 3 || Round(-2.5) != -3 || Round(2.4) != 2 {
		t.Error("Expected half away from zero rounding")
	}
}
