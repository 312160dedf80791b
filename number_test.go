package calctree

import (
	"errors"
	"math"
	"testing"
)

func TestNumber(t *testing.T) {
	cases := []struct {
		src string
		r   float64
	}{
		{"0", 0},
		{"9876543210", 9876543210},
		{"1.0", 1},
		{".5", 0.5},
		{"1e1", 10},
		{"1e+1", 10},
		{"1e-1", 0.1},
		{"1.0e1", 10},
		{"-3", -3},
		{" 7 ", 7},
		{"pi", math.Pi},
		{"π", math.Pi},
		{"e", math.E},
	}
	for _, c := range cases {
		x, err := number(c.src, 64)
		if err != nil {
			t.Errorf("number(%q): %v", c.src, err)
			continue
		}
		if x.Prec() != 64 {
			t.Errorf("number(%q) has precision %d, want 64", c.src, x.Prec())
		}
		if f, _ := x.Float64(); math.Abs(f-c.r) > 1e-15*math.Max(1, math.Abs(c.r)) {
			t.Errorf("number(%q): want %g, got %g", c.src, c.r, x)
		}
	}
}

func TestNumberError(t *testing.T) {
	cases := []string{"", "  ", ".", "1e", "1.1.1", "1a", "$", "inf", "Inf", "+inf", "1e99999999999", "0x10"}
	for _, c := range cases {
		x, err := number(c, 64)
		if err == nil {
			t.Errorf("number(%q) gave %g with no error", c, x)
			continue
		}
		var nerr *NumberError
		if !errors.As(err, &nerr) {
			t.Errorf("number(%q) gave %#v, not *NumberError", c, err)
		}
	}
}

func TestNumberPrec(t *testing.T) {
	lo, err := number("pi", 16)
	if err != nil {
		t.Fatal(err)
	}
	hi, err := number("pi", 256)
	if err != nil {
		t.Fatal(err)
	}
	if lo.Prec() != 16 || hi.Prec() != 256 {
		t.Errorf("wrong precisions: %d, %d", lo.Prec(), hi.Prec())
	}
	if lo.Cmp(hi) == 0 {
		t.Errorf("pi at 16 and 256 bits compare equal: %v", lo)
	}
}
