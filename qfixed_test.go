package main

import "testing"

func TestQfixed_WidenNarrowRoundTrip(t *testing.T) {
	for v := SQ015(sq015Min); v <= sq015Max; v += 997 {
		widened := WidenSQ015ToSQ021(v)
		if got := NarrowSQ021ToSQ015(widened); got != v {
			t.Fatalf("SQ015->SQ021->SQ015 round trip: got %d, want %d", got, v)
		}
	}
}

func TestQfixed_WidenUQ016ToUQ022RoundTrip(t *testing.T) {
	for v := UQ016(0); v <= uq016Max; v += 991 {
		widened := WidenUQ016ToUQ022(v)
		if got := NarrowUQ022ToUQ016(widened); got != v {
			t.Fatalf("UQ016->UQ022->UQ016 round trip: got %d, want %d", got, v)
		}
	}
}

func TestQfixed_WidenSQ015ToUQ016RejectsNegative(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic widening a negative SQ0.15 to UQ0.16")
		}
	}()
	WidenSQ015ToUQ016(-1)
}

func TestQfixed_SignUnsignedReinterpretRoundTrip(t *testing.T) {
	for v := SQ015(0); v <= sq015Max; v += 991 {
		u := WidenSQ015ToUQ016(v)
		if got := NarrowUQ016ToSQ015(u); got != v {
			t.Fatalf("SQ015->UQ016->SQ015 round trip: got %d, want %d", got, v)
		}
	}
}

func TestQfixed_AddUQ022NeverOverflowsUQ121(t *testing.T) {
	a, b := UQ022(uq022Max), UQ022(uq022Max)
	sum := AddUQ022(a, b)
	if sum > uq121Max {
		t.Fatalf("AddUQ022 overflowed UQ1.21: %d", sum)
	}
}

func TestQfixed_CheckFunctionsRejectOutOfRange(t *testing.T) {
	cases := []func(){
		func() { checkSQ015(sq015Max + 1) },
		func() { checkSQ015(sq015Min - 1) },
		func() { checkUQ016(uq016Max + 1) },
		func() { checkSQ021(sq021Max + 1) },
		func() { checkUQ022(uq022Max + 1) },
		func() { checkUQ121(uq121Max + 1) },
	}
	for i, fn := range cases {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("case %d: expected panic", i)
				}
			}()
			fn()
		}()
	}
}
