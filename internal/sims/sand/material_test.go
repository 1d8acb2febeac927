package sand

import "testing"

func TestStateClassification(t *testing.T) {
	cases := []struct {
		m    Material
		want State
	}{
		{Rock, StateSolid},
		{Sand, StateSolid},
		{Water, StateLiquid},
		{Smoke, StateGas},
		// Air classifies as gas so moving into empty space shares the
		// gas-target rules.
		{Air, StateGas},
	}
	for _, c := range cases {
		if got := StateOf(c.m); got != c.want {
			t.Fatalf("StateOf(%v) = %v, expected %v", c.m, got, c.want)
		}
	}
}
