package iedb

import "testing"

func splitGroups() []EpitopeGroup {
	return []EpitopeGroup{
		{Epitope: "AAAA", PositiveFraction: 1, Count: 2},
		{Epitope: "CCCC", PositiveFraction: 0, Count: 2},
		{Epitope: "DDDD", PositiveFraction: 0.75, Count: 4},
		{Epitope: "EEEE", PositiveFraction: 0.25, Count: 4},
		{Epitope: "FFFF", PositiveFraction: 0.5, Count: 2},
	}
}

func checkDisjoint(t *testing.T, set LabeledSet) {
	t.Helper()
	for e := range set.Positive {
		if _, ok := set.Negative[e]; ok {
			t.Errorf("epitope %s is in both sets", e)
		}
	}
}

func TestSplitDropPolicy(t *testing.T) {
	set, err := Split(splitGroups(), NoisyDrop)
	if err != nil {
		t.Fatal(err)
	}
	checkDisjoint(t, set)

	if len(set.Positive) != 1 || len(set.Negative) != 1 {
		t.Errorf("expected only unanimous epitopes, got %+v", set)
	}
	for _, noisy := range []string{"DDDD", "EEEE", "FFFF"} {
		if _, ok := set.Positive[noisy]; ok {
			t.Errorf("noisy epitope %s was labeled positive", noisy)
		}
		if _, ok := set.Negative[noisy]; ok {
			t.Errorf("noisy epitope %s was labeled negative", noisy)
		}
	}
}

func TestSplitMajorityPolicy(t *testing.T) {
	set, err := Split(splitGroups(), NoisyMajority)
	if err != nil {
		t.Fatal(err)
	}
	checkDisjoint(t, set)

	wantPos := []string{"AAAA", "DDDD"}
	wantNeg := []string{"CCCC", "EEEE", "FFFF"} // exact 0.5 tie goes negative
	for _, e := range wantPos {
		if _, ok := set.Positive[e]; !ok {
			t.Errorf("expected %s in the positive set", e)
		}
	}
	for _, e := range wantNeg {
		if _, ok := set.Negative[e]; !ok {
			t.Errorf("expected %s in the negative set", e)
		}
	}
}

func TestSplitForcedPolicies(t *testing.T) {
	set, err := Split(splitGroups(), NoisyPositive)
	if err != nil {
		t.Fatal(err)
	}
	checkDisjoint(t, set)
	if len(set.Positive) != 4 || len(set.Negative) != 1 {
		t.Errorf("unexpected split for the positive policy: %+v", set)
	}

	set, err = Split(splitGroups(), NoisyNegative)
	if err != nil {
		t.Fatal(err)
	}
	checkDisjoint(t, set)
	if len(set.Positive) != 1 || len(set.Negative) != 4 {
		t.Errorf("unexpected split for the negative policy: %+v", set)
	}
}

func TestSplitUnknownPolicy(t *testing.T) {
	if _, err := Split(splitGroups(), NoisyLabelPolicy("bogus")); err == nil {
		t.Error("expected an error for an unknown policy")
	}
}

func TestSplitSortedAccessors(t *testing.T) {
	set, err := Split(splitGroups(), NoisyMajority)
	if err != nil {
		t.Fatal(err)
	}

	pos := set.Positives()
	if len(pos) != 2 || pos[0] != "AAAA" || pos[1] != "DDDD" {
		t.Errorf("unexpected sorted positives: %v", pos)
	}
}
