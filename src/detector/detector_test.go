package detector

import "testing"

func TestCrateChannel(t *testing.T) {
	cases := []struct {
		board, ch, want int
	}{
		{0, 0, 0},
		{0, 63, 63},
		{1, 0, 64},
		{2, 5, 133},
		{8, 63, 575},
	}
	for _, c := range cases {
		if got := CrateChannel(c.board, c.ch); got != c.want {
			t.Fatalf("CrateChannel(%d,%d) = %d, want %d", c.board, c.ch, got, c.want)
		}
	}
}

func TestPlaneOffset(t *testing.T) {
	cases := []struct {
		tpc, plane, want int
	}{
		{0, Induction1, 0},
		{0, Induction2, 2304},
		{0, Collection, 8064},
		{1, Induction1, 13824},
		{1, Collection, 13824 + 8064},
		{3, Collection, 3*13824 + 8064},
	}
	for _, c := range cases {
		if got := PlaneOffset(c.tpc, c.plane); got != c.want {
			t.Fatalf("PlaneOffset(%d,%d) = %d, want %d", c.tpc, c.plane, got, c.want)
		}
	}
}

func TestTPCOfAndRange(t *testing.T) {
	if got := TPCOf(0); got != 0 {
		t.Fatalf("TPCOf(0) = %d", got)
	}
	if got := TPCOf(13823); got != 0 {
		t.Fatalf("TPCOf(13823) = %d", got)
	}
	if got := TPCOf(13824); got != 1 {
		t.Fatalf("TPCOf(13824) = %d", got)
	}
	lo, hi := ChannelRange(2)
	if lo != 27648 || hi != 41472 {
		t.Fatalf("ChannelRange(2) = [%d,%d)", lo, hi)
	}
	for id := lo; id < hi; id += 1000 {
		if TPCOf(id) != 2 {
			t.Fatalf("TPCOf(%d) = %d, want 2", id, TPCOf(id))
		}
	}
}

func TestTPCName(t *testing.T) {
	want := []string{"EE", "EW", "WE", "WW"}
	for i, w := range want {
		got, err := TPCName(i)
		if err != nil {
			t.Fatalf("TPCName(%d): %v", i, err)
		}
		if got != w {
			t.Fatalf("TPCName(%d) = %q, want %q", i, got, w)
		}
	}
	if _, err := TPCName(NTPC); err == nil {
		t.Fatalf("TPCName(%d) should fail", NTPC)
	}
	if _, err := TPCName(-1); err == nil {
		t.Fatal("TPCName(-1) should fail")
	}
}

func TestPlaneLookups(t *testing.T) {
	if PlaneName(Collection) != "Collection" {
		t.Fatalf("PlaneName(Collection) = %q", PlaneName(Collection))
	}
	if PlaneName(NPlanes) != "" {
		t.Fatalf("PlaneName out of range should be empty, got %q", PlaneName(NPlanes))
	}
	total := 0
	for p := 0; p < NPlanes; p++ {
		total += PlaneChannels(p)
		if PlaneDivision(p) <= 0 {
			t.Fatalf("PlaneDivision(%d) = %d", p, PlaneDivision(p))
		}
	}
	if total != ChannelsPerTPC {
		t.Fatalf("plane channel counts sum to %d, want %d", total, ChannelsPerTPC)
	}
}
