package zab

import "testing"

func TestZxidCompare(t *testing.T) {
	tests := []struct {
		name string
		a    Zxid
		b    Zxid
		want int
	}{
		{
			name: "equal",
			a:    Zxid{Epoch: 1, Counter: 5},
			b:    Zxid{Epoch: 1, Counter: 5},
			want: 0,
		},
		{
			name: "epoch dominates counter",
			a:    Zxid{Epoch: 2, Counter: 0},
			b:    Zxid{Epoch: 1, Counter: 100},
			want: 1,
		},
		{
			name: "counter breaks epoch ties",
			a:    Zxid{Epoch: 1, Counter: 2},
			b:    Zxid{Epoch: 1, Counter: 10},
			want: -1,
		},
		{
			name: "not-exist sorts before everything",
			a:    ZxidNotExist,
			b:    Zxid{Epoch: 0, Counter: 0},
			want: -1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Compare(tc.b); got != tc.want {
				t.Fatalf("%v.Compare(%v) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
			if got := tc.b.Compare(tc.a); got != -tc.want {
				t.Fatalf("%v.Compare(%v) = %d, want %d", tc.b, tc.a, got, -tc.want)
			}
		})
	}
}

func TestZxidSimpleStringRoundTrip(t *testing.T) {
	zxids := []Zxid{
		{Epoch: 0, Counter: 0},
		{Epoch: 1, Counter: 2},
		{Epoch: 1, Counter: 10},
		{Epoch: 42, Counter: 99999},
	}
	for _, zxid := range zxids {
		parsed, err := ZxidFromSimpleString(zxid.SimpleString())
		if err != nil {
			t.Fatalf("failed to parse %q: %v", zxid.SimpleString(), err)
		}
		if parsed != zxid {
			t.Errorf("round trip of %v produced %v", zxid, parsed)
		}
	}
}

func TestZxidFromSimpleStringRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "1", "1_", "_2", "a_b", "1_2_3x"} {
		if _, err := ZxidFromSimpleString(s); err == nil {
			t.Errorf("expected error parsing %q", s)
		}
	}
}

func TestZxidNotExist(t *testing.T) {
	if ZxidNotExist.Exists() {
		t.Error("ZxidNotExist must not report existence")
	}
	if !(Zxid{Epoch: 0, Counter: 0}).Exists() {
		t.Error("zxid 0_0 must report existence")
	}
}
