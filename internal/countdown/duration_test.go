package countdown

import "testing"

func TestUntilDecomposition(t *testing.T) {
	tests := []struct {
		name    string
		deltaMs int64
		want    Remaining
	}{
		{
			name:    "seconds only",
			deltaMs: 45 * msPerSecond,
			want:    Remaining{TotalMs: 45000, Seconds: 45},
		},
		{
			name:    "full decomposition",
			deltaMs: 2*msPerDay + 3*msPerHour + 4*msPerMinute + 5*msPerSecond,
			want:    Remaining{TotalMs: 2*msPerDay + 3*msPerHour + 4*msPerMinute + 5*msPerSecond, Days: 2, Hours: 3, Minutes: 4, Seconds: 5},
		},
		{
			name:    "hour rollover stays under 24",
			deltaMs: 25 * msPerHour,
			want:    Remaining{TotalMs: 25 * msPerHour, Days: 1, Hours: 1},
		},
		{
			name:    "sub-second remainder truncates to zero units",
			deltaMs: 999,
			want:    Remaining{TotalMs: 999},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			const now = int64(1_700_000_000_000)
			got := Until(now+tc.deltaMs, now)
			if got != tc.want {
				t.Errorf("Until() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestUntilComponentsSumToTotal(t *testing.T) {
	const now = int64(1_700_000_000_000)
	deltas := []int64{1000, 59999, 60000, 3_599_999, 86_400_000, 123_456_789, 9_876_543_210}
	for _, d := range deltas {
		r := Until(now+d, now)
		sum := r.Days*86400 + r.Hours*3600 + r.Minutes*60 + r.Seconds
		if sum != d/1000 {
			t.Errorf("delta %d: components sum to %d seconds, want %d", d, sum, d/1000)
		}
	}
}

func TestUntilExpired(t *testing.T) {
	const now = int64(1_700_000_000_000)
	for _, target := range []int64{now, now - 1, now - msPerDay} {
		got := Until(target, now)
		want := Remaining{Expired: true}
		if got != want {
			t.Errorf("Until(%d, %d) = %+v, want %+v", target, now, got, want)
		}
	}
}

func TestPhrase(t *testing.T) {
	tests := []struct {
		name string
		rem  Remaining
		want string
	}{
		{
			name: "expired",
			rem:  Remaining{Expired: true},
			want: "This countdown has expired!",
		},
		{
			name: "all units plural",
			rem:  Remaining{TotalMs: 1, Days: 2, Hours: 3, Minutes: 4, Seconds: 5},
			want: "2 days, 3 hours, 4 minutes, 5 seconds",
		},
		{
			name: "all units singular",
			rem:  Remaining{TotalMs: 1, Days: 1, Hours: 1, Minutes: 1, Seconds: 1},
			want: "1 day, 1 hour, 1 minute, 1 second",
		},
		{
			name: "zero units omitted",
			rem:  Remaining{TotalMs: 1, Days: 3, Seconds: 10},
			want: "3 days, 10 seconds",
		},
		{
			name: "single unit",
			rem:  Remaining{TotalMs: 1, Minutes: 59},
			want: "59 minutes",
		},
		{
			name: "sub-second window",
			rem:  Remaining{TotalMs: 500},
			want: "Just a moment",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rem.Phrase(); got != tc.want {
				t.Errorf("Phrase() = %q, want %q", got, tc.want)
			}
		})
	}
}
