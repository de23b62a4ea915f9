package signals

import (
	"testing"

	"github.com/portalwatch/backend/internal/contracts"
)

func TestNormalizeRecruitRating(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"already normalized", 0.9, 0.9},
		{"star scale", 4, 0.8},
		{"percentile scale", 88, 0.88},
		{"composite scale", 204, 204.0 / 255.0},
		{"beyond every scale", 280, 280.0 / 300.0},
		{"negative clamps to zero", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeRecruitRating(tt.in); got != tt.want {
				t.Errorf("normalizeRecruitRating(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeUsage(t *testing.T) {
	tests := []struct {
		name string
		rows []contracts.Record
		want *float64
	}{
		{
			name: "fraction passes through",
			rows: []contracts.Record{{"usage": map[string]any{"overall": 0.42}}},
			want: fp(0.42),
		},
		{
			name: "percent rescales",
			rows: []contracts.Record{{"overallUsage": 42.0}},
			want: fp(0.42),
		},
		{
			name: "derived from snaps against season ceiling",
			rows: []contracts.Record{{"snaps": 420.0}},
			want: fp(0.5), // 420 / (70*12)
		},
		{
			name: "snap derivation clamps at one",
			rows: []contracts.Record{{"snaps": 2000.0}},
			want: fp(1),
		},
		{
			name: "no usable keys",
			rows: []contracts.Record{{"position": "WR"}},
			want: nil,
		},
		{
			name: "no rows",
			rows: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeUsage(tt.rows)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("normalizeUsage() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("normalizeUsage() = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestSumSnaps(t *testing.T) {
	rows := []contracts.Record{
		{"name": "Marcus Webb", "snaps": 300.0},
		{"name": "Marcus Webb", "snaps": "120"},
	}

	got := sumSnaps(rows)
	if got == nil || *got != 420 {
		t.Errorf("sumSnaps() = %v, want 420", got)
	}

	if sumSnaps([]contracts.Record{{"position": "QB"}}) != nil {
		t.Error("sumSnaps() should be nil when no row carries a snap count")
	}
}

func TestDeriveWinRate(t *testing.T) {
	tests := []struct {
		name    string
		records []contracts.Record
		want    *float64
	}{
		{
			name:    "season totals",
			records: []contracts.Record{{"total": map[string]any{"wins": 9.0, "losses": 3.0}}},
			want:    fp(0.75),
		},
		{
			name:    "wins over games when losses missing",
			records: []contracts.Record{{"wins": 8.0, "games": 12.0}},
			want:    fp(8.0 / 12.0),
		},
		{
			name: "per-game fallback",
			records: []contracts.Record{
				{"teamPoints": 31.0, "opponentPoints": 14.0},
				{"teamPoints": 10.0, "opponentPoints": 27.0},
				{"teamPoints": 21.0, "opponentPoints": 17.0},
				{"venue": "neutral"}, // ignored: no scores
			},
			want: fp(2.0 / 3.0),
		},
		{
			name:    "degenerate totals fall through to games",
			records: []contracts.Record{{"wins": 0.0, "losses": 0.0}, {"teamPoints": 28.0, "opponentPoints": 3.0}},
			want:    fp(1),
		},
		{
			name:    "nothing usable",
			records: []contracts.Record{{"conference": "B1G"}},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveWinRate(tt.records)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("deriveWinRate() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("deriveWinRate() = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestEstimateDistance(t *testing.T) {
	tests := []struct {
		name string
		rows []contracts.Record
		want *float64
	}{
		{
			name: "same state",
			rows: []contracts.Record{{"homeState": "OH", "teamState": "OH"}},
			want: fp(sameStateMiles),
		},
		{
			name: "different state",
			rows: []contracts.Record{{"homeState": "TX", "teamState": "OH"}},
			want: fp(crossStateMiles),
		},
		{
			name: "state parsed from hometown string",
			rows: []contracts.Record{{"hometown": "Akron, OH", "teamState": "OH"}},
			want: fp(sameStateMiles),
		},
		{
			name: "hometown without school state",
			rows: []contracts.Record{{"hometown": "Akron, OH"}},
			want: fp(crossStateMiles),
		},
		{
			name: "no hometown information",
			rows: []contracts.Record{{"position": "RB", "teamState": "OH"}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := estimateDistance(tt.rows)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("estimateDistance() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("estimateDistance() = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestSelectRecords(t *testing.T) {
	rows := []contracts.Record{
		{"name": "Marcus Webb Jr.", "snaps": 100.0},
		{"name": "Marcus Webb", "snaps": 200.0},
		{"name": "Marcus Webb", "snaps": 50.0},
		{"name": "DeShawn Cole", "snaps": 300.0},
	}

	t.Run("exact matches collect every row", func(t *testing.T) {
		got := selectRecords(rows, "marcus webb")
		if len(got) != 2 {
			t.Fatalf("selectRecords() returned %d rows, want 2 exact matches", len(got))
		}
	})

	t.Run("substring match when no exact", func(t *testing.T) {
		got := selectRecords(rows, "DeShawn")
		if len(got) != 1 {
			t.Fatalf("selectRecords() returned %d rows, want 1", len(got))
		}
		if name, _ := got[0].Str("name"); name != "DeShawn Cole" {
			t.Errorf("selected %q", name)
		}
	})

	t.Run("no player takes first row", func(t *testing.T) {
		got := selectRecords(rows, "")
		if len(got) != 1 {
			t.Fatalf("selectRecords() returned %d rows, want 1", len(got))
		}
		if v, _ := got[0].Float("snaps"); v != 100 {
			t.Errorf("selected snaps = %v, want first row", v)
		}
	})

	t.Run("unknown player", func(t *testing.T) {
		if got := selectRecords(rows, "Nobody"); got != nil {
			t.Errorf("selectRecords() = %v, want nil", got)
		}
	})
}
