package domain

import "testing"

func TestScoreUpdateLeadChanged(t *testing.T) {
	cases := []struct {
		name   string
		update ScoreUpdate
		want   bool
	}{
		{
			name:   "leader flips",
			update: ScoreUpdate{PrevAwayScore: "2", PrevHomeScore: "3", AwayScore: "4", HomeScore: "3"},
			want:   true,
		},
		{
			name:   "tie broken",
			update: ScoreUpdate{PrevAwayScore: "3", PrevHomeScore: "3", AwayScore: "5", HomeScore: "3"},
			want:   true,
		},
		{
			name:   "same leader extends",
			update: ScoreUpdate{PrevAwayScore: "50", PrevHomeScore: "48", AwayScore: "52", HomeScore: "48"},
			want:   false,
		},
		{
			name:   "game goes to a tie",
			update: ScoreUpdate{PrevAwayScore: "3", PrevHomeScore: "2", AwayScore: "3", HomeScore: "3"},
			want:   false,
		},
		{
			name:   "previous scores missing",
			update: ScoreUpdate{AwayScore: "4", HomeScore: "3"},
			want:   false,
		},
		{
			name:   "unparseable new score",
			update: ScoreUpdate{PrevAwayScore: "2", PrevHomeScore: "3", AwayScore: "-", HomeScore: "3"},
			want:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.update.LeadChanged(); got != tc.want {
				t.Fatalf("LeadChanged() = %v, want %v", got, tc.want)
			}
		})
	}
}
