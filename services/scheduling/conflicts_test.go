package scheduling_test

import (
	"testing"
	"time"

	"studyplan/services/scheduling"
)

func draft(start time.Time, mins int) scheduling.SessionDraft {
	return scheduling.SessionDraft{
		Title:          "Review",
		ScheduledStart: start,
		ScheduledEnd:   start.Add(time.Duration(mins) * time.Minute),
	}
}

func existing(start, end time.Time) scheduling.ExistingSession {
	return scheduling.ExistingSession{ScheduledStart: start, ScheduledEnd: end}
}

func TestOverlaps(t *testing.T) {
	at := func(h, m int) time.Time { return date(2026, time.October, 12, h, m) }

	tests := []struct {
		name           string
		a1, a2, b1, b2 time.Time
		want           bool
	}{
		{"partial overlap", at(14, 0), at(14, 45), at(14, 30), at(15, 0), true},
		{"contained", at(14, 0), at(16, 0), at(14, 30), at(15, 0), true},
		{"identical", at(14, 0), at(15, 0), at(14, 0), at(15, 0), true},
		{"touching end", at(14, 0), at(14, 30), at(14, 30), at(15, 0), false},
		{"touching start", at(15, 0), at(15, 45), at(14, 30), at(15, 0), false},
		{"disjoint", at(9, 0), at(10, 0), at(14, 30), at(15, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scheduling.Overlaps(tt.a1, tt.a2, tt.b1, tt.b2); got != tt.want {
				t.Fatalf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := scheduling.Overlaps(tt.b1, tt.b2, tt.a1, tt.a2); got != tt.want {
				t.Fatalf("Overlaps is not symmetric")
			}
		})
	}
}

func TestAvoidConflictsDropsOverlapping(t *testing.T) {
	at := func(h, m int) time.Time { return date(2026, time.October, 12, h, m) }
	candidates := []scheduling.SessionDraft{
		draft(at(14, 0), 45),
		draft(at(15, 0), 45),
		draft(at(9, 0), 45),
	}
	committed := []scheduling.ExistingSession{existing(at(14, 30), at(15, 0))}

	got := scheduling.AvoidConflicts(candidates, committed, true)

	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	if !got[0].ScheduledStart.Equal(at(15, 0)) || !got[1].ScheduledStart.Equal(at(9, 0)) {
		t.Fatalf("unexpected survivors %v, %v", got[0].ScheduledStart, got[1].ScheduledStart)
	}
}

func TestAvoidConflictsShiftMode(t *testing.T) {
	at := func(h, m int) time.Time { return date(2026, time.October, 12, h, m) }

	tests := []struct {
		name      string
		committed []scheduling.ExistingSession
		wantStart *time.Time
	}{
		{
			name:      "first shift is free",
			committed: []scheduling.ExistingSession{existing(at(14, 30), at(15, 0))},
			wantStart: ptr(at(15, 0)),
		},
		{
			name:      "third shift is free",
			committed: []scheduling.ExistingSession{existing(at(14, 0), at(16, 30))},
			wantStart: ptr(at(17, 0)),
		},
		{
			name:      "all shifts conflict",
			committed: []scheduling.ExistingSession{existing(at(14, 0), at(18, 0))},
		},
		{
			name: "shifts walk into another commitment",
			committed: []scheduling.ExistingSession{
				existing(at(14, 0), at(14, 30)),
				existing(at(15, 30), at(16, 0)),
				existing(at(16, 0), at(16, 15)),
			},
			wantStart: ptr(at(17, 0)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scheduling.AvoidConflicts([]scheduling.SessionDraft{draft(at(14, 0), 45)}, tt.committed, false)
			if tt.wantStart == nil {
				if len(got) != 0 {
					t.Fatalf("got %v, want candidate dropped", got)
				}
				return
			}
			if len(got) != 1 {
				t.Fatalf("got %d candidates, want 1", len(got))
			}
			if !got[0].ScheduledStart.Equal(*tt.wantStart) {
				t.Fatalf("moved to %v, want %v", got[0].ScheduledStart, *tt.wantStart)
			}
			if got[0].Duration() != 45*time.Minute {
				t.Fatalf("duration changed to %v", got[0].Duration())
			}
		})
	}
}

func TestAvoidConflictsOutputIsConflictFree(t *testing.T) {
	candidates := scheduling.SuggestSlots(scheduling.SuggestionRequest{
		SessionMinutes: 50,
		TotalMinutes:   1500,
		Window: scheduling.SuggestionWindow{
			From:     date(2026, time.October, 12, 0, 0),
			To:       date(2026, time.October, 25, 0, 0),
			Weekdays: []int{1, 2, 3, 4, 5, 6, 7},
		},
		MaxPerDay:      3,
		GapMinutes:     10,
		PreferredStart: clock(16, 0),
	})
	var committed []scheduling.ExistingSession
	for d := 0; d < 14; d += 2 {
		start := date(2026, time.October, 12+d, 16, 40)
		committed = append(committed, existing(start, start.Add(90*time.Minute)))
	}

	for _, drop := range []bool{true, false} {
		got := scheduling.AvoidConflicts(candidates, committed, drop)
		if len(got) == 0 || len(got) > len(candidates) {
			t.Fatalf("drop=%v: got %d of %d candidates", drop, len(got), len(candidates))
		}
		for _, g := range got {
			for _, e := range committed {
				if scheduling.Overlaps(g.ScheduledStart, g.ScheduledEnd, e.ScheduledStart, e.ScheduledEnd) {
					t.Fatalf("drop=%v: %v-%v overlaps %v-%v", drop, g.ScheduledStart, g.ScheduledEnd, e.ScheduledStart, e.ScheduledEnd)
				}
			}
		}
	}
}

func TestAvoidConflictsWithoutCommitments(t *testing.T) {
	candidates := []scheduling.SessionDraft{draft(date(2026, time.October, 12, 9, 0), 30)}

	got := scheduling.AvoidConflicts(candidates, nil, true)

	if len(got) != 1 || got[0] != candidates[0] {
		t.Fatalf("got %v, want candidates unchanged", got)
	}
}

func ptr(t time.Time) *time.Time { return &t }
