package scheduling_test

import (
	"testing"
	"time"

	"studyplan/services/scheduling"
)

var weekdays = []int{1, 2, 3, 4, 5}

func clock(h, m int) *scheduling.ClockTime {
	return &scheduling.ClockTime{Hour: h, Minute: m}
}

func assertWellFormed(t *testing.T, req scheduling.SuggestionRequest, got []scheduling.SessionDraft) {
	t.Helper()
	total := 0
	for i, d := range got {
		if d.Duration() != time.Duration(req.SessionMinutes)*time.Minute {
			t.Fatalf("session %d lasts %v, want %d minutes", i, d.Duration(), req.SessionMinutes)
		}
		if i > 0 && d.ScheduledStart.Before(got[i-1].ScheduledStart) {
			t.Fatalf("session %d starts before session %d", i, i-1)
		}
		total += req.SessionMinutes
	}
	if total > req.TotalMinutes {
		t.Fatalf("planned %d minutes, budget was %d", total, req.TotalMinutes)
	}
}

func TestSuggestSlotsExhaustsBudgetBeforeFriday(t *testing.T) {
	req := scheduling.SuggestionRequest{
		Title:          "Linear algebra",
		SessionMinutes: 45,
		TotalMinutes:   180,
		Window: scheduling.SuggestionWindow{
			From:     date(2026, time.October, 12, 0, 0),
			To:       date(2026, time.October, 16, 23, 59),
			Weekdays: weekdays,
		},
		MaxPerDay:      1,
		GapMinutes:     10,
		PreferredStart: clock(17, 0),
	}

	got := scheduling.SuggestSlots(req)

	if len(got) != 4 {
		t.Fatalf("got %d sessions, want 4", len(got))
	}
	for i, d := range got {
		wantStart := date(2026, time.October, 12+i, 17, 0)
		if !d.ScheduledStart.Equal(wantStart) {
			t.Fatalf("session %d starts %v, want %v", i, d.ScheduledStart, wantStart)
		}
		if !d.ScheduledEnd.Equal(wantStart.Add(45 * time.Minute)) {
			t.Fatalf("session %d ends %v", i, d.ScheduledEnd)
		}
		if d.Title != "Linear algebra" {
			t.Fatalf("title = %q", d.Title)
		}
	}
	assertWellFormed(t, req, got)
}

func TestSuggestSlotsSeveralPerDay(t *testing.T) {
	req := scheduling.SuggestionRequest{
		SessionMinutes: 60,
		TotalMinutes:   300,
		Window: scheduling.SuggestionWindow{
			From:     date(2026, time.October, 12, 0, 0),
			To:       date(2026, time.October, 18, 0, 0),
			Weekdays: []int{1, 2, 3, 4, 5, 6, 7},
		},
		MaxPerDay:      2,
		GapMinutes:     10,
		PreferredStart: clock(9, 0),
	}

	got := scheduling.SuggestSlots(req)

	want := []time.Time{
		date(2026, time.October, 12, 9, 0),
		date(2026, time.October, 12, 10, 10),
		date(2026, time.October, 13, 9, 0),
		date(2026, time.October, 13, 10, 10),
		date(2026, time.October, 14, 9, 0),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d sessions, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].ScheduledStart.Equal(want[i]) {
			t.Fatalf("session %d starts %v, want %v", i, got[i].ScheduledStart, want[i])
		}
	}
	assertWellFormed(t, req, got)
}

func TestSuggestSlotsDropsRemainderSmallerThanASession(t *testing.T) {
	req := scheduling.SuggestionRequest{
		SessionMinutes: 45,
		TotalMinutes:   100,
		Window: scheduling.SuggestionWindow{
			From:     date(2026, time.October, 12, 8, 0),
			To:       date(2026, time.October, 30, 8, 0),
			Weekdays: weekdays,
		},
		MaxPerDay: 3,
	}

	got := scheduling.SuggestSlots(req)

	if len(got) != 2 {
		t.Fatalf("got %d sessions, want 2", len(got))
	}
	// Default gap for a zero-valued request is no gap.
	if !got[1].ScheduledStart.Equal(got[0].ScheduledEnd) {
		t.Fatalf("second session starts %v, want %v", got[1].ScheduledStart, got[0].ScheduledEnd)
	}
	assertWellFormed(t, req, got)
}

func TestSuggestSlotsShortfallWhenWindowTooSmall(t *testing.T) {
	req := scheduling.SuggestionRequest{
		SessionMinutes: 60,
		TotalMinutes:   600,
		Window: scheduling.SuggestionWindow{
			From:     date(2026, time.October, 12, 0, 0),
			To:       date(2026, time.October, 18, 23, 0),
			Weekdays: []int{2, 4},
		},
		PreferredStart: clock(18, 30),
	}

	got := scheduling.SuggestSlots(req)

	if len(got) != 2 {
		t.Fatalf("got %d sessions, want 2", len(got))
	}
	if got[0].ScheduledStart.Weekday() != time.Tuesday || got[1].ScheduledStart.Weekday() != time.Thursday {
		t.Fatalf("sessions on %v and %v", got[0].ScheduledStart.Weekday(), got[1].ScheduledStart.Weekday())
	}
	assertWellFormed(t, req, got)
}

func TestSuggestSlotsInvalidInput(t *testing.T) {
	base := scheduling.SuggestionRequest{
		SessionMinutes: 45,
		TotalMinutes:   180,
		Window: scheduling.SuggestionWindow{
			From:     date(2026, time.October, 12, 0, 0),
			To:       date(2026, time.October, 16, 0, 0),
			Weekdays: weekdays,
		},
	}

	tests := []struct {
		name   string
		mutate func(*scheduling.SuggestionRequest)
	}{
		{"zero session length", func(r *scheduling.SuggestionRequest) { r.SessionMinutes = 0 }},
		{"negative session length", func(r *scheduling.SuggestionRequest) { r.SessionMinutes = -30 }},
		{"zero budget", func(r *scheduling.SuggestionRequest) { r.TotalMinutes = 0 }},
		{"negative budget", func(r *scheduling.SuggestionRequest) { r.TotalMinutes = -1 }},
		{"no allowed weekday in window", func(r *scheduling.SuggestionRequest) { r.Window.Weekdays = []int{6, 7} }},
		{"weekday numbers out of range", func(r *scheduling.SuggestionRequest) { r.Window.Weekdays = []int{0, 8} }},
		{"window ends before it starts", func(r *scheduling.SuggestionRequest) { r.Window.To = r.Window.From.Add(-time.Hour) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			if got := scheduling.SuggestSlots(req); len(got) != 0 {
				t.Fatalf("got %d sessions, want none", len(got))
			}
		})
	}
}

func TestSuggestSlotsFallsBackToTimeOfFrom(t *testing.T) {
	req := scheduling.SuggestionRequest{
		SessionMinutes: 30,
		TotalMinutes:   60,
		Window: scheduling.SuggestionWindow{
			From:     date(2026, time.October, 12, 7, 15),
			To:       date(2026, time.October, 13, 7, 15),
			Weekdays: weekdays,
		},
	}

	got := scheduling.SuggestSlots(req)

	if len(got) != 2 {
		t.Fatalf("got %d sessions, want 2", len(got))
	}
	for _, d := range got {
		if d.ScheduledStart.Hour() != 7 || d.ScheduledStart.Minute() != 15 {
			t.Fatalf("session starts at %v, want 07:15", d.ScheduledStart)
		}
	}
}

func TestSuggestSlotsLastDayComparesInstants(t *testing.T) {
	// The day walk keeps the time of day of From, so a To earlier in the day
	// than From excludes that last date.
	req := scheduling.SuggestionRequest{
		SessionMinutes: 30,
		TotalMinutes:   300,
		Window: scheduling.SuggestionWindow{
			From:     date(2026, time.October, 12, 8, 0),
			To:       date(2026, time.October, 14, 7, 0),
			Weekdays: weekdays,
		},
		PreferredStart: clock(6, 0),
	}

	got := scheduling.SuggestSlots(req)

	if len(got) != 2 {
		t.Fatalf("got %d sessions, want 2", len(got))
	}
	if got[1].ScheduledStart.Day() != 13 {
		t.Fatalf("last session on day %d, want 13", got[1].ScheduledStart.Day())
	}
}

func TestSuggestSlotsLateRunCrossesMidnight(t *testing.T) {
	req := scheduling.SuggestionRequest{
		SessionMinutes: 60,
		TotalMinutes:   180,
		Window: scheduling.SuggestionWindow{
			From:     date(2026, time.October, 12, 0, 0),
			To:       date(2026, time.October, 18, 0, 0),
			Weekdays: []int{1},
		},
		MaxPerDay:      3,
		GapMinutes:     10,
		PreferredStart: clock(22, 0),
	}

	got := scheduling.SuggestSlots(req)

	want := []time.Time{
		date(2026, time.October, 12, 22, 0),
		date(2026, time.October, 12, 23, 10),
		date(2026, time.October, 13, 0, 20),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d sessions, want %d", len(got), len(want))
	}
	for i, d := range got {
		if !d.ScheduledStart.Equal(want[i]) {
			t.Fatalf("session %d starts %v, want %v", i, d.ScheduledStart, want[i])
		}
	}
	assertWellFormed(t, req, got)
}

func TestSuggestSlotsRunStopsAtNextDayStart(t *testing.T) {
	tests := []struct {
		name       string
		minutes    int
		total      int
		maxPerDay  int
		preferred  *scheduling.ClockTime
		wantStarts []time.Time
	}{
		{
			name:      "spill fits before next day",
			minutes:   60,
			total:     240,
			maxPerDay: 3,
			preferred: clock(22, 30),
			wantStarts: []time.Time{
				date(2026, time.October, 12, 22, 30),
				date(2026, time.October, 12, 23, 30),
				date(2026, time.October, 13, 0, 30),
				date(2026, time.October, 13, 22, 30),
			},
		},
		{
			name:      "spill would overlap next day",
			minutes:   600,
			total:     1800,
			maxPerDay: 3,
			preferred: clock(8, 0),
			wantStarts: []time.Time{
				date(2026, time.October, 12, 8, 0),
				date(2026, time.October, 12, 18, 0),
				date(2026, time.October, 13, 8, 0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := scheduling.SuggestionRequest{
				SessionMinutes: tt.minutes,
				TotalMinutes:   tt.total,
				Window: scheduling.SuggestionWindow{
					From:     date(2026, time.October, 12, 0, 0),
					To:       date(2026, time.October, 16, 0, 0),
					Weekdays: weekdays,
				},
				MaxPerDay:      tt.maxPerDay,
				PreferredStart: tt.preferred,
			}

			got := scheduling.SuggestSlots(req)

			if len(got) != len(tt.wantStarts) {
				t.Fatalf("got %d sessions, want %d", len(got), len(tt.wantStarts))
			}
			for i, d := range got {
				if !d.ScheduledStart.Equal(tt.wantStarts[i]) {
					t.Fatalf("session %d starts %v, want %v", i, d.ScheduledStart, tt.wantStarts[i])
				}
				if i > 0 && d.ScheduledStart.Before(got[i-1].ScheduledEnd) {
					t.Fatalf("session %d overlaps session %d", i, i-1)
				}
			}
			assertWellFormed(t, req, got)
		})
	}
}

func TestSuggestSlotsLocalWallClock(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Zurich")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	req := scheduling.SuggestionRequest{
		SessionMinutes: 45,
		TotalMinutes:   90,
		Window: scheduling.SuggestionWindow{
			From:     time.Date(2026, time.March, 28, 0, 0, 0, 0, loc),
			To:       time.Date(2026, time.March, 30, 23, 0, 0, 0, loc),
			Weekdays: []int{6, 7},
		},
		PreferredStart: clock(17, 0),
	}

	got := scheduling.SuggestSlots(req)

	if len(got) != 2 {
		t.Fatalf("got %d sessions, want 2", len(got))
	}
	for _, d := range got {
		if d.ScheduledStart.Hour() != 17 {
			t.Fatalf("session starts %v, want 17:00 local on both sides of the DST change", d.ScheduledStart)
		}
	}
}

func TestPreferredStartResolve(t *testing.T) {
	tests := []struct {
		name   string
		in     scheduling.PreferredStart
		want   scheduling.ClockTime
		wantOK bool
	}{
		{"text", scheduling.PreferredStart{Text: "17:00"}, scheduling.ClockTime{Hour: 17}, true},
		{"text wins over legacy", scheduling.PreferredStart{Text: "08:30", Legacy: clock(19, 0)}, scheduling.ClockTime{Hour: 8, Minute: 30}, true},
		{"text is clamped", scheduling.PreferredStart{Text: "25:75"}, scheduling.ClockTime{Hour: 23, Minute: 59}, true},
		{"malformed text falls back to legacy", scheduling.PreferredStart{Text: "7:00", Legacy: clock(7, 5)}, scheduling.ClockTime{Hour: 7, Minute: 5}, true},
		{"legacy is clamped", scheduling.PreferredStart{Legacy: clock(-3, 90)}, scheduling.ClockTime{Hour: 0, Minute: 59}, true},
		{"nothing usable", scheduling.PreferredStart{Text: "noon"}, scheduling.ClockTime{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.Resolve()
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("Resolve = %+v, %v; want %+v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
