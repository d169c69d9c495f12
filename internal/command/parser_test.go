package command

import (
	"errors"
	"testing"
	"time"
)

func TestParseCreate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Create
	}{
		{
			name:    "date only",
			content: `!countdown "Launch" 2099-01-01`,
			want:    Create{Name: "Launch", Target: time.Date(2099, time.January, 1, 0, 0, 0, 0, time.Local)},
		},
		{
			name:    "date and time",
			content: `!countdown "Launch" 2099-01-01 12:00`,
			want:    Create{Name: "Launch", Target: time.Date(2099, time.January, 1, 12, 0, 0, 0, time.Local)},
		},
		{
			name:    "date time and seconds",
			content: `!countdown "Launch" 2099-01-01 12:00:30`,
			want:    Create{Name: "Launch", Target: time.Date(2099, time.January, 1, 12, 0, 30, 0, time.Local)},
		},
		{
			name:    "single digit hour",
			content: `!countdown "Breakfast" 2099-06-15 9:30`,
			want:    Create{Name: "Breakfast", Target: time.Date(2099, time.June, 15, 9, 30, 0, 0, time.Local)},
		},
		{
			name:    "name with spaces",
			content: `!countdown "New Year Party" 2098-12-31 23:59:59`,
			want:    Create{Name: "New Year Party", Target: time.Date(2098, time.December, 31, 23, 59, 59, 0, time.Local)},
		},
		{
			name:    "past date is accepted",
			content: `!countdown "Y2K" 2000-01-01`,
			want:    Create{Name: "Y2K", Target: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.Local)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse("!", tc.content)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			create, ok := got.(Create)
			if !ok {
				t.Fatalf("got %T, want Create", got)
			}
			if create.Name != tc.want.Name || !create.Target.Equal(tc.want.Target) {
				t.Errorf("got %+v, want %+v", create, tc.want)
			}
		})
	}
}

func TestParseCreateRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no arguments", "!countdown"},
		{"missing quotes", "!countdown Launch 2099-01-01"},
		{"unterminated quote", `!countdown "Launch 2099-01-01`},
		{"missing date", `!countdown "Launch"`},
		{"malformed date", `!countdown "Launch" 2099-1-1`},
		{"impossible month", `!countdown "Bad" 2024-13-40`},
		{"impossible day", `!countdown "Bad" 2023-02-29`},
		{"hour out of range", `!countdown "Bad" 2099-01-01 24:00`},
		{"minute out of range", `!countdown "Bad" 2099-01-01 12:60`},
		{"second out of range", `!countdown "Bad" 2099-01-01 12:00:61`},
		{"single digit minute", `!countdown "Bad" 2099-01-01 12:5`},
		{"trailing text", `!countdown "Launch" 2099-01-01 12:00 extra`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse("!", tc.content)
			if !errors.Is(err, ErrUsage) {
				t.Errorf("Parse(%q) error = %v, want ErrUsage", tc.content, err)
			}
		})
	}
}

func TestParseDelete(t *testing.T) {
	got, err := Parse("!", "!delcountdown 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if del, ok := got.(Delete); !ok || del.Index != 2 {
		t.Errorf("got %+v, want Delete{Index: 2}", got)
	}

	for _, content := range []string{"!delcountdown", "!delcountdown abc", "!delcountdown 0", "!delcountdown -1", "!delcountdown 1.5"} {
		if _, err := Parse("!", content); !errors.Is(err, ErrBadIndex) {
			t.Errorf("Parse(%q) error = %v, want ErrBadIndex", content, err)
		}
	}
}

func TestParseListAndHelp(t *testing.T) {
	if got, err := Parse("!", "!countdowns"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if _, ok := got.(List); !ok {
		t.Errorf("got %T, want List", got)
	}

	if got, err := Parse("!", "!help"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if _, ok := got.(Help); !ok {
		t.Errorf("got %T, want Help", got)
	}
}

func TestParseIgnoresNonCommands(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		content string
	}{
		{"no prefix", "!", "hello there"},
		{"unknown command", "!", "!weather"},
		{"wrong prefix", "!", "?countdowns"},
		{"empty message", "!", ""},
		{"prefix only", "!", "!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.prefix, tc.content)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != nil {
				t.Errorf("got %+v, want nil", got)
			}
		})
	}
}

func TestParseMultiCharPrefix(t *testing.T) {
	got, err := Parse("cd!", "cd!countdowns")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got.(List); !ok {
		t.Errorf("got %T, want List", got)
	}
}
