// Package command turns raw chat messages into validated command variants.
package command

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Command is one of the variants below. Parse returns a nil Command for
// messages that are not addressed to the bot.
type Command interface {
	isCommand()
}

// Create adds a countdown named Name targeting the local-time instant Target.
type Create struct {
	Name   string
	Target time.Time
}

// List shows all active countdowns.
type List struct{}

// Delete removes the countdown at the 1-based position Index.
type Delete struct {
	Index int
}

// Help shows command usage.
type Help struct{}

func (Create) isCommand() {}
func (List) isCommand()   {}
func (Delete) isCommand() {}
func (Help) isCommand()   {}

// ErrUsage marks a create command whose arguments don't match the grammar,
// including impossible calendar dates. Callers reply with UsageFor.
var ErrUsage = errors.New("invalid countdown syntax")

// ErrBadIndex marks a delcountdown argument that is not a positive integer.
var ErrBadIndex = errors.New("invalid countdown index")

// UsageFor renders the literal usage reply for malformed create commands.
func UsageFor(prefix string) string {
	return fmt.Sprintf("Usage: `%scountdown \"Event name\" YYYY-MM-DD [HH:MM[:SS]]`", prefix)
}

// createArgs matches: quoted name, ISO date, optional time of day with a
// 1- or 2-digit hour and optional seconds. Anchored so trailing text fails.
var createArgs = regexp.MustCompile(`^"([^"]+)"\s+(\d{4})-(\d{2})-(\d{2})(?:\s+(\d{1,2}):(\d{2})(?::(\d{2}))?)?$`)

// Parse turns a raw message body into a command variant. Messages that do
// not start with prefix, or whose first word is not a known command, yield
// (nil, nil). Known commands with bad arguments yield a validation error.
func Parse(prefix, content string) (Command, error) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return nil, nil
	}
	body := strings.TrimPrefix(content, prefix)
	word, rest, _ := strings.Cut(body, " ")
	rest = strings.TrimSpace(rest)

	switch word {
	case "countdown":
		return parseCreate(rest)
	case "countdowns":
		return List{}, nil
	case "delcountdown":
		return parseDelete(rest)
	case "help":
		return Help{}, nil
	default:
		return nil, nil
	}
}

func parseCreate(args string) (Command, error) {
	m := createArgs.FindStringSubmatch(args)
	if m == nil {
		return nil, ErrUsage
	}
	year, _ := strconv.Atoi(m[2])
	month, _ := strconv.Atoi(m[3])
	day, _ := strconv.Atoi(m[4])
	hour, minute, second := 0, 0, 0
	if m[5] != "" {
		hour, _ = strconv.Atoi(m[5])
		minute, _ = strconv.Atoi(m[6])
		if m[7] != "" {
			second, _ = strconv.Atoi(m[7])
		}
	}
	if hour > 23 || minute > 59 || second > 59 {
		return nil, ErrUsage
	}

	target := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local)
	// time.Date normalizes out-of-range components (month 13, day 40), so
	// impossible calendar dates are caught by round-tripping.
	if target.Year() != year || target.Month() != time.Month(month) || target.Day() != day {
		return nil, ErrUsage
	}
	return Create{Name: m[1], Target: target}, nil
}

func parseDelete(args string) (Command, error) {
	n, err := strconv.Atoi(args)
	if err != nil || n < 1 {
		return nil, ErrBadIndex
	}
	return Delete{Index: n}, nil
}
