// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package slots

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

var (
	ErrInvalidRange   = errors.New("end date precedes start date")
	ErrEmptySelection = errors.New("selection yields no datetimes")
	ErrUnknownMode    = errors.New("unknown slot mode")
)

// Mode selects how an organizer's recurrence intent is expanded.
type Mode string

const (
	ModeWeekly   Mode = "weekly"
	ModeDaily    Mode = "daily"
	ModeExplicit Mode = "explicit"
)

// TimeOfDay is a wall-clock time within a day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// WeekdayTime pairs a weekday with a time of day for weekly mode.
type WeekdayTime struct {
	Weekday time.Weekday
	Time    TimeOfDay
}

// Spec is an organizer's recurrence intent. Start and End bound the date
// range (inclusive) for weekly and daily modes; explicit mode ignores them.
type Spec struct {
	Mode      Mode
	Start     time.Time
	End       time.Time
	Weekly    []WeekdayTime
	Times     []TimeOfDay
	Datetimes []time.Time
}

// Expand turns a Spec into an ordered, de-duplicated ascending sequence of
// candidate datetimes. Pure transformation: persistence is the store's job.
func Expand(spec Spec) ([]time.Time, error) {
	switch spec.Mode {
	case ModeWeekly:
		if err := checkRange(spec); err != nil {
			return nil, err
		}
		var out []time.Time
		for _, wt := range spec.Weekly {
			times, err := enumerate(rrule.WEEKLY, spec, wt.Time, []rrule.Weekday{rruleWeekday(wt.Weekday)})
			if err != nil {
				return nil, err
			}
			out = append(out, times...)
		}
		return normalize(out)

	case ModeDaily:
		if err := checkRange(spec); err != nil {
			return nil, err
		}
		var out []time.Time
		for _, tod := range spec.Times {
			times, err := enumerate(rrule.DAILY, spec, tod, nil)
			if err != nil {
				return nil, err
			}
			out = append(out, times...)
		}
		return normalize(out)

	case ModeExplicit:
		return normalize(spec.Datetimes)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, spec.Mode)
	}
}

// enumerate runs one recurrence rule over the spec's date range. One rule
// per time of day keeps hour and minute paired.
func enumerate(freq rrule.Frequency, spec Spec, tod TimeOfDay, byweekday []rrule.Weekday) ([]time.Time, error) {
	if tod.Hour < 0 || tod.Hour > 23 || tod.Minute < 0 || tod.Minute > 59 {
		return nil, fmt.Errorf("invalid time of day %02d:%02d", tod.Hour, tod.Minute)
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      freq,
		Dtstart:   dayStart(spec.Start),
		Until:     dayEnd(spec.End),
		Byweekday: byweekday,
		Byhour:    []int{tod.Hour},
		Byminute:  []int{tod.Minute},
		Bysecond:  []int{0},
	})
	if err != nil {
		return nil, fmt.Errorf("building recurrence rule: %w", err)
	}

	return r.All(), nil
}

func checkRange(spec Spec) error {
	if dayStart(spec.End).Before(dayStart(spec.Start)) {
		return ErrInvalidRange
	}
	return nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// normalize de-duplicates (second precision) and sorts ascending.
func normalize(in []time.Time) ([]time.Time, error) {
	seen := make(map[int64]bool, len(in))
	out := make([]time.Time, 0, len(in))
	for _, t := range in {
		t = t.Truncate(time.Second)
		if seen[t.Unix()] {
			continue
		}
		seen[t.Unix()] = true
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, ErrEmptySelection
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, nil
}

func rruleWeekday(wd time.Weekday) rrule.Weekday {
	switch wd {
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	case time.Saturday:
		return rrule.SA
	default:
		return rrule.SU
	}
}
