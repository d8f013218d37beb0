// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package slots expands an organizer's recurrence intent into candidate
datetimes.

# Modes

  - weekly: weekday+time pairs over an inclusive date range, one datetime
    per matching weekday
  - daily: times of day over an inclusive date range, one datetime per
    (date, time) combination
  - explicit: caller-supplied datetimes, passed through

Weekly and daily enumeration is backed by RFC 5545 recurrence rules
(teambition/rrule-go), one rule per time of day so hour and minute stay
paired.

# Output

Expand returns a strictly ascending, de-duplicated []time.Time at second
precision. It is a pure transformation; each element becomes one poll
option when the store persists the poll.

# Errors

	ErrInvalidRange     end date precedes start date
	ErrEmptySelection   the spec yields zero datetimes
	ErrUnknownMode      mode is not weekly/daily/explicit
*/
package slots
