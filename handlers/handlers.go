// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/terminfinder/middleware"
	"github.com/danielhkuo/terminfinder/models"
	"github.com/danielhkuo/terminfinder/slots"
	"github.com/danielhkuo/terminfinder/store"
)

// writeStoreError maps store sentinels onto HTTP status codes.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	case errors.Is(err, store.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrPollClosed):
		middleware.ErrorResponse(w, http.StatusConflict, "Poll is closed")
	case errors.Is(err, store.ErrCapacityExceeded):
		middleware.ErrorResponse(w, http.StatusConflict, "This slot is already fully booked")
	case errors.Is(err, store.ErrDuplicateResponse):
		middleware.ErrorResponse(w, http.StatusConflict, "Already responded; this poll does not allow changes")
	case errors.Is(err, store.ErrUnauthorized):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Operator rights required")
	default:
		slog.Error("store operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// parseSlotSpec converts the JSON slot spec into the generator's typed
// form. Dates are interpreted as UTC calendar days.
func parseSlotSpec(req models.SlotSpecRequest) (slots.Spec, error) {
	spec := slots.Spec{
		Mode:      slots.Mode(req.Mode),
		Datetimes: req.Datetimes,
	}

	if req.Mode == models.SlotModeWeekly || req.Mode == models.SlotModeDaily {
		start, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return slots.Spec{}, fmt.Errorf("invalid start_date %q, want YYYY-MM-DD", req.StartDate)
		}
		end, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return slots.Spec{}, fmt.Errorf("invalid end_date %q, want YYYY-MM-DD", req.EndDate)
		}
		spec.Start = start
		spec.End = end
	}

	for _, wt := range req.Weekly {
		weekday, ok := weekdayNames[strings.ToLower(wt.Weekday)]
		if !ok {
			return slots.Spec{}, fmt.Errorf("invalid weekday %q", wt.Weekday)
		}
		tod, err := parseTimeOfDay(wt.Time)
		if err != nil {
			return slots.Spec{}, err
		}
		spec.Weekly = append(spec.Weekly, slots.WeekdayTime{Weekday: weekday, Time: tod})
	}

	for _, ts := range req.Times {
		tod, err := parseTimeOfDay(ts)
		if err != nil {
			return slots.Spec{}, err
		}
		spec.Times = append(spec.Times, tod)
	}

	return spec, nil
}

func parseTimeOfDay(s string) (slots.TimeOfDay, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return slots.TimeOfDay{}, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	return slots.TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}
