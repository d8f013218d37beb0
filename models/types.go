package models

import "time"

// Response type constants
const (
	ResponseYes   = "yes"
	ResponseNo    = "no"
	ResponseMaybe = "maybe"
)

// Slot generation modes accepted by the create endpoint
const (
	SlotModeWeekly   = "weekly"
	SlotModeDaily    = "daily"
	SlotModeExplicit = "explicit"
)

// Request types

type WeekdayTimeRequest struct {
	Weekday string `json:"weekday"` // "monday" .. "sunday"
	Time    string `json:"time"`    // "15:04"
}

type SlotSpecRequest struct {
	Mode      string               `json:"mode"`
	StartDate string               `json:"start_date,omitempty"` // "2006-01-02", weekly/daily
	EndDate   string               `json:"end_date,omitempty"`
	Weekly    []WeekdayTimeRequest `json:"weekly,omitempty"`
	Times     []string             `json:"times,omitempty"`     // "15:04", daily
	Datetimes []time.Time          `json:"datetimes,omitempty"` // RFC3339, explicit
}

type CreatePollRequest struct {
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	ExpiresAt        *time.Time      `json:"expires_at,omitempty"`
	AllowChanges     bool            `json:"allow_changes"`
	OnlyYesNo        bool            `json:"only_yes_no"`
	HideParticipants bool            `json:"hide_participants"`
	MaxParticipants  *int64          `json:"max_participants,omitempty"`
	Slots            SlotSpecRequest `json:"slots"`
}

// UpdatePollRequest mutates only the fields that are present. Options stay
// immutable apart from their capacity override.
type UpdatePollRequest struct {
	Title            *string          `json:"title,omitempty"`
	Description      *string          `json:"description,omitempty"`
	ExpiresAt        *time.Time       `json:"expires_at,omitempty"`
	AllowChanges     *bool            `json:"allow_changes,omitempty"`
	OnlyYesNo        *bool            `json:"only_yes_no,omitempty"`
	HideParticipants *bool            `json:"hide_participants,omitempty"`
	MaxParticipants  *int64           `json:"max_participants,omitempty"`
	IsActive         *bool            `json:"is_active,omitempty"`
	OptionLimits     map[int64]*int64 `json:"option_limits,omitempty"` // option_id -> limit, null clears
}

type SubmitResponseRequest struct {
	ParticipantName string `json:"participant_name"`
	OptionID        int64  `json:"option_id"`
	Response        string `json:"response"`
}

// Response types

type CreatePollResponse struct {
	PublicID    string `json:"public_id"`
	ShareURL    string `json:"share_url"`
	OptionCount int    `json:"option_count"`
}

type SubmitResponseResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type Poll struct {
	ID               int64      `json:"-"` // storage-only key
	PublicID         string     `json:"public_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	AllowChanges     bool       `json:"allow_changes"`
	OnlyYesNo        bool       `json:"only_yes_no"`
	HideParticipants bool       `json:"hide_participants"`
	MaxParticipants  *int64     `json:"max_participants,omitempty"`
	IsActive         bool       `json:"is_active"`
}

type PollOption struct {
	ID              int64     `json:"id"`
	PollID          int64     `json:"-"`
	SlotAt          time.Time `json:"slot_at"`
	MaxParticipants *int64    `json:"max_participants,omitempty"`
}

type PollWithOptions struct {
	Poll    Poll         `json:"poll"`
	Options []PollOption `json:"options"`
}

type Response struct {
	ID              int64     `json:"-"`
	OptionID        int64     `json:"option_id"`
	ParticipantName string    `json:"participant_name,omitempty"` // empty when redacted
	Type            string    `json:"response"`
	CreatedAt       time.Time `json:"created_at"`
}

// View and result types

type OptionOccupancy struct {
	OptionID  int64     `json:"option_id"`
	SlotAt    time.Time `json:"slot_at"`
	Booked    int       `json:"booked"`
	Max       *int64    `json:"max_participants,omitempty"`
	Available *int64    `json:"available,omitempty"`
	Full      bool      `json:"full"`
}

type PollViewResponse struct {
	Poll      Poll              `json:"poll"`
	Options   []OptionOccupancy `json:"options"`
	Expired   bool              `json:"expired"`
	ExpiresIn string            `json:"expires_in,omitempty"` // humanized, e.g. "3 days from now"
}

type OptionTally struct {
	OptionID   int64     `json:"option_id"`
	SlotAt     time.Time `json:"slot_at"`
	Yes        int       `json:"yes"`
	No         int       `json:"no"`
	Maybe      *int      `json:"maybe,omitempty"` // nil when only_yes_no
	YesNames   []string  `json:"yes_names,omitempty"`
	NoNames    []string  `json:"no_names,omitempty"`
	MaybeNames []string  `json:"maybe_names,omitempty"`
	Max        *int64    `json:"max_participants,omitempty"`
	Available  *int64    `json:"available,omitempty"`
	Full       bool      `json:"full"`
}

type ParticipantRow struct {
	Name      string           `json:"name"`
	Responses map[int64]string `json:"responses"` // option_id -> yes/no/maybe
}

type PollResults struct {
	Poll         Poll             `json:"poll"`
	Options      []OptionTally    `json:"options"`
	Participants []ParticipantRow `json:"participants,omitempty"`
	Redacted     bool             `json:"participants_hidden"`
}
