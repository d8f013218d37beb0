// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: title, flags, expiry, default capacity, slot spec
  - SlotSpecRequest: mode (weekly/daily/explicit) plus mode-specific fields
  - UpdatePollRequest: pointer fields, only present fields are mutated
  - SubmitResponseRequest: participant_name, option_id, response

# Response Types

Types for JSON responses:

  - CreatePollResponse: public_id, share_url, option_count
  - PollViewResponse: poll, per-option occupancy, expiry state
  - PollResults: per-option tallies, optional participant grid
  - SubmitResponseResponse: message
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Poll: scheduling request with lifecycle flags and default capacity
  - PollOption: one candidate datetime, optional capacity override
  - Response: one participant's answer for one option

# Constants

Response types:

	ResponseYes   = "yes"
	ResponseNo    = "no"
	ResponseMaybe = "maybe"

Slot modes:

	SlotModeWeekly   = "weekly"
	SlotModeDaily    = "daily"
	SlotModeExplicit = "explicit"
*/
package models
