// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns poll, option, and response persistence plus the
read-side aggregation.

# Components

  - PollStore: poll lifecycle (create with options, get, update, delete,
    list). Creation assigns a unique 8-character public ID, retrying on
    collision.
  - ResponseStore: participant submissions with capacity and change-policy
    enforcement, and redacted reads.
  - Aggregator: per-option tallies and occupancy for the results and view
    pages.

# Authorization

Privileged operations take an Operator capability:

	err := polls.DeletePoll(ctx, store.AsOperator(), publicID)

The zero value (store.Guest) is a guest; passing it to a privileged
operation returns ErrUnauthorized. Only the HTTP admin gate mints
authorized capabilities.

# Atomicity

Every multi-row write (poll+options insert, cascade delete, response
submit) runs in one transaction. The capacity check and the response
write share a transaction, so concurrent submissions cannot overbook a
slot.

# Errors

Callers branch on sentinels with errors.Is:

	ErrValidation, ErrNotFound, ErrPollClosed, ErrCapacityExceeded,
	ErrDuplicateResponse, ErrGenerationExhausted, ErrUnauthorized

# Time

Datetimes are persisted as RFC3339 UTC strings. Expiration is evaluated
at read time against the store's clock; inactive or expired polls reject
submissions with ErrPollClosed.
*/
package store
