// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db provides SQLite schema creation.

# Schema

Three tables with cascade-delete ownership:

  - polls: scheduling request with public_id, lifecycle flags, default capacity
  - poll_options: candidate datetimes, optional per-slot capacity override
  - responses: one row per (option, participant) with a yes/no/maybe answer

# Usage

	err := db.CreateSchema(dbConn)

CreateSchema is idempotent (IF NOT EXISTS) and safe to run at every startup.

All datetime columns hold RFC3339 UTC strings written by the store layer;
SQLite has no native datetime type and this keeps ordering and comparisons
deterministic across drivers.
*/
package db
