// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Terminfinder API server.

Terminfinder is a Doodle-style scheduling service: an organizer creates a
poll with candidate time slots, participants answer yes/no/maybe without an
account, and the organizer reads aggregated availability per slot.

# Starting the Server

The server reads environment variables (optionally from a .env file) or CLI
flags for configuration:

	ADMIN_TOKEN=secret go run main.go

Or with flags:

	go run main.go -p 4280 -d terminfinder.db -admin-token secret

# Configuration

Required settings:

  - ADMIN_TOKEN (-admin-token): Secret for the poll-management endpoints

Optional settings:

  - PORT (-p): Server port (default: 4280)
  - DATABASE_PATH (-d): SQLite database path (default: terminfinder.db)
  - BASE_URL (-base-url): Public base URL for share links

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (polls, responses, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: admin gate, logging, JSON helpers
  - models: Request/response types
  - store: Poll/response persistence and result aggregation
  - slots: Recurrence expansion into candidate datetimes
  - auth: Public ID generation and admin token validation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
