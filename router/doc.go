// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Terminfinder API.

# Route Registration

NewRouter wires stores, handlers, and middleware into a single handler:

	handler := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Poll lifecycle (operator, requires X-Admin-Token):

	POST   /admin/polls             - Create poll from a slot spec
	GET    /admin/polls             - List all polls
	GET    /admin/polls/{publicID}  - Poll details with unredacted results
	PATCH  /admin/polls/{publicID}  - Update settings and option limits
	DELETE /admin/polls/{publicID}  - Delete poll with options and responses

Participation (public, uses the share public ID):

	GET  /polls                         - List open polls
	GET  /polls/{publicID}              - Poll view with occupancy
	POST /polls/{publicID}/responses    - Record a yes/no/maybe answer
	GET  /polls/{publicID}/results      - Tallies and participant grid

# Middleware

Every route runs through request logging. Admin routes additionally
pass RequireAdmin, and the whole mux is wrapped in a CORS handler so
browser frontends on other origins can call the API.
*/
package router
