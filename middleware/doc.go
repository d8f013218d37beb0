// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: structured request logging with per-request IDs
  - RequireAdmin: admin gate comparing X-Admin-Token in constant time

# Helpers

  - JSONResponse: write a JSON response with status code
  - ErrorResponse: write a standard error JSON body
  - ParseJSONBody: decode a request body into a struct

CORS is handled by rs/cors in the router, not here.
*/
package middleware
