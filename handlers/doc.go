// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package handlers contains the HTTP handlers for the Terminfinder API.
//
// Handlers are thin: they decode the request, call into the store
// layer, and translate store sentinels into HTTP status codes via
// writeStoreError. PollHandler covers the operator surface under
// /admin, ResponseHandler records participant answers, and
// ResultsHandler serves the public read endpoints.
package handlers
