// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package middleware provides the HTTP middleware chain of the website server.

Each Middleware receives the next handler explicitly; router.Router runs them
in registration order, outermost first.
*/
package middleware
