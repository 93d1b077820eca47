// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

NewRouter wires handlers to routes using Go 1.22+ method routing:

	GET  /health
	POST /score
	GET  /meta/provinces
	GET  /meta/ethnicities
	GET  /meta/jobs
	GET  /jobs/search
	POST /admin/recalculate
	GET  /

All routes except /health and / are wrapped with request logging.
*/
package router
