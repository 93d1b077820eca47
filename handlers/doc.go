// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the PathBuilder API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - ScoreHandler: composite risk scoring (needs db, scoring policy, driver)
  - MetaHandler: dropdown data (provinces, ethnicities, job titles)
  - JobsHandler: free-text occupation search
  - AdminHandler: on-demand recalculation (admin-key gated)

# Scoring Flow

	POST /score {province_code, ethnicity_code, job_id}

looks up the three derived risks, blends them with the configured weights
(optionally tapered by the job's protective share) and returns the score
with its band. Unknown keys produce typed 404s (unknown_province,
unknown_ethnicity, unknown_job) so a missing entity can never be mistaken
for a zero risk. Until the recalculation driver reports Complete the
endpoint answers 503 with code not_ready.

# Meta and Search

	GET /meta/provinces
	GET /meta/ethnicities
	GET /meta/jobs
	GET /jobs/search?q=nurse

Search matches case-insensitively against every known title alias.

# Admin

	POST /admin/recalculate   (X-Admin-Key header)

runs the full derivation pass again and reports rows written per table.
*/
package handlers
