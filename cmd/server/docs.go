// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// @title Wayfarer API
// @version 1.0
// @description Travel destination recommendations from other travellers' trips.
// @description
// @description ## Sections
// @description
// @description - **similar_age_group**: places visited by users within the age window
// @description - **co_visitation**: places visited by users who share a place with the target
// @description - **same_city**: places visited by users living in the target's city
// @description
// @description Section keys are configurable. Sections never contain places the user has
// @description visited and never repeat a place across sections.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "status": "error",
// @description   "error": {"code": "USER_NOT_FOUND", "message": "User ID not found"},
// @description   "metadata": {"timestamp": "2026-01-01T00:00:00Z"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/wayfarer/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Health checks and service information
//
// @tag.name Recommendations
// @tag.description Destination recommendations for a user
//
// @tag.name Debug
// @tag.description Data source inspection (DEBUG_ENDPOINTS=true)
package main
