// Package io reads schedules from JSON, TOML and YAML files and writes
// computed layouts as JSON.
//
// # Schedule Format
//
// All three formats share one shape. Only the record lists are required;
// start and end pin the rendered range and are derived from the data when
// omitted:
//
//	{
//	  "start": "2025-12-04",
//	  "end":   "2025-12-20",
//	  "milestones": [
//	    {"name": "Doors open", "date": "2025-12-12"}
//	  ],
//	  "tasks": [
//	    {"contractor": "MediaPro", "name": "LED wall", "start": "2025-12-04", "duration": 3}
//	  ],
//	  "manpower": [
//	    {"trade": "Riggers", "days": {"2025-12-04": 6, "2025-12-05": 4}}
//	  ]
//	}
//
// Dates are ISO 8601 calendar dates. TOML and YAML native dates are accepted
// as well. Manpower trades keep their file order, which drives stacking and
// legend order.
//
// # Data Gaps
//
// A record that cannot be used (missing name, unparseable date, duration
// below one, a headcount that is not a non-negative number) is skipped and
// counted in [schedule.Gaps]. Only a file that cannot be decoded at all, or
// an explicit range that is malformed or inverted, is an error.
//
// # Layout Export
//
// [WriteLayout] and [ExportLayout] serialise a [compose.Layout]: grid shape,
// contractor bands, per-task lanes and shades, milestones and the manpower
// summary. [WriteSchedule] and [ExportSchedule] write an input back in the
// JSON schedule format, without the records that were skipped.
//
// [compose.Layout]: github.com/matzehuels/sitegrid/pkg/compose.Layout
package io
