// Package schedule defines the typed records a construction schedule is
// built from: milestones, contractor tasks, the inclusive date range under
// consideration and per-trade daily manpower.
//
// All dates are [civil.Date] values. There is no time-of-day and no time
// zone anywhere in the model; day arithmetic is exact.
//
// Records are plain values. Everything derived from them (grid cells, lanes,
// shades, histogram bars) is recomputed for every render and lives in the
// packages that compute it.
package schedule
