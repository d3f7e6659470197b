// Package lanes assigns vertical drawing slots to contractor tasks.
//
// Tasks of one contractor that share a day must not be drawn on top of each
// other. [Assign] sorts each contractor's tasks by start date and hands out
// lanes first-fit: a lane is reused only once the task holding it has ended.
// This is greedy interval-graph colouring, and the number of lanes it opens
// for a contractor equals the largest number of that contractor's tasks
// running on any single day, which is the lower bound.
//
// Contractors are then stacked into bands. Priority contractors come first in
// the order given, the rest follow in order of first appearance. Each band
// starts where the previous one ended, so bands of different contractors
// never share a slot even when their dates overlap:
//
//	plan := lanes.Assign(tasks, []string{"Dynamic Motion", "MediaPro"})
//	slot := plan.Assignments[i].StackIndex()
package lanes
