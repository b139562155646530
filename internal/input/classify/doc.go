// Package classify turns pointer trajectories into gesture combos.
//
// A Trajectory is the ordered list of pointer positions sampled while the
// trigger button is held. DiffClassifier filters out near-stationary
// wobble and then quantizes each remaining segment into one of four
// 90 degree buckets centered on the cardinal directions. Runs of segments
// in the same bucket collapse into one stroke, so the result always
// satisfies the gesture adjacency rule.
//
// Coordinates are screen coordinates: X grows to the right and Y grows
// downward. Hosts that report (row, column) pairs should convert with
// FromRowCol.
package classify
