// Package chart implements the anomaly chart controller.
//
// A [Controller] owns the cached dataset, the fixed scales, the rendered
// [Scene] and the playback state. Hosts feed it messages ([LoadedMsg],
// [SeekMsg], [PlayMsg], [PauseMsg], [TickMsg], [HoverMsg], [LeaveMsg]) and
// act on the returned [Effects]: arming or cancelling the playback timer and
// animating the path with a [PathTransition].
//
// # Invariants
//
// The rendered markers always equal the dataset points with Year <= the
// playhead, and the path interpolates exactly those points. At most one
// timer generation is live; ticks carrying any other generation are ignored.
//
// # Thread Safety
//
// Controller is NOT safe for concurrent use. Hosts serialize messages on one
// event loop, the way Bubble Tea delivers them.
package chart
