// Package ratecontrol groups the call-rate wrappers.
//
// Subpackages:
//
//   - debounce: run an action once calls have stopped arriving for a quiet period
//   - throttle: run an action at most once per window
//   - clock: the timer facility both wrappers schedule against
//
// Every wrapped function owns its own timer state. Wrapping the same action
// twice yields two independent instances.
package ratecontrol
