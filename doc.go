/*
Package callkit provides runtime type predicates and call-rate wrappers for Go
applications.

Type Predicates (pkg/typecheck):
  - Classify, TypeOf: coarse and fine classification of dynamic values
  - IsCallable, IsArrayLike, IsPlainObject, IsEmptyStructure: structural shape checks
  - IsWindowLike, IsNumericLike: self-referential and numeric-prefix checks

Rate Control (pkg/ratecontrol):
  - debounce: run once a burst of calls has settled, or on its leading edge
  - throttle: run at most once per window with a trailing catch-up call
  - clock: injectable time source

Example usage:

	import (
		"github.com/vnykmshr/callkit/pkg/ratecontrol/debounce"
		"github.com/vnykmshr/callkit/pkg/ratecontrol/throttle"
	)

	search, _ := debounce.Wrap(runQuery, 300*time.Millisecond, false)
	onScroll, _ := throttle.Wrap(render, 100*time.Millisecond)

	search("gopher")
	onScroll(120)
*/
package callkit
