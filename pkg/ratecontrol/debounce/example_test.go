package debounce_test

import (
	"fmt"
	"time"

	"github.com/vnykmshr/callkit/internal/testutil"
	"github.com/vnykmshr/callkit/pkg/ratecontrol/debounce"
)

// Example demonstrates collapsing a burst of keystrokes into one search.
func Example() {
	clk := testutil.NewMockClock(time.Time{})
	config := debounce.DefaultConfig()
	config.Wait = 200 * time.Millisecond
	config.Clock = clk

	search, err := debounce.NewWithConfig(func(query string) {
		fmt.Println("searching for", query)
	}, config)
	if err != nil {
		panic(err)
	}

	for _, q := range []string{"g", "go", "gop", "goph", "gopher"} {
		search.Call(q)
		clk.Advance(50 * time.Millisecond)
	}
	clk.Advance(200 * time.Millisecond)

	// Output:
	// searching for gopher
}

// Example_leading demonstrates running on the first call of a burst.
func Example_leading() {
	clk := testutil.NewMockClock(time.Time{})
	config := debounce.DefaultConfig()
	config.Wait = time.Second
	config.Immediate = true
	config.Clock = clk

	save, _ := debounce.NewWithConfig(func(version int) {
		fmt.Println("saved version", version)
	}, config)

	save.Call(1)
	save.Call(2)
	save.Call(3)
	clk.Advance(time.Second)
	save.Call(4)

	// Output:
	// saved version 1
	// saved version 4
}

// ExampleNewDynamic demonstrates wrapping a multi-argument function.
func ExampleNewDynamic() {
	clk := testutil.NewMockClock(time.Time{})
	config := debounce.DefaultConfig()
	config.Clock = clk

	resize, _ := debounce.NewDynamic(func(width, height int) {
		fmt.Printf("layout %dx%d\n", width, height)
	}, config)

	resize(800, 600)
	resize(1024, 768)
	clk.Advance(debounce.DefaultWait)

	// Output:
	// layout 1024x768
}
