package describe_test

import (
	"fmt"

	"github.com/katalvlaran/lvlkit/describe"
)

type quality int

const (
	qualityLow quality = iota
	qualityHigh
	qualityUltra
)

// ExampleRegistry_Describe builds a settings menu: registered values get
// their display text, anything unknown falls back to a plain rendering.
func ExampleRegistry_Describe() {
	r := describe.New[quality]()
	_ = r.Register(qualityLow, "Low (fastest)")
	_ = r.Register(qualityHigh, "High (best looking)")

	for _, q := range r.Keys() {
		fmt.Println(r.Describe(q))
	}
	fmt.Println(r.Describe(qualityUltra)) // never registered
	// Output:
	// Low (fastest)
	// High (best looking)
	// 2
}
