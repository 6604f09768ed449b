// Package describe maps enum-like values to human-readable display text
// through an explicit registry — no runtime reflection, no attribute scans.
//
// 🚀 What is describe?
//
//	UI and logging code wants "Fullscreen (borderless)" where the program
//	has WindowMode(2). describe holds that mapping in one typed registry
//	per value kind, populated explicitly at startup, so every display
//	string is grep-able and the compiler sees every key type.
//
// ✨ Key features:
//   - Registry[K] — one registry per comparable key type, typically an
//     enum-like named constant type
//   - Register / Lookup / Describe — explicit writes, two-case reads, and
//     a never-fails read with a fallback formatter
//   - insertion-ordered Keys() for deterministic menus and listings
//   - WithFallback option to control how unregistered values render
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlkit/describe"
//
//	type Quality int
//	const (
//		Low Quality = iota
//		High
//	)
//
//	r := describe.New[Quality]()
//	_ = r.Register(Low, "Low (fastest)")
//	_ = r.Register(High, "High (best looking)")
//
//	r.Describe(High) // "High (best looking)"
//	r.Describe(42)   // fallback: "42"
//
// A Registry is built once and read many times; it takes no locks, so
// register everything before sharing it across goroutines and treat it as
// read-only afterwards.
package describe
