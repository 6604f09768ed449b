// Package lvlkit is a small toolbox of pure, single-threaded utility
// algorithms over in-memory data — the glue every larger project needs
// but nobody wants to rewrite twice.
//
// 🚀 What is lvlkit?
//
//	A zero-surprise, dependency-light collection of stateless helpers:
//		• sorted/   — order-preserving binary-search insertion into sorted slices
//		• grid/     — rectangular ↔ jagged 2D layout conversion and transposition
//		• digest/   — SHA-256 / MD5 content fingerprints for strings and streams
//		• describe/ — explicit display-text registry for enum-like values
//
// ✨ Why choose lvlkit?
//
//   - Pure functions — no shared state, no goroutines, no global caches
//   - Explicit contracts — sentinel errors, no panics on user input
//   - Pure Go — no cgo, no hidden deps
//   - Deterministic — same input, same output, every time
//
// Every package stands alone; compose them from the call site, not through
// hidden coupling. Concurrent use on distinct inputs is trivially safe;
// sharing one slice or stream across goroutines is the caller's problem to
// serialize — lvlkit takes no locks.
//
// Dive into each package's doc.go and example_test.go for walkthroughs,
// and examples/ for runnable end-to-end scenarios.
//
//	go get github.com/katalvlaran/lvlkit
package lvlkit
