// Package digest computes deterministic content fingerprints — SHA-256
// (256-bit) and MD5 (128-bit) — over strings and seekable byte streams,
// rendered as fixed-length lowercase hex.
//
// 🚀 What is digest?
//
//	Caching and identity code needs one stable answer to "have I seen this
//	content before?". digest gives it: the same bytes always produce the
//	same hex string, whether they arrive as a string or a stream, and
//	stream digesting never disturbs the caller's read position.
//
// ✨ Key features:
//   - Text256 / Text128 — digest a string's UTF-8 bytes (no BOM), total
//     functions, never fail
//   - Stream256 / Stream128 — rewind to the start, consume everything,
//     rewind back to the start, return the hex digest
//   - independent entry points per algorithm — pick the strength at the
//     call site, no algorithm parameter to thread around
//   - fresh hash state per call — no shared or global hashing instances
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlkit/digest"
//
//	sum := digest.Text256("hello")          // 64 hex chars
//	id, err := digest.Stream128(file)       // 32 hex chars, position restored
//
// Output is always lowercase hex, two characters per byte, no separators or
// prefix: 64 characters for SHA-256, 32 for MD5. MD5 here is a compact
// content fingerprint, not cryptographic integrity protection.
//
// Failure model: the stream variants' only failure is I/O — a stream whose
// Seek or Read fails surfaces ErrRewind or ErrRead (errors.Is-matchable);
// everything else in the package is a total function.
package digest
