package digest

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
)

// Sentinel errors for stream digesting. Both wrap the underlying I/O error,
// so errors.Is matches the sentinel and errors.Unwrap reaches the cause.
var (
	// ErrRewind indicates the stream could not be repositioned to its start,
	// either before reading or when restoring the position afterwards.
	ErrRewind = errors.New("digest: stream does not support rewinding")

	// ErrRead indicates the stream failed while its content was consumed.
	ErrRead = errors.New("digest: stream read failed")
)

// Text256 returns the SHA-256 digest of s's UTF-8 bytes as 64 lowercase hex
// characters. Total: never fails, empty input yields the well-known
// empty-string SHA-256 constant.
func Text256(s string) string {
	sum := sha256.Sum256([]byte(s))

	return hex.EncodeToString(sum[:])
}

// Text128 returns the MD5 digest of s's UTF-8 bytes as 32 lowercase hex
// characters. Total: never fails, empty input yields the well-known
// empty-string MD5 constant.
func Text128(s string) string {
	sum := md5.Sum([]byte(s))

	return hex.EncodeToString(sum[:])
}

// Stream256 returns the SHA-256 digest of rs's entire content as 64
// lowercase hex characters.
//
// The stream is rewound to its start before reading and rewound back to the
// start before returning, so the call is non-destructive to the caller's
// read position. Returns ErrRewind if either rewind fails and ErrRead if
// consuming the content fails; both wrap the underlying I/O error.
func Stream256(rs io.ReadSeeker) (string, error) {
	return streamSum(rs, sha256.New())
}

// Stream128 returns the MD5 digest of rs's entire content as 32 lowercase
// hex characters, with the same rewind and error contract as Stream256.
func Stream128(rs io.ReadSeeker) (string, error) {
	return streamSum(rs, md5.New())
}

// streamSum rewinds rs, pipes its content through h (fresh per call, never
// shared), rewinds rs again, and renders the digest as lowercase hex.
func streamSum(rs io.ReadSeeker, h hash.Hash) (string, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRewind, err)
	}
	if _, err := io.Copy(h, rs); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	// Restore the position even though the content is already consumed:
	// callers rely on the stream being left at its start.
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRewind, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
