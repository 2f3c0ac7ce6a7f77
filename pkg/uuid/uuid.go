// Package uuid provides UUID v7 generation. v7 ids sort by timestamp,
// which keeps index pages hot for append-only tables like the usage log.
package uuid

import (
	"crypto/rand"
	"fmt"
	"time"
)

// UUID is a 128-bit UUID v7 identifier.
type UUID [16]byte

// NewV7 generates a UUID v7 (RFC 9562): 48 bits of Unix milliseconds,
// then version/variant bits over random data from crypto/rand.
func NewV7() UUID {
	var u UUID

	now := time.Now().UnixMilli()
	u[0] = byte(now >> 40)
	u[1] = byte(now >> 32)
	u[2] = byte(now >> 24)
	u[3] = byte(now >> 16)
	u[4] = byte(now >> 8)
	u[5] = byte(now)

	// crypto/rand.Read never fails on supported platforms (it panics
	// instead), so the error is ignored.
	rand.Read(u[6:]) //nolint:errcheck

	u[6] = 0x70 | (u[6] & 0x0f) // version 7
	u[7] = 0x80 | (u[7] & 0x3f) // RFC 4122 variant

	return u
}

// String renders the UUID in the standard xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form.
func (u UUID) String() string {
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x", u[0:4], u[4:6], u[6:8], u[8:10], u[10:16])
}
