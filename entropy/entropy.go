// Package entropy supplies best-effort seed material for the isaac
// generator.
//
// Every Source is tolerant by construction: it returns whatever bytes
// it could gather, which may be short or nothing at all. Seeding
// degrades gracefully rather than failing — a host with no working
// random device still gets a generator seeded from process identity
// and the clock.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"os"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Source contributes seed bytes. Implementations return whatever
// material they could gather; a nil or short slice is acceptable and
// simply contributes less.
type Source interface {
	Gather() []byte
}

// DefaultDeviceBytes is how much Device reads from the platform CSPRNG
// when no size is given. 16 bytes (128 bits) is plenty; 32 is
// complete overkill.
const DefaultDeviceBytes = 32

// Defaults returns the production source chain in seeding order:
// process identifiers, clock, random device, host fingerprint.
func Defaults() []Source {
	return []Source{Process{}, Clock{}, Device{}, Host{}}
}

// Process contributes the process, parent process, user and group
// identifiers.
type Process struct{}

// Gather returns the four identifiers as little-endian 64-bit values.
func (Process) Gather() []byte {
	ids := [4]uint64{
		uint64(os.Getpid()),
		uint64(os.Getppid()),
		uint64(os.Getuid()),
		uint64(os.Getgid()),
	}
	buf := make([]byte, 0, 8*len(ids))
	for _, id := range ids {
		buf = binary.LittleEndian.AppendUint64(buf, id)
	}
	return buf
}

// Clock contributes a high-resolution timestamp.
type Clock struct{}

// Gather returns the current time in nanoseconds since the epoch,
// little-endian.
func (Clock) Gather() []byte {
	return binary.LittleEndian.AppendUint64(nil, uint64(time.Now().UnixNano()))
}

// Device reads from the platform's random device via crypto/rand,
// which already prefers the high-quality nonblocking source and falls
// back as needed. Short reads and total failure are tolerated: only
// the bytes actually read are returned.
type Device struct {
	N int // Bytes to request; 0 means DefaultDeviceBytes.
}

// Gather returns up to d.N random bytes, possibly none.
func (d Device) Gather() []byte {
	n := d.N
	if n <= 0 {
		n = DefaultDeviceBytes
	}
	buf := make([]byte, n)
	k, err := rand.Read(buf)
	if err != nil && k <= 0 {
		return nil
	}
	return buf[:k]
}

// Host contributes a Blake2b-256 fingerprint of slow-moving host
// identity: hostname, executable path and working directory. None of
// it is secret; it distinguishes hosts from one another when the
// random device has nothing to offer.
type Host struct{}

// Gather returns the 32-byte fingerprint.
func (Host) Gather() []byte {
	var id []byte
	if name, err := os.Hostname(); err == nil {
		id = append(id, name...)
	}
	if exe, err := os.Executable(); err == nil {
		id = append(id, exe...)
	}
	if wd, err := os.Getwd(); err == nil {
		id = append(id, wd...)
	}
	sum := blake2b.Sum256(id)
	return sum[:]
}

// Fixed is a Source returning a fixed byte sequence, for deterministic
// seeding in tests and reproducible runs.
type Fixed []byte

// Gather returns the sequence itself.
func (f Fixed) Gather() []byte { return f }
