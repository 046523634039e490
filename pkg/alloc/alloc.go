// Package alloc provides labeled buffer allocation for PBL's storage
// structures: every allocation carries a caller-supplied tag used for
// leak-detection accounting, and every fallible operation reports failure
// through an explicit error return.
//
// An Allocator scopes all of its state; there is no package-level error
// slot. The only error category is ErrOutOfMemory, which becomes reachable
// when the allocator is configured with a byte quota. Tag accounting and
// Prometheus instrumentation are optional layers on top of the allocation
// contract, not part of it.
package alloc

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/peterGraf/pbl/pkg/order"
)

// ErrOutOfMemory is the only failure the allocator reports. It is returned
// wrapped with the tag and the requested size; test for it with errors.Is.
var ErrOutOfMemory = errors.New("out of memory")

// Config configures an Allocator. The zero value is an untracked,
// unlimited allocator.
type Config struct {
	// MaxBytes caps the total live bytes the allocator will hand out.
	// Zero means unlimited. Allocations that would exceed the cap fail
	// with ErrOutOfMemory; Free returns bytes to the quota.
	MaxBytes int64

	// TrackTags enables per-tag accounting behind Stats and Leaks.
	TrackTags bool

	// Metrics, when non-nil, receives operation counts and the
	// bytes-in-use gauge. See NewMetrics.
	Metrics *Metrics
}

// Allocator hands out owned byte buffers labeled with diagnostic tags.
// All methods are safe for concurrent use.
type Allocator struct {
	config Config

	mu        sync.Mutex
	liveBytes int64
	tags      map[string]*TagStats
}

// TagStats is the accounting kept for one tag when tracking is enabled.
type TagStats struct {
	Allocations int64 // buffers ever handed out under the tag
	Frees       int64 // buffers returned under the tag
	LiveBytes   int64 // bytes handed out and not yet returned
}

// Stats is a point-in-time snapshot of an allocator's accounting.
type Stats struct {
	LiveBytes int64
	Tags      map[string]TagStats
}

// New creates an Allocator with the given configuration.
func New(config Config) *Allocator {
	a := &Allocator{config: config}
	if config.TrackTags {
		a.tags = make(map[string]*TagStats)
	}
	return a
}

// Allocate returns a new zeroed buffer of size bytes owned by the caller.
// The tag labels the allocation for accounting; an empty tag defaults to
// the operation name.
func (a *Allocator) Allocate(tag string, size int) ([]byte, error) {
	if tag == "" {
		tag = "Allocate"
	}
	if err := a.reserve(tag, size); err != nil {
		a.config.Metrics.recordOperation(opAllocate, statusError)
		return nil, err
	}
	a.config.Metrics.recordOperation(opAllocate, statusSuccess)
	return make([]byte, size), nil
}

// AllocateZero returns a new buffer of size bytes with every byte zero. It
// behaves exactly like Allocate, which also returns zeroed memory; both
// names exist because call sites distinguish buffers that rely on the
// zeroing from buffers they fully overwrite.
func (a *Allocator) AllocateZero(tag string, size int) ([]byte, error) {
	if tag == "" {
		tag = "AllocateZero"
	}
	return a.Allocate(tag, size)
}

// Duplicate returns a newly allocated copy of data under the given tag.
func (a *Allocator) Duplicate(tag string, data []byte) ([]byte, error) {
	if tag == "" {
		tag = "Duplicate"
	}
	buf, err := a.Allocate(tag, len(data))
	if err != nil {
		return nil, err
	}
	order.BoundedCopy(buf, data)
	return buf, nil
}

// DuplicateString returns a newly allocated buffer holding the bytes of s.
func (a *Allocator) DuplicateString(tag string, s string) ([]byte, error) {
	if tag == "" {
		tag = "DuplicateString"
	}
	buf, err := a.Allocate(tag, len(s))
	if err != nil {
		return nil, err
	}
	copy(buf, s)
	return buf, nil
}

// DuplicateConcat returns a newly allocated buffer holding the bytes of
// buf1 followed by the bytes of buf2.
func (a *Allocator) DuplicateConcat(tag string, buf1, buf2 []byte) ([]byte, error) {
	if tag == "" {
		tag = "DuplicateConcat"
	}
	buf, err := a.Allocate(tag, len(buf1)+len(buf2))
	if err != nil {
		return nil, err
	}
	n := order.BoundedCopy(buf, buf1)
	order.BoundedCopy(buf[n:], buf2)
	return buf, nil
}

// Free returns a buffer to the allocator's quota and accounting. The buffer
// must have been obtained from this allocator under the same tag; the bytes
// themselves are reclaimed by the garbage collector as usual.
func (a *Allocator) Free(tag string, buf []byte) {
	if tag == "" {
		tag = "Free"
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.liveBytes -= int64(len(buf))
	if a.liveBytes < 0 {
		a.liveBytes = 0
	}
	if a.tags != nil {
		st := a.tags[tag]
		if st == nil {
			st = &TagStats{}
			a.tags[tag] = st
		}
		st.Frees++
		st.LiveBytes -= int64(len(buf))
	}
	a.config.Metrics.setBytesInUse(a.liveBytes)
}

// Stats returns a snapshot of the allocator's accounting. The Tags map is
// nil unless tracking is enabled.
func (a *Allocator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := Stats{LiveBytes: a.liveBytes}
	if a.tags != nil {
		s.Tags = make(map[string]TagStats, len(a.tags))
		for tag, st := range a.tags {
			s.Tags[tag] = *st
		}
	}
	return s
}

// Leaks reports the tags whose allocations have not all been returned.
// It is empty unless tracking is enabled.
func (a *Allocator) Leaks() map[string]TagStats {
	a.mu.Lock()
	defer a.mu.Unlock()

	leaks := make(map[string]TagStats)
	for tag, st := range a.tags {
		if st.LiveBytes > 0 || st.Allocations > st.Frees {
			leaks[tag] = *st
		}
	}
	return leaks
}

// reserve claims size bytes against the quota and tag accounting.
func (a *Allocator) reserve(tag string, size int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.config.MaxBytes > 0 && a.liveBytes+int64(size) > a.config.MaxBytes {
		return errors.Wrapf(ErrOutOfMemory, "%s: failed to allocate %d bytes", tag, size)
	}

	a.liveBytes += int64(size)
	if a.tags != nil {
		st := a.tags[tag]
		if st == nil {
			st = &TagStats{}
			a.tags[tag] = st
		}
		st.Allocations++
		st.LiveBytes += int64(size)
	}
	a.config.Metrics.setBytesInUse(a.liveBytes)
	return nil
}
