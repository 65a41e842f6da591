// Package dispatch implements the §4.8 runtime dispatcher: CPU capability
// detection at process start, an immutable-after-init function-pointer
// table selecting the best available kernel per primitive, and an
// explicit override mechanism for benchmarking and reproducibility.
//
// The dispatcher never mutates the kernel table implicitly after
// construction — SetCapabilities, Use and ClearOverrides are the only ways
// to change kernel selection, and all are intended for tests and tooling, not for
// hot-path callers (mirroring meta.Config/meta.Engine's
// "construct once, search many times" shape in the teacher repo this
// package is adapted from).
package dispatch

import (
	"fmt"

	"golang.org/x/sys/cpu"

	"github.com/coregx/byteprim/internal/bitset256"
	"github.com/coregx/byteprim/simd"
)

// Capability is a bit in the capability set (§3: "an immutable bitmap
// describing which kernel families the running CPU supports").
type Capability uint32

const (
	// CapAVX2 reports whether the CPU supports AVX2. This module carries
	// no AVX2 assembly backend (see simd's package doc), so this bit is
	// informational only: it never changes which kernel Find/Equal/etc.
	// dispatch to, but a future native backend could condition on it, and
	// tooling can report it for diagnostics.
	CapAVX2 Capability = 1 << iota
	// CapSSE42 reports SSE4.2 support (x86-64).
	CapSSE42
	// CapNEON reports NEON support (arm64).
	CapNEON
	// CapWideSWAR is always set on any platform with efficient 64-bit
	// integer arithmetic (i.e. always, in practice) and gates the real
	// kernel-selection decision this module makes: wide SWAR kernels vs.
	// the scalar byte-at-a-time tier.
	CapWideSWAR
)

// Set is an immutable-once-built bitmap of Capability values.
type Set uint32

// Has reports whether c is present in s.
func (s Set) Has(c Capability) bool {
	return Set(c)&s != 0
}

// String renders the set for diagnostics.
func (s Set) String() string {
	names := []struct {
		bit  Capability
		name string
	}{
		{CapAVX2, "avx2"},
		{CapSSE42, "sse4.2"},
		{CapNEON, "neon"},
		{CapWideSWAR, "wide_swar"},
	}
	out := ""
	for _, n := range names {
		if s.Has(n.bit) {
			if out != "" {
				out += "|"
			}
			out += n.name
		}
	}
	if out == "" {
		return "none"
	}
	return out
}

// detect probes the running CPU. Probe-only: it makes no calls into the
// kernels it describes.
func detect() Set {
	var s Set
	if cpu.X86.HasAVX2 {
		s |= Set(CapAVX2)
	}
	if cpu.X86.HasSSE42 {
		s |= Set(CapSSE42)
	}
	if cpu.ARM64.HasASIMD {
		s |= Set(CapNEON)
	}
	s |= Set(CapWideSWAR)
	return s
}

// Config controls dispatcher construction.
type Config struct {
	// ForceScalar, when true, restricts the table to the scalar reference
	// tier regardless of detected capabilities. Equivalent to calling
	// SetCapabilities with CapWideSWAR cleared, but expressible at
	// construction time.
	ForceScalar bool
}

// DefaultConfig returns the Config used by the package-level Default
// dispatcher.
func DefaultConfig() Config {
	return Config{}
}

// kernelTable holds one function value per primitive. Only CapWideSWAR
// currently changes which function is selected; the other capability bits
// are carried for diagnostics and for named overrides to report against.
type kernelTable struct {
	find, rfind               func(h, needle []byte) int
	equal                     func(a, b []byte, n int) bool
	order                     func(a []byte, la int, b []byte, lb int) simd.Ordering
	findByte, rfindByte       func(h []byte, b byte) int
	findByteSet, rfindByteSet func(h []byte, set bitset256.Set) int
}

func wideTable() kernelTable {
	return kernelTable{
		find: simd.Find, rfind: simd.RFind,
		equal: simd.Equal, order: simd.Order,
		findByte: simd.FindByte, rfindByte: simd.RFindByte,
		findByteSet: simd.FindByteSet, rfindByteSet: simd.RFindByteSet,
	}
}

func scalarTable() kernelTable {
	return kernelTable{
		find: simd.FindScalar, rfind: simd.RFindScalar,
		equal: simd.EqualScalar, order: simd.OrderScalar,
		findByte: simd.FindByteScalar, rfindByte: simd.RFindByteScalar,
		// Byte-set search has no separate scalar tier (§4.2: the scalar
		// loop over the bitmap is already the only implementation), so it
		// is shared between tiers.
		findByteSet: simd.FindByteSet, rfindByteSet: simd.RFindByteSet,
	}
}

// Dispatcher holds the capability set and the resulting kernel table. It
// transitions uninitialized -> initialized once, at construction, and is
// thereafter locked except through the explicit SetCapabilities/Use
// mutators (§4.8: "States: uninitialized -> initialized (locked except via
// explicit set)").
type Dispatcher struct {
	caps  Set
	table kernelTable
	// overrides holds named kernel overrides registered via Use, keyed by
	// primitive name, layered on top of table for benchmarking/
	// reproducibility (§6: "per-primitive named overrides").
	overrides map[string]any
}

// NewDispatcher builds a Dispatcher from cfg, probing CPU capabilities
// once.
func NewDispatcher(cfg Config) *Dispatcher {
	d := &Dispatcher{
		caps:      detect(),
		overrides: make(map[string]any),
	}
	if cfg.ForceScalar {
		d.caps &^= Set(CapWideSWAR)
	}
	d.rebuildTable()
	return d
}

func (d *Dispatcher) rebuildTable() {
	if d.caps.Has(CapWideSWAR) {
		d.table = wideTable()
	} else {
		d.table = scalarTable()
	}
}

// Capabilities returns the dispatcher's current capability set.
func (d *Dispatcher) Capabilities() Set {
	return d.caps
}

// SetCapabilities restricts which kernels may be selected, rebuilding the
// kernel table. Intended for tests that need to force a lower-tier kernel
// on a high-end CPU (§4.8).
func (d *Dispatcher) SetCapabilities(caps Set) {
	d.caps = caps
	d.rebuildTable()
}

// Use registers a named override for a primitive, superseding the
// capability-selected kernel for that primitive until ClearOverrides is
// called; SetCapabilities does not remove overrides. name must be one of "find", "rfind", "equal",
// "order", "find_byte", "rfind_byte", "find_byte_set", "rfind_byte_set".
// Returns an error if name is unknown or fn's type doesn't match the
// primitive's signature.
func (d *Dispatcher) Use(name string, fn any) error {
	switch name {
	case "find", "rfind":
		if _, ok := fn.(func(h, needle []byte) int); !ok {
			return fmt.Errorf("dispatch: override %q: wrong function type", name)
		}
	case "equal":
		if _, ok := fn.(func(a, b []byte, n int) bool); !ok {
			return fmt.Errorf("dispatch: override %q: wrong function type", name)
		}
	case "order":
		if _, ok := fn.(func(a []byte, la int, b []byte, lb int) simd.Ordering); !ok {
			return fmt.Errorf("dispatch: override %q: wrong function type", name)
		}
	case "find_byte", "rfind_byte":
		if _, ok := fn.(func(h []byte, b byte) int); !ok {
			return fmt.Errorf("dispatch: override %q: wrong function type", name)
		}
	case "find_byte_set", "rfind_byte_set":
		if _, ok := fn.(func(h []byte, set bitset256.Set) int); !ok {
			return fmt.Errorf("dispatch: override %q: wrong function type", name)
		}
	default:
		return fmt.Errorf("dispatch: unknown primitive %q", name)
	}
	d.overrides[name] = fn
	return nil
}

// ClearOverrides removes every registered override, reverting to the
// capability-selected kernel table.
func (d *Dispatcher) ClearOverrides() {
	d.overrides = make(map[string]any)
}

// Find dispatches to the selected Find kernel, or a registered override.
func (d *Dispatcher) Find(h, needle []byte) int {
	if fn, ok := d.overrides["find"].(func(h, needle []byte) int); ok {
		return fn(h, needle)
	}
	return d.table.find(h, needle)
}

// RFind dispatches to the selected RFind kernel, or a registered override.
func (d *Dispatcher) RFind(h, needle []byte) int {
	if fn, ok := d.overrides["rfind"].(func(h, needle []byte) int); ok {
		return fn(h, needle)
	}
	return d.table.rfind(h, needle)
}

// Equal dispatches to the selected Equal kernel, or a registered override.
func (d *Dispatcher) Equal(a, b []byte, n int) bool {
	if fn, ok := d.overrides["equal"].(func(a, b []byte, n int) bool); ok {
		return fn(a, b, n)
	}
	return d.table.equal(a, b, n)
}

// Order dispatches to the selected Order kernel, or a registered override.
func (d *Dispatcher) Order(a []byte, la int, b []byte, lb int) simd.Ordering {
	if fn, ok := d.overrides["order"].(func(a []byte, la int, b []byte, lb int) simd.Ordering); ok {
		return fn(a, la, b, lb)
	}
	return d.table.order(a, la, b, lb)
}

// FindByte dispatches to the selected FindByte kernel, or a registered override.
func (d *Dispatcher) FindByte(h []byte, b byte) int {
	if fn, ok := d.overrides["find_byte"].(func(h []byte, b byte) int); ok {
		return fn(h, b)
	}
	return d.table.findByte(h, b)
}

// RFindByte dispatches to the selected RFindByte kernel, or a registered override.
func (d *Dispatcher) RFindByte(h []byte, b byte) int {
	if fn, ok := d.overrides["rfind_byte"].(func(h []byte, b byte) int); ok {
		return fn(h, b)
	}
	return d.table.rfindByte(h, b)
}

// FindByteSet dispatches to the selected FindByteSet kernel, or a registered override.
func (d *Dispatcher) FindByteSet(h []byte, set bitset256.Set) int {
	if fn, ok := d.overrides["find_byte_set"].(func(h []byte, set bitset256.Set) int); ok {
		return fn(h, set)
	}
	return d.table.findByteSet(h, set)
}

// RFindByteSet dispatches to the selected RFindByteSet kernel, or a registered override.
func (d *Dispatcher) RFindByteSet(h []byte, set bitset256.Set) int {
	if fn, ok := d.overrides["rfind_byte_set"].(func(h []byte, set bitset256.Set) int); ok {
		return fn(h, set)
	}
	return d.table.rfindByteSet(h, set)
}

// Default is the process-wide dispatcher, initialized once at package
// load (§5: "initialization must happen-before any primitive call").
var Default = NewDispatcher(DefaultConfig())
