// Package cpu detects the packed-arithmetic capability used for kernel
// selection.
//
// The kernel suite ships two implementations of every operation: a scalar
// baseline and a packed form that consumes several narrow lanes per loop
// iteration. Whether the packed form is worth selecting depends on the host
// having packed integer arithmetic (SSE2 on amd64, NEON on arm64). Detection
// runs once, lazily, and is cached; tests can force a capability set.
package cpu

import (
	"os"
	"strconv"
	"sync"
)

// Level identifies the capability a kernel variant requires.
type Level int

const (
	// LevelBaseline is the scalar reference implementation, valid on every
	// host.
	LevelBaseline Level = iota

	// LevelPacked requires packed integer arithmetic (2x16-bit or 4x8-bit
	// lanes with 32-bit accumulation).
	LevelPacked
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelBaseline:
		return "baseline"
	case LevelPacked:
		return "packed"
	default:
		return "unknown"
	}
}

// Features describes host capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool // x86-64 packed integer arithmetic
	HasNEON bool // ARM Advanced SIMD

	// ForceBaseline disables packed kernel selection. Set from the
	// INTDSP_FORCE_BASELINE environment variable or via SetForcedFeatures.
	ForceBaseline bool

	// Architecture is runtime.GOARCH at detection time.
	Architecture string
}

// HasPackedArith reports whether the host can profitably run the packed
// kernel variants.
func (f Features) HasPackedArith() bool {
	return f.HasSSE2 || f.HasNEON
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the capabilities of the current host.
//
// Detection runs once and is cached. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
		detectedFeatures.ForceBaseline = forceBaselineEnv()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// forceBaselineEnv reports whether INTDSP_FORCE_BASELINE requests scalar-only
// kernel selection. Any non-empty value counts unless it parses as false.
func forceBaselineEnv() bool {
	val := os.Getenv("INTDSP_FORCE_BASELINE")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// SetForcedFeatures overrides hardware detection with the given features.
// Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache. Intended for
// tests.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether the given features satisfy the capability
// requirement of a kernel variant at the given level.
func Supports(features Features, level Level) bool {
	if features.ForceBaseline {
		return level == LevelBaseline
	}

	switch level {
	case LevelBaseline:
		return true
	case LevelPacked:
		return features.HasPackedArith()
	default:
		return false
	}
}
