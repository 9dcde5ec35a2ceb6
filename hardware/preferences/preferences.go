// Package preferences holds the small set of runtime settings the CPU
// core consults: no disk persistence, no dotted group paths, no change
// hooks, just an atomic-value-backed Bool type, because load/save
// machinery belongs to the outer application, not the CPU core.
package preferences

import "sync/atomic"

// Bool is a concurrency-safe boolean setting.
type Bool struct {
	value atomic.Value // bool
}

// NewBool creates a Bool preference with the given default.
func NewBool(def bool) *Bool {
	b := &Bool{}
	b.value.Store(def)
	return b
}

// Get returns the current value.
func (b *Bool) Get() bool {
	v := b.value.Load()
	if v == nil {
		return false
	}
	return v.(bool)
}

// Set stores a new value.
func (b *Bool) Set(v bool) {
	b.value.Store(v)
}

// Preferences bundles the settings the CPU core reads. The zero value is
// not usable; construct with NewPreferences.
type Preferences struct {
	// RandomPowerOnState randomizes A, X, Y, SP and P on Reset instead of
	// zeroing them, mirroring the undefined power-on state of real
	// hardware.
	RandomPowerOnState *Bool

	// LogIllegalOpcodes gates whether decoding an undocumented opcode is
	// reported through the logger.
	LogIllegalOpcodes *Bool
}

// NewPreferences returns a Preferences with every setting at its default.
func NewPreferences() *Preferences {
	return &Preferences{
		RandomPowerOnState: NewBool(false),
		LogIllegalOpcodes:  NewBool(true),
	}
}
