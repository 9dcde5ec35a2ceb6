// Package instance defines the parts of the emulation that may differ
// between separate, concurrently running instances of the same machine,
// but which are not the CPU itself: preferences and the random number
// generator used for power-on state.
package instance

import (
	"github.com/jacobpaton/NESEmu/hardware/preferences"
	"github.com/jacobpaton/NESEmu/internal/random"
)

// Instance bundles the preferences and RNG a CPU is constructed with.
type Instance struct {
	Random *random.Random
	Prefs  *preferences.Preferences
}

// NewInstance returns an Instance with default preferences and a
// freshly-seeded RNG. Pass a non-nil prefs to share settings between
// instances.
func NewInstance(prefs *preferences.Preferences) *Instance {
	if prefs == nil {
		prefs = preferences.NewPreferences()
	}
	return &Instance{
		Random: random.NewRandom(),
		Prefs:  prefs,
	}
}
