// This file is part of GPUTiming.
//
// GPUTiming is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GPUTiming is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GPUTiming.  If not, see <https://www.gnu.org/licenses/>.

// Package texcache tracks which texture page and CLUT the GPU has bound and
// charges the one-time costs of switching them.
//
// The real hardware's texture cache misses depend on the access pattern of
// the texture data, which a timing model cannot see. The miss surcharge is
// therefore a deterministic policy: with the default PageSwitchOnly policy a
// command that switches the texture page pays an extra half cycle per pixel,
// on the grounds that a fresh page starts from a cold cache. The Disabled
// policy turns the surcharge off entirely.
//
// Tracker state is owned by the instance, never global, so parallel engine
// instances do not interfere with one another.
package texcache

import "github.com/psxemu/gputiming/hardware/gpu/primitive"

// MissPolicy selects how the per-pixel cache-miss surcharge is applied.
type MissPolicy int

// List of valid MissPolicy values.
const (
	PageSwitchOnly MissPolicy = iota
	Disabled
)

func (p MissPolicy) String() string {
	switch p {
	case PageSwitchOnly:
		return "pageSwitchOnly"
	case Disabled:
		return "disabled"
	}
	return "unknown"
}

// one-time switch costs in cycles.
const (
	PageSwitchCycles = 150
	ClutSwitchCycles = 100
)

// the cache-miss surcharge, in half cycles per pixel.
const missSurchargeHalfCycles = 1

// Result of resolving a descriptor against the tracker state.
type Result struct {
	// charged once, added to the command's base cycles
	OneTimeCycles int

	// charged per covered pixel, in half-cycle units
	PerPixelHalfCycles int
}

// Tracker remembers the currently bound texture page and CLUT.
type Tracker struct {
	page   int
	clut   int
	policy MissPolicy
}

// NewTracker is the preferred method of initialisation for the Tracker type.
// The initial state has no page and no CLUT bound.
func NewTracker() *Tracker {
	return &Tracker{
		page: primitive.NoBinding,
		clut: primitive.NoBinding,
	}
}

// SetPolicy changes the cache-miss surcharge policy.
func (tk *Tracker) SetPolicy(policy MissPolicy) {
	tk.policy = policy
}

// Policy returns the cache-miss surcharge policy in effect.
func (tk *Tracker) Policy() MissPolicy {
	return tk.policy
}

// Reset unbinds the texture page and CLUT.
func (tk *Tracker) Reset() {
	tk.page = primitive.NoBinding
	tk.clut = primitive.NoBinding
}

// Bound returns the currently bound texture page and CLUT.
// primitive.NoBinding indicates the absence of a binding.
func (tk *Tracker) Bound() (page int, clut int) {
	return tk.page, tk.clut
}

// Rebind restores a previously recorded page/CLUT pair. Used when restoring
// a snapshot.
func (tk *Tracker) Rebind(page int, clut int) {
	tk.page = page
	tk.clut = clut
}

// Resolve the descriptor against the tracker state, updating the state as a
// side effect. The explicit binding kinds (LoadTexturePage, LoadClut) always
// pay the full switch cost; textured drawing commands pay it only when their
// binding differs from the current one.
func (tk *Tracker) Resolve(d primitive.Descriptor) Result {
	var res Result

	switch d.Kind {
	case primitive.LoadTexturePage:
		res.OneTimeCycles = PageSwitchCycles
		tk.page = d.TexturePage
		return res

	case primitive.LoadClut:
		res.OneTimeCycles = ClutSwitchCycles
		tk.clut = d.Clut
		return res
	}

	if !d.IsTextured() {
		return res
	}

	pageSwitch := false
	if d.TexturePage != primitive.NoBinding && d.TexturePage != tk.page {
		res.OneTimeCycles += PageSwitchCycles
		tk.page = d.TexturePage
		pageSwitch = true
	}

	if d.Clut != primitive.NoBinding && d.Clut != tk.clut {
		res.OneTimeCycles += ClutSwitchCycles
		tk.clut = d.Clut
	}

	if pageSwitch && tk.policy == PageSwitchOnly {
		res.PerPixelHalfCycles = missSurchargeHalfCycles
	}

	return res
}
