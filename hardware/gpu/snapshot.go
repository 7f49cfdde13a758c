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

package gpu

import (
	"github.com/psxemu/gputiming/curated"
	"github.com/psxemu/gputiming/hardware/gpu/fifo"
	"github.com/psxemu/gputiming/hardware/television"
)

// State is a deliberately opaque type returned by Snapshot() and used by
// RestoreSnapshot().
type State interface{}

type state struct {
	tv        television.TelevisionState
	slots     []fifo.Slot
	page      int
	clut      int
	transfers []transfer
}

// Snapshot makes a copy of the engine state, suitable for a save-state
// feature in the host emulator.
func (g *GPU) Snapshot() State {
	s := &state{
		tv:    g.TV.Snapshot(),
		slots: g.Queue.Slots(),
	}
	s.page, s.clut = g.Cache.Bound()
	s.transfers = make([]transfer, len(g.transfers))
	copy(s.transfers, g.transfers)
	return s
}

// RestoreSnapshot copies a previously snapshotted state back into the
// engine. Descriptors completed but not yet reported are discarded; a
// restored engine reports completions from the restored timeline only.
func (g *GPU) RestoreSnapshot(snapshot State) error {
	s, ok := snapshot.(*state)
	if !ok {
		return curated.Errorf("gpu: not a valid gpu state")
	}

	err := g.TV.RestoreSnapshot(s.tv)
	if err != nil {
		return curated.Errorf("gpu: %v", err)
	}

	g.Queue.Restore(s.slots)
	g.Cache.Rebind(s.page, s.clut)
	g.transfers = make([]transfer, len(s.transfers))
	copy(g.transfers, s.transfers)
	g.pending = nil

	return nil
}
