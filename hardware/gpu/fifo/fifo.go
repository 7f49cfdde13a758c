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

// Package fifo models the GPU's bounded command buffer. The buffer decouples
// the issuing processor from the rasterizer: commands are accepted while a
// slot is free even though the rasterizer is still busy with earlier work.
//
// The queue never reorders. The head slot is the one the rasterizer is
// draining; the remaining occupied slots are queued behind it. A slot is
// freed when the engine's cycle counter passes the slot's completion time.
package fifo

import (
	"fmt"
	"strings"

	"github.com/psxemu/gputiming/curated"
	"github.com/psxemu/gputiming/hardware/gpu/primitive"
	"github.com/psxemu/gputiming/hardware/gpu/timing"
)

// Capacity is the number of command slots in the GPU's buffer.
const Capacity = 12

// Full is returned by Push() when all slots are occupied.
const Full = "fifo: full"

// Slot records one queued command and when the rasterizer will be done with
// it. Slots are created on enqueue and destroyed on completion.
type Slot struct {
	Descriptor primitive.Descriptor
	Cost       timing.CostEntry

	// absolute cycle counts, against the engine's monotonic counter
	IssuedAt    int64
	CompletesAt int64
}

func (s Slot) String() string {
	return fmt.Sprintf("%v (%d cycles, completes at %d)", s.Descriptor, s.Cost.TotalCycles, s.CompletesAt)
}

// Queue is the bounded command buffer. The zero value is an empty queue
// ready for use.
type Queue struct {
	slots [Capacity]Slot
	head  int
	tail  int
	len   int
}

func (q *Queue) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("fifo: %d/%d", q.len, Capacity))
	for i := 0; i < q.len; i++ {
		s.WriteString("\n  ")
		s.WriteString(q.slots[(q.head+i)%Capacity].String())
	}
	return s.String()
}

// Push a slot onto the tail of the queue. Fails with the Full error when all
// slots are occupied.
func (q *Queue) Push(slot Slot) error {
	if q.len == Capacity {
		return curated.Errorf(Full)
	}
	q.slots[q.tail] = slot
	q.tail = (q.tail + 1) % Capacity
	q.len++
	return nil
}

// Peek returns the head slot, the one the rasterizer is draining. The second
// return value is false if the queue is empty.
func (q *Queue) Peek() (Slot, bool) {
	if q.len == 0 {
		return Slot{}, false
	}
	return q.slots[q.head], true
}

// Drain pops every leading slot whose completion time has been reached by
// the given cycle count. Draining is strictly in FIFO order: a slot behind
// an incomplete slot is never freed early, regardless of its own completion
// time.
func (q *Queue) Drain(upTo int64) []Slot {
	var drained []Slot
	for q.len > 0 && q.slots[q.head].CompletesAt <= upTo {
		drained = append(drained, q.slots[q.head])
		q.slots[q.head] = Slot{}
		q.head = (q.head + 1) % Capacity
		q.len--
	}
	return drained
}

// Len returns the number of occupied slots.
func (q *Queue) Len() int {
	return q.len
}

// IsEmpty returns true if no slots are occupied.
func (q *Queue) IsEmpty() bool {
	return q.len == 0
}

// IsFull returns true if all slots are occupied.
func (q *Queue) IsFull() bool {
	return q.len == Capacity
}

// LastCompletion returns the completion time of the most recently pushed
// slot, which is when the rasterizer will next be idle. Returns zero when
// the queue is empty.
func (q *Queue) LastCompletion() int64 {
	if q.len == 0 {
		return 0
	}
	return q.slots[(q.tail-1+Capacity)%Capacity].CompletesAt
}

// Clear empties the queue. Used by the engine's reset.
func (q *Queue) Clear() {
	*q = Queue{}
}

// Slots returns a copy of the occupied slots in queue order. Used for
// snapshots and for state inspection.
func (q *Queue) Slots() []Slot {
	s := make([]Slot, 0, q.len)
	for i := 0; i < q.len; i++ {
		s = append(s, q.slots[(q.head+i)%Capacity])
	}
	return s
}

// Restore replaces the queue contents with the given slots. Used when
// restoring a snapshot. Slots beyond the queue's capacity are discarded,
// although a snapshot taken from a Queue can never contain that many.
func (q *Queue) Restore(slots []Slot) {
	q.Clear()
	for _, s := range slots {
		if q.Push(s) != nil {
			break
		}
	}
}
