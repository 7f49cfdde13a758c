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

package performance

import (
	"github.com/psxemu/gputiming/hardware/gpu/primitive"
	"github.com/psxemu/gputiming/random"
)

// Workload produces a plausible stream of drawing commands for exercising
// the engine. The mix leans towards textured polygons, which is what a game
// scene mostly consists of, with occasional sprites, fills and transfers.
//
// The stream is deterministic with respect to television coordinates: the
// same engine state produces the same next command.
type Workload struct {
	rnd *random.Random
}

// NewWorkload is the preferred method of initialisation for the Workload
// type.
func NewWorkload(tv random.TelevisionCoords) *Workload {
	return &Workload{rnd: random.NewRandom(tv)}
}

// vertices for a polygon with a pixel area in the low hundreds, offset to a
// random screen position.
func (wl *Workload) polygon(n int) []primitive.Vertex {
	x := wl.rnd.Intn(300)
	y := wl.rnd.Intn(200)
	w := 10 + wl.rnd.Intn(30)
	h := 10 + wl.rnd.Intn(30)

	v := []primitive.Vertex{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x, Y: y + h},
	}
	if n == 4 {
		v = append(v, primitive.Vertex{X: x + w, Y: y + h})
	}
	return v
}

// Next returns the next command in the stream.
func (wl *Workload) Next() primitive.Descriptor {
	blend := primitive.BlendNone
	semi := false
	if wl.rnd.Intn(4) == 0 {
		blend = primitive.BlendMode(1 + wl.rnd.Intn(4))
		semi = true
	}

	switch wl.rnd.Intn(10) {
	case 0, 1, 2:
		return primitive.Descriptor{
			Kind:            primitive.FlatTriangle,
			Textured:        true,
			SemiTransparent: semi,
			Blend:           blend,
			Vertices:        wl.polygon(3),
			TexturePage:     wl.rnd.Intn(8),
			Clut:            wl.rnd.Intn(4),
		}

	case 3, 4, 5:
		return primitive.Descriptor{
			Kind:            primitive.GouraudQuad,
			Textured:        true,
			SemiTransparent: semi,
			Blend:           blend,
			Vertices:        wl.polygon(4),
			TexturePage:     wl.rnd.Intn(8),
			Clut:            wl.rnd.Intn(4),
		}

	case 6:
		d := primitive.NewDescriptor(primitive.FlatLine)
		d.SemiTransparent = semi
		d.Blend = blend
		d.Vertices = []primitive.Vertex{
			{X: wl.rnd.Intn(320), Y: wl.rnd.Intn(240)},
			{X: wl.rnd.Intn(320), Y: wl.rnd.Intn(240)},
		}
		return d

	case 7:
		return primitive.Descriptor{
			Kind:            primitive.TexturedSprite,
			SemiTransparent: semi,
			Blend:           blend,
			Width:           16,
			Height:          16,
			TexturePage:     wl.rnd.Intn(8),
			Clut:            wl.rnd.Intn(4),
		}

	case 8:
		d := primitive.NewDescriptor(primitive.RectFill)
		d.Width = 32 + wl.rnd.Intn(64)
		d.Height = 32 + wl.rnd.Intn(64)
		return d
	}

	d := primitive.NewDescriptor(primitive.CpuToVram)
	d.Width = 64
	d.Height = 64
	return d
}
