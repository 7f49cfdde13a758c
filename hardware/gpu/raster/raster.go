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

// Package raster computes the number of pixels a primitive covers. The area
// is the quantity the cost model multiplies the per-pixel cycle charge by;
// it is a pure function of the descriptor's geometry.
package raster

import (
	"github.com/psxemu/gputiming/curated"
	"github.com/psxemu/gputiming/hardware/gpu/primitive"
)

// InvalidGeometry is returned when a descriptor's geometry does not match
// its kind.
const InvalidGeometry = "invalid geometry: %v"

// FullScreenArea is the fixed area used for a rectangle fill that covers the
// whole display. The hardware clears the full screen in a fixed number of
// cycles so the area is a constant rather than a runtime multiplication.
const FullScreenArea = 320 * 240

// full-screen detection threshold for rectangle fills.
const (
	fullScreenWidth  = 320
	fullScreenHeight = 240
)

// PixelArea returns the number of pixels the descriptor covers. The area of
// a degenerate polygon is zero; zero is not an error.
func PixelArea(d primitive.Descriptor) (int, error) {
	switch d.Kind {
	case primitive.FlatTriangle, primitive.GouraudTriangle:
		if len(d.Vertices) != 3 {
			return 0, curated.Errorf(InvalidGeometry, curated.Errorf("triangle requires 3 vertices (got %d)", len(d.Vertices)))
		}
		return triangleArea(d.Vertices[0], d.Vertices[1], d.Vertices[2]), nil

	case primitive.FlatQuad, primitive.GouraudQuad:
		if len(d.Vertices) != 4 {
			return 0, curated.Errorf(InvalidGeometry, curated.Errorf("quad requires 4 vertices (got %d)", len(d.Vertices)))
		}

		// the quad is decomposed into two triangles sharing the v1-v2 edge,
		// matching the order the rasterizer draws them in. the areas are
		// summed without any double-count correction, mirroring the
		// quad-as-two-triangles cost model
		a := triangleArea(d.Vertices[0], d.Vertices[1], d.Vertices[2])
		b := triangleArea(d.Vertices[1], d.Vertices[2], d.Vertices[3])
		return a + b, nil

	case primitive.FlatLine, primitive.GouraudLine:
		if len(d.Vertices) != 2 {
			return 0, curated.Errorf(InvalidGeometry, curated.Errorf("line requires 2 vertices (got %d)", len(d.Vertices)))
		}
		return lineLength(d.Vertices[0], d.Vertices[1]), nil

	case primitive.Polyline:
		if len(d.Vertices) < 2 {
			return 0, curated.Errorf(InvalidGeometry, curated.Errorf("polyline requires at least 2 vertices (got %d)", len(d.Vertices)))
		}
		area := 0
		for i := 1; i < len(d.Vertices); i++ {
			area += lineLength(d.Vertices[i-1], d.Vertices[i])
		}
		return area, nil

	case primitive.SolidSprite, primitive.TexturedSprite:
		if d.Width <= 0 || d.Height <= 0 {
			return 0, curated.Errorf(InvalidGeometry, curated.Errorf("sprite requires positive dimensions (got %dx%d)", d.Width, d.Height))
		}
		return d.Width * d.Height, nil

	case primitive.RectFill:
		if d.Width <= 0 || d.Height <= 0 {
			return 0, curated.Errorf(InvalidGeometry, curated.Errorf("rectangle fill requires positive dimensions (got %dx%d)", d.Width, d.Height))
		}
		if d.Width >= fullScreenWidth && d.Height >= fullScreenHeight {
			return FullScreenArea, nil
		}
		return d.Width * d.Height, nil

	case primitive.VramToVram, primitive.VramToCpu, primitive.CpuToVram:
		if d.Width <= 0 || d.Height <= 0 {
			return 0, curated.Errorf(InvalidGeometry, curated.Errorf("transfer requires positive dimensions (got %dx%d)", d.Width, d.Height))
		}
		return d.Width * d.Height, nil

	case primitive.LoadClut, primitive.LoadTexturePage:
		// binding commands touch no framebuffer pixels
		return 0, nil
	}

	return 0, curated.Errorf(InvalidGeometry, curated.Errorf("unknown kind (%d)", int(d.Kind)))
}

// area from the cross product of two edges. integer truncation of the half
// area is deterministic and matches the rasterizer's pixel coverage closely
// enough for a timing model.
func triangleArea(v0, v1, v2 primitive.Vertex) int {
	cross := (v1.X-v0.X)*(v2.Y-v0.Y) - (v2.X-v0.X)*(v1.Y-v0.Y)
	if cross < 0 {
		cross = -cross
	}
	return cross / 2
}

// the pixel count of a line is its span along the major axis. a zero-length
// line covers no pixels for costing purposes.
func lineLength(v0, v1 primitive.Vertex) int {
	dx := v1.X - v0.X
	if dx < 0 {
		dx = -dx
	}
	dy := v1.Y - v0.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
