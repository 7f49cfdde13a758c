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

package raster_test

import (
	"testing"

	"github.com/psxemu/gputiming/curated"
	"github.com/psxemu/gputiming/hardware/gpu/primitive"
	"github.com/psxemu/gputiming/hardware/gpu/raster"
	"github.com/psxemu/gputiming/test"
)

func TestTriangle(t *testing.T) {
	d := primitive.Descriptor{
		Kind:     primitive.FlatTriangle,
		Vertices: []primitive.Vertex{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 0, Y: 10}},
	}

	area, err := raster.PixelArea(d)
	test.ExpectedSuccess(t, err)
	test.Equate(t, area, 100)

	// winding order does not affect the area
	d.Vertices = []primitive.Vertex{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 20, Y: 0}}
	area, err = raster.PixelArea(d)
	test.ExpectedSuccess(t, err)
	test.Equate(t, area, 100)
}

func TestDegenerateTriangle(t *testing.T) {
	// collinear vertices cover no pixels. not an error
	d := primitive.Descriptor{
		Kind:     primitive.GouraudTriangle,
		Vertices: []primitive.Vertex{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 20}},
	}

	area, err := raster.PixelArea(d)
	test.ExpectedSuccess(t, err)
	test.Equate(t, area, 0)
}

func TestQuad(t *testing.T) {
	// a 40x20 rectangle decomposes into two triangles of 400 pixels each
	d := primitive.Descriptor{
		Kind: primitive.FlatQuad,
		Vertices: []primitive.Vertex{
			{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 0, Y: 20}, {X: 40, Y: 20},
		},
	}

	area, err := raster.PixelArea(d)
	test.ExpectedSuccess(t, err)
	test.Equate(t, area, 800)
}

func TestLine(t *testing.T) {
	// line length is the span along the major axis
	d := primitive.Descriptor{
		Kind:     primitive.FlatLine,
		Vertices: []primitive.Vertex{{X: 0, Y: 0}, {X: 30, Y: 10}},
	}

	area, err := raster.PixelArea(d)
	test.ExpectedSuccess(t, err)
	test.Equate(t, area, 30)

	// zero-length lines cover no pixels
	d.Vertices = []primitive.Vertex{{X: 5, Y: 5}, {X: 5, Y: 5}}
	area, err = raster.PixelArea(d)
	test.ExpectedSuccess(t, err)
	test.Equate(t, area, 0)
}

func TestPolyline(t *testing.T) {
	d := primitive.Descriptor{
		Kind: primitive.Polyline,
		Vertices: []primitive.Vertex{
			{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 25}, {X: 0, Y: 20},
		},
	}

	area, err := raster.PixelArea(d)
	test.ExpectedSuccess(t, err)
	test.Equate(t, area, 45)
}

func TestRectFill(t *testing.T) {
	d := primitive.Descriptor{Kind: primitive.RectFill, Width: 16, Height: 16}
	area, err := raster.PixelArea(d)
	test.ExpectedSuccess(t, err)
	test.Equate(t, area, 256)

	// at or beyond the display size the fixed full-screen area applies
	d = primitive.Descriptor{Kind: primitive.RectFill, Width: 512, Height: 256}
	area, err = raster.PixelArea(d)
	test.ExpectedSuccess(t, err)
	test.Equate(t, area, raster.FullScreenArea)
}

func TestBindingKinds(t *testing.T) {
	area, err := raster.PixelArea(primitive.Descriptor{Kind: primitive.LoadClut})
	test.ExpectedSuccess(t, err)
	test.Equate(t, area, 0)

	area, err = raster.PixelArea(primitive.Descriptor{Kind: primitive.LoadTexturePage})
	test.ExpectedSuccess(t, err)
	test.Equate(t, area, 0)
}

func TestInvalidGeometry(t *testing.T) {
	// wrong vertex count
	d := primitive.Descriptor{
		Kind:     primitive.FlatTriangle,
		Vertices: []primitive.Vertex{{X: 0, Y: 0}, {X: 10, Y: 0}},
	}
	_, err := raster.PixelArea(d)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, raster.InvalidGeometry), true)

	// non-positive dimensions
	d = primitive.Descriptor{Kind: primitive.SolidSprite, Width: 0, Height: 16}
	_, err = raster.PixelArea(d)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, raster.InvalidGeometry), true)

	d = primitive.Descriptor{Kind: primitive.VramToCpu, Width: 16, Height: -1}
	_, err = raster.PixelArea(d)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, raster.InvalidGeometry), true)
}
