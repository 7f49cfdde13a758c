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

package timing_test

import (
	"testing"

	"github.com/psxemu/gputiming/curated"
	"github.com/psxemu/gputiming/hardware/gpu/primitive"
	"github.com/psxemu/gputiming/hardware/gpu/texcache"
	"github.com/psxemu/gputiming/hardware/gpu/timing"
	"github.com/psxemu/gputiming/test"
)

// a resolved cache result with no switch costs. most of the tests below use
// this so that the polygon arithmetic can be checked in isolation
var noCache = texcache.Result{}

func TestFlatTriangle(t *testing.T) {
	d := primitive.Descriptor{Kind: primitive.FlatTriangle}

	entry, err := timing.Estimate(d, 100, noCache)
	test.ExpectedSuccess(t, err)
	test.Equate(t, entry.BaseCycles, 30)
	test.Equate(t, entry.CyclesPerPixel(), 1.0)
	test.Equate(t, entry.TotalCycles, 130)
}

func TestTexturedSemiTransparentTriangle(t *testing.T) {
	d := primitive.Descriptor{
		Kind:            primitive.FlatTriangle,
		Textured:        true,
		SemiTransparent: true,
		Blend:           primitive.BlendAverage,
	}

	entry, err := timing.Estimate(d, 200, noCache)
	test.ExpectedSuccess(t, err)
	test.Equate(t, entry.BaseCycles, 40)
	test.Equate(t, entry.CyclesPerPixel(), 3.0)
	test.Equate(t, entry.TotalCycles, 640)
}

// the texture and blend terms are charged once per decomposed triangle, which
// for a quad means twice
func TestGouraudTexturedQuad(t *testing.T) {
	d := primitive.Descriptor{
		Kind:            primitive.GouraudQuad,
		Textured:        true,
		SemiTransparent: true,
		Blend:           primitive.BlendAdditive,
	}

	entry, err := timing.Estimate(d, 800, noCache)
	test.ExpectedSuccess(t, err)
	test.Equate(t, entry.BaseCycles, 75)
	test.Equate(t, entry.CyclesPerPixel(), 5.5)
	test.Equate(t, entry.TotalCycles, 4475)
}

func TestLines(t *testing.T) {
	d := primitive.Descriptor{Kind: primitive.FlatLine}
	entry, err := timing.Estimate(d, 50, noCache)
	test.ExpectedSuccess(t, err)
	test.Equate(t, entry.BaseCycles, 20)
	test.Equate(t, entry.TotalCycles, 70)

	d.Kind = primitive.GouraudLine
	entry, err = timing.Estimate(d, 50, noCache)
	test.ExpectedSuccess(t, err)
	test.Equate(t, entry.BaseCycles, 25)
	test.Equate(t, entry.TotalCycles, 75)
}

// every polyline segment after the first pays a fixed penalty
func TestPolylinePenalty(t *testing.T) {
	d := primitive.Descriptor{
		Kind: primitive.Polyline,
		Vertices: []primitive.Vertex{
			{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 10},
		},
	}

	entry, err := timing.Estimate(d, 0, noCache)
	test.ExpectedSuccess(t, err)
	test.Equate(t, entry.BaseCycles, 50)

	// the shading surcharge stacks with the penalty
	d.Gouraud = true
	entry, err = timing.Estimate(d, 0, noCache)
	test.ExpectedSuccess(t, err)
	test.Equate(t, entry.BaseCycles, 55)
}

func TestSpriteSizeClasses(t *testing.T) {
	solid := []struct {
		width  int
		height int
		base   int
	}{
		{8, 8, 20},
		{9, 16, 25},
		{32, 32, 30},
		{33, 1, 40},
	}

	for _, tc := range solid {
		d := primitive.Descriptor{Kind: primitive.SolidSprite, Width: tc.width, Height: tc.height}
		entry, err := timing.Estimate(d, 0, noCache)
		test.ExpectedSuccess(t, err)
		test.Equate(t, entry.BaseCycles, tc.base)
	}

	// textured sprites use a more expensive table
	d := primitive.Descriptor{Kind: primitive.TexturedSprite, Width: 16, Height: 16}
	entry, err := timing.Estimate(d, 256, noCache)
	test.ExpectedSuccess(t, err)
	test.Equate(t, entry.BaseCycles, 35)
	test.Equate(t, entry.CyclesPerPixel(), 2.0)
	test.Equate(t, entry.TotalCycles, 547)
}

func TestRectFill(t *testing.T) {
	d := primitive.Descriptor{Kind: primitive.RectFill, Width: 16, Height: 16}
	entry, err := timing.Estimate(d, 256, noCache)
	test.ExpectedSuccess(t, err)
	test.Equate(t, entry.BaseCycles, 10)
	test.Equate(t, entry.TotalCycles, 266)

	d = primitive.Descriptor{Kind: primitive.RectFill, Width: 100, Height: 100}
	entry, err = timing.Estimate(d, 10000, noCache)
	test.ExpectedSuccess(t, err)
	test.Equate(t, entry.BaseCycles, 20)
	test.Equate(t, entry.TotalCycles, 10020)

	// a full-screen fill uses the fixed area regardless of the claimed size
	d = primitive.Descriptor{Kind: primitive.RectFill, Width: 320, Height: 240}
	entry, err = timing.Estimate(d, 76800, noCache)
	test.ExpectedSuccess(t, err)
	test.Equate(t, entry.BaseCycles, 30)
	test.Equate(t, entry.TotalCycles, 76830)
}

func TestTransfers(t *testing.T) {
	// the rasterizer moves two pixels per cycle on a vram-to-vram copy
	d := primitive.Descriptor{Kind: primitive.VramToVram, Width: 64, Height: 64}
	entry, err := timing.Estimate(d, 4096, noCache)
	test.ExpectedSuccess(t, err)
	test.Equate(t, entry.BaseCycles, 30)
	test.Equate(t, entry.CyclesPerPixel(), 0.5)
	test.Equate(t, entry.TotalCycles, 2078)

	// bus transfers move one pixel per cycle
	d = primitive.Descriptor{Kind: primitive.CpuToVram, Width: 64, Height: 64}
	entry, err = timing.Estimate(d, 4096, noCache)
	test.ExpectedSuccess(t, err)
	test.Equate(t, entry.TotalCycles, 4126)
}

// one-time switch costs land on the base; the miss surcharge lands on the
// per-pixel charge
func TestCacheCharges(t *testing.T) {
	d := primitive.Descriptor{
		Kind:     primitive.FlatTriangle,
		Textured: true,
	}

	cache := texcache.Result{OneTimeCycles: 250, PerPixelHalfCycles: 1}

	entry, err := timing.Estimate(d, 100, cache)
	test.ExpectedSuccess(t, err)
	test.Equate(t, entry.BaseCycles, 290)
	test.Equate(t, entry.CyclesPerPixel(), 2.5)
	test.Equate(t, entry.TotalCycles, 540)
}

func TestZeroArea(t *testing.T) {
	// a degenerate polygon still pays its base cost
	d := primitive.Descriptor{Kind: primitive.GouraudTriangle}
	entry, err := timing.Estimate(d, 0, noCache)
	test.ExpectedSuccess(t, err)
	test.Equate(t, entry.TotalCycles, 35)
}

// for a fixed descriptor the total cost never decreases as the pixel area
// grows
func TestMonotonicArea(t *testing.T) {
	descriptors := []primitive.Descriptor{
		{Kind: primitive.FlatTriangle},
		{Kind: primitive.GouraudQuad, Textured: true,
			SemiTransparent: true, Blend: primitive.BlendAdditive},
		{Kind: primitive.TexturedSprite},
		{Kind: primitive.RectFill},
		{Kind: primitive.CpuToVram},
	}

	for _, d := range descriptors {
		prev := 0
		for area := 0; area <= 2000; area += 7 {
			entry, err := timing.Estimate(d, area, noCache)
			test.ExpectedSuccess(t, err)
			if entry.TotalCycles < prev {
				t.Errorf("cost of %v fell from %d to %d at area %d",
					d.Kind, prev, entry.TotalCycles, area)
			}
			prev = entry.TotalCycles
		}
	}
}

func TestValidate(t *testing.T) {
	err := timing.Validate(primitive.Descriptor{Kind: primitive.Kind(99)})
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, timing.UnsupportedKind), true)

	err = timing.Validate(primitive.Descriptor{Kind: primitive.FlatTriangle, Blend: primitive.BlendMode(99)})
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, timing.UnsupportedBlendMode), true)

	// semi-transparency requires a blend mode. no silent default
	err = timing.Validate(primitive.Descriptor{Kind: primitive.FlatTriangle, SemiTransparent: true})
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, timing.UnsupportedBlendMode), true)
}
