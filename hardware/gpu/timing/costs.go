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

package timing

// The cost tables. The hardware documentation gives many of these values as
// ranges; every range has been resolved to a fixed constant so that the
// model is reproducible. The constants are never resampled at runtime.
//
// Per-pixel charges are expressed in half-cycle units. The tables contain
// half-cycle terms (texture-cache miss, shared interpolation) and doubling
// keeps all arithmetic in integers.

// base cycle costs for the polygon kinds. setup cost for a textured or
// shaded polygon is charged on top of the plain base.
const (
	TriangleBase         = 30
	TriangleTexturedCost = 10
	TriangleShadedCost   = 5

	QuadBase         = 50
	QuadTexturedCost = 15
	QuadShadedCost   = 10
)

// base cycle costs for the line kinds. every polyline segment after the
// first pays a fixed penalty on top of the line base.
const (
	LineBase               = 20
	LineShadedCost         = 5
	PolylineSegmentPenalty = 15
)

// base cycle costs for sprites, bucketed by size class. the class is derived
// from the larger of width and height: up to 8, up to 16, up to 32 and
// everything larger.
var solidSpriteBase = [4]int{20, 25, 30, 40}
var texturedSpriteBase = [4]int{30, 35, 40, 50}

// base cycle costs for rectangle fills, bucketed by the larger of width and
// height: below 32, from 32 to 128, above 128 and full-screen.
const (
	RectFillSmallBase  = 10
	RectFillMediumBase = 20
	RectFillLargeBase  = 30
	RectFillScreenBase = 30
)

// base cycle costs for the transfer kinds.
const (
	VramToVramBase = 30
	VramToCpuBase  = 30
	CpuToVramBase  = 30
)

// per-pixel charges in half-cycle units.
const (
	// the framebuffer write. every rasterized pixel pays this
	writeHalfCycles = 2

	// fetching a texel
	textureHalfCycles = 2

	// reading back the framebuffer and combining, any blend mode
	blendHalfCycles = 2

	// colour interpolation alongside texturing. interpolation without
	// texturing is absorbed by the shaded base cost instead
	shadedTextureHalfCycles = 1

	// a rectangle fill writes one pixel per cycle, no other charges
	rectFillHalfCycles = 2

	// the rasterizer moves two pixels per cycle on a VRAM-to-VRAM copy
	vramCopyHalfCycles = 1

	// transfers to and from the CPU bus move one pixel per cycle
	busTransferHalfCycles = 2
)

// spriteSizeClass buckets a sprite by the larger of its dimensions.
func spriteSizeClass(width, height int) int {
	m := width
	if height > m {
		m = height
	}
	switch {
	case m <= 8:
		return 0
	case m <= 16:
		return 1
	case m <= 32:
		return 2
	}
	return 3
}

// rectFillBase buckets a rectangle fill by the larger of its dimensions.
// full-screen detection matches the raster package's area rule.
func rectFillBase(width, height int) int {
	if width >= 320 && height >= 240 {
		return RectFillScreenBase
	}
	m := width
	if height > m {
		m = height
	}
	switch {
	case m < 32:
		return RectFillSmallBase
	case m <= 128:
		return RectFillMediumBase
	}
	return RectFillLargeBase
}
