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

// Package timing resolves a primitive descriptor to the number of GPU cycles
// the command consumes. The total is built from a base cost (command setup)
// and a per-pixel cost multiplied by the pixel area the command covers.
//
// A quad is costed as the two triangles it decomposes into. The second
// triangle repeats the texture fetch and blend work for its share of the
// pixels but the framebuffer write, the interpolation setup and the cache
// surcharge are charged once for the whole quad. The consequence is that the
// texture and blend per-pixel terms are doubled for quad kinds.
package timing

import (
	"fmt"

	"github.com/psxemu/gputiming/curated"
	"github.com/psxemu/gputiming/hardware/gpu/primitive"
	"github.com/psxemu/gputiming/hardware/gpu/texcache"
)

// Error patterns for descriptor validation. Both indicate a caller bug; the
// engine never defaults an unrecognised value.
const (
	UnsupportedKind      = "unsupported kind: %v"
	UnsupportedBlendMode = "unsupported blend mode: %v"
)

// CostEntry is the resolved, non-ranged cost of one command. Produced once
// per command and never amortised across later commands.
type CostEntry struct {
	// cycles charged regardless of pixel area. includes any one-time
	// texture page/CLUT switch cost
	BaseCycles int

	// cycles charged per covered pixel, in half-cycle units
	PerPixelHalfCycles int

	// the pixel area the command covers
	PixelArea int

	// BaseCycles + PixelArea * PerPixelHalfCycles / 2
	TotalCycles int
}

// CyclesPerPixel returns the per-pixel charge in (possibly fractional)
// cycles.
func (e CostEntry) CyclesPerPixel() float64 {
	return float64(e.PerPixelHalfCycles) / 2
}

func (e CostEntry) String() string {
	return fmt.Sprintf("base=%d px=%d perPixel=%.1f total=%d", e.BaseCycles, e.PixelArea, e.CyclesPerPixel(), e.TotalCycles)
}

// Validate the descriptor against the enumerated kinds and blend modes. A
// semi-transparent descriptor with no blend mode is an error rather than a
// silent default: an unrecognised value signals a caller bug.
func Validate(d primitive.Descriptor) error {
	if !d.Kind.IsValid() {
		return curated.Errorf(UnsupportedKind, int(d.Kind))
	}
	if !d.Blend.IsValid() {
		return curated.Errorf(UnsupportedBlendMode, int(d.Blend))
	}
	if d.SemiTransparent && d.Blend == primitive.BlendNone {
		return curated.Errorf(UnsupportedBlendMode, "semi-transparent command with no blend mode")
	}
	return nil
}

// Estimate the cycle cost of a command. The pixelArea argument comes from
// the raster package; the cache argument from resolving the descriptor
// against the texture cache tracker.
func Estimate(d primitive.Descriptor, pixelArea int, cache texcache.Result) (CostEntry, error) {
	err := Validate(d)
	if err != nil {
		return CostEntry{}, err
	}

	var base int
	var perPixel int

	blend := 0
	if d.Blend != primitive.BlendNone {
		blend = blendHalfCycles
	}

	switch d.Kind {
	case primitive.FlatTriangle, primitive.GouraudTriangle:
		base = TriangleBase
		perPixel = writeHalfCycles + blend
		if d.IsTextured() {
			base += TriangleTexturedCost
			perPixel += textureHalfCycles
		}
		if d.Shaded() {
			base += TriangleShadedCost
			if d.IsTextured() {
				perPixel += shadedTextureHalfCycles
			}
		}

	case primitive.FlatQuad, primitive.GouraudQuad:
		// texture and blend terms are doubled: one for each decomposed
		// triangle. see the package documentation
		base = QuadBase
		perPixel = writeHalfCycles + 2*blend
		if d.IsTextured() {
			base += QuadTexturedCost
			perPixel += 2 * textureHalfCycles
		}
		if d.Shaded() {
			base += QuadShadedCost
			if d.IsTextured() {
				perPixel += shadedTextureHalfCycles
			}
		}

	case primitive.FlatLine, primitive.GouraudLine:
		base = LineBase
		perPixel = writeHalfCycles + blend
		if d.Shaded() {
			base += LineShadedCost
		}

	case primitive.Polyline:
		base = LineBase + PolylineSegmentPenalty*(len(d.Vertices)-2)
		perPixel = writeHalfCycles + blend
		if d.Shaded() {
			base += LineShadedCost
		}

	case primitive.SolidSprite:
		base = solidSpriteBase[spriteSizeClass(d.Width, d.Height)]
		perPixel = writeHalfCycles + blend

	case primitive.TexturedSprite:
		base = texturedSpriteBase[spriteSizeClass(d.Width, d.Height)]
		perPixel = writeHalfCycles + textureHalfCycles + blend

	case primitive.RectFill:
		base = rectFillBase(d.Width, d.Height)
		perPixel = rectFillHalfCycles

	case primitive.VramToVram:
		base = VramToVramBase
		perPixel = vramCopyHalfCycles

	case primitive.VramToCpu:
		base = VramToCpuBase
		perPixel = busTransferHalfCycles

	case primitive.CpuToVram:
		base = CpuToVramBase
		perPixel = busTransferHalfCycles

	case primitive.LoadClut, primitive.LoadTexturePage:
		// the entire cost is the one-time switch charged by the cache
		// tracker, added below
	}

	// one-time switch costs are charged to this command alone
	base += cache.OneTimeCycles
	perPixel += cache.PerPixelHalfCycles

	entry := CostEntry{
		BaseCycles:         base,
		PerPixelHalfCycles: perPixel,
		PixelArea:          pixelArea,
	}
	entry.TotalCycles = entry.BaseCycles + entry.PixelArea*entry.PerPixelHalfCycles/2

	return entry, nil
}
