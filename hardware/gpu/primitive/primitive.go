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

// Package primitive defines the descriptor for a single drawing command as
// issued to the GPU. Descriptors are immutable values: every field is set
// before submission and nothing in the engine alters them.
package primitive

import (
	"fmt"
	"strings"
)

// Kind describes the drawing command the descriptor represents.
type Kind int

// List of valid Kind values.
const (
	FlatTriangle Kind = iota
	GouraudTriangle
	FlatQuad
	GouraudQuad
	FlatLine
	GouraudLine
	Polyline
	SolidSprite
	TexturedSprite
	RectFill
	VramToVram
	VramToCpu
	CpuToVram
	LoadClut
	LoadTexturePage
)

func (k Kind) String() string {
	switch k {
	case FlatTriangle:
		return "flat triangle"
	case GouraudTriangle:
		return "gouraud triangle"
	case FlatQuad:
		return "flat quad"
	case GouraudQuad:
		return "gouraud quad"
	case FlatLine:
		return "flat line"
	case GouraudLine:
		return "gouraud line"
	case Polyline:
		return "polyline"
	case SolidSprite:
		return "solid sprite"
	case TexturedSprite:
		return "textured sprite"
	case RectFill:
		return "rectangle fill"
	case VramToVram:
		return "vram to vram copy"
	case VramToCpu:
		return "vram to cpu transfer"
	case CpuToVram:
		return "cpu to vram transfer"
	case LoadClut:
		return "clut load"
	case LoadTexturePage:
		return "texture page load"
	}
	return "unknown"
}

// IsValid returns false for Kind values outside the enumerated range.
func (k Kind) IsValid() bool {
	return k >= FlatTriangle && k <= LoadTexturePage
}

// IsPolygon returns true for the triangle and quad kinds.
func (k Kind) IsPolygon() bool {
	switch k {
	case FlatTriangle, GouraudTriangle, FlatQuad, GouraudQuad:
		return true
	}
	return false
}

// IsLine returns true for the line and polyline kinds.
func (k Kind) IsLine() bool {
	switch k {
	case FlatLine, GouraudLine, Polyline:
		return true
	}
	return false
}

// IsSized returns true for kinds whose geometry is described by a width and
// height rather than a vertex list.
func (k Kind) IsSized() bool {
	switch k {
	case SolidSprite, TexturedSprite, RectFill, VramToVram, VramToCpu, CpuToVram:
		return true
	}
	return false
}

// IsTransfer returns true for the VRAM transfer kinds.
func (k Kind) IsTransfer() bool {
	switch k {
	case VramToVram, VramToCpu, CpuToVram:
		return true
	}
	return false
}

// Overlappable returns true for kinds that do not occupy the rasterizer.
// These commands run on the transfer path in parallel with FIFO draining.
// Note that a VRAM-to-VRAM copy is performed by the rasterizer itself and is
// not overlappable.
func (k Kind) Overlappable() bool {
	return k == VramToCpu || k == CpuToVram
}

// NumVertices is the number of vertices a descriptor of this kind must
// carry. Returns -1 for kinds that are not built from a vertex list. A
// polyline requires *at least* two vertices; two is returned for that kind.
func (k Kind) NumVertices() int {
	switch k {
	case FlatTriangle, GouraudTriangle:
		return 3
	case FlatQuad, GouraudQuad:
		return 4
	case FlatLine, GouraudLine, Polyline:
		return 2
	}
	return -1
}

// BlendMode is the arithmetic used to combine a new pixel with the existing
// framebuffer value when semi-transparency is enabled.
type BlendMode int

// List of valid BlendMode values. BlendNone indicates an opaque primitive.
const (
	BlendNone BlendMode = iota
	BlendAverage
	BlendAdditive
	BlendSubtractive
	BlendQuarterAdd
)

func (m BlendMode) String() string {
	switch m {
	case BlendNone:
		return "none"
	case BlendAverage:
		return "B/2+F/2"
	case BlendAdditive:
		return "B+F"
	case BlendSubtractive:
		return "B-F"
	case BlendQuarterAdd:
		return "B+F/4"
	}
	return "unknown"
}

// IsValid returns false for BlendMode values outside the enumerated range.
func (m BlendMode) IsValid() bool {
	return m >= BlendNone && m <= BlendQuarterAdd
}

// NoBinding is the value of the TexturePage and Clut fields when the
// descriptor does not reference a texture page or palette.
const NoBinding = -1

// Vertex is one corner of a polygon or one end of a line segment.
type Vertex struct {
	X int
	Y int
}

// Descriptor describes one drawing command.
type Descriptor struct {
	Kind Kind

	// the following three fields are only meaningful for the polygon, line
	// and sprite kinds
	Textured        bool
	SemiTransparent bool
	Gouraud         bool

	// Blend must not be BlendNone when SemiTransparent is set
	Blend BlendMode

	// geometry. Vertices for the polygon and line kinds; Width/Height for
	// the sprite, rectangle and transfer kinds
	Vertices []Vertex
	Width    int
	Height   int

	// texture bindings. only meaningful when Textured is set. use NoBinding
	// when the descriptor has no opinion about the binding.
	//
	// note that the zero value of these fields is a real binding, page (or
	// palette) zero, and a textured command will pay the switch cost to
	// reach it. NewDescriptor() initialises both fields to NoBinding
	TexturePage int
	Clut        int
}

// NewDescriptor is the preferred method of initialisation for the Descriptor
// type. The texture bindings are set to NoBinding; a struct literal leaves
// them at zero, which is a real texture page and palette.
func NewDescriptor(kind Kind) Descriptor {
	return Descriptor{
		Kind:        kind,
		TexturePage: NoBinding,
		Clut:        NoBinding,
	}
}

// IsTextured returns true if the descriptor samples a texture, whether
// stated by the Textured field or implied by the Kind.
func (d Descriptor) IsTextured() bool {
	return d.Textured || d.Kind == TexturedSprite
}

// Shaded returns true if the descriptor requires per-vertex colour
// interpolation, whether stated by the Gouraud field or implied by the Kind.
func (d Descriptor) Shaded() bool {
	switch d.Kind {
	case GouraudTriangle, GouraudQuad, GouraudLine:
		return true
	}
	return d.Gouraud
}

func (d Descriptor) String() string {
	s := strings.Builder{}
	s.WriteString(d.Kind.String())
	if d.IsTextured() {
		s.WriteString(" textured")
	}
	if d.Shaded() {
		s.WriteString(" shaded")
	}
	if d.SemiTransparent {
		s.WriteString(fmt.Sprintf(" blend=%v", d.Blend))
	}
	if d.Kind.IsSized() {
		s.WriteString(fmt.Sprintf(" %dx%d", d.Width, d.Height))
	} else {
		s.WriteString(fmt.Sprintf(" vertices=%d", len(d.Vertices)))
	}
	return s.String()
}
