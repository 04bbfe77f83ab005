/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scene

import "math"

// RotatedBounds returns the minimal axis-aligned world-space rectangle
// enclosing the element's rotated outline, computed exactly from its vertex
// set. Rotation is applied about the center of the unrotated vertex extents,
// not a centroid. An angle of 0 reproduces the unrotated bounding rectangle
// exactly. A single vertex or zero width/height yields a valid zero-area
// Bounds.
//
// RotatedBounds panics if a linear element has no points; a shape without an
// outline is a precondition violation, not a geometric result.
func RotatedBounds(e *Element) Bounds {
	verts := e.localVertices()
	if len(verts) == 0 {
		panic("scene: element " + e.ID + " has no vertices")
	}

	local := vertexExtents(verts)
	pivot := local.Center()

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range verts {
		p := RotatePoint(v, pivot, e.Angle)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	return Bounds{
		MinX: minX + e.X,
		MinY: minY + e.Y,
		MaxX: maxX + e.X,
		MaxY: maxY + e.Y,
	}
}

// UnrotatedBounds returns the element's world-space bounding rectangle as if
// its angle were zero. Used as the base rectangle for rotated side segments.
func UnrotatedBounds(e *Element) Bounds {
	verts := e.localVertices()
	if len(verts) == 0 {
		panic("scene: element " + e.ID + " has no vertices")
	}
	return vertexExtents(verts).Translate(e.X, e.Y)
}

// Center returns the world-space point the element rotates about.
func Center(e *Element) Point {
	return UnrotatedBounds(e).Center()
}

func vertexExtents(verts []Point) Bounds {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range verts {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return Bounds{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}
