/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package hittest resolves pointer coordinates against the transform handles
// of selected elements: the eight directional resize handles, the rotation
// handle, and tolerance-based grabbing of a rotated bounding-box side.
//
// Handle positions are supplied by the caller's layout code; this package
// only decides what, if anything, the pointer landed on. All functions are
// pure and safe for concurrent use.
package hittest

import (
	"math"

	"sketchcore/internal/scene"
)

// Handle identifies a transform handle, or HandleNone for no match.
type Handle string

const (
	HandleNone     Handle = ""
	HandleN        Handle = "n"
	HandleS        Handle = "s"
	HandleE        Handle = "e"
	HandleW        Handle = "w"
	HandleNE       Handle = "ne"
	HandleNW       Handle = "nw"
	HandleSE       Handle = "se"
	HandleSW       Handle = "sw"
	HandleRotation Handle = "rotation"
)

// SideResizeThreshold is the on-screen distance, in pixels, within which a
// pointer grabs a bounding-box side. The world-space tolerance is this value
// divided by the current zoom, so the felt tolerance is zoom-independent.
const SideResizeThreshold = 8.0

// TransformHandle is a positioned handle rectangle in pointer coordinates.
type TransformHandle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (h TransformHandle) contains(x, y float64) bool {
	return x >= h.X && x <= h.X+h.Width && y >= h.Y && y <= h.Y+h.Height
}

// HandleSet maps handle identifiers to their positioned rectangles for one
// element (or one fixed selection box). Entries under unknown keys are
// ignored.
type HandleSet map[Handle]TransformHandle

// directionalOrder fixes the test order for the eight resize handles.
var directionalOrder = [...]Handle{
	HandleNW, HandleNE, HandleSW, HandleSE,
	HandleN, HandleS, HandleW, HandleE,
}

// sideOrder fixes the test order for side-resize segments.
var sideOrder = [...]Handle{HandleN, HandleE, HandleS, HandleW}

// HitTestHandles returns the handle whose rectangle contains the pointer,
// edges included. The rotation handle wins over any overlapping resize
// handle; HandleNone is returned when nothing is hit.
func HitTestHandles(x, y float64, handles HandleSet) Handle {
	if h, ok := handles[HandleRotation]; ok && h.contains(x, y) {
		return HandleRotation
	}
	for _, k := range directionalOrder {
		if h, ok := handles[k]; ok && h.contains(x, y) {
			return k
		}
	}
	return HandleNone
}

// ResizeTest resolves the pointer against an element's transform handles.
// Elements that are not selected never match; selection state is supplied by
// the caller. If no positioned handle is hit and sideResize is enabled, the
// pointer is tested against the four sides of the element's rotated bounding
// rectangle, inflated by SideResizeThreshold/zoom. A line with only two
// points has no side distinct from its endpoints and is never side-resized.
//
// zoom must be positive; a zero zoom is a caller bug and panics.
func ResizeTest(e *scene.Element, selected bool, x, y float64, handles HandleSet, zoom float64, sideResize bool) Handle {
	if !selected {
		return HandleNone
	}
	if h := HitTestHandles(x, y, handles); h != HandleNone {
		return h
	}
	if !sideResize {
		return HandleNone
	}
	if e.IsLinear() && len(e.Points) == 2 {
		return HandleNone
	}
	spacing := sideSpacing(zoom)
	corners := rotatedCorners(scene.UnrotatedBounds(e).Expand(spacing), e.Angle)
	return hitTestSides(x, y, corners, spacing)
}

// HitTestFixedBounds is ResizeTest for an externally supplied axis-aligned
// bounding box, such as the selection box around multiple elements. The box
// is never rotated.
func HitTestFixedBounds(b scene.Bounds, x, y float64, handles HandleSet, zoom float64, sideResize bool) Handle {
	if h := HitTestHandles(x, y, handles); h != HandleNone {
		return h
	}
	if !sideResize {
		return HandleNone
	}
	spacing := sideSpacing(zoom)
	corners := rotatedCorners(b.Expand(spacing), 0)
	return hitTestSides(x, y, corners, spacing)
}

// HandleLayout positions the transform handles for an element at the given
// zoom. Layout is owned by the caller; hit-testing consumes its output as an
// immutable snapshot.
type HandleLayout func(e *scene.Element, zoom float64) HandleSet

// Hit pairs an element with the handle the pointer landed on.
type Hit struct {
	Element *scene.Element
	Handle  Handle
}

// FirstResizeHit returns the first element, in input order, whose ResizeTest
// matches, together with the matched handle. Later elements are not tested
// once a match is found.
func FirstResizeHit(elements []*scene.Element, selectedIDs map[string]bool, x, y float64, layout HandleLayout, zoom float64, sideResize bool) (Hit, bool) {
	for _, e := range elements {
		if h := ResizeTest(e, selectedIDs[e.ID], x, y, layout(e, zoom), zoom, sideResize); h != HandleNone {
			return Hit{Element: e, Handle: h}, true
		}
	}
	return Hit{}, false
}

func sideSpacing(zoom float64) float64 {
	if zoom <= 0 || math.IsNaN(zoom) {
		panic("hittest: zoom must be positive")
	}
	return SideResizeThreshold / zoom
}

// rotatedCorners returns the four corners of b rotated about its center,
// ordered top-left, top-right, bottom-right, bottom-left.
func rotatedCorners(b scene.Bounds, angle float64) [4]scene.Point {
	c := b.Center()
	return [4]scene.Point{
		scene.RotatePoint(scene.Point{X: b.MinX, Y: b.MinY}, c, angle),
		scene.RotatePoint(scene.Point{X: b.MaxX, Y: b.MinY}, c, angle),
		scene.RotatePoint(scene.Point{X: b.MaxX, Y: b.MaxY}, c, angle),
		scene.RotatePoint(scene.Point{X: b.MinX, Y: b.MaxY}, c, angle),
	}
}

func hitTestSides(x, y float64, corners [4]scene.Point, spacing float64) Handle {
	tl, tr, br, bl := corners[0], corners[1], corners[2], corners[3]
	p := scene.Point{X: x, Y: y}
	sides := [4][2]scene.Point{
		{tl, tr}, // n
		{tr, br}, // e
		{br, bl}, // s
		{bl, tl}, // w
	}
	for i, s := range sides {
		if scene.SegmentDistance(p, s[0], s[1]) <= spacing {
			return sideOrder[i]
		}
	}
	return HandleNone
}
