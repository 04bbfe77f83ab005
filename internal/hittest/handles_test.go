/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package hittest

import (
	"math"
	"testing"

	"sketchcore/internal/scene"
)

func rectEl(id string, x, y, w, h, angle float64) *scene.Element {
	return &scene.Element{ID: id, Kind: scene.KindRectangle, X: x, Y: y, Width: w, Height: h, Angle: angle}
}

func TestHitTestHandles_RotationWins(t *testing.T) {
	handles := HandleSet{
		HandleNW:       {X: 0, Y: 0, Width: 10, Height: 10},
		HandleRotation: {X: 5, Y: 5, Width: 10, Height: 10},
	}
	if h := HitTestHandles(7, 7, handles); h != HandleRotation {
		t.Fatalf("rotation takes priority over overlapping handles, got %q", h)
	}
	if h := HitTestHandles(2, 2, handles); h != HandleNW {
		t.Fatalf("expected nw, got %q", h)
	}
	if h := HitTestHandles(100, 100, handles); h != HandleNone {
		t.Fatalf("expected no hit, got %q", h)
	}
}

func TestHitTestHandles_InclusiveEdges(t *testing.T) {
	handles := HandleSet{HandleSE: {X: 10, Y: 20, Width: 8, Height: 8}}
	for _, p := range [][2]float64{{10, 20}, {18, 28}, {10, 28}, {18, 20}} {
		if h := HitTestHandles(p[0], p[1], handles); h != HandleSE {
			t.Fatalf("corner (%v,%v) is a hit, got %q", p[0], p[1], h)
		}
	}
	if h := HitTestHandles(18.01, 24, handles); h != HandleNone {
		t.Fatalf("just past the edge must miss, got %q", h)
	}
}

func TestHitTestHandles_UnknownKeysIgnored(t *testing.T) {
	handles := HandleSet{Handle("sideways"): {X: 0, Y: 0, Width: 100, Height: 100}}
	if h := HitTestHandles(50, 50, handles); h != HandleNone {
		t.Fatalf("unknown handle keys are ignored, got %q", h)
	}
}

func TestResizeTest_RequiresSelection(t *testing.T) {
	el := rectEl("r", 0, 0, 100, 50, 0)
	handles := HandleSet{HandleN: {X: 45, Y: -5, Width: 10, Height: 10}}
	if h := ResizeTest(el, false, 50, 0, handles, 1, true); h != HandleNone {
		t.Fatalf("unselected elements never hit, got %q", h)
	}
	if h := ResizeTest(el, true, 50, 0, handles, 1, true); h != HandleN {
		t.Fatalf("selected element hits its handle, got %q", h)
	}
}

func TestResizeTest_SideGrab(t *testing.T) {
	el := rectEl("r", 0, 0, 100, 50, 0)
	// no positioned handles; only the side tolerance can match
	if h := ResizeTest(el, true, 50, -10, nil, 1, true); h != HandleN {
		t.Fatalf("pointer near the top edge grabs n, got %q", h)
	}
	if h := ResizeTest(el, true, 110, 25, nil, 1, true); h != HandleE {
		t.Fatalf("pointer near the right edge grabs e, got %q", h)
	}
	if h := ResizeTest(el, true, 50, 58, nil, 1, true); h != HandleS {
		t.Fatalf("pointer near the bottom edge grabs s, got %q", h)
	}
	if h := ResizeTest(el, true, -10, 25, nil, 1, true); h != HandleW {
		t.Fatalf("pointer near the left edge grabs w, got %q", h)
	}
	if h := ResizeTest(el, true, 50, -17, nil, 1, true); h != HandleNone {
		t.Fatalf("pointer beyond the tolerance misses, got %q", h)
	}
	if h := ResizeTest(el, true, 50, -10, nil, 1, false); h != HandleNone {
		t.Fatalf("side resize disabled must miss, got %q", h)
	}
}

func TestResizeTest_SideGrabFollowsRotation(t *testing.T) {
	el := rectEl("r", 0, 0, 100, 50, math.Pi/2)
	// after a quarter turn the n side stands vertically right of the center
	if h := ResizeTest(el, true, 85, 25, nil, 1, true); h != HandleN {
		t.Fatalf("rotated n side should match, got %q", h)
	}
	// the same pointer against the unrotated element hits nothing
	if h := ResizeTest(rectEl("r2", 0, 0, 100, 50, 0), true, 85, 25, nil, 1, true); h != HandleNone {
		t.Fatalf("unrotated element must miss there, got %q", h)
	}
}

func TestResizeTest_ZoomKeepsScreenTolerance(t *testing.T) {
	el := rectEl("r", 0, 0, 100, 50, 0)
	if h := ResizeTest(el, true, 50, -10, nil, 1, true); h != HandleN {
		t.Fatalf("zoom 1: within tolerance, got %q", h)
	}
	if h := ResizeTest(el, true, 50, -10, nil, 2, true); h != HandleNone {
		t.Fatalf("zoom 2 halves the world tolerance, got %q", h)
	}
}

func TestResizeTest_TwoPointLineHasNoSides(t *testing.T) {
	line := &scene.Element{ID: "l", Kind: scene.KindLine, X: 0, Y: 0, Points: []scene.Point{{X: 0, Y: 0}, {X: 50, Y: 0}}}
	if h := ResizeTest(line, true, 25, 2, nil, 1, true); h != HandleNone {
		t.Fatalf("a two-point line is never side-resized, got %q", h)
	}
	bent := &scene.Element{ID: "b", Kind: scene.KindLine, X: 0, Y: 0, Points: []scene.Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 30}}}
	if h := ResizeTest(bent, true, 25, -5, nil, 1, true); h == HandleNone {
		t.Fatalf("a multi-point line has sides")
	}
}

func TestResizeTest_ZoomPrecondition(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("zero zoom must panic")
		}
	}()
	ResizeTest(rectEl("r", 0, 0, 10, 10, 0), true, 100, 100, nil, 0, true)
}

func TestHitTestFixedBounds(t *testing.T) {
	b := scene.Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 50}
	handles := HandleSet{HandleSE: {X: 96, Y: 46, Width: 8, Height: 8}}
	if h := HitTestFixedBounds(b, 100, 50, handles, 1, false); h != HandleSE {
		t.Fatalf("positioned handle on the fixed box, got %q", h)
	}
	if h := HitTestFixedBounds(b, 50, -6, nil, 1, true); h != HandleN {
		t.Fatalf("side grab on the fixed box, got %q", h)
	}
	if h := HitTestFixedBounds(b, 50, -6, nil, 1, false); h != HandleNone {
		t.Fatalf("side grab disabled, got %q", h)
	}
}

func TestFirstResizeHit_FirstMatchWins(t *testing.T) {
	first := rectEl("first", 0, 0, 100, 50, 0)
	second := rectEl("second", 0, 0, 100, 50, 0)
	layout := func(e *scene.Element, zoom float64) HandleSet {
		return HandleSet{HandleSE: {X: 96, Y: 46, Width: 8, Height: 8}}
	}
	selected := map[string]bool{"first": true, "second": true}

	hit, ok := FirstResizeHit([]*scene.Element{first, second}, selected, 100, 50, layout, 1, false)
	if !ok || hit.Element.ID != "first" || hit.Handle != HandleSE {
		t.Fatalf("earliest element wins, got %+v ok=%v", hit, ok)
	}

	// when the first element is not selected the second takes over
	hit, ok = FirstResizeHit([]*scene.Element{first, second}, map[string]bool{"second": true}, 100, 50, layout, 1, false)
	if !ok || hit.Element.ID != "second" {
		t.Fatalf("selection gates candidates, got %+v ok=%v", hit, ok)
	}

	if _, ok := FirstResizeHit([]*scene.Element{first, second}, nil, 500, 500, layout, 1, false); ok {
		t.Fatalf("no hit expected far away")
	}
}
