/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scene

// Smart guides and snapping for interactive move/resize tools. Deterministic
// and UI-agnostic; snapping happens independently in X and Y.

import "math"

// SnapOptions controls which guide candidates are considered and the
// threshold.
type SnapOptions struct {
	// Threshold is the maximum distance (world units) at which snapping
	// occurs. Typical UI values are 6-8 points/pixels at zoom 1.
	Threshold float64
	// Snap to edges (left, right, top, bottom).
	SnapToEdges bool
	// Snap to centers (cx, cy).
	SnapToCenters bool
}

// Anchor is a static reference bounds (another element, a frame, the page).
// Weight biases selection when distances tie (higher = preferred); use 1
// when uncertain.
type Anchor struct {
	Bounds Bounds
	Weight float64
}

// AnchorsFor derives anchors from the rotated bounds of the given elements,
// all with the same weight.
func AnchorsFor(elements []*Element, weight float64) []Anchor {
	anchors := make([]Anchor, 0, len(elements))
	for _, e := range elements {
		anchors = append(anchors, Anchor{Bounds: RotatedBounds(e), Weight: weight})
	}
	return anchors
}

// GuideLine describes a visual guide generated during a snap alignment.
// Orientation is "vertical" or "horizontal"; Kind is "edge" or "center".
// Position is the x (vertical) or y (horizontal) coordinate; From and To are
// the guide extents for rendering. Values are rounded to 3 decimal places
// for deterministic output.
type GuideLine struct {
	Orientation string
	Kind        string
	Position    float64
	From        Point
	To          Point
}

// ComputeSmartGuides computes snapping adjustments for a moving bounds
// against a set of anchors. It returns the snapped bounds and any guide
// lines to render for visual feedback.
func ComputeSmartGuides(moving Bounds, anchors []Anchor, opts SnapOptions) (Bounds, []GuideLine) {
	if opts.Threshold <= 0 {
		opts.Threshold = 6
	}
	var guides []GuideLine

	// X snapping candidates: left, centerX, right
	bestDX, bestDXDist, bestDXGuide := 0.0, math.Inf(1), GuideLine{}
	// Y snapping candidates: top, centerY, bottom
	bestDY, bestDYDist, bestDYGuide := 0.0, math.Inf(1), GuideLine{}

	mc := moving.Center()

	for _, a := range anchors {
		ab := a.Bounds
		ac := ab.Center()

		if opts.SnapToEdges {
			// left-to-left, right-to-right, then the two abutting pairs
			consider(&bestDX, &bestDXDist, &bestDXGuide, moving.MinX-ab.MinX, opts.Threshold, a.Weight, verticalGuide(ab.MinX, moving, ab, "edge"))
			consider(&bestDX, &bestDXDist, &bestDXGuide, moving.MaxX-ab.MaxX, opts.Threshold, a.Weight, verticalGuide(ab.MaxX, moving, ab, "edge"))
			consider(&bestDX, &bestDXDist, &bestDXGuide, moving.MinX-ab.MaxX, opts.Threshold, a.Weight, verticalGuide(ab.MaxX, moving, ab, "edge"))
			consider(&bestDX, &bestDXDist, &bestDXGuide, moving.MaxX-ab.MinX, opts.Threshold, a.Weight, verticalGuide(ab.MinX, moving, ab, "edge"))

			consider(&bestDY, &bestDYDist, &bestDYGuide, moving.MinY-ab.MinY, opts.Threshold, a.Weight, horizontalGuide(ab.MinY, moving, ab, "edge"))
			consider(&bestDY, &bestDYDist, &bestDYGuide, moving.MaxY-ab.MaxY, opts.Threshold, a.Weight, horizontalGuide(ab.MaxY, moving, ab, "edge"))
			consider(&bestDY, &bestDYDist, &bestDYGuide, moving.MinY-ab.MaxY, opts.Threshold, a.Weight, horizontalGuide(ab.MaxY, moving, ab, "edge"))
			consider(&bestDY, &bestDYDist, &bestDYGuide, moving.MaxY-ab.MinY, opts.Threshold, a.Weight, horizontalGuide(ab.MinY, moving, ab, "edge"))
		}
		if opts.SnapToCenters {
			consider(&bestDX, &bestDXDist, &bestDXGuide, mc.X-ac.X, opts.Threshold, a.Weight, verticalGuide(ac.X, moving, ab, "center"))
			consider(&bestDY, &bestDYDist, &bestDYGuide, mc.Y-ac.Y, opts.Threshold, a.Weight, horizontalGuide(ac.Y, moving, ab, "center"))
		}
	}

	snapped := moving
	if bestDXDist <= opts.Threshold {
		snapped = snapped.Translate(roundTo(moving.MinX-bestDX, 3)-moving.MinX, 0)
		guides = append(guides, bestDXGuide)
	}
	if bestDYDist <= opts.Threshold {
		snapped = snapped.Translate(0, roundTo(moving.MinY-bestDY, 3)-moving.MinY)
		guides = append(guides, bestDYGuide)
	}
	return snapped, guides
}

func consider(best *float64, bestDist *float64, bestGuide *GuideLine, delta, threshold, weight float64, g GuideLine) {
	dist := math.Abs(delta)
	if dist > threshold {
		return
	}
	score := dist / math.Max(1, weight)
	if score < *bestDist {
		*bestDist = dist
		*best = delta
		*bestGuide = g
	}
}

func verticalGuide(x float64, a, b Bounds, kind string) GuideLine {
	minY := math.Min(a.MinY, b.MinY)
	maxY := math.Max(a.MaxY, b.MaxY)
	x = roundTo(x, 3)
	return GuideLine{
		Orientation: "vertical",
		Kind:        kind,
		Position:    x,
		From:        Point{X: x, Y: minY},
		To:          Point{X: x, Y: maxY},
	}
}

func horizontalGuide(y float64, a, b Bounds, kind string) GuideLine {
	minX := math.Min(a.MinX, b.MinX)
	maxX := math.Max(a.MaxX, b.MaxX)
	y = roundTo(y, 3)
	return GuideLine{
		Orientation: "horizontal",
		Kind:        kind,
		Position:    y,
		From:        Point{X: minX, Y: y},
		To:          Point{X: maxX, Y: y},
	}
}
