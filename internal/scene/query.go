/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scene

// Spatial containment and overlap queries used for rubber-band selection.

// IsInsideBounds reports whether the element's rotated bounds lie fully
// within b. With eitherDirection set it also accepts the symmetric case
// where b lies fully within the element's bounds.
func IsInsideBounds(e *Element, b Bounds, eitherDirection bool) bool {
	eb := RotatedBounds(e)
	if b.ContainsBounds(eb) {
		return true
	}
	if eitherDirection {
		return eb.ContainsBounds(b)
	}
	return false
}

// OverlapsOrContains reports whether the element's rotated bounds and b
// intersect on both axes. Two ranges overlap when either range's minimum
// endpoint falls inside the other range, endpoints included, so containment
// in either direction also counts.
func OverlapsOrContains(e *Element, b Bounds) bool {
	eb := RotatedBounds(e)
	return rangesOverlap(eb.MinX, eb.MaxX, b.MinX, b.MaxX) &&
		rangesOverlap(eb.MinY, eb.MaxY, b.MinY, b.MaxY)
}

func rangesOverlap(aMin, aMax, bMin, bMax float64) bool {
	return (bMin >= aMin && bMin <= aMax) || (aMin >= bMin && aMin <= bMax)
}

// SelectionMode chooses how elements are classified against the selection
// bounds.
type SelectionMode string

const (
	// ModeInside selects elements fully inside the bounds.
	ModeInside SelectionMode = "inside"
	// ModeContain selects elements fully inside the bounds, or fully
	// containing them.
	ModeContain SelectionMode = "contain"
	// ModeOverlap selects elements intersecting the bounds at all.
	ModeOverlap SelectionMode = "overlap"
)

// BoundsResolver maps a reference element plus the full collection to its
// world-space bounds. The collection is passed so a resolver can follow
// bound/contained relations when deriving the rectangle.
type BoundsResolver func(ref *Element, all []*Element) Bounds

// SelectOptions configures SelectOverlapping. Exactly one of Bounds or
// Reference must be set; Resolver is consulted only for Reference and
// defaults to RotatedBounds. Index, when present, pre-filters candidates for
// large collections without changing the result.
type SelectOptions struct {
	Elements    []*Element
	Bounds      *Bounds
	Reference   *Element
	Resolver    BoundsResolver
	Mode        SelectionMode
	ErrorMargin float64
	Index       *Index
}

// SelectOverlapping classifies every element against the selection bounds,
// expanded outward by ErrorMargin, and returns the matching subset in the
// original iteration order.
//
// When an element matches, its direct relations join the result without
// being spatially classified themselves: every bound element, a text
// element's container, and an arrow's start/end binding targets. The closure
// is a single hop; relation targets are not expanded further, so a container
// pulled in through its label does not drag in its own bound elements.
func SelectOverlapping(opts SelectOptions) []*Element {
	var b Bounds
	switch {
	case opts.Bounds != nil:
		b = *opts.Bounds
	case opts.Reference != nil:
		if opts.Resolver != nil {
			b = opts.Resolver(opts.Reference, opts.Elements)
		} else {
			b = RotatedBounds(opts.Reference)
		}
	default:
		return nil
	}
	b = b.Expand(opts.ErrorMargin)

	var candidates map[string]bool
	if opts.Index != nil {
		candidates = make(map[string]bool)
		for _, e := range opts.Index.Candidates(b) {
			candidates[e.ID] = true
		}
	}

	included := make(map[string]bool, len(opts.Elements))
	for _, e := range opts.Elements {
		if included[e.ID] {
			continue
		}
		if candidates != nil && !candidates[e.ID] {
			continue
		}
		var hit bool
		switch opts.Mode {
		case ModeInside:
			hit = IsInsideBounds(e, b, false)
		case ModeContain:
			hit = IsInsideBounds(e, b, true)
		case ModeOverlap:
			hit = OverlapsOrContains(e, b)
		}
		if !hit {
			continue
		}
		included[e.ID] = true
		for _, id := range e.BoundElements {
			included[id] = true
		}
		if e.Kind == KindText && e.ContainerID != "" {
			included[e.ContainerID] = true
		}
		if e.Kind == KindArrow {
			if e.StartBinding != nil {
				included[e.StartBinding.ElementID] = true
			}
			if e.EndBinding != nil {
				included[e.EndBinding.ElementID] = true
			}
		}
	}

	var out []*Element
	for _, e := range opts.Elements {
		if included[e.ID] {
			out = append(out, e)
		}
	}
	return out
}
