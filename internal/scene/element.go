/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scene

// Element model. Elements are immutable inputs to every operation in this
// package; relations between elements are carried as identifiers and resolved
// against a caller-owned collection, never as embedded element values.

// Kind discriminates the vertex-generation rule of an element.
type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindEllipse   Kind = "ellipse"
	KindDiamond   Kind = "diamond"
	KindText      Kind = "text"
	KindLine      Kind = "line"
	KindArrow     Kind = "arrow"
	KindFreedraw  Kind = "freedraw"
)

// Binding names the element an arrow endpoint is attached to.
type Binding struct {
	ElementID string `json:"elementId"`
}

// Element is a drawable canvas primitive.
//
// X/Y anchor the element's local origin in world space. Width and Height may
// be negative for flipped shapes; all geometry here is order-independent with
// respect to their sign. Angle rotates the element about the center of its
// unrotated bounding box. Line, arrow and freedraw elements carry their
// outline directly in Points (local space, at least one point) instead of a
// width/height rectangle.
type Element struct {
	ID     string  `json:"id"`
	Kind   Kind    `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Angle  float64 `json:"angle"`

	Points []Point `json:"points,omitempty"`

	BoundElements []string `json:"boundElements,omitempty"`
	ContainerID   string   `json:"containerId,omitempty"`
	StartBinding  *Binding `json:"startBinding,omitempty"`
	EndBinding    *Binding `json:"endBinding,omitempty"`
}

// IsLinear reports whether the element's outline comes from Points.
func (e *Element) IsLinear() bool {
	switch e.Kind {
	case KindLine, KindArrow, KindFreedraw:
		return true
	}
	return false
}

// localVertices returns the element's outline relative to its own origin,
// unrotated. This is the single dispatch point for the per-kind vertex rule.
func (e *Element) localVertices() []Point {
	if e.IsLinear() {
		return e.Points
	}
	w, h := e.Width, e.Height
	if e.Kind == KindDiamond {
		// the rhombus inscribed in the w x h rectangle
		return []Point{
			{X: w / 2, Y: 0},
			{X: w, Y: h / 2},
			{X: w / 2, Y: h},
			{X: 0, Y: h / 2},
		}
	}
	return []Point{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: h},
		{X: 0, Y: h},
	}
}
