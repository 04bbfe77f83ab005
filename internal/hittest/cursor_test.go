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
)

func deg(d float64) float64 { return d * math.Pi / 180 }

func TestCursorFor_BaseMapping(t *testing.T) {
	cases := []struct {
		handle Handle
		want   string
	}{
		{HandleN, "ns-resize"},
		{HandleS, "ns-resize"},
		{HandleE, "ew-resize"},
		{HandleW, "ew-resize"},
		{HandleNW, "nwse-resize"},
		{HandleSE, "nwse-resize"},
		{HandleNE, "nesw-resize"},
		{HandleSW, "nesw-resize"},
	}
	for _, c := range cases {
		if got := CursorFor(c.handle, 0, 100, 50); got != c.want {
			t.Fatalf("%s: want %s, got %s", c.handle, c.want, got)
		}
	}
}

func TestCursorFor_RotationSteps(t *testing.T) {
	// 50 degrees rounds to one 45-degree step
	if got := CursorFor(HandleN, deg(50), 100, 50); got != "nesw-resize" {
		t.Fatalf("n at 50deg: want nesw-resize, got %s", got)
	}
	if got := CursorFor(HandleN, deg(90), 100, 50); got != "ew-resize" {
		t.Fatalf("n at 90deg: want ew-resize, got %s", got)
	}
	if got := CursorFor(HandleN, deg(180), 100, 50); got != "ns-resize" {
		t.Fatalf("n at 180deg: full half turn restores ns, got %s", got)
	}
	if got := CursorFor(HandleN, deg(-45), 100, 50); got != "nwse-resize" {
		t.Fatalf("n at -45deg: want nwse-resize, got %s", got)
	}
	if got := CursorFor(HandleE, deg(45), 100, 50); got != "nwse-resize" {
		t.Fatalf("e at 45deg: want nwse-resize, got %s", got)
	}
}

func TestCursorFor_FlippedSwapsDiagonals(t *testing.T) {
	if got := CursorFor(HandleNW, 0, -100, 50); got != "nesw-resize" {
		t.Fatalf("flipped nw: want nesw-resize, got %s", got)
	}
	if got := CursorFor(HandleNE, 0, 100, -50); got != "nwse-resize" {
		t.Fatalf("flipped ne: want nwse-resize, got %s", got)
	}
	// double flip is no flip
	if got := CursorFor(HandleNW, 0, -100, -50); got != "nwse-resize" {
		t.Fatalf("double flip nw: want nwse-resize, got %s", got)
	}
	// straight handles are unaffected by flipping
	if got := CursorFor(HandleN, 0, -100, 50); got != "ns-resize" {
		t.Fatalf("flipped n: want ns-resize, got %s", got)
	}
}

func TestCursorFor_RotationAndNone(t *testing.T) {
	if got := CursorFor(HandleRotation, deg(77), 100, 50); got != "grab" {
		t.Fatalf("rotation handle is always grab, got %s", got)
	}
	if got := CursorFor(HandleNone, 0, 100, 50); got != "" {
		t.Fatalf("no handle yields an empty cursor, got %q", got)
	}
}
