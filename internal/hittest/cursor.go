/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package hittest

import "math"

// cursorCycle lists the four resize cursor orientations in 45-degree order.
// Rotating an element shifts its handle cursors through this cycle.
var cursorCycle = [4]string{"ns", "nesw", "ew", "nwse"}

const cursorSuffix = "-resize"

// CursorFor maps a matched handle to the display cursor name. The base
// orientation follows the handle direction, with the two diagonal pairs
// swapped when width and height have opposite signs (a flipped element), and
// is then rotated in 45-degree steps to track the element's angle. The
// rotation handle always yields "grab"; HandleNone yields the empty string.
func CursorFor(handle Handle, angle, width, height float64) string {
	switch handle {
	case HandleNone:
		return ""
	case HandleRotation:
		return "grab"
	}

	flipped := width*height < 0
	var base int
	switch handle {
	case HandleN, HandleS:
		base = 0 // ns
	case HandleE, HandleW:
		base = 2 // ew
	case HandleNW, HandleSE:
		base = 3 // nwse
		if flipped {
			base = 1
		}
	case HandleNE, HandleSW:
		base = 1 // nesw
		if flipped {
			base = 3
		}
	default:
		return ""
	}

	shift := int(math.Round(angle / (math.Pi / 4)))
	idx := ((base+shift)%4 + 4) % 4
	return cursorCycle[idx] + cursorSuffix
}
