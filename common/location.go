/*
 * Swift - A compiler frontend for the Swift programming language
 *
 * Copyright Tienex and the Swift frontend contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package common

import (
	"encoding/json"
	"fmt"
)

// Location describes the origin of a compilation unit,
// e.g. a source file or a synthetic test unit.
type Location interface {
	fmt.Stringer
	// ID returns the canonical ID of this location
	ID() string
}

const StringLocationPrefix = "S"

// StringLocation

type StringLocation string

var _ Location = StringLocation("")

func NewStringLocation(gauge MemoryGauge, id string) StringLocation {
	UseMemory(gauge, NewRawStringMemoryUsage(len(id)))
	return StringLocation(id)
}

func (l StringLocation) String() string {
	return string(l)
}

func (l StringLocation) ID() string {
	return fmt.Sprintf("%s.%s", StringLocationPrefix, string(l))
}

func (l StringLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type   string
		String string
	}{
		Type:   "StringLocation",
		String: string(l),
	})
}
