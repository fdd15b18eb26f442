// Copyright the go-pioasm authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package array

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// RemoveMatching removes all elements from an array matching the given
// predicate, returning a (possibly) smaller array.
func RemoveMatching[T any](items []T, predicate Predicate[T]) []T {
	count := 0
	// Count number of matching items
	for _, item := range items {
		if predicate(item) {
			count++
		}
	}
	// Check for any matches
	if count == 0 {
		return items
	}
	// Construct filtered array
	nitems := make([]T, 0, len(items)-count)
	//
	for _, item := range items {
		if !predicate(item) {
			nitems = append(nitems, item)
		}
	}
	//
	return nitems
}
