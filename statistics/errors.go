// Copyright 2024 The Histostat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package statistics

import "github.com/pingcap/errors"

// Sentinel errors for the histogram family. UnsupportedCharacter is the
// only one that can surface at estimation time; the rest are build-time
// precondition violations and never leave a histogram partially built.
var (
	// ErrUnsupportedCharacter is returned by the string alphabet arithmetic
	// (NextValue, PreviousValue) and by LIKE estimation when a byte outside
	// the supported alphabet is encountered.
	ErrUnsupportedCharacter = errors.New("statistics: unsupported character outside alphabet")

	// ErrEmptyColumn is never returned to a caller: builders degrade to a
	// zero-bucket histogram instead. No code in this package returns or
	// logs it.
	ErrEmptyColumn = errors.New("statistics: column has no values")

	// ErrInvalidBucketIndex is a precondition violation: a bucket accessor
	// was called with an index outside [0, NumBuckets()).
	ErrInvalidBucketIndex = errors.New("statistics: invalid bucket index")

	// ErrNaN is a precondition violation: a float domain value or bound was NaN.
	ErrNaN = errors.New("statistics: NaN is not orderable")

	// ErrMaxLessThanMin is a precondition violation: an equal-width builder
	// was given max < min for the column range.
	ErrMaxLessThanMin = errors.New("statistics: max is less than min")
)

// unsupportedCharacter annotates ErrUnsupportedCharacter with the
// offending byte and string, keeping the sentinel in the error's chain so
// errors.Is(err, ErrUnsupportedCharacter) still matches.
func unsupportedCharacter(s string, pos int) error {
	return errors.Annotatef(ErrUnsupportedCharacter, "byte %q at position %d in %q", s[pos], pos, s)
}
