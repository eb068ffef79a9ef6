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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIntEqualNumElementsHistogram(t *testing.T) {
	values := []SortedValue[int64]{{Value: 1, Count: 1}, {Value: 2, Count: 1}}
	h, err := NewIntEqualNumElementsHistogram(values, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(2), h.NumBuckets())
}

func TestNewStringEqualNumElementsHistogram(t *testing.T) {
	values := []SortedValue[string]{{Value: "ab", Count: 1}, {Value: "cd", Count: 1}}
	h, err := NewStringEqualNumElementsHistogram(values, 2, 0)
	require.NoError(t, err)
	sh := NewStringHistogram(h)
	est, err := sh.EstimateLike("a%")
	require.NoError(t, err)
	require.GreaterOrEqual(t, est, float32(0))
}
