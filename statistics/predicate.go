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

// Kind identifies a predicate shape a Histogram can estimate or prune
// against. Like and NotLike are only meaningful through StringHistogram;
// Histogram[T].EstimateCardinality logs a warning and returns the total
// count for them, and CanPrune never prunes them.
type Kind int

// Predicate kinds, one for each predicate shape the histograms need to estimate or prune.
const (
	Equals Kind = iota
	NotEquals
	LessThan
	LessThanEquals
	GreaterThan
	GreaterThanEquals
	Between
	Like
	NotLike
)

// String implements fmt.Stringer for log messages.
func (k Kind) String() string {
	switch k {
	case Equals:
		return "="
	case NotEquals:
		return "!="
	case LessThan:
		return "<"
	case LessThanEquals:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanEquals:
		return ">="
	case Between:
		return "between"
	case Like:
		return "like"
	case NotLike:
		return "not like"
	default:
		return "unknown"
	}
}

// Predicate pairs a Kind with the second operand Between needs. The first
// operand of every predicate is the value passed alongside the predicate to
// EstimateCardinality/CanPrune; Upper is only read when Kind == Between, as
// the closed interval's upper bound.
type Predicate[T any] struct {
	Kind  Kind
	Upper T
}
