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

// Supported alphabet: lowercase ASCII letters. Every string a
// StringHistogram builds from or estimates against must consist entirely
// of bytes in [AlphabetMin, AlphabetMax]; anything else is rejected with
// ErrUnsupportedCharacter rather than silently reinterpreted.
const (
	AlphabetMin  byte = 'a'
	AlphabetMax  byte = 'z'
	AlphabetSize      = int(AlphabetMax-AlphabetMin) + 1
)

// IsSupportedChar reports whether c belongs to the alphabet.
func IsSupportedChar(c byte) bool {
	return c >= AlphabetMin && c <= AlphabetMax
}

// ValidateString checks every byte of s against the alphabet, returning
// ErrUnsupportedCharacter (traced, naming the offending byte and position)
// on the first violation.
func ValidateString(s string) error {
	for i := 0; i < len(s); i++ {
		if !IsSupportedChar(s[i]) {
			return unsupportedCharacter(s, i)
		}
	}
	return nil
}

// NextValue returns the smallest string of the same length as s that is
// strictly greater than s, using fixed-width
// mixed-radix ("odometer") carry arithmetic: the last character is
// incremented; if it overflows past AlphabetMax it resets to AlphabetMin
// and the carry propagates one position left, exactly as decimal 199
// increments to 200. If every character carries out (s is the all-'z'
// string of its length), no same-length string is greater than s, so the
// result instead appends one AlphabetMin character to s: s followed by
// 'a' is the smallest string with s as a proper prefix, and therefore the
// smallest string greater than s.
//
// An empty string's next value is the single-character alphabet minimum.
func NextValue(s string) (string, error) {
	if err := ValidateString(s); err != nil {
		return "", err
	}
	if s == "" {
		return string(AlphabetMin), nil
	}
	buf := []byte(s)
	for i := len(buf) - 1; i >= 0; i-- {
		if buf[i] < AlphabetMax {
			buf[i]++
			return string(buf), nil
		}
		buf[i] = AlphabetMin
	}
	// Every position carried out: s was all AlphabetMax. No same-length
	// string exceeds s, so append rather than reset in place.
	return s + string(AlphabetMin), nil
}

// PreviousValue returns a string strictly less than s by changing only its
// last character. Unlike NextValue, the decrement does not cascade: only the
// last character is touched. If it is already the alphabet minimum, the
// character is simply dropped, since among fixed-width strings the string
// one shorter with every other character unchanged is the correct
// predecessor of ...a (there is no smaller same-length string starting
// with that prefix once its last character bottoms out). An empty string
// has no predecessor and is returned unchanged with ok=false.
func PreviousValue(s string) (result string, ok bool, err error) {
	if err := ValidateString(s); err != nil {
		return "", false, err
	}
	if s == "" {
		return "", false, nil
	}
	buf := []byte(s)
	last := len(buf) - 1
	if buf[last] > AlphabetMin {
		buf[last]--
		return string(buf), true, nil
	}
	return string(buf[:last]), true, nil
}

// prefixUpperBound returns an exclusive upper bound for every string
// having p as a literal prefix: the smallest string that is NOT
// prefixed by p and yet sorts after every string that is. Unlike
// NextValue's carry semantics, this increments the rightmost character of
// p that is not AlphabetMax and truncates everything after it, so trailing
// AlphabetMax characters are dropped rather than reset ("az" -> "b"),
// since a LIKE 'prefix%' range only needs a bound tight enough to exclude
// the next distinct prefix, not the true successor value. ok is false
// when p is empty or every character of p is already AlphabetMax, in
// which case no finite upper bound exists (the range is unbounded above)
// and the caller must treat the upper side as open.
func prefixUpperBound(p string) (bound string, ok bool, err error) {
	if err := ValidateString(p); err != nil {
		return "", false, err
	}
	if p == "" {
		return "", false, nil
	}
	buf := []byte(p)
	for i := len(buf) - 1; i >= 0; i-- {
		if buf[i] < AlphabetMax {
			buf[i]++
			return string(buf[:i+1]), true, nil
		}
	}
	return "", false, nil
}
