// Package types provides type definitions for the structured records produced by the company profiler.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// NotFound marks a field that was checked and yielded no data.
const NotFound = "not_found"

var notFoundJSON = []byte(`"` + NotFound + `"`)

// OptionalString is a string that serializes as NotFound when empty.
type OptionalString string

// String returns the value, or NotFound when empty.
func (s OptionalString) String() string {
	if s == "" {
		return NotFound
	}
	return string(s)
}

// IsNotFound reports whether the value is empty or already the sentinel.
func (s OptionalString) IsNotFound() bool {
	return s == "" || s == NotFound
}

// MarshalJSON implements json.Marshaler.
func (s OptionalString) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler. The sentinel decodes to the empty value.
func (s *OptionalString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("optional string: %w", err)
	}
	if v == NotFound {
		v = ""
	}
	*s = OptionalString(v)
	return nil
}

// StringSet is an unordered collection of strings that serializes as NotFound when empty.
// Callers must not depend on element order.
type StringSet []string

// NewStringSet builds a StringSet from the keys of a set, sorted for stable output.
func NewStringSet(set map[string]struct{}) StringSet {
	if len(set) == 0 {
		return nil
	}
	out := make(StringSet, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Contains reports whether v is a member of the set.
func (s StringSet) Contains(v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}

// MarshalJSON implements json.Marshaler.
func (s StringSet) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return notFoundJSON, nil
	}
	return json.Marshal([]string(s))
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringSet) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), notFoundJSON) {
		*s = nil
		return nil
	}
	var v []string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("string set: %w", err)
	}
	*s = v
	return nil
}

// LinkMap maps a platform display name to the first URL seen for it.
// It serializes as NotFound when empty.
type LinkMap map[string]string

// MarshalJSON implements json.Marshaler.
func (m LinkMap) MarshalJSON() ([]byte, error) {
	if len(m) == 0 {
		return notFoundJSON, nil
	}
	return json.Marshal(map[string]string(m))
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *LinkMap) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), notFoundJSON) {
		*m = nil
		return nil
	}
	var v map[string]string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("link map: %w", err)
	}
	*m = v
	return nil
}
