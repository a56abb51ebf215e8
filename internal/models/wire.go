// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package models

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// FlexFloat decodes from either a JSON number or a numeric string.
// Coordinates and prices arrive in both forms depending on how the record
// was created.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return err
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// Float64 returns the underlying value.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// String formats the value the way the edit forms expect, without a
// forced decimal point.
func (f FlexFloat) String() string {
	return strconv.FormatFloat(float64(f), 'f', -1, 64)
}

// FlexInt decodes from either a JSON number or a numeric string.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (i *FlexInt) UnmarshalJSON(data []byte) error {
	var f FlexFloat
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*i = FlexInt(int(f))
	return nil
}

// Int returns the underlying value.
func (i FlexInt) Int() int {
	return int(i)
}

// String formats the value for form seeding.
func (i FlexInt) String() string {
	return strconv.Itoa(int(i))
}
