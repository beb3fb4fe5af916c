// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package convert implements unit conversion over a small fixed table.
//
// Supported pairs: celsius/fahrenheit, kg/lbs, m/ft, km/miles, each in both
// directions. Anything outside the table is rejected rather than guessed.
package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupported is returned for unit pairs not in the conversion table.
var ErrUnsupported = errors.New("conversion not supported")

// conversion is one directed entry in the table.
type conversion struct {
	apply              func(float64) float64
	fromLabel, toLabel string
	// compact joins value and unit label without a space, used for the
	// temperature degree notation ("100.0°C").
	compact bool
}

// table maps "from→to" unit pairs to their conversion.
var table = map[[2]string]conversion{
	{"celsius", "fahrenheit"}: {func(v float64) float64 { return v*9/5 + 32 }, "°C", "°F", true},
	{"fahrenheit", "celsius"}: {func(v float64) float64 { return (v - 32) * 5 / 9 }, "°F", "°C", true},
	{"kg", "lbs"}:             {func(v float64) float64 { return v * 2.20462 }, "kg", "lbs", false},
	{"lbs", "kg"}:             {func(v float64) float64 { return v / 2.20462 }, "lbs", "kg", false},
	{"m", "ft"}:               {func(v float64) float64 { return v * 3.28084 }, "m", "ft", false},
	{"ft", "m"}:               {func(v float64) float64 { return v / 3.28084 }, "ft", "m", false},
	{"km", "miles"}:           {func(v float64) float64 { return v * 0.621371 }, "km", "miles", false},
	{"miles", "km"}:           {func(v float64) float64 { return v / 0.621371 }, "miles", "km", false},
}

// Supported returns the human-readable list of supported unit pairs for
// usage messages.
func Supported() string {
	return "celsius/fahrenheit, kg/lbs, m/ft, km/miles"
}

// Convert converts value from one unit to another. Unit names are
// case-insensitive. Returns ErrUnsupported for pairs outside the table.
func Convert(value float64, from, to string) (float64, error) {
	c, ok := table[[2]string{strings.ToLower(from), strings.ToLower(to)}]
	if !ok {
		return 0, ErrUnsupported
	}
	return c.apply(value), nil
}

// Format renders a completed conversion as a single line, e.g.
// "100.0°C = 212.00°F" or "100.0 kg = 220.46 lbs". The input value keeps its
// decimal point even when integral; the result is always two decimal places.
func Format(value float64, from, to string, result float64) string {
	c, ok := table[[2]string{strings.ToLower(from), strings.ToLower(to)}]
	if !ok {
		return ""
	}
	if c.compact {
		return fmt.Sprintf("%s%s = %.2f%s", formatValue(value), c.fromLabel, result, c.toLabel)
	}
	return fmt.Sprintf("%s %s = %.2f %s", formatValue(value), c.fromLabel, result, c.toLabel)
}

// formatValue prints the input value with minimal digits but always at least
// one decimal place, so "100" reads back as "100.0".
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
