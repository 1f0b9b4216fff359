// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package xslices provide the small slice helpers used across convpad: filling, mapping and
// comma-separated list flags.
package xslices

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// SliceWithValue creates a slice of given size filled with given value.
func SliceWithValue[T any](size int, value T) []T {
	s := make([]T, size)
	for ii := range s {
		s[ii] = value
	}
	return s
}

// Map executes the given function sequentially for every element on in, and returns a mapped slice.
func Map[In, Out any](in []In, fn func(e In) Out) (out []Out) {
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return
}

// ParseInt is a parser for Flag of integer lists.
func ParseInt(valueStr string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(valueStr))
}

// Flag creates a flag for []T with the given name, description and default value.
// It takes as input a parser for an individual T value.
//
// The flag value is given as a comma-separated list, e.g.: `-kernel=3,5`.
func Flag[T any](name string, defaultValue []T, usage string,
	parserFn func(valueStr string) (T, error)) *[]T {
	return FlagSet(flag.CommandLine, name, defaultValue, usage, parserFn)
}

// FlagSet is like Flag, but registers the flag in the given flag.FlagSet.
func FlagSet[T any](fs *flag.FlagSet, name string, defaultValue []T, usage string,
	parserFn func(valueStr string) (T, error)) *[]T {
	f := &listFlag[T]{
		parsed:   defaultValue,
		parserFn: parserFn,
	}
	fs.Var(f, name, usage)
	return &f.parsed
}

// listFlag implements flag.Value for a comma-separated list of T.
type listFlag[T any] struct {
	parsed   []T
	parserFn func(valueStr string) (T, error)
}

func (f *listFlag[T]) String() string {
	if f == nil || len(f.parsed) == 0 {
		return ""
	}
	parts := Map(f.parsed, func(e T) string {
		if s, ok := any(e).(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("%v", e)
	})
	return strings.Join(parts, ",")
}

func (f *listFlag[T]) Set(listStr string) error {
	if listStr == "" {
		f.parsed = make([]T, 0)
		return nil
	}
	parts := strings.Split(listStr, ",")
	parsed := make([]T, len(parts))
	for ii, part := range parts {
		var err error
		parsed[ii], err = f.parserFn(part)
		if err != nil {
			return err
		}
	}
	f.parsed = parsed
	return nil
}
