// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package xslices

import (
	"flag"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceWithValue(t *testing.T) {
	assert.Equal(t, []int{3, 3, 3}, SliceWithValue(3, 3))
	assert.Equal(t, []string{}, SliceWithValue(0, "x"))
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

type named int

func (n named) String() string { return "n" + strconv.Itoa(int(n)) }

func TestFlagSet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	ints := FlagSet(fs, "ints", []int{1}, "list of ints", ParseInt)
	names := FlagSet(fs, "names", nil, "list of named", func(s string) (named, error) {
		v, err := ParseInt(s)
		return named(v), err
	})
	assert.Equal(t, []int{1}, *ints)

	require.NoError(t, fs.Parse([]string{"-ints=3, 5,7", "-names=2,4"}))
	assert.Equal(t, []int{3, 5, 7}, *ints)
	assert.Equal(t, []named{2, 4}, *names)
	assert.Equal(t, "n2,n4", fs.Lookup("names").Value.String())
	assert.Equal(t, "3,5,7", fs.Lookup("ints").Value.String())

	// Parsing errors keep the previous value.
	fs.SetOutput(nopWriter{})
	require.Error(t, fs.Parse([]string{"-ints=3,x"}))
	assert.Equal(t, []int{3, 5, 7}, *ints)

	require.NoError(t, fs.Parse([]string{"-ints="}))
	assert.Empty(t, *ints)
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
