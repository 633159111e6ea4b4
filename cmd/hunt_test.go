package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptQuery(t *testing.T) {
	var out bytes.Buffer
	query, err := promptQuery(strings.NewReader("plumbers in denver\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "plumbers in denver", query)
	assert.Contains(t, out.String(), "Enter niche/location query")
}

func TestPromptQueryTrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	query, err := promptQuery(strings.NewReader("  roofing companies austin  \n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "roofing companies austin", query)
}

func TestPromptQueryNoTrailingNewline(t *testing.T) {
	var out bytes.Buffer
	query, err := promptQuery(strings.NewReader("dentists in boise"), &out)
	require.NoError(t, err)
	assert.Equal(t, "dentists in boise", query)
}

func TestPromptQueryEmpty(t *testing.T) {
	var out bytes.Buffer
	_, err := promptQuery(strings.NewReader("\n"), &out)
	require.Error(t, err)
}
