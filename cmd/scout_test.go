package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackNameFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.acme-corp.com", "acme-corp"},
		{"https://blueberry.io/about", "blueberry"},
		{"http://WWW.Shouty.NET", "shouty"},
		{"not a url", "not a url"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, fallbackNameFromURL(tc.url), tc.url)
	}
}
