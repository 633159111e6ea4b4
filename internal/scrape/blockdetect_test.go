package scrape

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectBlock_CloudflareChallenge(t *testing.T) {
	page := &Page{Markdown: "Checking your browser before accessing acme.com"}
	blocked, bt := DetectBlock(page)
	assert.True(t, blocked)
	assert.Equal(t, BlockCloudflare, bt)
}

func TestDetectBlock_Captcha(t *testing.T) {
	page := &Page{Markdown: "Please complete the reCAPTCHA to continue"}
	blocked, bt := DetectBlock(page)
	assert.True(t, blocked)
	assert.Equal(t, BlockCaptcha, bt)
}

func TestDetectBlock_LoginWall(t *testing.T) {
	page := &Page{Markdown: "# Welcome back\n\nSign in to continue"}
	blocked, bt := DetectBlock(page)
	assert.True(t, blocked)
	assert.Equal(t, BlockLoginWall, bt)
}

func TestDetectBlock_JSShell(t *testing.T) {
	page := &Page{Markdown: "Enable JavaScript to view this site."}
	blocked, bt := DetectBlock(page)
	assert.True(t, blocked)
	assert.Equal(t, BlockJSShell, bt)
}

func TestDetectBlock_LongPageNotLoginWall(t *testing.T) {
	// A real article can mention signing in; only short pages count.
	md := "# Guide\n\nSign in to continue reading our newsletter.\n" + strings.Repeat("content ", 300)
	page := &Page{Markdown: md}
	blocked, bt := DetectBlock(page)
	assert.False(t, blocked)
	assert.Equal(t, BlockNone, bt)
}

func TestDetectBlock_NilPage(t *testing.T) {
	blocked, bt := DetectBlock(nil)
	assert.False(t, blocked)
	assert.Equal(t, BlockNone, bt)
}

func TestDetectBlock_CleanPage(t *testing.T) {
	page := &Page{Markdown: "# Acme Corp\n\nWe build widgets for enterprise customers."}
	blocked, bt := DetectBlock(page)
	assert.False(t, blocked)
	assert.Equal(t, BlockNone, bt)
}
