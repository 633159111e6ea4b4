package scrape

import "strings"

// BlockType describes the kind of block detected.
type BlockType string

const (
	BlockNone       BlockType = ""
	BlockCloudflare BlockType = "cloudflare"
	BlockCaptcha    BlockType = "captcha"
	BlockLoginWall  BlockType = "login_wall"
	BlockJSShell    BlockType = "js_shell"
)

// DetectBlock checks fetched page content for signs of anti-bot protection
// or a login wall. Scraping services report these as successful fetches, so
// the markdown itself has to be inspected.
func DetectBlock(page *Page) (bool, BlockType) {
	if page == nil {
		return false, BlockNone
	}

	lower := strings.ToLower(page.Markdown)

	// Cloudflare challenge page markers.
	if strings.Contains(lower, "checking your browser") ||
		strings.Contains(lower, "cf-browser-verification") ||
		strings.Contains(lower, "cloudflare") && strings.Contains(lower, "challenge") {
		return true, BlockCloudflare
	}

	// Captcha markers.
	if strings.Contains(lower, "captcha") ||
		strings.Contains(lower, "recaptcha") ||
		strings.Contains(lower, "hcaptcha") {
		return true, BlockCaptcha
	}

	// Login wall: short page whose content is a sign-in prompt.
	if len(page.Markdown) < 2000 {
		if strings.Contains(lower, "sign in to continue") ||
			strings.Contains(lower, "log in to continue") ||
			strings.Contains(lower, "please enable cookies") {
			return true, BlockLoginWall
		}
		// JS-only shell: tiny body asking for javascript.
		if strings.Contains(lower, "enable javascript") ||
			strings.Contains(lower, "javascript is required") {
			return true, BlockJSShell
		}
	}

	return false, BlockNone
}
