package fingerprint

import (
	"net/http"
	"testing"
)

const (
	uaChromeWindows = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"
	uaEdgeWindows   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36 Edg/126.0.2592.87"
	uaSafariIPhone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1"
	uaFirefoxLinux  = "Mozilla/5.0 (X11; Linux x86_64; rv:127.0) Gecko/20100101 Firefox/127.0"
	uaGooglebot     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
	uaCurl          = "curl/8.5.0"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name        string
		userAgent   string
		wantBrowser string
		wantOS      string
		wantDevice  string
		wantBot     bool
	}{
		{
			name:        "chrome on windows",
			userAgent:   uaChromeWindows,
			wantBrowser: "Chrome",
			wantOS:      "Windows 10/11",
			wantDevice:  "Desktop",
		},
		{
			name:        "edge is not chrome",
			userAgent:   uaEdgeWindows,
			wantBrowser: "Edge",
			wantOS:      "Windows 10/11",
			wantDevice:  "Desktop",
		},
		{
			name:        "safari on iphone",
			userAgent:   uaSafariIPhone,
			wantBrowser: "Safari",
			wantOS:      "iOS",
			wantDevice:  "Mobile",
		},
		{
			name:        "firefox on linux",
			userAgent:   uaFirefoxLinux,
			wantBrowser: "Firefox",
			wantOS:      "Linux",
			wantDevice:  "Desktop",
		},
		{
			name:        "googlebot",
			userAgent:   uaGooglebot,
			wantBrowser: "Unknown",
			wantOS:      "Unknown",
			wantDevice:  "Bot",
			wantBot:     true,
		},
		{
			name:        "curl",
			userAgent:   uaCurl,
			wantBrowser: "curl",
			wantOS:      "Unknown",
			wantDevice:  "Bot",
			wantBot:     true,
		},
		{
			name:        "empty",
			userAgent:   "",
			wantBrowser: "Unknown",
			wantOS:      "Unknown",
			wantDevice:  "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.userAgent)

			if got.Browser != tt.wantBrowser {
				t.Errorf("Browser = %q, want %q", got.Browser, tt.wantBrowser)
			}
			if got.OS != tt.wantOS {
				t.Errorf("OS = %q, want %q", got.OS, tt.wantOS)
			}
			if got.Device != tt.wantDevice {
				t.Errorf("Device = %q, want %q", got.Device, tt.wantDevice)
			}
			if got.Bot != tt.wantBot {
				t.Errorf("Bot = %v, want %v", got.Bot, tt.wantBot)
			}
		})
	}
}

func TestAnalyze_Confidence(t *testing.T) {
	full := Analyze(uaChromeWindows)
	if full.Confidence <= 0 || full.Confidence > 100 {
		t.Errorf("Confidence = %d, want within (0, 100]", full.Confidence)
	}

	empty := Analyze("")
	if empty.Confidence != 0 {
		t.Errorf("Confidence for empty agent = %d, want 0", empty.Confidence)
	}

	partial := Analyze("SomethingNobodyShips/1.0")
	if full.Confidence <= partial.Confidence {
		t.Errorf("full match confidence %d should exceed partial match confidence %d",
			full.Confidence, partial.Confidence)
	}
}

func TestRequestHash_Stable(t *testing.T) {
	build := func(ua, accept string) *http.Request {
		return &http.Request{Header: http.Header{
			"User-Agent":      {ua},
			"Accept":          {accept},
			"Accept-Language": {"en-US,en;q=0.9"},
		}}
	}

	first := RequestHash(build(uaChromeWindows, "text/html"))
	second := RequestHash(build(uaChromeWindows, "text/html"))
	if first != second {
		t.Errorf("same headers hashed differently: %s vs %s", first, second)
	}

	other := RequestHash(build(uaFirefoxLinux, "text/html"))
	if first == other {
		t.Errorf("different agents hashed identically: %s", first)
	}

	if len(first) != 16 {
		t.Errorf("hash length = %d, want 16 hex digits", len(first))
	}
}

func TestRequestHash_NilRequest(t *testing.T) {
	if got, want := RequestHash(nil), HashValues(nil); got != want {
		t.Errorf("RequestHash(nil) = %s, want %s", got, want)
	}
}

func TestHashValues_LengthDelimited(t *testing.T) {
	if HashValues([]string{"ab", "c"}) == HashValues([]string{"a", "bc"}) {
		t.Error(`HashValues(["ab","c"]) collides with HashValues(["a","bc"])`)
	}
}
