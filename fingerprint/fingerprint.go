package fingerprint

import (
	"strings"
)

// Info is what a User-Agent string gives away.
type Info struct {
	// Browser is the detected browser family, or "Unknown".
	Browser string

	// OS is the detected operating system, or "Unknown".
	OS string

	// Device is "Desktop", "Mobile", "Tablet", or "Bot".
	Device string

	// Bot reports whether the agent looks like an automated client.
	Bot bool

	// Confidence is 0-100, aggregated from the rules that matched.
	Confidence int
}

// rule matches one lowercase substring and contributes its label and a
// confidence delta.
type rule struct {
	pattern string
	label   string
	delta   int
}

// Specific families before the generic ones they embed.
var browserRules = []rule{
	{"edg/", "Edge", 30},
	{"edge/", "Edge", 30},
	{"opr/", "Opera", 30},
	{"opera", "Opera", 30},
	{"samsungbrowser", "Samsung Internet", 30},
	{"firefox/", "Firefox", 30},
	{"chrome/", "Chrome", 30},
	{"crios/", "Chrome", 30},
	{"safari/", "Safari", 25},
	{"msie", "Internet Explorer", 25},
	{"trident/", "Internet Explorer", 25},
	{"curl/", "curl", 30},
	{"wget/", "Wget", 30},
	{"python-requests", "python-requests", 30},
	{"go-http-client", "Go HTTP client", 30},
}

var osRules = []rule{
	{"windows nt 10", "Windows 10/11", 30},
	{"windows nt", "Windows", 25},
	{"android", "Android", 30},
	{"iphone os", "iOS", 30},
	{"ipad", "iPadOS", 30},
	{"mac os x", "macOS", 30},
	{"cros", "ChromeOS", 30},
	{"linux", "Linux", 25},
	{"freebsd", "FreeBSD", 25},
}

var deviceRules = []rule{
	{"ipad", "Tablet", 20},
	{"tablet", "Tablet", 20},
	{"mobile", "Mobile", 20},
	{"iphone", "Mobile", 20},
	{"android", "Mobile", 15},
}

var botRules = []rule{
	{"googlebot", "Bot", 40},
	{"bingbot", "Bot", 40},
	{"duckduckbot", "Bot", 40},
	{"yandexbot", "Bot", 40},
	{"baiduspider", "Bot", 40},
	{"slurp", "Bot", 40},
	{"facebookexternalhit", "Bot", 40},
	{"bot", "Bot", 30},
	{"crawler", "Bot", 30},
	{"spider", "Bot", 30},
	{"curl/", "Bot", 25},
	{"wget/", "Bot", 25},
	{"python-requests", "Bot", 25},
	{"go-http-client", "Bot", 25},
	{"java/", "Bot", 25},
	{"libwww-perl", "Bot", 25},
	{"headlesschrome", "Bot", 30},
	{"phantomjs", "Bot", 30},
}

// Analyze inspects a raw User-Agent header value. An empty value reports
// everything unknown at zero confidence.
func Analyze(userAgent string) Info {
	info := Info{Browser: "Unknown", OS: "Unknown", Device: "Desktop"}

	ua := strings.ToLower(strings.TrimSpace(userAgent))
	if ua == "" {
		info.Device = "Unknown"
		return info
	}

	if label, delta, ok := firstMatch(botRules, ua); ok {
		info.Bot = true
		info.Device = label
		info.Confidence += delta
	}

	if label, delta, ok := firstMatch(browserRules, ua); ok {
		info.Browser = label
		info.Confidence += delta
	}

	if label, delta, ok := firstMatch(osRules, ua); ok {
		info.OS = label
		info.Confidence += delta
	}

	if !info.Bot {
		if label, delta, ok := firstMatch(deviceRules, ua); ok {
			info.Device = label
			info.Confidence += delta
		} else {
			// Desktop is the default guess, worth a little on its own.
			info.Confidence += 10
		}
	}

	if info.Confidence > 100 {
		info.Confidence = 100
	}

	return info
}

func firstMatch(rules []rule, ua string) (string, int, bool) {
	for _, r := range rules {
		if strings.Contains(ua, r.pattern) {
			return r.label, r.delta, true
		}
	}
	return "", 0, false
}
