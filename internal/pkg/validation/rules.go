package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Website URL pattern, http(s) links only, used for coach profile links
	WebsitePattern = `^https?://[a-zA-Z0-9\-._~:/?#\[\]@!$&'()*+,;=%]+$`
)

// CompiledPatterns caches the compiled patterns
var CompiledPatterns = struct {
	Email   *regexp.Regexp
	Website *regexp.Regexp
}{
	Email:   regexp.MustCompile(EmailPattern),
	Website: regexp.MustCompile(WebsitePattern),
}

// IsValidEmail reports whether the address matches the email pattern.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidWebsite reports whether the value is a well-formed http(s) URL.
// Applied to the coach profile website; offering meeting links are
// deliberately left unchecked (see the offering rules).
func IsValidWebsite(url string) bool {
	return CompiledPatterns.Website.MatchString(url)
}
