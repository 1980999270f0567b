package slug

import (
	"crypto/rand"
	"strings"
)

const suffixLen = 6

const suffixCharset = "0123456789abcdefghijklmnopqrstuvwxyz"

// Make derives a URL-safe identifier from a job title and company,
// e.g. "Frontend Developer" + "Google" -> "frontend-developer-google-x4k2p9".
// The random suffix keeps repeated postings from colliding.
func Make(title, company string) string {
	base := Slugify(title + "-" + company)
	if base == "" {
		return randomSuffix(suffixLen)
	}
	return base + "-" + randomSuffix(suffixLen)
}

// Slugify lowercases its input, collapses runs of non-alphanumerics to a
// single hyphen and trims leading/trailing hyphens.
func Slugify(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

func randomSuffix(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; an all-zero
		// suffix still yields a valid slug.
		for i := range buf {
			buf[i] = 0
		}
	}
	out := make([]byte, n)
	for i, v := range buf {
		out[i] = suffixCharset[int(v)%len(suffixCharset)]
	}
	return string(out)
}
