package narrator

import (
	"net/url"
	"strings"
	"unicode"
)

const imageBaseURL = "https://picsum.photos/seed/"

// ImageURL derives a deterministic illustration URL from an image prompt.
// An empty prompt has no illustration.
func ImageURL(imagePrompt string) string {
	seed := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, imagePrompt)
	if seed == "" {
		return ""
	}
	return imageBaseURL + url.PathEscape(seed) + "/800/400"
}
