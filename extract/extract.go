// Package extract finds image references in free-form model text.
package extract

import "regexp"

var (
	markdownImage = regexp.MustCompile(`!\[.*?\]\((.*?)\)`)
	bareImageURL  = regexp.MustCompile(`https?://\S+\.(?:jpg|jpeg|png|gif|webp)`)
)

// ImageURL returns the first image reference in text.
// A Markdown image wins over a bare URL anywhere in the text; a Markdown
// image with an empty target means no reference, even if a bare URL follows.
func ImageURL(text string) (string, bool) {
	if m := markdownImage.FindStringSubmatch(text); m != nil {
		return m[1], m[1] != ""
	}
	if m := bareImageURL.FindString(text); m != "" {
		return m, true
	}
	return "", false
}
