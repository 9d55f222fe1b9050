package validate

import (
	"net/url"
	"unicode/utf8"
)

const maxTitleLength = 100

type CreateLinkInput struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

type UpdateLinkInput struct {
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	URL         *string `json:"url,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateLink checks a create payload, collecting every field failure.
func CreateLink(in CreateLinkInput) *Error {
	var c collector
	checkTitle(&c, in.Title)
	checkURL(&c, in.URL)
	return c.err()
}

// UpdateLink requires an id; other fields are optional but must satisfy
// the same per-field constraints as create when present.
func UpdateLink(in UpdateLinkInput) *Error {
	var c collector
	if in.ID == "" {
		c.add("id", "ID is required")
	}
	if in.Title != nil {
		checkTitle(&c, *in.Title)
	}
	if in.URL != nil {
		checkURL(&c, *in.URL)
	}
	return c.err()
}

// LinkID checks a bare id argument.
func LinkID(id string) *Error {
	var c collector
	if id == "" {
		c.add("id", "ID is required")
	}
	return c.err()
}

func checkTitle(c *collector, title string) {
	if title == "" {
		c.add("title", "Title is required")
		return
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		c.add("title", "Title cannot exceed 100 characters")
	}
}

func checkURL(c *collector, raw string) {
	if raw == "" {
		c.add("url", "Please enter a valid URL")
		return
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		c.add("url", "Please enter a valid URL")
		return
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		c.add("url", "URL must use http or https")
	}
}
