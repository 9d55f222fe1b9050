package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateLink(t *testing.T) {
	tests := []struct {
		name      string
		input     CreateLinkInput
		wantValid bool
		wantField string
	}{
		{
			name:      "valid",
			input:     CreateLinkInput{Title: "Google", URL: "https://google.com"},
			wantValid: true,
		},
		{
			name:      "valid with description",
			input:     CreateLinkInput{Title: "Blog", URL: "http://example.com/blog", Description: "my blog"},
			wantValid: true,
		},
		{
			name:      "missing title",
			input:     CreateLinkInput{URL: "https://google.com"},
			wantField: "title",
		},
		{
			name:      "title too long",
			input:     CreateLinkInput{Title: strings.Repeat("a", 101), URL: "https://google.com"},
			wantField: "title",
		},
		{
			name:      "title exactly 100 chars",
			input:     CreateLinkInput{Title: strings.Repeat("a", 100), URL: "https://google.com"},
			wantValid: true,
		},
		{
			name:      "missing url",
			input:     CreateLinkInput{Title: "Google"},
			wantField: "url",
		},
		{
			name:      "relative url",
			input:     CreateLinkInput{Title: "Google", URL: "/search"},
			wantField: "url",
		},
		{
			name:      "not a url",
			input:     CreateLinkInput{Title: "Google", URL: "not a url"},
			wantField: "url",
		},
		{
			name:      "unsupported scheme",
			input:     CreateLinkInput{Title: "Google", URL: "ftp://example.com"},
			wantField: "url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CreateLink(tt.input)
			if tt.wantValid {
				assert.Nil(t, err)
				return
			}
			assert.NotNil(t, err)
			assert.NotEmpty(t, err.Fields[tt.wantField])
		})
	}
}

func TestCreateLinkCollectsAllFields(t *testing.T) {
	err := CreateLink(CreateLinkInput{})
	assert.NotNil(t, err)
	assert.Contains(t, err.Fields, "title")
	assert.Contains(t, err.Fields, "url")
}

func TestUpdateLink(t *testing.T) {
	title := "New Title"
	badURL := "not a url"

	err := UpdateLink(UpdateLinkInput{ID: "1", Title: &title})
	assert.Nil(t, err)

	err = UpdateLink(UpdateLinkInput{Title: &title})
	assert.NotNil(t, err)
	assert.Contains(t, err.Fields, "id")

	err = UpdateLink(UpdateLinkInput{ID: "1", URL: &badURL})
	assert.NotNil(t, err)
	assert.Contains(t, err.Fields, "url")

	// Optional fields left out entirely are fine.
	err = UpdateLink(UpdateLinkInput{ID: "1"})
	assert.Nil(t, err)
}

func TestLinkID(t *testing.T) {
	assert.Nil(t, LinkID("42"))
	err := LinkID("")
	assert.NotNil(t, err)
	assert.Contains(t, err.Fields, "id")
}

func TestLogin(t *testing.T) {
	assert.Nil(t, Login(LoginInput{Email: "a@b.com", Password: "secret1"}))

	err := Login(LoginInput{Email: "nope", Password: "short"})
	assert.NotNil(t, err)
	assert.Contains(t, err.Fields, "email")
	assert.Contains(t, err.Fields, "password")
}
