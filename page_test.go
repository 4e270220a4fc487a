package sitebot_test

import (
	"testing"

	"github.com/sitewise/sitebot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		p := &sitebot.Page{URL: "https://example.com", Content: "# Hi"}
		assert.NoError(t, p.Validate())
	})

	t.Run("missing URL", func(t *testing.T) {
		t.Parallel()
		p := &sitebot.Page{Content: "# Hi"}
		assert.Equal(t, sitebot.EINVALID, sitebot.ErrorCode(p.Validate()))
	})

	t.Run("missing content", func(t *testing.T) {
		t.Parallel()
		p := &sitebot.Page{URL: "https://example.com"}
		assert.Equal(t, sitebot.EINVALID, sitebot.ErrorCode(p.Validate()))
	})
}

func TestJoinFragments(t *testing.T) {
	t.Parallel()

	frags := []sitebot.Fragment{
		{Level: 1, Text: "Our Services"},
		{Text: "We build websites."},
		{Text: "  "},
		{Text: "Call us today!"},
	}

	assert.Equal(t, "Our Services. We build websites. Call us today!", sitebot.JoinFragments(frags))
}

func TestFragmentsFromMarkdown(t *testing.T) {
	t.Parallel()

	md := "# About Us\n\nWe are a small team.\nWe ship software.\n\n## History\n\n```\ncode here\n```\n\n- Founded in 2015\n"

	frags := sitebot.FragmentsFromMarkdown(md)

	require.Len(t, frags, 4)
	assert.Equal(t, sitebot.Fragment{Level: 1, Text: "About Us"}, frags[0])
	assert.Equal(t, sitebot.Fragment{Text: "We are a small team. We ship software."}, frags[1])
	assert.Equal(t, sitebot.Fragment{Level: 2, Text: "History"}, frags[2])
	assert.Equal(t, sitebot.Fragment{Text: "Founded in 2015"}, frags[3])
}

func TestPageLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com/about-us", "About Us"},
		{"https://example.com/services/", "Services"},
		{"https://example.com/why_choose_us.html", "Why Choose Us"},
		{"https://example.com/pricing?utm=1", "Pricing"},
		{"https://example.com/", "Home"},
		{"https://example.com", "Home"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sitebot.PageLabel(tt.url))
		})
	}
}
