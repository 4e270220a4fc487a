package htmltomarkdown_test

import (
	"testing"

	"github.com/sitewise/sitebot"
	"github.com/sitewise/sitebot/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := htmltomarkdown.NewConverter().Convert("  ")

	require.Error(t, err)
	assert.Equal(t, sitebot.EINVALID, sitebot.ErrorCode(err))
}

func TestConverter_ConvertsHeadingsAndParagraphs(t *testing.T) {
	t.Parallel()

	md, err := htmltomarkdown.NewConverter().Convert(
		"<h1>Our Services</h1><p>We build <strong>websites</strong>.</p>")

	require.NoError(t, err)
	assert.Contains(t, md, "# Our Services")
	assert.Contains(t, md, "We build **websites**.")
}

func TestConverter_RoundTripsThroughFragments(t *testing.T) {
	t.Parallel()

	md, err := htmltomarkdown.NewConverter().Convert(
		"<h2>Contact</h2><p>Email us any time.</p>")
	require.NoError(t, err)

	frags := sitebot.FragmentsFromMarkdown(md)

	require.Len(t, frags, 2)
	assert.Equal(t, sitebot.Fragment{Level: 2, Text: "Contact"}, frags[0])
	assert.Equal(t, sitebot.Fragment{Text: "Email us any time."}, frags[1])
}
