package goquery_test

import (
	"testing"

	sitegoquery "github.com/sitewise/sitebot/goquery"

	"github.com/sitewise/sitebot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragmenter_OrderAndHeadingLevels(t *testing.T) {
	t.Parallel()

	html := `<div>
<h1>About Us</h1>
<p>We are a digital agency.</p>
<h2>Our Story</h2>
<ul><li>Founded in 2015</li><li>Fully remote</li></ul>
</div>`

	frags, err := sitegoquery.NewFragmenter().Fragments(html)

	require.NoError(t, err)
	require.Len(t, frags, 5)
	assert.Equal(t, sitebot.Fragment{Level: 1, Text: "About Us"}, frags[0])
	assert.Equal(t, sitebot.Fragment{Text: "We are a digital agency."}, frags[1])
	assert.Equal(t, sitebot.Fragment{Level: 2, Text: "Our Story"}, frags[2])
	assert.Equal(t, sitebot.Fragment{Text: "Founded in 2015"}, frags[3])
	assert.Equal(t, sitebot.Fragment{Text: "Fully remote"}, frags[4])
}

func TestFragmenter_SkipsNestedDuplicates(t *testing.T) {
	t.Parallel()

	html := `<ul><li><p>Only once</p></li></ul>`

	frags, err := sitegoquery.NewFragmenter().Fragments(html)

	require.NoError(t, err)
	require.Len(t, frags, 1)
	assert.Equal(t, "Only once", frags[0].Text)
}

func TestFragmenter_LeafDivAndSpanText(t *testing.T) {
	t.Parallel()

	t.Run("bare container text becomes a fragment", func(t *testing.T) {
		t.Parallel()

		html := `<p>We build websites for small businesses.</p>
<div>Email: hello@example.com</div>
<span>Phone: +1 555 123 4567</span>`

		frags, err := sitegoquery.NewFragmenter().Fragments(html)

		require.NoError(t, err)
		require.Len(t, frags, 3)
		assert.Equal(t, "We build websites for small businesses.", frags[0].Text)
		assert.Equal(t, "Email: hello@example.com", frags[1].Text)
		assert.Equal(t, "Phone: +1 555 123 4567", frags[2].Text)
	})

	t.Run("wrapper divs are not emitted twice", func(t *testing.T) {
		t.Parallel()

		html := `<div><div><p>About our team.</p></div><div>Email: hello@example.com</div></div>`

		frags, err := sitegoquery.NewFragmenter().Fragments(html)

		require.NoError(t, err)
		require.Len(t, frags, 2)
		assert.Equal(t, "About our team.", frags[0].Text)
		assert.Equal(t, "Email: hello@example.com", frags[1].Text)
	})

	t.Run("spans inside block elements stay part of the block", func(t *testing.T) {
		t.Parallel()

		html := `<p>We build <span>fast</span> websites.</p>`

		frags, err := sitegoquery.NewFragmenter().Fragments(html)

		require.NoError(t, err)
		require.Len(t, frags, 1)
		assert.Equal(t, "We build fast websites.", frags[0].Text)
	})
}

func TestFragmenter_TextOnlyFallback(t *testing.T) {
	t.Parallel()

	frags, err := sitegoquery.NewFragmenter().Fragments("<div>bare text content</div>")

	require.NoError(t, err)
	require.Len(t, frags, 1)
	assert.Equal(t, "bare text content", frags[0].Text)
}

func TestFragmenter_EmptyContent(t *testing.T) {
	t.Parallel()

	frags, err := sitegoquery.NewFragmenter().Fragments("<div>  </div>")

	require.NoError(t, err)
	assert.Empty(t, frags)
}
