package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitewise/sitebot"
)

// Ensure Fragmenter implements sitebot.Fragmenter at compile time.
var _ sitebot.Fragmenter = (*Fragmenter)(nil)

// blockSelector lists the block elements that become text fragments,
// in document order.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, td, blockquote"

// fragmentSelector additionally covers leaf divs and spans, so text
// that sits in bare containers (a common layout for contact details)
// still becomes a fragment.
const fragmentSelector = blockSelector + ", div, span"

// Fragmenter converts clean content HTML into ordered text fragments.
type Fragmenter struct{}

// NewFragmenter creates a new Fragmenter.
func NewFragmenter() *Fragmenter {
	return &Fragmenter{}
}

// Fragments returns one fragment per retained content element, with
// heading levels preserved as structural markers. When the content has
// no matching elements at all (text-only markup), the whole text
// becomes a single fragment.
func (f *Fragmenter) Fragments(contentHTML string) ([]sitebot.Fragment, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return nil, sitebot.Errorf(sitebot.EINVALID, "failed to parse HTML: %v", err)
	}

	var frags []sitebot.Fragment
	doc.Find(fragmentSelector).Each(func(_ int, sel *goquery.Selection) {
		// Skip elements whose text is emitted elsewhere: block
		// elements containing nested blocks (li > p), wrapper
		// divs/spans around other fragments, and divs/spans already
		// inside a block element.
		name := goquery.NodeName(sel)
		if name == "div" || name == "span" {
			if sel.Find(fragmentSelector).Length() > 0 {
				return
			}
			if sel.ParentsFiltered(blockSelector).Length() > 0 {
				return
			}
		} else if sel.Find(blockSelector).Length() > 0 {
			return
		}
		text := sitebot.NormalizeSpace(sel.Text())
		if text == "" {
			return
		}
		frags = append(frags, sitebot.Fragment{
			Level: headingLevel(goquery.NodeName(sel)),
			Text:  text,
		})
	})

	if len(frags) == 0 {
		if text := sitebot.NormalizeSpace(doc.Text()); text != "" {
			frags = append(frags, sitebot.Fragment{Text: text})
		}
	}

	return frags, nil
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}
