// Package chat generates single-turn responses to visitor messages.
// Routing is rule-based: fixed conversational intents first, then
// keyword-mapped category templates, then retrieval over the corpus.
// Responses are deterministic for a given corpus and message.
package chat

import (
	"strings"

	"github.com/sitewise/sitebot"
)

// Source is the read side of a built corpus.
type Source interface {
	Retrieve(query string, k int, minScore float64) []sitebot.QueryResult
	Category(cat sitebot.Category) []string
	Chunks() []sitebot.Chunk
}

// Responder turns one visitor message into one response string. It
// never returns an error; missing information degrades to fallback
// text.
type Responder struct {
	Source Source

	// SiteName appears in conversational templates. Defaults to
	// "our website".
	SiteName string

	// TopK and MinScore tune the retrieval fallback. Zero values take
	// the package defaults.
	TopK     int
	MinScore float64
}

var greetingPrefixes = []string{
	"hi", "hello", "hey", "good morning", "good afternoon", "good evening",
}

var farewellPrefixes = []string{
	"bye", "goodbye", "exit", "quit", "see you",
}

var gratitudeMarkers = []string{
	"thank", "thanks", "appreciate",
}

// categoryIntent maps trigger substrings to a category, checked in
// order with first match winning. Matching is permissive by design:
// "I don't want your services" still routes to services.
type categoryIntent struct {
	Category sitebot.Category
	Triggers []string
}

var categoryIntents = []categoryIntent{
	{sitebot.CategoryServices, []string{
		"service", "what do you do", "what do you offer", "solutions",
	}},
	{sitebot.CategoryAbout, []string{
		"about", "who are you", "your company", "your team", "your story", "mission",
	}},
	{sitebot.CategoryProjects, []string{
		"project", "portfolio", "case stud", "your work", "past work",
	}},
	{sitebot.CategoryContact, []string{
		"contact", "email", "phone", "reach you", "get in touch", "address", "location",
	}},
	{sitebot.CategoryPricing, []string{
		"price", "pricing", "cost", "how much", "charge", "quote", "package",
	}},
}

// displayCaps bounds how many items a category template renders.
var displayCaps = map[sitebot.Category]int{
	sitebot.CategoryServices: 8,
	sitebot.CategoryAbout:    3,
	sitebot.CategoryProjects: 4,
	sitebot.CategoryContact:  5,
	sitebot.CategoryPricing:  5,
}

// Respond routes the message through the fixed priority order: empty
// input, greeting, farewell, thanks, category intents, retrieval.
func (r *Responder) Respond(message string) string {
	msg := strings.ToLower(sitebot.NormalizeSpace(message))
	if msg == "" {
		return "Please enter a message."
	}

	if hasPrefixWord(msg, greetingPrefixes) {
		return "Hello! Welcome to " + r.siteName() + ". " +
			"You can ask me about our services, projects, pricing, or how to get in touch."
	}
	if hasPrefixWord(msg, farewellPrefixes) {
		return "Goodbye! Feel free to come back if you have more questions."
	}
	for _, marker := range gratitudeMarkers {
		if strings.Contains(msg, marker) {
			return "You're welcome! Is there anything else you'd like to know?"
		}
	}

	for _, intent := range categoryIntents {
		for _, trigger := range intent.Triggers {
			if strings.Contains(msg, trigger) {
				return r.categoryResponse(intent.Category)
			}
		}
	}

	return r.retrievalResponse(msg)
}

// hasPrefixWord reports whether the message starts with one of the
// given phrases followed by a word boundary, so "hi there" matches
// but "high quality websites" does not.
func hasPrefixWord(msg string, phrases []string) bool {
	for _, phrase := range phrases {
		if !strings.HasPrefix(msg, phrase) {
			continue
		}
		rest := msg[len(phrase):]
		if rest == "" || !isWordChar(rest[0]) {
			return true
		}
	}
	return false
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}

func (r *Responder) siteName() string {
	if r.SiteName != "" {
		return r.SiteName
	}
	return "our website"
}

func (r *Responder) topK() int {
	if r.TopK > 0 {
		return r.TopK
	}
	return sitebot.DefaultTopK
}

func (r *Responder) minScore() float64 {
	if r.MinScore > 0 {
		return r.MinScore
	}
	return sitebot.DefaultMinScore
}

// categoryResponse renders the template for a category. Items come
// from the structured store first; when that is empty they are
// re-derived from the chunk sequence; a hard-coded line covers both
// being empty.
func (r *Responder) categoryResponse(cat sitebot.Category) string {
	items := r.Source.Category(cat)
	if len(items) == 0 {
		items = r.deriveItems(cat)
	}
	if max := displayCaps[cat]; max > 0 && len(items) > max {
		items = items[:max]
	}

	switch cat {
	case sitebot.CategoryServices:
		if len(items) == 0 {
			return "We offer a range of digital services. Get in touch and we'll walk you through what we can do for you."
		}
		return "Here are the services we offer:\n" + bulleted(items) +
			"\nWould you like more details about any of these?"

	case sitebot.CategoryAbout:
		if len(items) == 0 {
			return "We're a team dedicated to helping businesses succeed online. Ask about our services or projects to learn more."
		}
		return "Here's a bit about us:\n" + strings.Join(items, "\n\n") +
			"\n\nIs there anything specific you'd like to know?"

	case sitebot.CategoryProjects:
		if len(items) == 0 {
			return "We've delivered projects for clients across many industries. Contact us to see examples relevant to you."
		}
		return "Here's some of our work:\n" + bulleted(items) +
			"\nWant to hear more about any of these projects?"

	case sitebot.CategoryContact:
		if len(items) == 0 {
			return "You can reach us through the contact page on our website."
		}
		return "You can reach us here:\n" + bulleted(items)

	case sitebot.CategoryPricing:
		if len(items) == 0 {
			return "Pricing depends on the scope of your project. Contact us for a free, no-obligation quote."
		}
		return "Here's what we can share about pricing:\n" + bulleted(items) +
			"\nFor an exact figure, contact us for a quote."
	}

	return "I'm not sure how to answer that. Try asking about our services, projects, pricing, or contact details."
}

// deriveItems recomputes category candidates from the chunk sequence
// using the same keyword tables the corpus build uses.
func (r *Responder) deriveItems(cat sitebot.Category) []string {
	chunks := r.Source.Chunks()
	if len(chunks) == 0 {
		return nil
	}

	switch cat {
	case sitebot.CategoryServices:
		var text strings.Builder
		for _, ch := range chunks {
			text.WriteString(ch.Text)
			text.WriteString(" ")
		}
		return sitebot.ExtractServices(text.String())

	case sitebot.CategoryContact:
		var out []string
		for _, ch := range chunks {
			out = append(out, sitebot.ExtractContacts(ch.Text)...)
		}
		return dedup(out)

	default:
		rule, ok := ruleFor(cat)
		if !ok {
			return nil
		}
		var out []string
		for _, ch := range chunks {
			if rule.MatchesText(ch.Text) {
				out = append(out, ch.Text)
			}
		}
		return dedup(out)
	}
}

func ruleFor(cat sitebot.Category) (sitebot.CategoryRule, bool) {
	for _, rule := range sitebot.DefaultCategoryRules() {
		if rule.Category == cat {
			return rule, true
		}
	}
	return sitebot.CategoryRule{}, false
}

func dedup(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// retrievalResponse answers free-form questions from the index.
func (r *Responder) retrievalResponse(msg string) string {
	results := r.Source.Retrieve(msg, r.topK(), r.minScore())
	if len(results) == 0 {
		if len(strings.Fields(msg)) < 3 {
			return "Could you tell me a bit more about what you're looking for?"
		}
		return "I couldn't find specific information about that on the site. " +
			"You can ask me about our services, projects, pricing, or how to get in touch."
	}

	var b strings.Builder
	b.WriteString("Here's what I found:\n")
	for _, res := range results {
		b.WriteString("- ")
		b.WriteString(res.Chunk.Text)
		b.WriteString(" (")
		b.WriteString(sitebot.PageLabel(res.Chunk.SourceURL))
		b.WriteString(")\n")
	}
	b.WriteString("\nIs there anything else you'd like to know?")
	return b.String()
}

// bulleted renders items as a dash list, one per line.
func bulleted(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}
