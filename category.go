package sitebot

import (
	"regexp"
	"strings"
)

// Category is one of the fixed structured buckets populated by
// keyword and pattern extraction rather than ranking.
type Category string

// Structured categories.
const (
	CategoryServices     Category = "services"
	CategoryAbout        Category = "about"
	CategoryProjects     Category = "projects"
	CategoryContact      Category = "contact"
	CategoryPricing      Category = "pricing"
	CategoryFeatures     Category = "features"
	CategoryTestimonials Category = "testimonials"
	CategoryFAQ          Category = "faq"
)

// Categories lists all structured categories in display order.
var Categories = []Category{
	CategoryServices,
	CategoryAbout,
	CategoryProjects,
	CategoryContact,
	CategoryPricing,
	CategoryFeatures,
	CategoryTestimonials,
	CategoryFAQ,
}

// CategoryMatch binds an extracted value to its category.
type CategoryMatch struct {
	Category Category
	Value    string
}

// CategoryRule declares how one category is recognized: which URL
// substrings activate its element scan, which keywords qualify an
// element's text, the minimum text length, and the collection cap.
// The ordered rule table replaces per-category branching.
type CategoryRule struct {
	Category    Category
	URLKeywords []string
	Keywords    []string
	MinTextLen  int
	Cap         int
}

// MatchesURL reports whether the rule's element scan applies to the URL.
func (r CategoryRule) MatchesURL(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, kw := range r.URLKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// MatchesText reports whether element text qualifies for the category.
func (r CategoryRule) MatchesText(text string) bool {
	if len(text) < r.MinTextLen {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range r.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// DefaultCategoryRules returns the standard rule table, ordered by
// category display order.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{
			Category:    CategoryServices,
			URLKeywords: []string{"services", "service", "solutions"},
			Keywords: []string{
				"web development", "digital marketing", "app development",
				"branding", "content creation", "ai automation", "website",
				"mobile app", "seo", "social media", "graphic design",
				"ui/ux", "e-commerce",
			},
			MinTextLen: 20,
			Cap:        15,
		},
		{
			Category:    CategoryAbout,
			URLKeywords: []string{"about", "company", "who-we-are"},
			Keywords: []string{
				"about", "company", "story", "mission", "vision", "team",
				"expertise", "founded",
			},
			MinTextLen: 30,
			Cap:        10,
		},
		{
			Category:    CategoryProjects,
			URLKeywords: []string{"projects", "portfolio", "case-stud", "our-work"},
			Keywords: []string{
				"project", "portfolio", "work", "case study", "client",
				"completed", "delivered",
			},
			MinTextLen: 20,
			Cap:        10,
		},
		{
			Category:    CategoryContact,
			URLKeywords: []string{"contact", "reach-us"},
			Keywords: []string{
				"contact", "email", "phone", "address", "reach", "office",
			},
			MinTextLen: 20,
			Cap:        8,
		},
		{
			Category:    CategoryPricing,
			URLKeywords: []string{"pricing", "prices", "plans", "packages"},
			Keywords: []string{
				"price", "pricing", "plan", "package", "cost", "fee", "quote",
			},
			MinTextLen: 20,
			Cap:        8,
		},
		{
			Category:    CategoryFeatures,
			URLKeywords: []string{"features", "whychooseus", "why-choose", "benefits"},
			Keywords: []string{
				"feature", "benefit", "why choose", "advantage", "capability",
			},
			MinTextLen: 25,
			Cap:        10,
		},
		{
			Category:    CategoryTestimonials,
			URLKeywords: []string{"testimonials", "reviews", "clients"},
			Keywords: []string{
				"testimonial", "review", "feedback", "recommend", "satisfied",
			},
			MinTextLen: 25,
			Cap:        8,
		},
		{
			Category:    CategoryFAQ,
			URLKeywords: []string{"faq", "help", "support", "questions"},
			Keywords: []string{
				"faq", "question", "how do", "what is", "answer",
			},
			MinTextLen: 20,
			Cap:        12,
		},
	}
}

var (
	emailRe = regexp.MustCompile(`\b[\w.+-]+@[\w-]+\.[\w.-]*\w\b`)
	phoneRe = regexp.MustCompile(`\+?\d[\d\s().-]{8,}\d`)
)

// ExtractContacts regex-extracts email addresses and phone numbers
// from page text, formatted for the contact collection.
func ExtractContacts(text string) []string {
	var out []string
	for _, email := range emailRe.FindAllString(text, -1) {
		out = append(out, "Email: "+email)
	}
	for _, phone := range phoneRe.FindAllString(text, -1) {
		if digitCount(phone) < 9 {
			continue
		}
		out = append(out, "Phone: "+NormalizeSpace(phone))
	}
	return out
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// ServiceFamily maps a canonical service name to the keywords that
// imply it anywhere in page text.
type ServiceFamily struct {
	Name     string
	Triggers []string
}

// ServiceFamilies is the fixed set of service-domain keyword families.
var ServiceFamilies = []ServiceFamily{
	{"Web Development", []string{"web development", "website", "frontend", "backend", "web design"}},
	{"Digital Marketing", []string{"digital marketing", "seo", "social media", "online marketing"}},
	{"App Development", []string{"app development", "mobile app", "android app", "ios app"}},
	{"Branding", []string{"branding", "brand building", "brand identity", "logo design"}},
	{"Content Creation", []string{"content creation", "content writing", "copywriting", "video production"}},
	{"AI Automation", []string{"ai automation", "artificial intelligence", "machine learning", "chatbot"}},
	{"UI/UX Design", []string{"ui/ux", "user experience", "user interface", "graphic design"}},
	{"E-Commerce", []string{"e-commerce", "ecommerce", "online store"}},
}

// ExtractServices scans text for service-domain keyword families and
// returns the canonical names of matched services, in family order.
func ExtractServices(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, fam := range ServiceFamilies {
		for _, trigger := range fam.Triggers {
			if strings.Contains(lower, trigger) {
				out = append(out, fam.Name)
				break
			}
		}
	}
	return out
}

// Classify runs both extraction passes over a page: the URL-driven
// element scan against the rule table, then the URL-independent
// pattern pass (contact details and service families over the full
// text). The contact pattern pass is skipped on contact pages, which
// the element scan already covers.
func Classify(pageURL string, frags []Fragment, rules []CategoryRule) []CategoryMatch {
	var matches []CategoryMatch

	var contactRule *CategoryRule
	for i := range rules {
		if rules[i].Category == CategoryContact {
			contactRule = &rules[i]
		}
	}
	onContactPage := contactRule != nil && contactRule.MatchesURL(pageURL)

	for _, rule := range rules {
		if !rule.MatchesURL(pageURL) {
			continue
		}
		for _, frag := range frags {
			text := CleanText(frag.Text)
			if rule.MatchesText(text) {
				matches = append(matches, CategoryMatch{rule.Category, text})
			}
		}
	}

	fullText := JoinFragments(frags)
	if !onContactPage {
		for _, contact := range ExtractContacts(fullText) {
			matches = append(matches, CategoryMatch{CategoryContact, contact})
		}
	}
	for _, service := range ExtractServices(fullText) {
		matches = append(matches, CategoryMatch{CategoryServices, service})
	}

	return matches
}

// CategoryStore accumulates extracted values per category during a
// corpus build. Values append raw; dedup and caps apply only at
// Finalize, after the full corpus loads.
type CategoryStore struct {
	items map[Category][]string
}

// NewCategoryStore returns an empty store.
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{items: make(map[Category][]string)}
}

// Add appends a value to the category's collection.
func (s *CategoryStore) Add(cat Category, value string) {
	if value == "" {
		return
	}
	s.items[cat] = append(s.items[cat], value)
}

// AddMatches appends every match to its category's collection.
func (s *CategoryStore) AddMatches(matches []CategoryMatch) {
	for _, m := range matches {
		s.Add(m.Category, m.Value)
	}
}

// Items returns the category's collection.
func (s *CategoryStore) Items(cat Category) []string {
	return s.items[cat]
}

// Counts returns per-category collection sizes for all categories.
func (s *CategoryStore) Counts() map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, cat := range Categories {
		counts[cat] = len(s.items[cat])
	}
	return counts
}

// Finalize deduplicates each collection by exact string, preserving
// first-seen order, and applies the rule table's caps.
func (s *CategoryStore) Finalize(rules []CategoryRule) {
	caps := make(map[Category]int, len(rules))
	for _, r := range rules {
		caps[r.Category] = r.Cap
	}

	for cat, values := range s.items {
		seen := make(map[string]bool, len(values))
		unique := values[:0]
		for _, v := range values {
			if seen[v] {
				continue
			}
			seen[v] = true
			unique = append(unique, v)
		}
		if c, ok := caps[cat]; ok && c > 0 && len(unique) > c {
			unique = unique[:c]
		}
		s.items[cat] = unique
	}
}
