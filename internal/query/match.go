package query

import (
	"strings"

	"github.com/korninw/thai-food-finder/internal/catalog"
	"golang.org/x/text/cases"
)

// matcher does case-folded substring containment. A matcher holds a Caser,
// which is stateful, so it must stay on one goroutine.
type matcher struct {
	fold   cases.Caser
	needle string
}

func newMatcher(text string) *matcher {
	fold := cases.Fold()
	return &matcher{fold: fold, needle: fold.String(text)}
}

func (m *matcher) in(s string) bool {
	return strings.Contains(m.fold.String(s), m.needle)
}

func (m *matcher) anyIn(ss []string) bool {
	for _, s := range ss {
		if m.in(s) {
			return true
		}
	}
	return false
}

// restaurant matches on name, type or any tag.
func (m *matcher) restaurant(r catalog.Restaurant) bool {
	return m.in(r.Name) || m.in(r.Type) || m.anyIn(r.Tags)
}

func (m *matcher) province(p catalog.Province) bool {
	return m.in(p.Name) || m.in(p.NameEn)
}

func (m *matcher) district(d catalog.District) bool {
	return m.in(d.Name)
}
