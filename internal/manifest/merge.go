package manifest

import (
	"strings"

	"github.com/farfromrefug/lerna-lite/internal/jsondoc"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// MergeDependency writes spec into doc and returns doc.
//
// The entry is updated in dependencies when it is already declared there,
// otherwise it goes to devDependencies. An existing entry keeps its position;
// a new one is inserted at its alphabetical slot. A table that is not a JSON
// object is treated as empty.
func MergeDependency(doc *jsondoc.Object, spec DependencySpec) *jsondoc.Object {
	key := DevDependenciesKey
	table, ok := doc.Object(DependenciesKey)
	if !ok || !table.Has(spec.Name) {
		table, ok = doc.Object(DevDependenciesKey)
		if !ok {
			table = jsondoc.NewObject()
		}
	} else {
		key = DependenciesKey
	}

	table.SetSorted(spec.Name, jsondoc.Quote(spec.Specifier()), newNameComparer())
	doc.SetObject(key, table)
	return doc
}

// newNameComparer orders package names ignoring the leading scope marker,
// so "@scope/pkg" sorts under "s". Collators are not safe for concurrent
// use, hence one per merge.
func newNameComparer() func(a, b string) int {
	c := collate.New(language.Und)
	return func(a, b string) int {
		if n := c.CompareString(strings.TrimPrefix(a, "@"), strings.TrimPrefix(b, "@")); n != 0 {
			return n
		}
		return strings.Compare(a, b)
	}
}
