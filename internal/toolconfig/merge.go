package toolconfig

import "github.com/farfromrefug/lerna-lite/internal/jsondoc"

// Merge reconciles doc with opts and returns doc.
func Merge(doc *jsondoc.Object, opts Options) *jsondoc.Object {
	doc.Delete(PackageName)

	if !hasVersion(doc) {
		doc.SetString(versionKey, opts.defaultVersion())
	}

	if opts.Exact {
		setPath(doc, []string{commandKey, initKey}, exactKey)
	}
	return doc
}

// hasVersion treats a missing, null or empty version as unset.
func hasVersion(doc *jsondoc.Object) bool {
	if !doc.Has(versionKey) || doc.IsNull(versionKey) {
		return false
	}
	if s, ok := doc.String(versionKey); ok && s == "" {
		return false
	}
	return true
}

// setPath sets doc.<parents...>.<leaf> = true, creating intermediate objects.
// A non-object value on the path is replaced by a fresh object; siblings at
// every level are kept.
func setPath(doc *jsondoc.Object, parents []string, leaf string) {
	if len(parents) == 0 {
		doc.SetBool(leaf, true)
		return
	}
	child, ok := doc.Object(parents[0])
	if !ok {
		child = jsondoc.NewObject()
	}
	setPath(child, parents[1:], leaf)
	doc.SetObject(parents[0], child)
}
