package manifest

import (
	"github.com/farfromrefug/lerna-lite/internal/jsondoc"
)

// Load reads package.json. A missing file yields an empty document and
// exists == false.
func Load(path string) (doc *jsondoc.Object, exists bool, err error) {
	return jsondoc.Load(path)
}

// Save writes package.json, keeping key order and indentation.
func Save(path string, doc *jsondoc.Object) error {
	return jsondoc.Save(path, doc)
}
