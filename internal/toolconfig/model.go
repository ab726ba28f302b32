package toolconfig

// Filename is the tool configuration file at the workspace root.
const Filename = "lerna.json"

// PackageName is the tool's own npm package. Older releases pinned it as a
// top-level key in lerna.json.
const PackageName = "@lerna-lite/cli"

// Version markers written when lerna.json has none.
const (
	DefaultVersion     = "0.0.0"
	IndependentVersion = "independent"
)

// Keys managed in lerna.json.
const (
	versionKey = "version"
	commandKey = "command"
	initKey    = "init"
	exactKey   = "exact"
)

// Options are the init flags that shape lerna.json.
type Options struct {
	Independent bool
	Exact       bool
}

func (o Options) defaultVersion() string {
	if o.Independent {
		return IndependentVersion
	}
	return DefaultVersion
}
