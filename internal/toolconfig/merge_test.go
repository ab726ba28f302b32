package toolconfig

import (
	"fmt"
	"testing"

	"github.com/farfromrefug/lerna-lite/internal/jsondoc"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, s string) *jsondoc.Object {
	t.Helper()
	doc, err := jsondoc.Parse([]byte(s))
	require.NoError(t, err)
	return doc
}

func marshal(t *testing.T, doc *jsondoc.Object) string {
	t.Helper()
	out, err := doc.MarshalJSON()
	require.NoError(t, err)
	return string(out)
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts Options
		want string
	}{
		{
			name: "empty config",
			in:   `{}`,
			want: `{"version":"0.0.0"}`,
		},
		{
			name: "empty config independent",
			in:   `{}`,
			opts: Options{Independent: true},
			want: `{"version":"independent"}`,
		},
		{
			name: "empty config exact",
			in:   `{}`,
			opts: Options{Exact: true},
			want: `{"version":"0.0.0","command":{"init":{"exact":true}}}`,
		},
		{
			name: "existing version untouched",
			in:   `{"version": "1.2.3"}`,
			opts: Options{Independent: true},
			want: `{"version":"1.2.3"}`,
		},
		{
			name: "null version replaced in place",
			in:   `{"packages": ["packages/*"], "version": null}`,
			want: `{"packages":["packages/*"],"version":"0.0.0"}`,
		},
		{
			name: "empty version replaced",
			in:   `{"version": ""}`,
			opts: Options{Independent: true},
			want: `{"version":"independent"}`,
		},
		{
			name: "legacy key removed",
			in:   `{"@lerna-lite/cli": "0.1.100", "version": "1.2.3"}`,
			want: `{"version":"1.2.3"}`,
		},
		{
			name: "sibling command kept",
			in:   `{"@lerna-lite/cli": "0.1.100", "command": {"bootstrap": {"hoist": true}}, "version": "1.2.3"}`,
			opts: Options{Exact: true},
			want: `{"command":{"bootstrap":{"hoist":true},"init":{"exact":true}},"version":"1.2.3"}`,
		},
		{
			name: "sibling init option kept",
			in:   `{"version": "1.2.3", "command": {"init": {"foo": "bar"}}}`,
			opts: Options{Exact: true},
			want: `{"version":"1.2.3","command":{"init":{"foo":"bar","exact":true}}}`,
		},
		{
			name: "explicit false overwritten when exact requested",
			in:   `{"version": "1.2.3", "command": {"init": {"exact": false, "foo": 1}}}`,
			opts: Options{Exact: true},
			want: `{"version":"1.2.3","command":{"init":{"exact":true,"foo":1}}}`,
		},
		{
			name: "exact left alone when not requested",
			in:   `{"version": "1.2.3", "command": {"init": {"exact": true}}}`,
			want: `{"version":"1.2.3","command":{"init":{"exact":true}}}`,
		},
		{
			name: "no command synthesized without exact",
			in:   `{"version": "1.2.3"}`,
			want: `{"version":"1.2.3"}`,
		},
		{
			name: "non-object command replaced",
			in:   `{"version": "1.2.3", "command": "oops"}`,
			opts: Options{Exact: true},
			want: `{"version":"1.2.3","command":{"init":{"exact":true}}}`,
		},
		{
			name: "non-object init replaced",
			in:   `{"version": "1.2.3", "command": {"publish": {}, "init": 7}}`,
			opts: Options{Exact: true},
			want: `{"version":"1.2.3","command":{"publish":{},"init":{"exact":true}}}`,
		},
		{
			name: "unrelated keys pass through",
			in:   `{"$schema": "node_modules/@lerna-lite/cli/schemas/lerna-schema.json", "npmClient": "pnpm", "version": "independent", "ignoreChanges": ["**/*.md"]}`,
			opts: Options{Exact: true},
			want: `{"$schema":"node_modules/@lerna-lite/cli/schemas/lerna-schema.json","npmClient":"pnpm","version":"independent","ignoreChanges":["**/*.md"],"command":{"init":{"exact":true}}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := marshal(t, Merge(parse(t, tt.in), tt.opts))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMerge_idempotent(t *testing.T) {
	inputs := []string{
		`{}`,
		`{"@lerna-lite/cli": "0.1.100", "version": "1.2.3"}`,
		`{"command": {"bootstrap": {"hoist": true}}, "version": "1.2.3"}`,
		`{"command": 3}`,
	}
	opts := []Options{{}, {Exact: true}, {Independent: true}, {Independent: true, Exact: true}}

	for _, in := range inputs {
		for _, o := range opts {
			once := marshal(t, Merge(parse(t, in), o))
			twice := marshal(t, Merge(Merge(parse(t, in), o), o))
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("not idempotent for %s %+v (-once +twice):\n%s", in, o, diff)
			}
		}
	}
}

func TestMerge_keepsIndentation(t *testing.T) {
	doc := parse(t, "{\n    \"version\": \"1.2.3\"\n}\n")
	Merge(doc, Options{Exact: true})

	out, err := doc.Marshal()
	require.NoError(t, err)
	want := "{\n    \"version\": \"1.2.3\",\n    \"command\": {\n        \"init\": {\n            \"exact\": true\n        }\n    }\n}\n"
	assert.Equal(t, want, string(out))
}

func TestMerge_concurrentDocuments(t *testing.T) {
	inputs := []string{
		`{}`,
		`{"@lerna-lite/cli": "0.1.100", "command": {"bootstrap": {"hoist": true}}, "version": "1.2.3"}`,
		`{"version": null, "command": "oops"}`,
	}
	opts := []Options{{}, {Exact: true}, {Independent: true, Exact: true}}

	want := make(map[string]string)
	for _, in := range inputs {
		for _, o := range opts {
			want[fmt.Sprintf("%s|%+v", in, o)] = marshal(t, Merge(parse(t, in), o))
		}
	}

	for i := 0; i < 27; i++ {
		in, o := inputs[i%len(inputs)], opts[(i/len(inputs))%len(opts)]
		t.Run(fmt.Sprintf("doc-%d", i), func(t *testing.T) {
			t.Parallel()
			got := marshal(t, Merge(parse(t, in), o))
			assert.Equal(t, want[fmt.Sprintf("%s|%+v", in, o)], got)
		})
	}
}
