// Package jsondoc holds user-owned JSON documents (package.json, lerna.json)
// as ordered objects so they can be edited surgically and written back
// without re-sorting keys or reformatting untouched subtrees.
package jsondoc
