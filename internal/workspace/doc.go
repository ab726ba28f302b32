// Package workspace ties the two reconciled documents to a directory on
// disk. It provides the Context type that holds resolved paths and the
// loaded package.json and lerna.json, and runs both mergers over them.
package workspace
