// Package toolconfig reconciles lerna.json. It fills in the version marker,
// drops the legacy self-pin key and sets command options at fixed paths
// without disturbing anything else the user keeps in the file.
package toolconfig
