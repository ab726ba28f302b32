// Package git wraps the few Git CLI calls lerna init needs: detecting
// whether a directory already sits inside a work tree and creating a
// repository when it does not.
package git
