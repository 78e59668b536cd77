// Package git wraps the Git CLI commands fpm needs: shallow clone at a
// pinned ref and HEAD revision lookup. It does not depend on other
// internal packages. A version ref is passed to git verbatim; whether it
// is a tag, branch or other ref is git's business, not ours.
package git
