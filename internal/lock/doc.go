// Package lock handles parsing and writing of fpm-lock.json files.
// The lock file records the exact commit each dependency resolved to,
// enabling reproducible installs: re-resolving the same ref must yield
// the same commit or the install fails.
package lock
