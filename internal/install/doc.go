// Package install implements the fetch, verify, reconcile and
// materialize workflow that turns a declared dependency set into an
// installed module tree and a lock file.
//
// Dependencies are processed sequentially in manifest declaration order.
// There is no partial success: either every dependency is fetched,
// verified and copied into place and a complete new lock is written, or
// the lock file and module tree are left exactly as they were. The
// staging directory is the only place that may hold partial state and it
// is removed on every exit path.
package install
