// Package preflight provides readiness checks for the filesystem paths and
// the profile document padhost depends on.
//
// "padhost config validate" runs RunAll and prints each Result. The checks
// never modify anything on disk: an unreadable profile is reported here but
// only moved aside when a command opens the profile for editing.
package preflight
