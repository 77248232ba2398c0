// Package profile owns the shared settings document on disk.
//
// A Store holds an exclusive file lock for the lifetime of the session,
// reads the document once at Open, and writes it back atomically on Save.
// The document root is <Profile>; enablement records live under
// <DeviceOptions> and the settings groups under <ControllerOptions>. Elements
// the store does not know about are preserved across saves.
//
// An unreadable document is never fatal: it is copied aside with a
// ".corrupt" suffix and replaced by an empty one so defaults apply.
package profile
