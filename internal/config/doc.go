// Package config loads, normalizes, and validates padhost configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// PADHOST_PROFILE. The Config type only covers the host application: where
// the controller profile document lives and how logs are written. Controller
// options themselves are stored in the profile document, not here.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
