// Package config holds the settings the modal engine consumes.
//
// The engine never reads files or the environment itself. The host passes
// the bytes of its configuration file to Decode, which reads the [vim]
// section:
//
//	[vim]
//	timeout_ms = 1000
//	ignore_case = true
//	smart_case = true
//	wrap_scan = true
//	scrolloff = 5
//
// YAML documents use the same keys under a top-level vim mapping. Missing
// keys keep their defaults.
package config
