// Package manifest provides types and utilities for loading the project
// build manifest and deriving the documentation version pair from it. The
// manifest is the Cargo.toml sitting two directories above the documentation
// sources; its package.version field is the single source of truth for the
// version strings substituted into generated pages.
//
// # Manifest Format
//
// The manifest is TOML with at least a [package] table:
//
//	[package]
//	name = "lumol"
//	version = "0.7.2"
//
// # Usage
//
// Resolve the version pair once at build start:
//
//	loader := manifest.NewLoader()
//	v, err := loader.Resolve("../../Cargo.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// v.Version == "0.7", v.Release == "0.7.2"
//
// # Error Handling
//
// The package defines sentinel errors for the failure cases, all of which
// abort the documentation build:
//   - ErrFileNotFound: the manifest does not exist
//   - ErrInvalidFormat: the file is not valid TOML
//   - ErrMissingField: package.version is absent
package manifest
