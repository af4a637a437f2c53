package platform

// Package platform contains OS integration for the binaries: where the style
// file lives and how it is created on first use.
