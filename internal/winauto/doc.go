// Package winauto adapts the Windows automation surfaces to the interfaces
// the markup2docx pipeline consumes: COM automation of Word and WPS Office
// (Editor/Selection), the foreground window title query (ForegroundQuerier),
// and the modal message box used to surface errors.
//
// All real functionality is Windows-only. On other platforms the adapters
// compile but fail with markup2docx.ErrUnsupportedPlatform, which keeps the
// library and its tests cross-platform.
package winauto
