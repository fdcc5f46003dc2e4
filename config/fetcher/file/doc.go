// Package file provides a file-based DataFetcher implementation for the config package.
//
// Files are read through an afero.Fs, so the same code serves the operating
// system filesystem and in-memory trees used by tests. The file is read once
// at construction time; Fetch returns copies of the cached bytes.
//
// Usage:
//
//	fetcher, err := file.NewFetcher(afero.NewOsFs(), "/path/to/config.yaml")()
//	if err != nil {
//	    // stat failed, permission denied, path is a directory, ...
//	}
//	data, err := fetcher.Fetch()
//
// Use errors.Is(err, file.ErrPathIsDirectory) to detect directory paths.
package file
