// Package discovery locates a configuration file by walking from a starting
// directory up to the filesystem root.
//
// In every directory the Finder checks for regular files named
// "<base>.<ext>" for each recognized extension. The walk always reaches the
// root: two matches in the same directory, or one match in a directory and
// another in one of its ancestors, yield an *AmbiguityError. A program
// should exit with ExitCodeAmbiguous when it sees one.
//
//	finder := discovery.NewFinder(afero.NewOsFs())
//	path, found, err := finder.Find(cwd, "config", []string{"yaml", "json", "toml"})
package discovery
