// Package system provides the live implementations of the interfaces
// snapcheck depends on: the real filesystem and the real process runner.
package system

import "github.com/spf13/afero"

// AppFs is the filesystem used by the whole application.
// Tests replace it with an in-memory filesystem.
var AppFs afero.Fs = afero.NewOsFs()
