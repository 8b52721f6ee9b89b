// internal/clibase/common.go
package clibase

import (
	"flag"

	"annotools/internal/cliutil"
)

// Common holds the CLI fields every tool in the toolkit shares.
type Common struct {
	Files   []string // input paths in argument order; "-" = stdin
	Quiet   bool
	Version bool
}

// Register wires the shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "v", false, "alias of --version")
}

// AfterParse expands glob positionals into Files. When no input was
// named, Files defaults to stdin so every tool works as a plain filter.
func AfterParse(c *Common, posArgs []string) error {
	exp, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return err
	}
	c.Files = append(c.Files, exp...)
	if len(c.Files) == 0 {
		c.Files = []string{"-"}
	}
	return nil
}
