package commands

import (
	"os"

	"github.com/dronecmd/dronecmd-go/pkg/features"
)

// LoadProtocol returns the built-in protocol, or the one described by the
// schema directory dir.
func LoadProtocol(dir string) (*features.Protocol, error) {
	if dir == "" {
		return features.Default()
	}
	return features.Load(os.DirFS(dir), ".")
}
