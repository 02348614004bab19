// Package config holds the optional on-disk configuration and the
// centralized tool version constants.
package config

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/go-homedir"
)

// Paths is the optional working-directory configuration: default
// annotation and sequence files so the tools can run without flags.
type Paths struct {
	Gxf   string `json:"gxf"`
	Fasta string `json:"fasta"`
}

// ConfigFile is looked up in the working directory by Load.
const ConfigFile = "biogl.json"

// Load reads ConfigFile and expands '~' in its paths. A missing file is
// an error the caller is expected to tolerate.
func Load() (Paths, error) {
	var p Paths
	file, err := os.Open(ConfigFile)
	if err != nil {
		return p, err
	}
	defer file.Close()
	if err := json.NewDecoder(file).Decode(&p); err != nil {
		return p, err
	}
	p.Gxf, _ = homedir.Expand(p.Gxf)
	p.Fasta, _ = homedir.Expand(p.Fasta)
	return p, nil
}
