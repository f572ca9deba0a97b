package factors

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/factors_meta.yaml
var factorsMetaYAML []byte

// Metadata describes the provenance of the embedded factor tables.
type Metadata struct {
	// Version identifies the factor table release, e.g. "2024.2".
	Version string `yaml:"version"`

	// Vintage is the reference year of the underlying datasets.
	Vintage int `yaml:"vintage"`

	// Published is the release date of this table version (ISO date).
	Published string `yaml:"published"`

	// Sources lists the datasets the tables were derived from.
	Sources []string `yaml:"sources"`
}

var (
	tableMeta     Metadata
	tableMetaOnce sync.Once
)

// parseTableMeta initializes the package-level metadata by parsing the
// embedded YAML document.
func parseTableMeta() {
	if err := yaml.Unmarshal(factorsMetaYAML, &tableMeta); err != nil {
		logger.Error().Err(err).Msg("failed to parse embedded factor table metadata")
		tableMeta = Metadata{Version: "unknown"}
	}
}

// TableVersion returns the metadata for the embedded factor tables.
func TableVersion() Metadata {
	tableMetaOnce.Do(parseTableMeta)
	return tableMeta
}
