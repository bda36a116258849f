// Package observatory holds the static metadata describing each
// geomagnetic observatory the service can answer queries for.
//
// The index is loaded once at startup and never mutated afterward, so it is
// safe for unsynchronized concurrent reads across requests.
package observatory

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed observatories.yaml
var embedded []byte

// Observatory describes one observatory.
type Observatory struct {
	ID        string  `yaml:"id" json:"id"`
	Name      string  `yaml:"name" json:"name"`
	Agency    string  `yaml:"agency" json:"agency"`
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
	Elevation float64 `yaml:"elevation" json:"elevation"`
}

// Index maps uppercase observatory ids to their descriptors.
type Index map[string]Observatory

type metadataFile struct {
	Observatories []Observatory `yaml:"observatories"`
}

// Load parses the embedded observatory metadata.
func Load() (Index, error) {
	return parse(embedded)
}

// LoadFile parses observatory metadata from an external YAML file, for
// deployments that carry their own observatory list.
func LoadFile(path string) (Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read observatory metadata: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Index, error) {
	var file metadataFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse observatory metadata: %w", err)
	}

	index := make(Index, len(file.Observatories))
	for _, obs := range file.Observatories {
		id := strings.ToUpper(obs.ID)
		if id == "" {
			return nil, fmt.Errorf("observatory entry %q has no id", obs.Name)
		}
		obs.ID = id
		index[id] = obs
	}
	return index, nil
}

// Has reports whether id names a known observatory.
func (ix Index) Has(id string) bool {
	_, ok := ix[id]
	return ok
}

// Get returns the descriptor for id.
func (ix Index) Get(id string) (Observatory, bool) {
	obs, ok := ix[id]
	return obs, ok
}

// All returns every observatory sorted by id.
func (ix Index) All() []Observatory {
	all := make([]Observatory, 0, len(ix))
	for _, obs := range ix {
		all = append(all, obs)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}
