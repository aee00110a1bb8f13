package hmm

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadParameters decodes a YAML parameter document and validates it.
// Unknown fields are rejected.
//
//	states: [rain, sun]
//	symbols: [walk, shop, clean]
//	initial: {rain: 0.2, sun: 0.8}
//	transition:
//	  rain: {rain: 0.2, sun: 0.8}
//	  sun: {rain: 0.2, sun: 0.8}
//	emission:
//	  rain: {walk: 0.1, shop: 0.4, clean: 0.5}
//	  sun: {walk: 0.6, shop: 0.3, clean: 0.1}
func LoadParameters(r io.Reader) (Parameters, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Parameters
	if err := dec.Decode(&p); err != nil {
		return Parameters{}, fmt.Errorf("hmm: decode parameters: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// LoadParametersFile reads and validates a YAML parameter file.
func LoadParametersFile(path string) (Parameters, error) {
	f, err := os.Open(path)
	if err != nil {
		return Parameters{}, err
	}
	defer f.Close()

	p, err := LoadParameters(f)
	if err != nil {
		return Parameters{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
