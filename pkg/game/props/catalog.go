package props

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Props []*Prop `yaml:"props"`
}

// LoadCatalog decodes and validates a YAML prop catalog.
func LoadCatalog(r io.Reader) ([]*Prop, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode prop catalog: %w", err)
	}

	for _, p := range file.Props {
		p.applyDefaults()
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	return file.Props, nil
}

// LoadCatalogFile reads a catalog from path.
func LoadCatalogFile(path string) ([]*Prop, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open prop catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() []*Prop {
	props, err := LoadCatalog(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(fmt.Sprintf("props: built-in catalog: %v", err))
	}
	return props
}
