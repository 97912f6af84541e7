package out

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"socialteam/internal/modules/task/domain"
	taskout "socialteam/internal/modules/task/port/out"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// YAMLCatalog serves the embedded catalog unless an override file exists.
type YAMLCatalog struct {
	overridePath string
}

func NewYAMLCatalog(overridePath string) taskout.CatalogSource {
	return &YAMLCatalog{overridePath: overridePath}
}

func (c *YAMLCatalog) Load(_ context.Context) (domain.Catalog, error) {
	raw := builtinCatalog
	source := "builtin catalog"
	if c.overridePath != "" {
		b, err := os.ReadFile(c.overridePath)
		switch {
		case err == nil:
			raw = b
			source = c.overridePath
		case !os.IsNotExist(err):
			return domain.Catalog{}, fmt.Errorf("read task catalog: %w", err)
		}
	}
	return decodeCatalog(raw, source)
}

func decodeCatalog(raw []byte, source string) (domain.Catalog, error) {
	var catalog domain.Catalog
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&catalog); err != nil {
		return domain.Catalog{}, fmt.Errorf("decode %s: %w", source, err)
	}
	if err := catalog.Validate(); err != nil {
		return domain.Catalog{}, fmt.Errorf("validate %s: %w", source, err)
	}
	return catalog, nil
}
