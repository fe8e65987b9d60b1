package catalog

import (
	"fmt"
	"os"
	"sync"

	"github.com/Masterminds/semver/v3"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// supportedSchema is the catalog schema versions this engine accepts.
// The dataset is versioned independently of calculation records, so a
// major bump means the layout changed and the loader must refuse it.
const supportedSchema = "^1.0.0"

// Loader produces a Catalog from some host resource. Implementations
// perform exactly one blocking read; a failed load returns no catalog at
// all rather than a partial one.
type Loader interface {
	Load() (*Catalog, error)
}

// EmbeddedLoader serves the dataset compiled into the binary. Parsing
// happens once, on first use, and the result is shared by every caller.
type EmbeddedLoader struct {
	logger zerolog.Logger

	once    sync.Once
	catalog *Catalog
	err     error
}

// NewEmbeddedLoader returns a loader backed by the compiled-in dataset.
func NewEmbeddedLoader(logger zerolog.Logger) *EmbeddedLoader {
	return &EmbeddedLoader{logger: logger}
}

// Load parses the embedded dataset. Safe for concurrent use.
func (l *EmbeddedLoader) Load() (*Catalog, error) {
	l.once.Do(func() {
		l.catalog, l.err = parseCatalog(rawCatalogJSON)
		if l.err != nil {
			l.logger.Error().Err(l.err).Msg("embedded catalog failed to parse")
			return
		}
		l.logger.Debug().
			Str("version", l.catalog.Version).
			Int("scopes", len(l.catalog.EmissionFactors)).
			Msg("embedded catalog loaded")
	})
	return l.catalog, l.err
}

// FileLoader reads the dataset from a host-supplied JSON file, letting a
// deployment override the embedded factors without rebuilding.
type FileLoader struct {
	path   string
	logger zerolog.Logger
}

// NewFileLoader returns a loader that reads the catalog from path.
func NewFileLoader(path string, logger zerolog.Logger) *FileLoader {
	return &FileLoader{path: path, logger: logger}
}

// Load reads and parses the catalog file.
func (l *FileLoader) Load() (*Catalog, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %s: %w", l.path, err)
	}

	c, err := parseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", l.path, err)
	}

	l.logger.Debug().
		Str("path", l.path).
		Str("version", c.Version).
		Msg("catalog file loaded")
	return c, nil
}

// parseCatalog decodes and sanity-checks a catalog document.
func parseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogCorrupted, err)
	}

	if len(c.EmissionFactors) == 0 || len(c.Categories) == 0 {
		return nil, fmt.Errorf("%w: missing emissionFactors or categories", ErrCatalogCorrupted)
	}

	if err := checkSchemaVersion(c.Version); err != nil {
		return nil, err
	}

	return &c, nil
}

// checkSchemaVersion enforces the supported schema range.
func checkSchemaVersion(version string) error {
	if version == "" {
		return fmt.Errorf("%w: catalog has no version", ErrUnsupportedVersion)
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: parsing %q: %w", ErrUnsupportedVersion, version, err)
	}

	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		// supportedSchema is a compile-time constant; this cannot happen
		// outside of a bad edit.
		return fmt.Errorf("parsing schema constraint: %w", err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, version, supportedSchema)
	}
	return nil
}
