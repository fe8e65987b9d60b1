package catalog

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Catalog errors. Compare with errors.Is().
var (
	// ErrCatalogCorrupted indicates the reference dataset is missing or
	// unparsable. Fatal: no calculation may proceed on a partial catalog.
	ErrCatalogCorrupted = constError("emission factor catalog corrupted")

	// ErrUnsupportedVersion indicates the dataset's schema version is
	// outside the range this engine understands.
	ErrUnsupportedVersion = constError("unsupported catalog schema version")

	// ErrFactorNotFound indicates a (scope, category, source) triple that
	// does not resolve to a factor record. Local to one entry; other
	// entries proceed.
	ErrFactorNotFound = constError("emission factor not found")
)
