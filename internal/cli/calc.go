package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/carbonfocus/internal/catalog"
	"github.com/rshade/carbonfocus/internal/config"
	"github.com/rshade/carbonfocus/internal/engine"
	"github.com/rshade/carbonfocus/internal/equivalency"
	"github.com/rshade/carbonfocus/internal/history"
	"github.com/rshade/carbonfocus/internal/report"
)

// Output format values for the calc command.
const (
	outputTable  = "table"
	outputJSON   = "json"
	outputCSV    = "csv"
	outputReport = "report"
)

// Export file names written by --export-dir.
const (
	exportCSVName    = "emissions.csv"
	exportXLSXName   = "emissions.xlsx"
	exportReportName = "report.txt"
	exportTotalsName = "totals.json"
)

// calcFlags holds the calc command's flag values.
type calcFlags struct {
	Input     string
	Org       string
	Output    string
	ExportDir string
	Save      bool
}

// NewCalcCmd creates the calc command. It reads an entries file,
// resolves missing emission factors from the catalog, computes totals
// and equivalencies, and renders or exports the result.
func NewCalcCmd() *cobra.Command {
	var flags calcFlags

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate emissions from an entries file",
		Long: "Calculate scope 1-3 GHG emissions from a JSON entries file. " +
			"Entries without an emission factor are resolved against the catalog; " +
			"entries that cannot be resolved or fail validation are excluded and reported.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalc(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Input, "input", "", "entries JSON file (required)")
	cmd.Flags().StringVar(&flags.Org, "org", "", "reporting organization name")
	cmd.Flags().StringVar(&flags.Output, "output", outputTable, "output format: table, json, csv or report")
	cmd.Flags().StringVar(&flags.ExportDir, "export-dir", "", "write CSV, XLSX, report and totals files into this directory")
	cmd.Flags().BoolVar(&flags.Save, "save", false, "save the calculation to history")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runCalc(cmd *cobra.Command, flags calcFlags) error {
	cfg := configFromContext(cmd.Context())

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	data, fileOrg, err := readEntries(flags.Input)
	if err != nil {
		return err
	}

	// Flag wins over the entries file, which wins over the config file.
	org := flags.Org
	if org == "" {
		org = fileOrg
	}
	if org == "" {
		org = cfg.Organization
	}

	result := prepare(cat, data)
	for _, rej := range result.Rejected {
		logger.Warn().
			Str("scope", string(rej.Entry.Scope)).
			Str("category", rej.Entry.Category).
			Str("source", rej.Entry.Source).
			Err(rej.Err).
			Msg("entry excluded from calculation")
		cmd.PrintErrf("Warning: excluding %s/%s/%s: %v\n",
			rej.Entry.Scope, rej.Entry.Category, rej.Entry.Source, rej.Err)
	}

	in := report.Input{
		Organization:  org,
		GeneratedAt:   time.Now(),
		Data:          result.Data,
		Totals:        result.Totals,
		Equivalencies: equivalency.Convert(result.Totals.Total, equivalency.FactorsFromCatalog(cat.EquivalencyFactors)),
	}

	logger.Info().
		Float64("totalKg", result.Totals.Total).
		Int("accepted", len(result.Data.Scope1)+len(result.Data.Scope2)+len(result.Data.Scope3)).
		Int("rejected", len(result.Rejected)).
		Msg("calculation complete")

	if flags.ExportDir != "" {
		if err := exportAll(flags.ExportDir, in); err != nil {
			return err
		}
		cmd.Printf("Exported %s, %s, %s and %s to %s\n",
			exportCSVName, exportXLSXName, exportReportName, exportTotalsName, flags.ExportDir)
	}

	if flags.Save {
		if err := saveToHistory(cfg, in); err != nil {
			return err
		}
		cmd.Println("Calculation saved to history")
	}

	return renderOutput(cmd, flags.Output, in)
}

// calcResult pairs the accepted per-scope entries with their totals
// and the entries excluded along the way.
type calcResult struct {
	Data     engine.Data
	Totals   engine.Totals
	Rejected []engine.RejectedEntry
}

// prepare resolves missing factors against the catalog and filters
// invalid entries, scope by scope.
func prepare(cat *catalog.Catalog, data engine.Data) calcResult {
	var result calcResult

	for _, scope := range engine.Scopes {
		resolved, rejected := resolveFactors(cat, data.Entries(scope))
		valid, invalid := engine.FilterValid(resolved)
		rejected = append(rejected, invalid...)

		switch scope {
		case engine.Scope1:
			result.Data.Scope1 = valid
		case engine.Scope2:
			result.Data.Scope2 = valid
		case engine.Scope3:
			result.Data.Scope3 = valid
		}
		result.Rejected = append(result.Rejected, rejected...)
	}

	result.Totals = engine.ComputeTotals(result.Data)
	return result
}

// resolveFactors fills in missing emission factors from the catalog.
// An entry whose factor cannot be resolved is rejected; the rest of
// the calculation proceeds.
func resolveFactors(cat *catalog.Catalog, entries []engine.Entry) ([]engine.Entry, []engine.RejectedEntry) {
	var resolved []engine.Entry
	var rejected []engine.RejectedEntry

	for _, e := range entries {
		if e.EmissionFactor == 0 {
			record, err := cat.Factor(e.Scope, e.Category, e.Source)
			if err != nil {
				rejected = append(rejected, engine.RejectedEntry{Entry: e, Err: err})
				continue
			}
			e.EmissionFactor = record.Factor
			if e.Unit == "" {
				e.Unit = record.Unit
			}
		}
		resolved = append(resolved, e)
	}

	return resolved, rejected
}

// loadCatalog selects the embedded dataset or a configured file.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	var loader catalog.Loader
	if cfg.Catalog.Path != "" {
		loader = catalog.NewFileLoader(cfg.Catalog.Path, logger)
	} else {
		loader = catalog.NewEmbeddedLoader(logger)
	}
	return loader.Load()
}

// entriesFile is the calc input document: an optional organization
// name plus the per-scope entry lists.
type entriesFile struct {
	Organization string `json:"organization"`
	engine.Data
}

// readEntries reads the entries file, returning the per-scope data and
// the organization named in the file, if any.
func readEntries(path string) (engine.Data, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return engine.Data{}, "", fmt.Errorf("reading entries file: %w", err)
	}

	var doc entriesFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return engine.Data{}, "", fmt.Errorf("parsing entries file %s: %w", path, err)
	}

	// The scope is implied by which list an entry sits in; the field on
	// the entry itself is optional in the input file.
	stampScope(doc.Scope1, engine.Scope1)
	stampScope(doc.Scope2, engine.Scope2)
	stampScope(doc.Scope3, engine.Scope3)
	return doc.Data, doc.Organization, nil
}

func stampScope(entries []engine.Entry, scope engine.Scope) {
	for i := range entries {
		entries[i].Scope = scope
	}
}

// exportAll writes the four export artifacts concurrently. The files
// are independent, so one failed writer does not corrupt the others.
func exportAll(dir string, in report.Input) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	var g errgroup.Group

	g.Go(func() error {
		return writeExportFile(filepath.Join(dir, exportCSVName), func(f *os.File) error {
			return report.WriteCSV(f, in)
		})
	})
	g.Go(func() error {
		return writeExportFile(filepath.Join(dir, exportXLSXName), func(f *os.File) error {
			return report.WriteXLSX(f, in)
		})
	})
	g.Go(func() error {
		return writeExportFile(filepath.Join(dir, exportReportName), func(f *os.File) error {
			return report.NewTextRenderer().Render(f, report.BuildSections(in))
		})
	})
	g.Go(func() error {
		data, err := json.MarshalIndent(newSummaryPayload(in), "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling totals: %w", err)
		}
		return os.WriteFile(filepath.Join(dir, exportTotalsName), data, 0o600)
	})

	return g.Wait()
}

func writeExportFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// saveToHistory appends the calculation snapshot to the bounded store.
func saveToHistory(cfg *config.Config, in report.Input) error {
	store, err := history.NewStore(cfg.History.Path)
	if err != nil {
		return err
	}
	if err := store.Load(); err != nil {
		if errors.Is(err, history.ErrStoreCorrupted) {
			return fmt.Errorf("refusing to overwrite corrupted history: %w", err)
		}
		return err
	}

	store.Add(history.NewRecord(in.GeneratedAt, in.Organization, in.Data))
	return store.Save()
}
