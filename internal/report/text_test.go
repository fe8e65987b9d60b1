package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfocus/internal/engine"
)

func TestBuildSections_Order(t *testing.T) {
	in := referenceInput()
	in.Data.Scope3 = []engine.Entry{
		{Scope: engine.Scope3, Category: "businessTravel", Source: "rail",
			ActivityData: 500, Unit: "km", EmissionFactor: 0.041},
	}
	in.Totals = engine.ComputeTotals(in.Data)

	sections := BuildSections(in)
	require.Len(t, sections, 5)

	_, ok := sections[0].(TitleSection)
	assert.True(t, ok, "first section must be the title block")
	_, ok = sections[1].(SummarySection)
	assert.True(t, ok, "second section must be the executive summary")

	table1, ok := sections[2].(ScopeTableSection)
	require.True(t, ok)
	assert.Equal(t, engine.Scope1, table1.Scope)

	// Scope 2 is empty and must be omitted, not rendered empty.
	table3, ok := sections[3].(ScopeTableSection)
	require.True(t, ok)
	assert.Equal(t, engine.Scope3, table3.Scope)

	_, ok = sections[4].(EquivalencySection)
	assert.True(t, ok, "last section must be the equivalencies block")
}

func TestTextRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer().Render(&buf, BuildSections(referenceInput())))
	out := buf.String()

	assert.Contains(t, out, "CarbonFocus")
	assert.Contains(t, out, "GHG Emissions Report")
	assert.Contains(t, out, "Organization: Acme Corp")
	assert.Contains(t, out, "Generated: March 14, 2026")
	assert.Contains(t, out, "EXECUTIVE SUMMARY")
	assert.Contains(t, out, "201.00 kg CO2e")
	assert.Contains(t, out, "SCOPE 1: DIRECT EMISSIONS")
	assert.Contains(t, out, "naturalGas")
	assert.Contains(t, out, "EQUIVALENCIES")
	assert.Contains(t, out, "GHG Protocol Corporate Standard")
	assert.Contains(t, out, "Page 1 of 1")
	assert.Contains(t, out, footerAttribution)
}

func TestTextRenderer_TonneFormatting(t *testing.T) {
	data := engine.Data{
		Scope2: []engine.Entry{
			{Scope: engine.Scope2, Category: "purchasedElectricity", Source: "gridAverage",
				ActivityData: 10000, Unit: "kWh", EmissionFactor: 0.453},
		},
	}
	in := Input{
		Organization: "Acme Corp",
		GeneratedAt:  time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Data:         data,
		Totals:       engine.ComputeTotals(data),
	}

	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer().Render(&buf, BuildSections(in)))

	// 4,530 kg crosses the threshold and renders in tonnes.
	assert.Contains(t, buf.String(), "4.53 tonnes CO2e")
}

func TestTextRenderer_Deterministic(t *testing.T) {
	sections := BuildSections(referenceInput())

	var first, second bytes.Buffer
	require.NoError(t, NewTextRenderer().Render(&first, sections))
	require.NoError(t, NewTextRenderer().Render(&second, sections))

	assert.Equal(t, first.String(), second.String())
}

func TestTextRenderer_Pagination(t *testing.T) {
	// Enough entries to force multiple pages.
	var entries []engine.Entry
	for i := 0; i < 120; i++ {
		entries = append(entries, engine.Entry{
			Scope:          engine.Scope3,
			Category:       "employeeCommuting",
			Source:         fmt.Sprintf("passengerCar%03d", i),
			ActivityData:   float64(i + 1),
			Unit:           "km",
			EmissionFactor: 0.171,
		})
	}
	data := engine.Data{Scope3: entries}
	in := Input{
		Organization: "Acme Corp",
		GeneratedAt:  time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Data:         data,
		Totals:       engine.ComputeTotals(data),
	}

	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer().Render(&buf, BuildSections(in)))
	out := buf.String()

	pages := strings.Split(out, "\f")
	require.Greater(t, len(pages), 1, "expected a multi-page document")

	// Every page carries the footer with a consistent total.
	want := fmt.Sprintf("of %d", len(pages))
	for i, page := range pages {
		assert.Containsf(t, page, footerAttribution, "page %d missing attribution", i+1)
		assert.Containsf(t, page, fmt.Sprintf("Page %d %s", i+1, want), "page %d footer wrong", i+1)
	}
}

func TestTextRenderer_KeepTogether(t *testing.T) {
	// A short table section that would not fit at the bottom of page one
	// must start on page two rather than split mid-row.
	var filler []engine.Entry
	for i := 0; i < 38; i++ {
		filler = append(filler, engine.Entry{
			Scope:          engine.Scope1,
			Category:       "mobileCombustion",
			Source:         fmt.Sprintf("gasoline%02d", i),
			ActivityData:   1,
			Unit:           "L",
			EmissionFactor: 2.31,
		})
	}
	data := engine.Data{
		Scope1: filler,
		Scope2: []engine.Entry{
			{Scope: engine.Scope2, Category: "purchasedElectricity", Source: "gridAverage",
				ActivityData: 100, Unit: "kWh", EmissionFactor: 0.453},
		},
	}
	in := Input{
		Organization: "Acme Corp",
		GeneratedAt:  time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Data:         data,
		Totals:       engine.ComputeTotals(data),
	}

	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer().Render(&buf, BuildSections(in)))

	pages := strings.Split(buf.String(), "\f")
	require.GreaterOrEqual(t, len(pages), 2)

	// The scope 2 heading and its total row stay on the same page.
	for _, page := range pages {
		if strings.Contains(page, "SCOPE 2: PURCHASED ENERGY") {
			assert.Contains(t, page, "Scope 2 Total")
		}
	}
}
