package rules

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/myca/taxgo/internal/domain"
)

// yearTables holds the two regime tables registered for one fiscal year.
type yearTables struct {
	old domain.RegimeRuleTable
	new domain.RegimeRuleTable
}

// Registry holds the process-wide rule tables, keyed by fiscal year.
// The table set is published behind a single atomic pointer: lookups
// are lock-free, and Replace swaps in a complete new set so concurrent
// readers never observe a partially updated registry.
type Registry struct {
	tables atomic.Pointer[map[string]yearTables]
}

// NewRegistry creates a registry pre-loaded with the built-in tables.
func NewRegistry() (*Registry, error) {
	return NewRegistryWithTables(BuiltInTables())
}

// NewRegistryWithTables creates a registry from an explicit table list,
// validating every table eagerly.
func NewRegistryWithTables(tables []domain.RegimeRuleTable) (*Registry, error) {
	set, err := buildTableSet(tables)
	if err != nil {
		return nil, err
	}
	r := &Registry{}
	r.tables.Store(&set)
	return r, nil
}

// buildTableSet validates tables and pairs them up by fiscal year.
func buildTableSet(tables []domain.RegimeRuleTable) (map[string]yearTables, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: no rule tables provided", domain.ErrConfiguration)
	}

	set := make(map[string]yearTables, len(tables)/2)
	seen := make(map[string]map[domain.Regime]bool)

	for _, table := range tables {
		if err := ValidateTable(table); err != nil {
			return nil, err
		}
		if seen[table.FiscalYear][table.Regime] {
			return nil, fmt.Errorf("%w: duplicate table for %s/%s", domain.ErrConfiguration, table.FiscalYear, table.Regime)
		}
		if seen[table.FiscalYear] == nil {
			seen[table.FiscalYear] = make(map[domain.Regime]bool)
		}
		seen[table.FiscalYear][table.Regime] = true

		yt := set[table.FiscalYear]
		if table.Regime == domain.RegimeOld {
			yt.old = table
		} else {
			yt.new = table
		}
		set[table.FiscalYear] = yt
	}

	for year, regimes := range seen {
		if !regimes[domain.RegimeOld] || !regimes[domain.RegimeNew] {
			return nil, fmt.Errorf("%w: fiscal year %s needs both an old and a new regime table", domain.ErrConfiguration, year)
		}
	}

	return set, nil
}

// Lookup returns the old and new regime tables for a fiscal year.
func (r *Registry) Lookup(fiscalYear string) (oldTable, newTable domain.RegimeRuleTable, err error) {
	set := *r.tables.Load()
	yt, ok := set[fiscalYear]
	if !ok {
		return domain.RegimeRuleTable{}, domain.RegimeRuleTable{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedFiscalYear, fiscalYear)
	}
	return yt.old, yt.new, nil
}

// FiscalYears lists the registered fiscal years in ascending order.
func (r *Registry) FiscalYears() []string {
	set := *r.tables.Load()
	years := make([]string, 0, len(set))
	for year := range set {
		years = append(years, year)
	}
	sort.Strings(years)
	return years
}

// Replace atomically publishes a complete new table set, validating it
// first. Existing readers keep the set they loaded; new lookups see the
// replacement.
func (r *Registry) Replace(tables []domain.RegimeRuleTable) error {
	set, err := buildTableSet(tables)
	if err != nil {
		return err
	}
	r.tables.Store(&set)
	return nil
}
