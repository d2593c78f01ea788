// Package tables holds the loaded tariff datasets as one immutable handle.
// The store is built once at startup and passed by reference into every
// resolver call; nothing writes to it after load.
package tables

import (
	"tariff-cost/core/types"
	"tariff-cost/internal/errors"
)

// Store bundles the general table, the Section 301 table and one
// Section 232 table per scenario.
type Store struct {
	general    *types.TariffTable
	section301 *types.TariffTable
	section232 map[types.Scenario]*types.TariffTable
}

// NewStore validates and assembles a store. Every fixed scenario must have
// a Section 232 table.
func NewStore(general, section301 *types.TariffTable, section232 map[types.Scenario]*types.TariffTable) (*Store, error) {
	if general == nil {
		return nil, errors.New(errors.TypeDataset, "general tariff table is required")
	}
	if section301 == nil {
		return nil, errors.New(errors.TypeDataset, "section 301 table is required")
	}
	for _, sc := range types.Scenarios() {
		if section232[sc] == nil {
			return nil, errors.Newf(errors.TypeDataset, "section 232 table missing for scenario %s", sc)
		}
	}
	s232 := make(map[types.Scenario]*types.TariffTable, len(section232))
	for sc, t := range section232 {
		s232[sc] = t
	}
	return &Store{
		general:    general,
		section301: section301,
		section232: s232,
	}, nil
}

// General returns the general rates and descriptions table.
func (s *Store) General() *types.TariffTable {
	return s.general
}

// Section301 returns the Section 301 list.
func (s *Store) Section301() *types.TariffTable {
	return s.section301
}

// Section232 returns the Section 232 table bound to a scenario.
func (s *Store) Section232(sc types.Scenario) *types.TariffTable {
	return s.section232[sc]
}

// Tables returns every loaded table in a stable order, general first.
func (s *Store) Tables() []*types.TariffTable {
	out := []*types.TariffTable{s.general, s.section301}
	for _, sc := range types.Scenarios() {
		out = append(out, s.section232[sc])
	}
	return out
}
