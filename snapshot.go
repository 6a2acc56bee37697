package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/worldviz/engine"
	"github.com/andareed/worldviz/logging"
)

// --- Wire format ---

const snapshotVersion = 1

type filterDTO struct {
	XIndicator string   `json:"xIndicator"`
	YIndicator string   `json:"yIndicator"`
	XLog       bool     `json:"xLog"`
	YLog       bool     `json:"yLog"`
	Year       int      `json:"year"`
	Countries  []string `json:"countries,omitempty"`
}

type snapshotDTO struct {
	Version          int       `json:"version"`
	Filter           filterDTO `json:"filter"`
	ScatterCountries []string  `json:"scatterCountries,omitempty"`
	PersistedYear    *int      `json:"persistedYear,omitempty"`
	Note             string    `json:"note,omitempty"`
}

// --- Conversions ---

func (m *model) toSnapshot() snapshotDTO {
	dto := snapshotDTO{
		Version: snapshotVersion,
		Filter: filterDTO{
			XIndicator: m.filter.XIndicator,
			YIndicator: m.filter.YIndicator,
			XLog:       m.filter.XLog,
			YLog:       m.filter.YLog,
			Year:       m.filter.Year,
			Countries:  append([]string(nil), m.filter.SelectedCountries...),
		},
		ScatterCountries: append([]string(nil), m.scatterCountries...),
	}
	if y, ok := m.store.Year(m.sessionID); ok {
		dto.PersistedYear = &y
	}
	return dto
}

func (m *model) applySnapshot(dto snapshotDTO) error {
	if dto.Version != snapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", dto.Version)
	}
	f := engine.FilterState{
		XIndicator: dto.Filter.XIndicator,
		YIndicator: dto.Filter.YIndicator,
		XLog:       dto.Filter.XLog,
		YLog:       dto.Filter.YLog,
		Year:       dto.Filter.Year,
	}
	f.SetCountries(dto.Filter.Countries)
	if err := f.Validate(m.ds); err != nil {
		return fmt.Errorf("snapshot does not match this dataset: %w", err)
	}

	m.filter = f
	m.scatterCountries = dto.ScatterCountries
	if dto.PersistedYear != nil {
		m.store.SetYear(m.sessionID, *dto.PersistedYear)
	}
	m.syncIndicatorIndices()
	m.recompute()
	return nil
}

// --- File IO ---

func (m *model) writeSnapshot() (tea.Model, tea.Cmd) {
	path := defaultSnapshotName(m.dataName)
	if err := saveSnapshot(m.toSnapshot(), path); err != nil {
		logging.Infof("snapshot save failed: %v", err)
		return m, m.startNotice("Snapshot save failed", "error", noticeDuration)
	}
	return m, m.startNotice("Snapshot written to "+path, "success", noticeDuration)
}

func saveSnapshot(dto snapshotDTO, path string) error {
	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func loadSnapshot(path string) (snapshotDTO, error) {
	var dto snapshotDTO
	data, err := os.ReadFile(path)
	if err != nil {
		return dto, err
	}
	if err := json.Unmarshal(data, &dto); err != nil {
		return dto, fmt.Errorf("bad snapshot %q: %w", path, err)
	}
	return dto, nil
}

func defaultSnapshotName(dataName string) string {
	base := strings.TrimSuffix(filepath.Base(dataName), filepath.Ext(dataName))
	return fmt.Sprintf("%s-%s.worldviz.json", base, time.Now().Format("20060102-150405"))
}
