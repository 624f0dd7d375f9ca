package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfigs() []DomainConfig {
	return []DomainConfig{
		{Name: "Oral Care", ExpectedPerDay: 2.0, GapAmberHours: 16, GapRedHours: 24, ItemTitles: []string{"Oral Hygiene"}},
		{Name: "Grooming", ExpectedPerDay: 0.5, GapAmberHours: 48, GapRedHours: 96, ItemTitles: []string{"Shaving", "Hair Care"}},
	}
}

func TestNewDomainRegistry(t *testing.T) {
	registry, err := NewDomainRegistry(validConfigs())
	require.NoError(t, err)

	cfg, ok := registry.Lookup("Oral Care")
	require.True(t, ok)
	assert.Equal(t, 2.0, cfg.ExpectedPerDay)

	_, ok = registry.Lookup("Juggling")
	assert.False(t, ok)

	assert.Equal(t, []string{"Oral Care", "Grooming"}, registry.Names())
}

func TestNewDomainRegistry_RejectsMisconfiguration(t *testing.T) {
	tests := []struct {
		name    string
		configs []DomainConfig
		wantErr string
	}{
		{
			name:    "empty name",
			configs: []DomainConfig{{Name: "", ExpectedPerDay: 1, GapAmberHours: 1, GapRedHours: 2}},
			wantErr: "empty name",
		},
		{
			name: "duplicate name",
			configs: []DomainConfig{
				{Name: "Toileting", ExpectedPerDay: 4, GapAmberHours: 12, GapRedHours: 24},
				{Name: "Toileting", ExpectedPerDay: 2, GapAmberHours: 12, GapRedHours: 24},
			},
			wantErr: "duplicate",
		},
		{
			name:    "zero expected frequency",
			configs: []DomainConfig{{Name: "Toileting", ExpectedPerDay: 0, GapAmberHours: 12, GapRedHours: 24}},
			wantErr: "expected_per_day",
		},
		{
			name:    "negative expected frequency",
			configs: []DomainConfig{{Name: "Toileting", ExpectedPerDay: -1, GapAmberHours: 12, GapRedHours: 24}},
			wantErr: "expected_per_day",
		},
		{
			name:    "amber above red",
			configs: []DomainConfig{{Name: "Toileting", ExpectedPerDay: 4, GapAmberHours: 30, GapRedHours: 24}},
			wantErr: "exceeds red threshold",
		},
		{
			name:    "no domains",
			configs: nil,
			wantErr: "no domains",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDomainRegistry(tt.configs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDomainRegistry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "domains.yaml")
	contents := `domains:
  - name: Toileting
    expected_per_day: 4.0
    gap_amber_hours: 12
    gap_red_hours: 24
    items:
      - Toileting
  - name: Grooming
    expected_per_day: 0.5
    gap_amber_hours: 48
    gap_red_hours: 96
    items:
      - Shaving
      - Hair Care
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	registry, err := LoadDomainRegistry(path)
	require.NoError(t, err)

	cfg, ok := registry.Lookup("Grooming")
	require.True(t, ok)
	assert.Equal(t, 0.5, cfg.ExpectedPerDay)
	assert.Equal(t, []string{"Shaving", "Hair Care"}, cfg.ItemTitles)
}

func TestLoadDomainRegistry_MissingFile(t *testing.T) {
	_, err := LoadDomainRegistry(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestCareDomainConfigRoundTrip(t *testing.T) {
	row := CareDomain{
		Name:           "Oral Care",
		ExpectedPerDay: 2.0,
		GapAmberHours:  16,
		GapRedHours:    24,
		ItemTitles:     []string{"Oral Hygiene"},
	}
	cfg := row.Config()
	assert.Equal(t, "Oral Care", cfg.Name)
	assert.Equal(t, 2.0, cfg.ExpectedPerDay)
	assert.Equal(t, []string{"Oral Hygiene"}, cfg.ItemTitles)
}
