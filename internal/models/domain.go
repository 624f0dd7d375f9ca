package models

import (
	"fmt"
	"os"

	"github.com/lib/pq"
	"gopkg.in/yaml.v3"
)

// DomainConfig is the static scoring policy for one ADL domain. Configs are
// loaded once at startup and are read-only during scoring.
type DomainConfig struct {
	Name           string  `yaml:"name"`
	ExpectedPerDay float64 `yaml:"expected_per_day"`
	GapAmberHours  float64 `yaml:"gap_amber_hours"`
	GapRedHours    float64 `yaml:"gap_red_hours"`
	// ItemTitles lists the source log item titles that map into this domain,
	// e.g. Grooming covers both Shaving and Hair Care.
	ItemTitles []string `yaml:"items"`
}

// CareDomain is the persisted row for a domain, kept in sync with the loaded
// registry so events and scores can reference domains by ID.
type CareDomain struct {
	ID             int    `gorm:"primaryKey"`
	Name           string `gorm:"uniqueIndex"`
	ExpectedPerDay float64
	GapAmberHours  float64
	GapRedHours    float64
	ItemTitles     pq.StringArray `gorm:"type:text[]"`
}

// Config converts a persisted domain row back into its scoring policy.
func (d CareDomain) Config() DomainConfig {
	return DomainConfig{
		Name:           d.Name,
		ExpectedPerDay: d.ExpectedPerDay,
		GapAmberHours:  d.GapAmberHours,
		GapRedHours:    d.GapRedHours,
		ItemTitles:     []string(d.ItemTitles),
	}
}

// DomainRegistry holds the validated domain configurations, looked up by
// name. It is never mutated after construction.
type DomainRegistry struct {
	domains map[string]DomainConfig
	order   []string
}

// NewDomainRegistry validates and indexes a set of domain configurations.
// A misconfigured domain is a hard error, never silently defaulted.
func NewDomainRegistry(configs []DomainConfig) (*DomainRegistry, error) {
	reg := &DomainRegistry{domains: make(map[string]DomainConfig, len(configs))}

	for _, cfg := range configs {
		if cfg.Name == "" {
			return nil, fmt.Errorf("domain with empty name")
		}
		if _, exists := reg.domains[cfg.Name]; exists {
			return nil, fmt.Errorf("duplicate domain %q", cfg.Name)
		}
		if cfg.ExpectedPerDay <= 0 {
			return nil, fmt.Errorf("domain %q: expected_per_day must be positive, got %v", cfg.Name, cfg.ExpectedPerDay)
		}
		if cfg.GapAmberHours <= 0 || cfg.GapRedHours <= 0 {
			return nil, fmt.Errorf("domain %q: gap thresholds must be positive", cfg.Name)
		}
		if cfg.GapAmberHours > cfg.GapRedHours {
			return nil, fmt.Errorf("domain %q: amber threshold %vh exceeds red threshold %vh", cfg.Name, cfg.GapAmberHours, cfg.GapRedHours)
		}
		reg.domains[cfg.Name] = cfg
		reg.order = append(reg.order, cfg.Name)
	}

	if len(reg.order) == 0 {
		return nil, fmt.Errorf("no domains configured")
	}
	return reg, nil
}

// LoadDomainRegistry reads and validates the domains YAML file.
func LoadDomainRegistry(path string) (*DomainRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read domains file: %w", err)
	}

	var file struct {
		Domains []DomainConfig `yaml:"domains"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal domains YAML: %w", err)
	}

	return NewDomainRegistry(file.Domains)
}

// Lookup returns the configuration for a domain name.
func (r *DomainRegistry) Lookup(name string) (DomainConfig, bool) {
	cfg, ok := r.domains[name]
	return cfg, ok
}

// Names returns the domain names in file order.
func (r *DomainRegistry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
