package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MonoLigandConfig mirrors particle.MonoLigand's fields for YAML loading.
type MonoLigandConfig struct {
	ReceptorDensity float64 `yaml:"receptor_density"`
	BindingStrength float64 `yaml:"binding_strength"`
	OnRate          float64 `yaml:"on_rate"`
	OffRate         float64 `yaml:"off_rate"`
}

// MultiLigandConfig mirrors particle.MultiLigand's fields for YAML loading.
type MultiLigandConfig struct {
	ReceptorDensity float64   `yaml:"receptor_density"`
	BindingStrength float64   `yaml:"binding_strength"`
	OnRates         []float64 `yaml:"on_rates"`
	OffRates        []float64 `yaml:"off_rates"`
}

// InterferingConfig mirrors particle.Interfering's fields for YAML loading.
type InterferingConfig struct {
	TotalLigands           uint16  `yaml:"total_ligands"`
	ReceptorDensity        float64 `yaml:"receptor_density"`
	AttachRate             float64 `yaml:"attach_rate"`
	DeattachRate           float64 `yaml:"deattach_rate"`
	EnterRate              float64 `yaml:"enter_rate"`
	ObstructionFactor      float64 `yaml:"obstruction_factor"`
	InitialCollisionFactor float64 `yaml:"initial_collision_factor"`
}

// FatiguingConfig mirrors particle.Fatiguing's fields for YAML loading.
type FatiguingConfig struct {
	TotalLigands              uint16  `yaml:"total_ligands"`
	ReceptorDensity           float64 `yaml:"receptor_density"`
	AttachRate                float64 `yaml:"attach_rate"`
	FatiguedAttachRate        float64 `yaml:"fatigued_attach_rate"`
	DeattachRate              float64 `yaml:"deattach_rate"`
	EnterRate                 float64 `yaml:"enter_rate"`
	ObstructionFactor         float64 `yaml:"obstruction_factor"`
	FatiguedObstructionFactor float64 `yaml:"fatigued_obstruction_factor"`
	InitialCollisionFactor    float64 `yaml:"initial_collision_factor"`
}

// RunConfig selects one concrete particle model and its parameters for
// the simulate command. Exactly one of the model fields should be set,
// matching the Model name.
type RunConfig struct {
	Model string `yaml:"model"`

	MonoLigand  *MonoLigandConfig  `yaml:"mono_ligand,omitempty"`
	MultiLigand *MultiLigandConfig `yaml:"multi_ligand,omitempty"`
	Interfering *InterferingConfig `yaml:"interfering,omitempty"`
	Fatiguing   *FatiguingConfig   `yaml:"fatiguing,omitempty"`
}

// LoadRunConfig reads and parses a YAML model-parameter file.
func LoadRunConfig(path string) (*RunConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg RunConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return &cfg, nil
}
