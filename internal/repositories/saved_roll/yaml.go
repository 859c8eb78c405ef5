package savedroll

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/genesys-dice/internal/errors"
	"github.com/KirkDiggler/genesys-dice/internal/pool"
)

// DefaultFileName is used when only a directory is configured
const DefaultFileName = "genesys-dice-saved-rolls.yaml"

// Config holds the configuration for the YAML repository
type Config struct {
	// Path of the YAML file; it is created on first save
	Path string
}

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", c.Path, vb)
	return vb.Build()
}

type yamlRepository struct {
	path string
	mu   sync.Mutex
}

// NewYAMLRepository creates a saved roll repository backed by a YAML file
func NewYAMLRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &yamlRepository{path: cfg.Path}, nil
}

var _ Repository = (*yamlRepository)(nil)

func (r *yamlRepository) List(_ context.Context) ([]SavedRoll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

func (r *yamlRepository) Get(_ context.Context, name string) (*SavedRoll, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rolls, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range rolls {
		if rolls[i].Name == name {
			return &rolls[i], nil
		}
	}
	return nil, errors.NotFoundf("saved roll %q not found", name)
}

func (r *yamlRepository) Save(_ context.Context, roll SavedRoll) error {
	if err := validate(roll); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rolls, err := r.load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range rolls {
		if rolls[i].Name == roll.Name {
			rolls[i] = roll
			replaced = true
			break
		}
	}
	if !replaced {
		rolls = append(rolls, roll)
	}

	return r.store(rolls)
}

func (r *yamlRepository) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rolls, err := r.load()
	if err != nil {
		return err
	}
	for i := range rolls {
		if rolls[i].Name == name {
			return r.store(append(rolls[:i], rolls[i+1:]...))
		}
	}
	return errors.NotFoundf("saved roll %q not found", name)
}

func validate(roll SavedRoll) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", roll.Name, vb)
	errors.ValidateRequired("dice", roll.Dice, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	p, err := pool.Parse(roll.Dice)
	if err != nil {
		return err
	}
	for _, e := range roll.Effects {
		if err := p.Apply(e); err != nil {
			return err
		}
	}
	return nil
}

// load reads the file; a missing or empty file is an empty list
func (r *yamlRepository) load() ([]SavedRoll, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []SavedRoll{}, nil
		}
		return nil, errors.Wrapf(err, "failed to read saved rolls")
	}

	rolls := []SavedRoll{}
	if len(bytes.TrimSpace(data)) == 0 {
		return rolls, nil
	}
	if err := yaml.Unmarshal(data, &rolls); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to parse saved rolls").
			WithMeta(errors.MetaPath, r.path)
	}
	return rolls, nil
}

// store writes through a temp file so a failed write keeps the old list
func (r *yamlRepository) store(rolls []SavedRoll) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(rolls); err != nil {
		return errors.Wrapf(err, "failed to encode saved rolls")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrapf(err, "failed to encode saved rolls")
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create saved rolls directory")
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return errors.Wrapf(err, "failed to write saved rolls")
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return errors.Wrapf(err, "failed to replace saved rolls")
	}
	return nil
}
