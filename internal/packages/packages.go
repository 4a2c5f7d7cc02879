package packages

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
)

var (
	// ErrEmptyBatch indicates that no packages were provided.
	ErrEmptyBatch = errors.New("batch must contain at least one package")
	// ErrInvalidPackage indicates a package that cannot be represented, such as one without a code.
	ErrInvalidPackage = errors.New("invalid package")
)

// Package is one raw sensor reading: a workout code and its flat field list.
type Package struct {
	Code string    `yaml:"code"`
	Data []float64 `yaml:"data"`
}

var defaultPackages = []Package{
	{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	{Code: "RUN", Data: []float64{15000, 1, 75}},
	{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
}

// Store provides access to the batch of packages the driver processes.
type Store interface {
	List() ([]Package, error)
	Replace(batch []Package) error
}

// MemoryStore keeps the batch in-memory and guards access with a RWMutex.
type MemoryStore struct {
	mu    sync.RWMutex
	batch []Package
}

// NewMemoryStore initialises the store with a copy of the sample batch.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		batch: clone(defaultPackages),
	}
}

// Default returns a copy of the sample batch.
func Default() []Package {
	return clone(defaultPackages)
}

// List returns a copy of the batch in declaration order.
func (s *MemoryStore) List() ([]Package, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return clone(s.batch), nil
}

// Replace validates and stores a new batch. Field lists are not checked against
// workout codes here; that is left to the dispatcher so a bad entry only skips itself.
func (s *MemoryStore) Replace(batch []Package) error {
	if err := validate(batch); err != nil {
		return err
	}

	s.mu.Lock()
	s.batch = clone(batch)
	s.mu.Unlock()

	return nil
}

// Parse reads the compact form "CODE:f1,f2,...;CODE:f1,...".
func Parse(raw string) ([]Package, error) {
	entries := strings.Split(raw, ";")
	batch := make([]Package, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		code, fields, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q has no field list", ErrInvalidPackage, entry)
		}
		pkg := Package{Code: strings.TrimSpace(code)}
		for _, field := range strings.Split(fields, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid number %q in %q", ErrInvalidPackage, field, entry)
			}
			pkg.Data = append(pkg.Data, value)
		}
		batch = append(batch, pkg)
	}
	if err := validate(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

func validate(batch []Package) error {
	if len(batch) == 0 {
		return ErrEmptyBatch
	}
	for i, pkg := range batch {
		if strings.TrimSpace(pkg.Code) == "" {
			return fmt.Errorf("%w: package %d has no code", ErrInvalidPackage, i)
		}
	}
	return nil
}

func clone(src []Package) []Package {
	out := make([]Package, len(src))
	for i, pkg := range src {
		out[i] = Package{Code: pkg.Code, Data: slices.Clone(pkg.Data)}
	}
	return out
}
