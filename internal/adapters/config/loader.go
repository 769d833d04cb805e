// Package config provides the configuration loader for pack.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when none is given.
const DefaultFilename = "pack.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path. Relative paths in the file resolve against the
// project root, which itself resolves against the directory of the file.
func (l *Loader) Load(path string) (*domain.Config, []*domain.Module, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	data, err := os.ReadFile(absPath) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var pf Packfile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if err := validate(&pf); err != nil {
		return nil, nil, zerr.With(err, "path", path)
	}

	root := domain.ResolvePath(filepath.Dir(absPath), pf.Root)

	cfg := &domain.Config{
		Namespace:   pf.Namespace,
		RootDir:     root,
		Parallelism: pf.Parallelism,
	}
	for _, dto := range pf.OutputTargets {
		target, err := toTarget(dto, root, pf.Namespace)
		if err != nil {
			return nil, nil, err
		}
		cfg.OutputTargets = append(cfg.OutputTargets, target)
	}

	modules, err := loadModules(pf.Components, root)
	if err != nil {
		return nil, nil, err
	}

	if len(cfg.OutputTargets) == 0 {
		l.logger.Warn("no output targets configured in " + path)
	}
	if len(modules) == 0 {
		l.logger.Warn("no components declared in " + path)
	}

	return cfg, modules, nil
}

func toTarget(dto TargetDTO, root, namespace string) (domain.OutputTarget, error) {
	kind := domain.TargetKind(dto.Type)

	switch kind {
	case domain.KindWebComponent:
		return domain.WebComponentTarget{Dir: domain.ResolvePath(root, dto.Dir)}, nil
	case domain.KindWWW, domain.KindDist:
		ns := dto.Namespace
		if ns == "" {
			ns = namespace
		}
		return domain.BuildTarget{
			Type:      kind,
			BuildDir:  domain.ResolvePath(root, dto.BuildDir),
			Namespace: ns,
		}, nil
	case domain.KindDocs, domain.KindStats:
		dir := dto.Dir
		if dir != "" {
			dir = domain.ResolvePath(root, dir)
		}
		return domain.AuxTarget{Type: kind, Dir: dir}, nil
	default:
		return nil, zerr.With(domain.ErrUnknownTargetType, "type", dto.Type)
	}
}

func loadModules(components []ComponentDTO, root string) ([]*domain.Module, error) {
	modules := make([]*domain.Module, 0, len(components))
	seen := make(map[string]string, len(components))

	for _, c := range components {
		if first, ok := seen[c.Tag]; ok {
			err := zerr.With(domain.ErrDuplicateTagName, "tag", c.Tag)
			err = zerr.With(err, "first_occurrence", first)
			return nil, zerr.With(err, "duplicate_at", c.Source)
		}
		seen[c.Tag] = c.Source

		source, err := readFile(root, c.Source)
		if err != nil {
			return nil, zerr.With(err, "tag", c.Tag)
		}

		m := &domain.Module{
			TagName:  c.Tag,
			Source:   source,
			Features: c.Features,
		}
		for _, s := range c.Styles {
			text, err := readFile(root, s.File)
			if err != nil {
				return nil, zerr.With(err, "tag", c.Tag)
			}
			mode := s.Mode
			if mode == "" {
				mode = domain.DefaultStyleMode
			}
			m.Styles = append(m.Styles, domain.Style{ModeName: mode, Text: text})
		}

		modules = append(modules, m)
	}

	return modules, nil
}

func readFile(root, path string) (string, error) {
	full := domain.ResolvePath(root, path)
	data, err := os.ReadFile(full) //nolint:gosec // path comes from the project configuration
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrComponentReadFailed.Error()), "path", full)
	}
	return string(data), nil
}
