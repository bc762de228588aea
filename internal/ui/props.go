package ui

import (
	"fmt"
	"strconv"
	"strings"

	"voxview/internal/panel"
)

// PropBag is a generic ordered property holder. It backs panel-level
// properties for every view kind (including plugin-registered kinds, which
// have no Go struct of their own).
type PropBag struct {
	names []string
	vals  map[string]string

	// OnSet, when non-nil, runs after each successful DeserializeProperty.
	// View panels use it to couple panel properties to their aux object
	// (e.g. a layout change resets the scene zoom).
	OnSet func(name, value string)
}

// NewPropBag creates a bag for the given property names, seeded from the
// type's defaults.
func NewPropBag(t *panel.Type, names []string) *PropBag {
	b := &PropBag{vals: make(map[string]string, len(names))}
	for _, name := range names {
		b.names = append(b.names, name)
		b.vals[name] = t.Default(name)
	}
	return b
}

// Names returns the property names in declaration order.
func (b *PropBag) Names() []string { return b.names }

// Get returns the current value for name, or "".
func (b *PropBag) Get(name string) string { return b.vals[name] }

// SerializeProperty implements panel.PropertyHolder.
func (b *PropBag) SerializeProperty(name string) (string, error) {
	v, ok := b.vals[name]
	if !ok {
		return "", fmt.Errorf("unknown property %q", name)
	}
	return v, nil
}

// DeserializeProperty implements panel.PropertyHolder.
func (b *PropBag) DeserializeProperty(name, value string) error {
	if _, ok := b.vals[name]; !ok {
		return fmt.Errorf("unknown property %q", name)
	}
	b.vals[name] = value
	if b.OnSet != nil {
		b.OnSet(name, value)
	}
	return nil
}

// SceneOpts holds display options for slice-based views (ortho, lightbox).
// It supports the union of both kinds' property names; the serialized subset
// comes from the type's AuxProps list.
type SceneOpts struct {
	Zoom         int
	ShowXCanvas  bool
	ShowYCanvas  bool
	ShowZCanvas  bool
	SliceSpacing float64
	ZMin, ZMax   float64

	defaultZoom int
}

// NewSceneOpts creates scene options seeded from the type's defaults.
func NewSceneOpts(t *panel.Type) (*SceneOpts, error) {
	s := &SceneOpts{}
	for _, name := range t.AuxProps {
		if err := s.DeserializeProperty(name, t.Default(name)); err != nil {
			return nil, fmt.Errorf("seed %s.%s: %w", t.Name, name, err)
		}
	}
	s.defaultZoom = s.Zoom
	return s, nil
}

// ResetZoom restores the zoom to the kind's default. Called when the hosting
// panel's layout mode changes.
func (s *SceneOpts) ResetZoom() { s.Zoom = s.defaultZoom }

// SerializeProperty implements panel.PropertyHolder.
func (s *SceneOpts) SerializeProperty(name string) (string, error) {
	switch name {
	case "zoom":
		return strconv.Itoa(s.Zoom), nil
	case "showXCanvas":
		return strconv.FormatBool(s.ShowXCanvas), nil
	case "showYCanvas":
		return strconv.FormatBool(s.ShowYCanvas), nil
	case "showZCanvas":
		return strconv.FormatBool(s.ShowZCanvas), nil
	case "sliceSpacing":
		return strconv.FormatFloat(s.SliceSpacing, 'g', -1, 64), nil
	case "zrange":
		return fmt.Sprintf("%g:%g", s.ZMin, s.ZMax), nil
	}
	return "", fmt.Errorf("unknown scene property %q", name)
}

// DeserializeProperty implements panel.PropertyHolder.
func (s *SceneOpts) DeserializeProperty(name, value string) error {
	switch name {
	case "zoom":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("zoom: %w", err)
		}
		s.Zoom = n
	case "showXCanvas", "showYCanvas", "showZCanvas":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		switch name {
		case "showXCanvas":
			s.ShowXCanvas = v
		case "showYCanvas":
			s.ShowYCanvas = v
		case "showZCanvas":
			s.ShowZCanvas = v
		}
	case "sliceSpacing":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("sliceSpacing: %w", err)
		}
		s.SliceSpacing = v
	case "zrange":
		lo, hi, ok := strings.Cut(value, ":")
		if !ok {
			return fmt.Errorf("zrange: want lo:hi, got %q", value)
		}
		zmin, err := strconv.ParseFloat(lo, 64)
		if err != nil {
			return fmt.Errorf("zrange: %w", err)
		}
		zmax, err := strconv.ParseFloat(hi, 64)
		if err != nil {
			return fmt.Errorf("zrange: %w", err)
		}
		s.ZMin, s.ZMax = zmin, zmax
	default:
		return fmt.Errorf("unknown scene property %q", name)
	}
	return nil
}

// CanvasOpts holds axis options for plotting views (time series, histogram).
type CanvasOpts struct {
	XLabel, YLabel string
	Legend         bool
}

// NewCanvasOpts creates canvas options seeded from the type's defaults.
func NewCanvasOpts(t *panel.Type) (*CanvasOpts, error) {
	c := &CanvasOpts{}
	for _, name := range t.AuxProps {
		if err := c.DeserializeProperty(name, t.Default(name)); err != nil {
			return nil, fmt.Errorf("seed %s.%s: %w", t.Name, name, err)
		}
	}
	return c, nil
}

// SerializeProperty implements panel.PropertyHolder.
func (c *CanvasOpts) SerializeProperty(name string) (string, error) {
	switch name {
	case "xlabel":
		return c.XLabel, nil
	case "ylabel":
		return c.YLabel, nil
	case "legend":
		return strconv.FormatBool(c.Legend), nil
	}
	return "", fmt.Errorf("unknown canvas property %q", name)
}

// DeserializeProperty implements panel.PropertyHolder.
func (c *CanvasOpts) DeserializeProperty(name, value string) error {
	switch name {
	case "xlabel":
		c.XLabel = value
	case "ylabel":
		c.YLabel = value
	case "legend":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("legend: %w", err)
		}
		c.Legend = v
	default:
		return fmt.Errorf("unknown canvas property %q", name)
	}
	return nil
}
