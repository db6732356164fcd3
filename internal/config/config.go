// Package config holds the settings shared by every frontend. Values come
// from defaults, an optional YAML file, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"bitlife/internal/core"
	"bitlife/internal/render"
	"bitlife/pkg/life"
)

const (
	DefaultWidth    = 128
	DefaultHeight   = 96
	DefaultCellSize = 5
	DefaultTicks    = 1
	DefaultSeed     = 42
	DefaultGPS      = 0
)

// Seed policy names.
const (
	SeedRandom = "random"
	SeedDead   = "dead"
)

// Renderer names.
const (
	RendererImmediate = "immediate"
	RendererInstanced = "instanced"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full application configuration.
type Config struct {
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	CellSize   int          `yaml:"cell_size"`
	Ticks      uint32       `yaml:"ticks"`
	Seed       int64        `yaml:"seed"`
	SeedPolicy string       `yaml:"seed_policy"`
	GPS        int          `yaml:"gps"`
	Renderer   string       `yaml:"renderer"`
	Colors     ColorsConfig `yaml:"colors"`
	Stamps     []string     `yaml:"stamps"`
}

// ColorsConfig holds hex colours, #rrggbb or #rrggbbaa.
type ColorsConfig struct {
	Alive string `yaml:"alive"`
	Dead  string `yaml:"dead"`
	Grid  string `yaml:"grid"`
}

// Stamp is a pattern placed on the universe at startup.
type Stamp struct {
	Pattern life.Pattern
	Row     int
	Col     int
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		CellSize:   DefaultCellSize,
		Ticks:      DefaultTicks,
		Seed:       DefaultSeed,
		SeedPolicy: SeedRandom,
		GPS:        DefaultGPS,
		Renderer:   RendererImmediate,
		Colors: ColorsConfig{
			Alive: "#000000",
			Dead:  "#ffffff",
			Grid:  "#cccccc",
		},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet. Flags left unset
// keep the values already in c.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "universe width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "universe height in cells")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell interior size in pixels")
	fs.Uint32Var(&c.Ticks, "ticks", c.Ticks, "generations per update")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random initialization")
	fs.StringVar(&c.SeedPolicy, "seed-policy", c.SeedPolicy, "initial state: random or dead")
	fs.IntVar(&c.GPS, "gps", c.GPS, "updates per second, 0 updates every frame")
	fs.StringVarP(&c.Renderer, "renderer", "r", c.Renderer, "renderer: immediate or instanced")
	fs.StringVar(&c.Colors.Alive, "alive-color", c.Colors.Alive, "live cell colour")
	fs.StringVar(&c.Colors.Dead, "dead-color", c.Colors.Dead, "dead cell colour")
	fs.StringVar(&c.Colors.Grid, "grid-color", c.Colors.Grid, "grid line colour")
	fs.StringArrayVar(&c.Stamps, "stamp", c.Stamps, "pattern to place at start, name@row,col (repeatable)")
}

// Merge reads the YAML file at path over c and then restores every flag in
// fs that was set explicitly, so the command line wins over the file.
func (c *Config) Merge(path string, fs *pflag.FlagSet) error {
	type setFlag struct {
		flag  *pflag.Flag
		value string
		slice []string
	}
	var set []setFlag
	fs.Visit(func(f *pflag.Flag) {
		sf := setFlag{flag: f, value: f.Value.String()}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			sf.slice = sv.GetSlice()
		}
		set = append(set, sf)
	})

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	for _, sf := range set {
		if sv, ok := sf.flag.Value.(pflag.SliceValue); ok {
			err = sv.Replace(sf.slice)
		} else {
			err = sf.flag.Value.Set(sf.value)
		}
		if err != nil {
			return fmt.Errorf("config: restore flag --%s: %w", sf.flag.Name, err)
		}
	}
	return nil
}

// FromMap populates a Config from flag-style key/value pairs. Keys use the
// YAML names. Unparseable values are ignored.
func FromMap(m map[string]string) *Config {
	c := DefaultConfig()
	if m == nil {
		return c
	}
	posInt := func(key string, dst *int) {
		if v, ok := m[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	posInt("width", &c.Width)
	posInt("height", &c.Height)
	posInt("cell_size", &c.CellSize)
	if v, ok := m["ticks"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed > 0 {
			c.Ticks = uint32(parsed)
		}
	}
	if v, ok := m["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := m["gps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.GPS = parsed
		}
	}
	if v, ok := m["seed_policy"]; ok {
		c.SeedPolicy = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := m["renderer"]; ok {
		c.Renderer = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := m["alive"]; ok {
		c.Colors.Alive = v
	}
	if v, ok := m["dead"]; ok {
		c.Colors.Dead = v
	}
	if v, ok := m["grid"]; ok {
		c.Colors.Grid = v
	}
	if v, ok := m["stamps"]; ok && strings.TrimSpace(v) != "" {
		c.Stamps = strings.Split(v, ";")
	}
	return c
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if !c.Size().Valid() {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalid, c.Width, c.Height)
	}
	if c.CellSize < 1 {
		return fmt.Errorf("%w: cell_size %d must be at least 1", ErrInvalid, c.CellSize)
	}
	if c.Ticks < 1 {
		return fmt.Errorf("%w: ticks must be at least 1", ErrInvalid)
	}
	if c.GPS < 0 {
		return fmt.Errorf("%w: gps %d is negative", ErrInvalid, c.GPS)
	}
	switch c.SeedPolicy {
	case SeedRandom, SeedDead:
	default:
		return fmt.Errorf("%w: seed_policy %q (want %s or %s)", ErrInvalid, c.SeedPolicy, SeedRandom, SeedDead)
	}
	switch c.Renderer {
	case RendererImmediate, RendererInstanced:
	default:
		return fmt.Errorf("%w: renderer %q (want %s or %s)", ErrInvalid, c.Renderer, RendererImmediate, RendererInstanced)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	if _, err := c.ParseStamps(); err != nil {
		return err
	}
	return nil
}

// Size returns the universe dimensions.
func (c *Config) Size() core.Size { return core.Size{W: c.Width, H: c.Height} }

// Policy converts the seed settings.
func (c *Config) Policy() life.SeedPolicy {
	if c.SeedPolicy == SeedDead {
		return life.AllDead()
	}
	return life.Random(c.Seed)
}

// Palette parses the configured colours.
func (c *Config) Palette() (render.Palette, error) {
	var pal render.Palette
	var err error
	if pal.Alive, err = render.ParseHexColor(c.Colors.Alive); err != nil {
		return render.Palette{}, fmt.Errorf("%w: alive colour: %v", ErrInvalid, err)
	}
	if pal.Dead, err = render.ParseHexColor(c.Colors.Dead); err != nil {
		return render.Palette{}, fmt.Errorf("%w: dead colour: %v", ErrInvalid, err)
	}
	if pal.Grid, err = render.ParseHexColor(c.Colors.Grid); err != nil {
		return render.Palette{}, fmt.Errorf("%w: grid colour: %v", ErrInvalid, err)
	}
	return pal, nil
}

// ParseStamps decodes the stamp list.
func (c *Config) ParseStamps() ([]Stamp, error) {
	out := make([]Stamp, 0, len(c.Stamps))
	for _, s := range c.Stamps {
		st, err := ParseStamp(s)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// ParseStamp decodes one "name@row,col" entry.
func ParseStamp(s string) (Stamp, error) {
	name, pos, ok := strings.Cut(strings.TrimSpace(s), "@")
	if !ok {
		return Stamp{}, fmt.Errorf("%w: stamp %q: want name@row,col", ErrInvalid, s)
	}
	kind, err := life.ParsePattern(name)
	if err != nil {
		return Stamp{}, fmt.Errorf("%w: stamp %q: %v", ErrInvalid, s, err)
	}
	rs, cs, ok := strings.Cut(pos, ",")
	if !ok {
		return Stamp{}, fmt.Errorf("%w: stamp %q: want name@row,col", ErrInvalid, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Stamp{}, fmt.Errorf("%w: stamp %q row: %v", ErrInvalid, s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return Stamp{}, fmt.Errorf("%w: stamp %q col: %v", ErrInvalid, s, err)
	}
	return Stamp{Pattern: kind, Row: row, Col: col}, nil
}

// NewEngine validates c and builds an engine with the configured ticks and
// stamps applied.
func (c *Config) NewEngine() (*life.Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	e, err := life.New(c.Width, c.Height, c.Policy())
	if err != nil {
		return nil, err
	}
	e.SetTicks(c.Ticks)
	stamps, _ := c.ParseStamps()
	for _, st := range stamps {
		e.StampPattern(st.Pattern, st.Row, st.Col)
	}
	return e, nil
}
