package utils

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation. Every knob is an
// explicit typed field; flags and the optional JSON file both populate
// the same struct.
type Config struct {
	Topology      string        `json:"topology"`
	Size          int           `json:"size"`
	Probability   float64       `json:"probability"`
	File          string        `json:"file"`
	Generations   int           `json:"generations"`
	PrintInterval int           `json:"print_interval"`
	FrameRate     time.Duration `json:"frame_rate"`
	Seed          int64         `json:"seed"`
	Listen        string        `json:"listen"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Topology:      "6",
		Size:          100,
		Probability:   0.5,
		Generations:   10,
		PrintInterval: 1,
		FrameRate:     150 * time.Millisecond,
		Seed:          42,
	}
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Topology, "topology", c.Topology, "neighbor topology: 8, 6 or 12")
	fs.IntVar(&c.Size, "size", c.Size, "side length of a random board")
	fs.Float64Var(&c.Probability, "probability", c.Probability, "live probability for a random board")
	fs.StringVar(&c.File, "file", c.File, "path to an initial board file (overrides random generation)")
	fs.IntVar(&c.Generations, "generations", c.Generations, "number of generations to run")
	fs.IntVar(&c.PrintInterval, "print-interval", c.PrintInterval, "render every Nth generation")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random board generation")
	fs.StringVar(&c.Listen, "listen", c.Listen, "address to serve the websocket viewer on (empty disables)")
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ValidationError collects one issue per invalid configuration field
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid config: unknown validation error"
	}
	if len(e.Issues) == 1 {
		return e.Issues[0]
	}
	out := "config validation errors:"
	for _, issue := range e.Issues {
		out += "\n  - " + issue
	}
	return out
}

func (e *ValidationError) Add(issue string) {
	e.Issues = append(e.Issues, issue)
}

func (e *ValidationError) HasIssues() bool {
	return len(e.Issues) > 0
}

// Validate checks every field and reports all problems at once rather
// than stopping at the first
func (c Config) Validate() error {
	err := &ValidationError{}

	switch c.Topology {
	case "8", "6", "12":
	default:
		err.Add(fmt.Sprintf("topology must be 8, 6 or 12, got %q", c.Topology))
	}
	if c.File == "" {
		if c.Size <= 0 {
			err.Add(fmt.Sprintf("size must be positive, got %d", c.Size))
		}
		if c.Probability < 0 || c.Probability > 1 {
			err.Add(fmt.Sprintf("probability must be within [0, 1], got %v", c.Probability))
		}
	}
	if c.Generations < 0 {
		err.Add(fmt.Sprintf("generations must be non-negative, got %d", c.Generations))
	}
	if c.PrintInterval <= 0 {
		err.Add(fmt.Sprintf("print-interval must be positive, got %d", c.PrintInterval))
	}
	if c.FrameRate < 0 {
		err.Add(fmt.Sprintf("frame-rate must be non-negative, got %v", c.FrameRate))
	}

	if err.HasIssues() {
		return err
	}
	return nil
}
