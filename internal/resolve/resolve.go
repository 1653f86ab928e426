// Package resolve is the option-resolution collaborator: it fills the
// option set collected from an action before any requirement is evaluated.
// Values come from CLI key=value pairs overlaid on TOML defaults;
// required-ness is enforced here, not in the evaluation pipeline.
package resolve

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"

	"reshape/internal/refactor"
)

// DefaultConfigPath is where per-project option defaults live.
const DefaultConfigPath = "reshape.toml"

// Config carries option defaults loaded from reshape.toml.
type Config struct {
	Options map[string]string `toml:"options"`
}

// LoadConfig parses a TOML config. A missing file yields an empty config;
// a malformed one is an error.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// Resolve visits every option exactly once: CLI pairs win over config
// defaults; options without a value are marked unset, unless they are
// required, which aborts resolution. CLI keys that no option declares are
// rejected so typos do not pass silently.
func Resolve(opts []refactor.Option, cfg Config, cli map[string]string) error {
	declared := make(map[string]bool, len(opts))
	for _, opt := range opts {
		declared[opt.Name()] = true
	}
	var unknown []string
	for key := range cli {
		if !declared[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown option %q for this action", unknown[0])
	}

	for _, opt := range opts {
		raw, ok := cli[opt.Name()]
		if !ok {
			raw, ok = cfg.Options[opt.Name()]
		}
		if !ok {
			if opt.Required() {
				return fmt.Errorf("option %q is required: %s", opt.Name(), opt.Description())
			}
			opt.MarkUnset()
			continue
		}
		if err := assign(opt, raw); err != nil {
			return err
		}
	}
	return nil
}

// assign parses raw according to the option's concrete value type.
func assign(opt refactor.Option, raw string) error {
	switch o := opt.(type) {
	case *refactor.TypedOption[string]:
		o.Resolve(raw)
	case *refactor.TypedOption[int]:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("option %q: expected an integer, got %q", opt.Name(), raw)
		}
		o.Resolve(n)
	case *refactor.TypedOption[bool]:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("option %q: expected a boolean, got %q", opt.Name(), raw)
		}
		o.Resolve(b)
	default:
		return fmt.Errorf("option %q has an unsupported value type", opt.Name())
	}
	return nil
}

// TypeName renders the value type of an option for listings.
func TypeName(opt refactor.Option) string {
	switch opt.(type) {
	case *refactor.TypedOption[string]:
		return "string"
	case *refactor.TypedOption[int]:
		return "int"
	case *refactor.TypedOption[bool]:
		return "bool"
	default:
		return "?"
	}
}
