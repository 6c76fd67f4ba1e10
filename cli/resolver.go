package cli

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/brief/pkg"
)

// resolve is a [kong.ConfigurationLoader] that reads YAML configuration
// files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// The document is a flat mapping from flag name to value:
//
//	log-level: debug
//	log-format: json
//	log-pretty: false
//	include:
//	  - ~/scripts
//
// Flag names with hyphens may also be written with underscores
// (e.g., "log_level"). Command-line flags override config file values.
func resolve(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pkg.ErrConfigFile.Wrap(err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return config{}, nil
	}

	var values map[string]any

	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, pkg.ErrConfigFile.Wrap(err)
	}

	c := make(config, len(values))
	for key, val := range values {
		c[key] = scalar(val)
	}

	return c, nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already decoded successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// scalar converts decoded YAML numbers to strings, since Kong parses flag
// values from text. Sequences are converted element-wise.
func scalar(val any) any {
	switch v := val.(type) {
	case uint64:
		return strconv.FormatUint(v, 10)

	case int64:
		return strconv.FormatInt(v, 10)

	case int:
		return strconv.Itoa(v)

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = scalar(e)
		}

		return out

	case bool, string, nil:
		return v

	default:
		return fmt.Sprint(v)
	}
}
