package remover

import "strings"

// Config is a single parsed invocation.
type Config struct {
	Directory   string
	Recursively bool
	Force       bool
}

// ParseArgs builds a Config from the raw command-line tokens, excluding the
// program name. Flags and the path may be interleaved in any order; only the
// first non-flag token is used as the path.
func ParseArgs(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, ErrInvalidArguments
	}

	cfg := &Config{}
	var flags []rune

	for _, token := range strings.Split(strings.Join(args, " "), " ") {
		if token == "" {
			continue
		}
		if strings.HasPrefix(token, "-") {
			flags = append(flags, []rune(token[1:])...)
			continue
		}
		if cfg.Directory == "" {
			cfg.Directory = token
		}
	}

	for _, flag := range flags {
		switch flag {
		case 'r':
			cfg.Recursively = true
		case 'f':
			cfg.Force = true
		}
	}

	if cfg.Directory == "" {
		return nil, ErrMissingDirectory
	}

	return cfg, nil
}

func (c *Config) Mode() Mode {
	return ResolveMode(c.Recursively, c.Force)
}
