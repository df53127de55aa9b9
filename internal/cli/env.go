package cli

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvFileOverrideVar names a .env file that wins over the --env flag.
const EnvFileOverrideVar = "TRANSLATEGW_ENV_FILE"

// EnvLoader loads a .env file selected by flag or environment.
type EnvLoader struct {
	value       *string
	defaultPath string
}

// AddEnvFlag registers an --env flag and returns an EnvLoader.
func AddEnvFlag(flags *flag.FlagSet, defaultPath, description string) *EnvLoader {
	if flags == nil {
		flags = flag.CommandLine
	}
	if defaultPath == "" {
		defaultPath = ".env"
	}
	if description == "" {
		description = "Path to the .env file"
	}

	value := flags.String("env", defaultPath, description)
	return &EnvLoader{
		value:       value,
		defaultPath: defaultPath,
	}
}

// Load overloads variables from the selected file and returns its path.
// A missing default file is not an error: deployments usually pass real
// environment variables. A missing file that was asked for explicitly is.
func (l *EnvLoader) Load() (string, error) {
	if l == nil {
		return "", fmt.Errorf("env loader is nil")
	}

	if custom := strings.TrimSpace(os.Getenv(EnvFileOverrideVar)); custom != "" {
		if err := godotenv.Overload(custom); err != nil {
			return "", fmt.Errorf("load %s=%s: %w", EnvFileOverrideVar, custom, err)
		}
		return custom, nil
	}

	requested := ""
	if l.value != nil {
		requested = strings.TrimSpace(*l.value)
	}
	if requested == "" {
		requested = l.defaultPath
	}

	err := godotenv.Overload(requested)
	switch {
	case err == nil:
		return requested, nil
	case errors.Is(err, fs.ErrNotExist) && requested == l.defaultPath:
		return "", nil
	default:
		return "", fmt.Errorf("load env file %s: %w", requested, err)
	}
}
