package adapter

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	m "github.com/mouse-blink/envboot/internal/model"
)

// DotEnvFile is the optional environment file read from the project root.
const DotEnvFile = ".env"

// Environment is a read-only view of the variables a run is allowed to see.
type Environment interface {
	// Getenv returns the value of key, or "" when unset.
	Getenv(key string) string

	// Environ returns all variables as sorted KEY=value pairs.
	Environ() []string
}

// MapEnvironment is an Environment backed by a map.
type MapEnvironment map[string]string

// Getenv returns the value of key.
func (e MapEnvironment) Getenv(key string) string { return e[key] }

// Environ returns the variables as sorted KEY=value pairs.
func (e MapEnvironment) Environ() []string {
	out := make([]string, 0, len(e))
	for k, v := range e {
		out = append(out, k+"="+v)
	}

	sort.Strings(out)

	return out
}

// With returns a copy of e with the given variables set.
func (e MapEnvironment) With(vars map[string]string) MapEnvironment {
	out := make(MapEnvironment, len(e)+len(vars))
	for k, v := range e {
		out[k] = v
	}

	for k, v := range vars {
		out[k] = v
	}

	return out
}

// EnvironmentFromPairs builds a MapEnvironment from KEY=value pairs, as
// returned by os.Environ. Later pairs win.
func EnvironmentFromPairs(pairs []string) MapEnvironment {
	env := make(MapEnvironment, len(pairs))

	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}

		env[k] = v
	}

	return env
}

// LoadEnvironment returns the process environment layered over the .env file
// found in root, if any. Process variables win, matching godotenv.Load, but
// the process environment itself is never modified.
func LoadEnvironment(root m.Path, processEnv []string) (MapEnvironment, error) {
	env := MapEnvironment{}

	dotenv, err := godotenv.Read(filepath.Join(string(root), DotEnvFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	for k, v := range dotenv {
		env[k] = v
	}

	for k, v := range EnvironmentFromPairs(processEnv) {
		env[k] = v
	}

	return env, nil
}

// LoadOSEnvironment is LoadEnvironment applied to os.Environ.
func LoadOSEnvironment(root m.Path) (Environment, error) {
	return LoadEnvironment(root, os.Environ())
}
