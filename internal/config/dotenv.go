package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// DotEnvPath returns the absolute path to the helper's dotenv file
// (~/.mysh/.env).
func DotEnvPath() (string, error) {
	dir, err := MyshDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".env"), nil
}

// LoadDotEnv reads ~/.mysh/.env and returns key/value pairs.
//
// Parsing rules:
// - Lines starting with '#' are ignored.
// - Empty lines are ignored.
// - Lines must be of form KEY=VALUE.
// - Whitespace around KEY is trimmed.
// - VALUE is taken as-is (no quote parsing).
func LoadDotEnv() (map[string]string, error) {
	p, err := DotEnvPath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("cannot open dotenv file %s: %w", p, err)
	}
	defer f.Close()

	out := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i := strings.Index(line, "=")
		if i <= 0 {
			continue
		}
		k := strings.TrimSpace(line[:i])
		v := line[i+1:]
		if k == "" {
			continue
		}
		out[k] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read dotenv file %s: %w", p, err)
	}
	return out, nil
}

// EnsureDotEnvTemplate creates ~/.mysh/.env if it does not already exist.
//
// The template lists the recognized keys with empty values so users can fill
// in a credential when they want LLM-backed suggestions. Creation is guarded
// by a file lock: the shell may spawn several helper processes at once and
// only one of them should write the template.
func EnsureDotEnvTemplate() error {
	p, err := DotEnvPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	l := flock.New(p + ".lock")
	deadline := time.Now().Add(2 * time.Second)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return fmt.Errorf("cannot acquire dotenv lock: %w", err)
		}
		if locked {
			break
		}
		if time.Now().After(deadline) {
			// Another process is writing the template; treat as done.
			return nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	defer func() { _ = l.Unlock() }()

	if _, err := os.Stat(p); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("cannot stat dotenv file %s: %w", p, err)
	}

	body := "" +
		EnvAPIKey + "=\n" +
		EnvModel + "=\n" +
		EnvCatalogCommand + "=\n"

	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		return fmt.Errorf("cannot write dotenv template %s: %w", p, err)
	}
	return nil
}
