package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/git-todos/pkg/fs"
	"github.com/lerenn/git-todos/pkg/git"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=store.go -destination=mocks/store.gen.go -package=mocks

const (
	// FileName is the optional repository configuration file, at the repository root.
	FileName = ".git-todos.yaml"

	// GitPrefix is the git config section holding git-todos options.
	GitPrefix = "git-todos."
)

// Store loads and persists configuration for a repository.
type Store interface {
	// Load returns defaults overlaid with the repository file and then the local git config.
	Load(repoPath string) (Config, error)

	// Local returns only the options stored in the local git config.
	Local(repoPath string) (map[string]string, error)

	// Set persists an option in the local git config.
	Set(repoPath, key, value string) error

	// Unset removes an option from the local git config.
	Unset(repoPath, key string) error
}

type realStore struct {
	git git.Git
	fs  fs.FS
}

// NewStore creates a Store backed by git config and the repository file.
func NewStore(g git.Git, f fs.FS) Store {
	return &realStore{git: g, fs: f}
}

// Load returns defaults overlaid with the repository file and then the local git config.
func (s *realStore) Load(repoPath string) (Config, error) {
	conf := Defaults()

	root, err := s.git.Dir(repoPath, "..")
	if err != nil {
		return Config{}, err
	}

	fileValues, err := s.readFile(filepath.Join(root, FileName))
	if err != nil {
		return Config{}, err
	}
	for k, v := range fileValues {
		conf.merge(k, v)
	}

	local, err := s.Local(repoPath)
	if err != nil {
		return Config{}, err
	}
	for k, v := range local {
		conf.merge(k, v)
	}

	return conf, nil
}

// Local returns only the options stored in the local git config.
func (s *realStore) Local(repoPath string) (map[string]string, error) {
	entries, err := s.git.ConfigList(repoPath, GitPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to read git config: %w", err)
	}
	return entries, nil
}

// Set persists an option in the local git config.
func (s *realStore) Set(repoPath, key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return s.git.ConfigSet(repoPath, GitPrefix+key, value)
}

// Unset removes an option from the local git config.
func (s *realStore) Unset(repoPath, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return s.git.ConfigUnset(repoPath, GitPrefix+key)
}

func (s *realStore) readFile(path string) (map[string]string, error) {
	data, err := s.fs.ReadFileIfExists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return ParseYAML(data)
}

// ParseYAML flattens a YAML document into dotted keys.
// Nested maps become "a.b.c" keys and sequences become comma-separated values.
func ParseYAML(data []byte) (map[string]string, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	out := map[string]string{}
	flatten("", doc, out)
	return out, nil
}

func flatten(prefix string, node map[string]interface{}, out map[string]string) {
	for k, v := range node {
		key := prefix + k
		switch value := v.(type) {
		case map[string]interface{}:
			flatten(key+".", value, out)
		case []interface{}:
			items := make([]string, 0, len(value))
			for _, item := range value {
				items = append(items, fmt.Sprint(item))
			}
			out[key] = strings.Join(items, ",")
		case nil:
			out[key] = ""
		default:
			out[key] = fmt.Sprint(value)
		}
	}
}

func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, " \t\n=") || strings.HasPrefix(key, ".") || strings.HasSuffix(key, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
