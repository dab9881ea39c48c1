package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory and the
// user config directory.
const FileName = ".testseq.yaml"

// AppConfig represents the contents of .testseq.yaml. Pointer and empty
// values mean "not set" so lower-priority sources can fill them in.
type AppConfig struct {
	Marker     string `yaml:"marker,omitempty"`
	RecordFile string `yaml:"record_file,omitempty"`
	NameKey    string `yaml:"name_key,omitempty"`
	Sort       string `yaml:"sort,omitempty"`
	Format     string `yaml:"format,omitempty"`
	Theme      string `yaml:"theme,omitempty"`
	Top        *int   `yaml:"top,omitempty"`
	NoColor    *bool  `yaml:"no_color,omitempty"`
	Quiet      *bool  `yaml:"quiet,omitempty"`
}

// LoadConfig reads the config file at path, or the first file found by
// getConfigPath when path is empty. A missing default file is not an error;
// an explicit path that does not exist is. The returned string is the file
// actually read, empty when none was.
func LoadConfig(path string, debug io.Writer) (*AppConfig, string, error) {
	if debug == nil {
		debug = io.Discard
	}

	explicit := path != ""
	if !explicit {
		path = getConfigPath()
	}
	if path == "" {
		fmt.Fprintln(debug, "[DEBUG LoadConfig] No "+FileName+" found, using defaults only.")
		return &AppConfig{}, "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &AppConfig{}, "", nil
		}
		return nil, "", fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := ValidateYAML(data); err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, "", fmt.Errorf("unmarshalling config file %s: %w", path, err)
	}
	fmt.Fprintf(debug, "[DEBUG LoadConfig] Loaded config from %s.\n", path)
	return &cfg, path, nil
}

// getConfigPath tries to find the config file.
// It checks the working directory first, then the user config directory.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	// An empty or root config dir is not a usable place to look.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "testseq", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
