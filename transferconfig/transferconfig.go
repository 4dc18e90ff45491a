package transferconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// GooglePhotosConfig defines the configuration specific to Google Photos.
type GooglePhotosConfig struct {
	ClientId     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURI  string `mapstructure:"redirect_uri"`
}

// TransferConfig defines the configuration for phototransfer.
type TransferConfig struct {
	// SourceRoot is the parent directory whose immediate subdirectories are
	// the transferable folders (e.g. a Takeout extraction).
	SourceRoot string `mapstructure:"source_root"`

	// StateDBPath overrides the location of the transfer state database.
	// Empty means the default location next to the config file.
	StateDBPath string `mapstructure:"state_db_path"`

	// LooseMediaPrefix marks folders whose contents go to the library
	// without a dedicated album. Matched case-insensitively as a prefix.
	LooseMediaPrefix string `mapstructure:"loose_media_prefix"`

	// BatchSize is the number of upload tokens committed per batch.
	BatchSize int `mapstructure:"batch_size"`

	GooglePhotos GooglePhotosConfig `mapstructure:"google_photos"`

	path string `mapstructure:"-"`
}

const (
	defaultLooseMediaPrefix = "Photos from"
	defaultBatchSize        = 10
)

func (c *GooglePhotosConfig) Validate() error {
	// Check that at least a base set of fields have values.
	if c.ClientId == "" || c.ClientSecret == "" {
		return fmt.Errorf("missing google photos client_id or client_secret")
	}
	if c.RedirectURI == "" {
		c.RedirectURI = "http://localhost:8080" // Default redirect URI
		fmt.Printf("Warning: google_photos.redirect_uri not set in config, using default: %s\n", c.RedirectURI)
	}
	return nil
}

func (c *TransferConfig) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive, got %d (%s)", c.BatchSize, c.path)
	}
	if c.LooseMediaPrefix == "" {
		return fmt.Errorf("loose_media_prefix must not be empty (%s)", c.path)
	}
	if err := c.GooglePhotos.Validate(); err != nil {
		return fmt.Errorf("invalid google_photos config (%s): %w", c.path, err)
	}
	return nil
}

// ConfigPath returns the path the config was loaded from.
func (c *TransferConfig) ConfigPath() string {
	return c.path
}

// StateDBFile returns the path to the transfer state database, resolving the
// default location next to the config file when state_db_path is not set.
func (c *TransferConfig) StateDBFile() string {
	if c.StateDBPath != "" {
		return c.StateDBPath
	}
	return filepath.Join(filepath.Dir(c.path), "transfer_state.db")
}

// DefaultConfigPath returns the default path for the phototransfer config file.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine user config dir: %w", err)
	}
	return filepath.Join(dir, "phototransfer", "config.toml"), nil
}

// getConfigPath determines where to read the config file from.
func getConfigPath(configPathFlag string) (string, error) {
	// Prefer user-specific config file path if specified.
	if configPathFlag != "" {
		return configPathFlag, nil
	}
	return DefaultConfigPath()
}

// LoadConfig reads the config file.
func LoadConfig(configPathFlag string) (TransferConfig, error) {
	path, err := getConfigPath(configPathFlag)
	if err != nil {
		return TransferConfig{}, err
	}
	viper.SetConfigFile(path)
	viper.SetConfigType("toml")

	if err := viper.ReadInConfig(); err != nil {
		return TransferConfig{}, fmt.Errorf("error reading (%s): %w", path, err)
	}
	config := TransferConfig{path: path}
	if err := viper.Unmarshal(&config); err != nil {
		return TransferConfig{}, fmt.Errorf("error unmarshaling (%s): %w", path, err)
	}
	if config.LooseMediaPrefix == "" {
		config.LooseMediaPrefix = defaultLooseMediaPrefix
	}
	if config.BatchSize == 0 {
		config.BatchSize = defaultBatchSize
	}
	return config, nil
}
