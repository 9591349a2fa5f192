package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the deck store lives on disk.
type Config interface {
	BasePath() string
}

// LoadConfig reads configuration from a .cram file (current directory or
// CRAM_CONFIG_PATH) and CRAM_* environment variables. The store path defaults
// to ~/.cram.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.cram.db")
	viper.SetConfigName(".cram") // .yaml is implicit
	viper.SetEnvPrefix("CRAM")
	viper.AutomaticEnv()

	if override := os.Getenv("CRAM_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
