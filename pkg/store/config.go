package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk settings store.
type Config interface {
	BasePath() string
}

// LoadConfig discovers the store path from a .daygrid config file or
// DAYGRID_* environment variables, defaulting to ~/.daygrid.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.daygrid.db")
	viper.SetConfigName(".daygrid") // .yaml is implicit
	viper.SetEnvPrefix("DAYGRID")
	viper.AutomaticEnv()

	if override := os.Getenv("DAYGRID_CONFIG_PATH"); override != "" {
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
