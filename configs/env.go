package configs

import (
	"path/filepath"

	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
	ConfigDir       string
}

// LoadEnv reads the process environment. CONTEXT_PATH overrides app.server.context-path.
func LoadEnv() *EnvConfig {
	v := viper.New()
	v.AutomaticEnv()

	return &EnvConfig{
		ApplicationName: getStringOrDefault(v, "APPLICATION_NAME", "solar-map"),
		ContextPath:     v.GetString("CONTEXT_PATH"),
		ConfigDir:       getStringOrDefault(v, "CONFIG_DIR", "configs"),
	}
}

// ApplicationFile is the properties file inside ConfigDir
func (e *EnvConfig) ApplicationFile() string {
	return filepath.Join(e.ConfigDir, "application.yml")
}

// MessagesFile is the message catalog inside ConfigDir
func (e *EnvConfig) MessagesFile() string {
	return filepath.Join(e.ConfigDir, "messages.yml")
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
