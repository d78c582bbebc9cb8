package resource

import (
	"bytes"
	"log"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/spf13/viper"

	"forecast-api/configs"
)

var (
	mu         sync.RWMutex
	properties = viper.New()
	envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)
)

// init loads application properties from PROPERTIES_FILE_PATH, or from the embedded defaults
func init() {
	var err error
	if path := configs.Env.PropertiesFilePath; path != "" {
		err = Init(path)
	} else {
		err = Load(configs.ApplicationYAML)
	}
	if err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
}

// Init replaces the loaded properties with the YAML file at filepath.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}
	resolve(v)
	return nil
}

// Load replaces the loaded properties with the given YAML content.
func Load(content []byte) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return err
	}
	resolve(v)
	return nil
}

// resolve expands ${ENV:default} placeholders in every leaf and swaps v in
func resolve(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		if value, ok := v.Get(key).(string); ok {
			v.Set(key, resolveEnvVariable(value))
		}
	}

	mu.Lock()
	properties = v
	mu.Unlock()
}

// resolveEnvVariable returns the env value (or default) for a ${NAME:default} placeholder, otherwise value itself
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func current() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return properties
}

func Get(key string) any {
	return current().Get(key)
}

func GetString(key string) string {
	return current().GetString(key)
}

func GetBool(key string) bool {
	return current().GetBool(key)
}

func GetDuration(key string) time.Duration {
	return current().GetDuration(key)
}

func GetInt(key string) int {
	return current().GetInt(key)
}
