// Package config loads foldertree configuration from files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/temirov/foldertree/internal/utils"
)

const (
	treeClipboardKey = "tree.clipboard"
	loggingLevelKey  = "logging.level"

	environmentKeySeparator = "_"
)

var environmentKeys = []string{treeClipboardKey, loggingLevelKey}

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds defaults for the tree command and its logger.
type ApplicationConfiguration struct {
	Tree    TreeConfiguration    `mapstructure:"tree"`
	Logging LoggingConfiguration `mapstructure:"logging"`
}

// TreeConfiguration defines options of the tree rendering run.
type TreeConfiguration struct {
	Clipboard *bool `mapstructure:"clipboard"`
}

// LoggingConfiguration controls the diagnostic channel.
type LoggingConfiguration struct {
	Level string `mapstructure:"level"`
}

// LoadApplicationConfiguration merges, in increasing precedence, the global file, the
// local or explicit file and FOLDERTREE_* environment variables. A source that fails to
// load is skipped: the returned configuration holds every source that did load and the
// error joins the failures.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	var merged ApplicationConfiguration
	var loadErrors []error

	if homeDirectory, err := os.UserHomeDir(); err == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath)
		if loadErr != nil {
			loadErrors = append(loadErrors, loadErr)
		} else {
			merged = merged.Merge(globalConfig)
		}
	}

	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			loadErrors = append(loadErrors, fmt.Errorf("determine working directory: %w", err))
		}
		workingDirectory = currentDirectory
	}
	if workingDirectory != "" || filepath.IsAbs(options.ExplicitFilePath) {
		localPath := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
		localConfig, loadErr := loadConfigurationFromPath(localPath)
		if loadErr != nil {
			loadErrors = append(loadErrors, loadErr)
		} else {
			merged = merged.Merge(localConfig)
		}
	}

	environmentConfig, environmentErr := loadConfigurationFromEnvironment()
	if environmentErr != nil {
		loadErrors = append(loadErrors, environmentErr)
	} else {
		merged = merged.Merge(environmentConfig)
	}
	return merged, errors.Join(loadErrors...)
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) string {
	if explicitPath == "" {
		return filepath.Join(workingDirectory, utils.ConfigFileName)
	}
	if filepath.IsAbs(explicitPath) {
		return explicitPath
	}
	return filepath.Join(workingDirectory, explicitPath)
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// loadConfigurationFromEnvironment reads FOLDERTREE_TREE_CLIPBOARD and FOLDERTREE_LOGGING_LEVEL.
func loadConfigurationFromEnvironment() (ApplicationConfiguration, error) {
	reader := viper.New()
	reader.SetEnvPrefix(utils.EnvironmentPrefix)
	reader.SetEnvKeyReplacer(strings.NewReplacer(".", environmentKeySeparator))
	for _, key := range environmentKeys {
		if bindErr := reader.BindEnv(key); bindErr != nil {
			return ApplicationConfiguration{}, fmt.Errorf("bind environment for %s: %w", key, bindErr)
		}
	}

	var config ApplicationConfiguration
	if reader.IsSet(treeClipboardKey) {
		rawValue := reader.GetString(treeClipboardKey)
		clipboardEnabled, parseErr := strconv.ParseBool(strings.TrimSpace(rawValue))
		if parseErr != nil {
			return ApplicationConfiguration{}, fmt.Errorf("parse %s value %q: %w", environmentVariableName(treeClipboardKey), rawValue, parseErr)
		}
		config.Tree.Clipboard = &clipboardEnabled
	}
	config.Logging.Level = strings.TrimSpace(reader.GetString(loggingLevelKey))
	return config, nil
}

func environmentVariableName(key string) string {
	return utils.EnvironmentPrefix + environmentKeySeparator + strings.ToUpper(strings.ReplaceAll(key, ".", environmentKeySeparator))
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	result.Tree = result.Tree.merge(override.Tree)
	result.Logging = result.Logging.merge(override.Logging)
	return result
}

func (config TreeConfiguration) merge(override TreeConfiguration) TreeConfiguration {
	result := config
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	return result
}

func (config LoggingConfiguration) merge(override LoggingConfiguration) LoggingConfiguration {
	result := config
	if override.Level != "" {
		result.Level = override.Level
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
