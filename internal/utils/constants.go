package utils

const (
	// ApplicationName is the command name and the configuration namespace.
	ApplicationName = "foldertree"
	// ConfigFileName is the configuration file looked up locally and globally.
	ConfigFileName = "config.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding global configuration.
	GlobalConfigDirectoryName = ".foldertree"
	// EnvironmentPrefix prefixes environment variables that override configuration.
	EnvironmentPrefix = "FOLDERTREE"

	// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %v"
	// ApplicationExecutionFailedMessage prefixes fatal command errors.
	ApplicationExecutionFailedMessage = "foldertree failed"
)
