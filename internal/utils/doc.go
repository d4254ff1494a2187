// Package utils exposes reusable helpers consumed by multiple commands.
//
// ConfigurationLoader layers embedded defaults, an optional configuration
// file, and GITGLANCE_ environment variables through Viper. LoggerFactory
// builds the zap loggers shared by every command.
package utils
