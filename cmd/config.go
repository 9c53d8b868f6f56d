/**************************************************************************************************
** Configuration and environment management for the photodater CLI.
** Handles logger configuration, environment variable loading, the optional YAML config
** file, and global configuration state. Precedence is flags, then env vars, then file.
**************************************************************************************************/

package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pcameron/photodater/pkg/utils"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Global configuration variables
var inputDir string
var outputDir string
var prefix string
var defaultEvent string
var pretend bool
var minCaptureTime string
var configFile string

/**************************************************************************************************
** fileConfig mirrors the global configuration in the optional YAML config file. Every
** field is overridable by the matching flag or env var.
**************************************************************************************************/
type fileConfig struct {
	InputDir       string `yaml:"input_dir"`
	OutputDir      string `yaml:"output_dir"`
	Prefix         string `yaml:"prefix"`
	DefaultEvent   string `yaml:"default_event"`
	Pretend        bool   `yaml:"pretend"`
	MinCaptureTime string `yaml:"min_capture_time"`
}

/**************************************************************************************************
** Configures the logger. Log level and format come from the LOG_LEVEL and LOG_FORMAT
** environment variables only; the YAML config file carries import settings, not logging
** settings.
**
** @return *logrus.Logger - Configured logger instance
**************************************************************************************************/
func configureLogger() *logrus.Logger {
	logger := logrus.New()

	// Set log level from environment variable
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if parsedLevel, err := logrus.ParseLevel(level); err == nil {
			logger.SetLevel(parsedLevel)
		} else {
			logger.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", level)
			logger.SetLevel(logrus.InfoLevel)
		}
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	// Set log format from environment variable
	if format := os.Getenv("LOG_FORMAT"); format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
			FullTimestamp:    false,
			TimestampFormat:  time.RFC3339,
		})
	}

	return logger
}

/**************************************************************************************************
** applyConfigFile loads the YAML config file and fills in every import setting that
** neither a flag nor an env var has already set, making the file the lowest rung of the
** flags > env > file precedence.
**
** @param logger - Logger for reporting unreadable or malformed config files
**************************************************************************************************/
func applyConfigFile(logger *logrus.Logger) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		logger.Fatalf("Failed to read config file %s: %v", configFile, err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Fatalf("Failed to parse config file %s: %v", configFile, err)
	}

	if inputDir == "" {
		inputDir = cfg.InputDir
	}
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	if prefix == "" {
		prefix = cfg.Prefix
	}
	if defaultEvent == "" {
		defaultEvent = cfg.DefaultEvent
	}
	if !pretend {
		pretend = cfg.Pretend
	}
	if minCaptureTime == "" {
		minCaptureTime = cfg.MinCaptureTime
	}
}

/**************************************************************************************************
** Loads the import configuration from flags, env variables and the optional YAML config
** file, in that precedence order. Validates the directory pair: planning into the
** directory being read would make a second run re-ingest its own output, so an identical
** input and output directory is fatal.
**
** @return *logrus.Logger - Configured logger instance
**************************************************************************************************/
func loadEnv() *logrus.Logger {
	_ = godotenv.Load()
	logger := configureLogger()
	if inputDir == "" {
		inputDir = os.Getenv("INPUT_DIR")
	}
	if outputDir == "" {
		outputDir = os.Getenv("OUTPUT_DIR")
	}
	if prefix == "" {
		prefix = os.Getenv("PREFIX")
	}
	if defaultEvent == "" {
		defaultEvent = os.Getenv("DEFAULT_EVENT")
	}
	if !pretend {
		pretend = os.Getenv("PRETEND") == "true"
	}
	if minCaptureTime == "" {
		minCaptureTime = os.Getenv("MIN_CAPTURE_TIME")
	}
	if configFile != "" {
		applyConfigFile(logger)
	}

	if inputDir == "" {
		logger.Fatal("INPUT_DIR is not set")
	}
	if outputDir == "" {
		logger.Fatal("OUTPUT_DIR is not set")
	}
	if inputDir == outputDir {
		logger.Fatal("Input directory cannot be the same as the output directory")
	}
	if pretend {
		logger.Info("PRETEND is set to true, no changes will be applied")
	}
	return logger
}

/**************************************************************************************************
** parseMinCaptureTime resolves the capture-time cutoff: the configured YYYY-MM-DD date
** when one is set, the built-in default otherwise.
**
** @param logger - Logger for reporting an unparseable value
** @return time.Time - The cutoff; candidates at or before it are discarded
**************************************************************************************************/
func parseMinCaptureTime(logger *logrus.Logger) time.Time {
	if minCaptureTime == "" {
		return utils.DefaultMinCaptureTime
	}
	t, err := time.ParseInLocation("2006-01-02", minCaptureTime, time.Local)
	if err != nil {
		logger.Fatalf("Invalid MIN_CAPTURE_TIME '%s', expected YYYY-MM-DD: %v", minCaptureTime, err)
	}
	return t
}
