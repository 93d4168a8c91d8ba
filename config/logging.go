package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const (
	maxLogSize  = 10 * 1024 * 1024 // 10MB
	maxLogFiles = 3                // Keep 3 backup files
	logFileName = "portfolio.log"
)

var (
	logFile  *os.File
	logMutex sync.Mutex
	logSize  int64
	logDir   string
)

// ConfigDir returns the application configuration directory, creating it
// if it does not exist yet.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".config", "portfolio")

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("error creating directory %s: %w", dir, err)
		}
	} else if err != nil {
		return "", fmt.Errorf("error checking directory %s: %w", dir, err)
	}

	return dir, nil
}

// LogFilePath returns the location of the application log file.
func LogFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFileName), nil
}

// InitLogging routes the standard logger to both stderr and a log file
// under the config directory. Rotation happens up front if a previous run
// left the file over the size cap.
// This should be called once during application startup.
func InitLogging() error {
	logMutex.Lock()
	defer logMutex.Unlock()

	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	logDir = dir
	logPath := filepath.Join(dir, logFileName)

	// Check if we need to rotate before opening
	if info, err := os.Stat(logPath); err == nil {
		logSize = info.Size()
		if logSize >= maxLogSize {
			if err := rotateLogs(); err != nil {
				return fmt.Errorf("failed to rotate logs: %w", err)
			}
			logSize = 0
		}
	}

	// Open log file in append mode
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	logFile = file
	log.SetOutput(io.MultiWriter(os.Stderr, file))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	return nil
}

// CloseLogging closes the log file handle and points the standard logger
// back at stderr.
func CloseLogging() {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logFile != nil {
		log.SetOutput(os.Stderr)
		logFile.Close()
		logFile = nil
	}
}

// rotateLogs performs log rotation
func rotateLogs() error {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}

	basePath := filepath.Join(logDir, logFileName)

	// Remove oldest backup (portfolio.log.3)
	oldestBackup := fmt.Sprintf("%s.%d", basePath, maxLogFiles)
	os.Remove(oldestBackup) // Ignore error if file doesn't exist

	// Rotate existing backups
	for i := maxLogFiles - 1; i >= 1; i-- {
		oldPath := fmt.Sprintf("%s.%d", basePath, i)
		newPath := fmt.Sprintf("%s.%d", basePath, i+1)
		os.Rename(oldPath, newPath) // Ignore error if source doesn't exist
	}

	// Move current log to .1
	if err := os.Rename(basePath, basePath+".1"); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
