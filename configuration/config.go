// Package configuration builds block loggers from JSON documents.
package configuration

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/willibrandon/blocklog/render"
)

// LoggerConfiguration represents the JSON configuration for blocklog.
type LoggerConfiguration struct {
	Style      string              `json:"Style,omitempty"`
	TraceMode  string              `json:"TraceMode,omitempty"`
	Marker     string              `json:"Marker,omitempty"`
	TabWidth   int                 `json:"TabWidth,omitempty"`
	RootPrefix string              `json:"RootPrefix,omitempty"`
	TraceSkip  int                 `json:"TraceSkip,omitempty"`
	WriteTo    []SinkConfiguration `json:"WriteTo,omitempty"`
}

// SinkConfiguration represents a sink configuration.
type SinkConfiguration struct {
	Name string         `json:"Name"`
	Args map[string]any `json:"Args,omitempty"`
}

// Configuration is the root configuration object.
type Configuration struct {
	Blocklog LoggerConfiguration `json:"Blocklog"`
}

// LoadFromFile loads configuration from a JSON file.
func LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return LoadFromJSON(data)
}

// LoadFromJSON loads configuration from JSON data.
func LoadFromJSON(data []byte) (*Configuration, error) {
	var config Configuration
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	// Apply defaults
	if config.Blocklog.Style == "" {
		config.Blocklog.Style = "bracketed"
	}
	if config.Blocklog.TraceMode == "" {
		config.Blocklog.TraceMode = "sweep"
	}
	return &config, nil
}

// ParseStyle parses a container style name.
func ParseStyle(styleStr string) (render.Style, error) {
	switch strings.ToLower(styleStr) {
	case "bracketed", "brackets":
		return render.Bracketed, nil
	case "tree":
		return render.Tree, nil
	default:
		return render.Bracketed, fmt.Errorf("unknown container style: %s", styleStr)
	}
}

// GetString gets a string value from configuration args.
func GetString(args map[string]any, key string, defaultValue string) string {
	if v, ok := args[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return defaultValue
}

// GetInt gets an int value from configuration args.
func GetInt(args map[string]any, key string, defaultValue int) int {
	if v, ok := args[key]; ok {
		switch val := v.(type) {
		case float64:
			return int(val)
		case int:
			return val
		case string:
			var i int
			if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
				return i
			}
		}
	}
	return defaultValue
}

// GetBool gets a bool value from configuration args.
func GetBool(args map[string]any, key string, defaultValue bool) bool {
	if v, ok := args[key]; ok {
		switch val := v.(type) {
		case bool:
			return val
		case string:
			return strings.ToLower(val) == "true"
		}
	}
	return defaultValue
}
