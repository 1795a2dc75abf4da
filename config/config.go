package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds pipeline settings derived from environment variables and
// an optional YAML/JSON config file.
type Config struct {
	InputPath    string
	DBPath       string
	Watch        bool
	Keywords     []string
	Report       ReportConfig
	StrictConfig bool
}

// ReportConfig captures renderer tuning.
type ReportConfig struct {
	LineWidth int
	BarWidth  int
}

type fileConfig struct {
	InputPath string           `json:"input_path" yaml:"input_path"`
	DBPath    string           `json:"db_path" yaml:"db_path"`
	Keywords  []string         `json:"keywords" yaml:"keywords"`
	Report    reportFileConfig `json:"report" yaml:"report"`
}

type reportFileConfig struct {
	LineWidth *int `json:"line_width" yaml:"line_width"`
	BarWidth  *int `json:"bar_width" yaml:"bar_width"`
}

const (
	defaultInputFile = "project_data.csv"
	defaultLineWidth = 70
	defaultBarWidth  = 30
	minLineWidth     = 40
	minInfoWidth     = 20
)

func defaultReportConfig() ReportConfig {
	return ReportConfig{LineWidth: defaultLineWidth, BarWidth: defaultBarWidth}
}

// Load reads configuration from environment variables, merges the optional
// config file, and applies sane defaults. DB archival stays disabled unless
// a path is configured.
func Load() (Config, error) {
	cfg := Config{StrictConfig: parseBoolEnv("STRICT_CONFIG")}

	configPath := getEnv("CONFIG_PATH", filepath.Join("config", "config.yaml"))
	fileCfg, fileErr := loadFileConfig(configPath)
	if fileErr != nil {
		if cfg.StrictConfig {
			return cfg, fmt.Errorf("config load failed (%s): %w", configPath, fileErr)
		}
		if !os.IsNotExist(fileErr) {
			log.Printf("config load failed (%s): %v (using defaults)", configPath, fileErr)
		}
	}

	cfg.InputPath = firstNonEmpty(os.Getenv("WORKLOG_PATH"), fileCfg.InputPath, defaultInputFile)
	cfg.DBPath = firstNonEmpty(os.Getenv("DB_PATH"), fileCfg.DBPath)
	cfg.Watch = parseBoolEnv("WATCH")
	cfg.Keywords = NegativeKeywords(fileCfg.Keywords)
	cfg.Report = applyReportOverrides(defaultReportConfig(), fileCfg.Report)

	if v, ok, err := parseIntEnv("REPORT_LINE_WIDTH"); err != nil {
		if cfg.StrictConfig {
			return cfg, fmt.Errorf("invalid REPORT_LINE_WIDTH: %w", err)
		}
		log.Printf("invalid REPORT_LINE_WIDTH: %v (using default)", err)
	} else if ok && v > 0 {
		cfg.Report.LineWidth = v
	}
	if v, ok, err := parseIntEnv("REPORT_BAR_WIDTH"); err != nil {
		if cfg.StrictConfig {
			return cfg, fmt.Errorf("invalid REPORT_BAR_WIDTH: %w", err)
		}
		log.Printf("invalid REPORT_BAR_WIDTH: %v (using default)", err)
	} else if ok && v > 0 {
		cfg.Report.BarWidth = v
	}

	if cfg.Report.LineWidth < minLineWidth {
		log.Printf("report line width %d too narrow, using default %d", cfg.Report.LineWidth, defaultLineWidth)
		cfg.Report.LineWidth = defaultLineWidth
	}
	if cfg.Report.BarWidth < 1 || cfg.Report.BarWidth > cfg.Report.LineWidth-minInfoWidth {
		log.Printf("report bar width %d out of range, using default %d", cfg.Report.BarWidth, defaultBarWidth)
		cfg.Report.BarWidth = defaultBarWidth
	}

	return cfg, nil
}

func applyReportOverrides(base ReportConfig, override reportFileConfig) ReportConfig {
	if override.LineWidth != nil && *override.LineWidth > 0 {
		base.LineWidth = *override.LineWidth
	}
	if override.BarWidth != nil && *override.BarWidth > 0 {
		base.BarWidth = *override.BarWidth
	}
	return base
}

func loadFileConfig(path string) (fileConfig, error) {
	var parsed fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return parsed, err
	}
	// JSON is a subset of YAML 1.2 but keep the explicit branch so JSON
	// syntax errors surface with json line/offset context.
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return parsed, json.Unmarshal(data, &parsed)
	}
	return parsed, yaml.Unmarshal(data, &parsed)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func parseBoolEnv(key string) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func parseIntEnv(key string) (int, bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}
