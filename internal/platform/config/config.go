package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	fileName = "config.toml"

	DefaultListenAddr    = "127.0.0.1:4646"
	DefaultLogLevel      = "info"
	DefaultNotifyCommand = "notify-send"
	DefaultBrand         = "clickforcharity"
)

var defaultTargetSites = []string{
	"clickforcharity.net",
	"iris.to",
	"lightning.news",
	"google.com",
}

type Poll struct {
	SearchSeconds int `toml:"search_seconds"`
	SocialSeconds int `toml:"social_seconds"`
}

type Alarms struct {
	FetchTasksMinutes  int `toml:"fetch_tasks_minutes"`
	DailyReminderHours int `toml:"daily_reminder_hours"`
}

// File is the on-disk shape of config.toml.
type File struct {
	ListenAddr    string   `toml:"listen_addr"`
	LogLevel      string   `toml:"log_level"`
	NotifyCommand string   `toml:"notify_command"`
	Brand         string   `toml:"brand"`
	TargetSites   []string `toml:"target_sites"`
	Poll          Poll     `toml:"poll"`
	Alarms        Alarms   `toml:"alarms"`
}

type Config struct {
	DataDir     string
	DBPath      string
	LogPath     string
	CatalogPath string
	File
}

func (c Config) SearchPollInterval() time.Duration {
	return time.Duration(c.Poll.SearchSeconds) * time.Second
}

func (c Config) SocialPollInterval() time.Duration {
	return time.Duration(c.Poll.SocialSeconds) * time.Second
}

func (c Config) FetchTasksInterval() time.Duration {
	return time.Duration(c.Alarms.FetchTasksMinutes) * time.Minute
}

func (c Config) DailyReminderInterval() time.Duration {
	return time.Duration(c.Alarms.DailyReminderHours) * time.Hour
}

// DefaultDataDir resolves the per-user directory used when --data-dir is not set.
func DefaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return ".socialteam"
	}
	return filepath.Join(base, "socialteam")
}

// New loads (or initializes) config.toml under dataDir and applies environment overrides.
func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return Config{}, fmt.Errorf("create data dir: %w", err)
	}
	// A missing .env is the common case.
	_ = godotenv.Load(filepath.Join(dataDir, ".env"))

	file, err := LoadOrInit(filepath.Join(dataDir, fileName))
	if err != nil {
		return Config{}, err
	}
	applyEnv(&file)

	return Config{
		DataDir:     dataDir,
		DBPath:      filepath.Join(dataDir, "socialteam.db"),
		LogPath:     filepath.Join(dataDir, "socialteam.log"),
		CatalogPath: filepath.Join(dataDir, "tasks.yaml"),
		File:        file,
	}, nil
}

func LoadOrInit(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err == nil {
		var file File
		if err := toml.Unmarshal(b, &file); err != nil {
			return File{}, fmt.Errorf("decode %s: %w", path, err)
		}
		return Normalize(file), nil
	}
	if !os.IsNotExist(err) {
		return File{}, fmt.Errorf("read config: %w", err)
	}
	file := Normalize(File{})
	if err := writeAtomically(path, file); err != nil {
		return File{}, err
	}
	return file, nil
}

func Normalize(file File) File {
	file.ListenAddr = strings.TrimSpace(file.ListenAddr)
	if file.ListenAddr == "" {
		file.ListenAddr = DefaultListenAddr
	}
	file.LogLevel = strings.ToLower(strings.TrimSpace(file.LogLevel))
	if file.LogLevel == "" {
		file.LogLevel = DefaultLogLevel
	}
	file.NotifyCommand = strings.TrimSpace(file.NotifyCommand)
	if file.NotifyCommand == "" {
		file.NotifyCommand = DefaultNotifyCommand
	}
	file.Brand = strings.ToLower(strings.TrimSpace(file.Brand))
	if file.Brand == "" {
		file.Brand = DefaultBrand
	}
	if len(file.TargetSites) == 0 {
		file.TargetSites = append([]string(nil), defaultTargetSites...)
	}
	if file.Poll.SearchSeconds <= 0 {
		file.Poll.SearchSeconds = 5
	}
	if file.Poll.SocialSeconds <= 0 {
		file.Poll.SocialSeconds = 10
	}
	if file.Alarms.FetchTasksMinutes <= 0 {
		file.Alarms.FetchTasksMinutes = 60
	}
	if file.Alarms.DailyReminderHours <= 0 {
		file.Alarms.DailyReminderHours = 24
	}
	return file
}

func applyEnv(file *File) {
	if v := strings.TrimSpace(os.Getenv("SOCIALTEAM_LISTEN_ADDR")); v != "" {
		file.ListenAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("SOCIALTEAM_LOG_LEVEL")); v != "" {
		file.LogLevel = strings.ToLower(v)
	}
}

func writeAtomically(path string, file File) error {
	payload, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}
