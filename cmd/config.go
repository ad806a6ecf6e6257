package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Raj-Mandhyan/EduGenie3/internal/lesson"
)

const (
	envPrefix = "EDUGENIE"

	keyEndpoint = "endpoint"
	keyTimeout  = "timeout"
	keyLogFile  = "log-file"
	keyLogMode  = "log-mode"
)

// settings is the resolved configuration: flag, then EDUGENIE_* env, then default.
type settings struct {
	Endpoint string
	Timeout  time.Duration
	LogFile  string
	LogMode  string
}

func (s settings) clientConfig() lesson.Config {
	return lesson.Config{Endpoint: s.Endpoint, Timeout: s.Timeout}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyEndpoint, lesson.DefaultEndpoint)
	v.SetDefault(keyTimeout, time.Duration(0))
	v.SetDefault(keyLogMode, "dev")
	return v
}

func loadSettings(cmd *cobra.Command) (settings, error) {
	v := newViper()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return settings{}, fmt.Errorf("bind flags: %w", err)
	}

	s := settings{
		Endpoint: strings.TrimSpace(v.GetString(keyEndpoint)),
		Timeout:  v.GetDuration(keyTimeout),
		LogFile:  v.GetString(keyLogFile),
		LogMode:  v.GetString(keyLogMode),
	}
	if s.Timeout < 0 {
		return settings{}, fmt.Errorf("invalid %s %s: must not be negative", keyTimeout, s.Timeout)
	}
	switch s.LogMode {
	case "dev", "prod":
	default:
		return settings{}, fmt.Errorf("invalid %s %q: want dev or prod", keyLogMode, s.LogMode)
	}
	return s, nil
}
