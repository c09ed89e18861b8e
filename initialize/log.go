package initialize

import (
	"os"

	"notedeck/global"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// SetupLogger configures the console logger and stores it in global.Logger.
// The logger itself is never replaced afterwards; the level is filtered
// through zerolog's global level so it can change while requests are logging.
func SetupLogger(level string) {
	if !applyLogLevel(level) {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	global.Logger = log.Output(cw)
}

// applyLogLevel parses and installs a level atomically. Returns false when
// the string is not a level zerolog knows.
func applyLogLevel(level string) bool {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return false
	}
	zerolog.SetGlobalLevel(lvl)
	return true
}

// WatchLogLevel re-reads log.level whenever the config file changes, so the
// level can be turned up on a running process without a restart.
func WatchLogLevel(path string) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		level := v.GetString("log.level")
		if !applyLogLevel(level) {
			global.Logger.Warn().Str("level", level).Msg("ignoring invalid log level")
			return
		}
		global.Logger.Info().Str("file", e.Name).Str("level", level).Msg("log level reloaded")
	})
	v.WatchConfig()
}
