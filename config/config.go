package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Server struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	Path   string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
}

type Search struct {
	CaseSensitive bool
}

type Log struct {
	Level string
}

type Config struct {
	Server Server
	DB     DB
	Search Search
	Log    Log
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 3001)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "notedeck.db")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "notedeck")
	v.SetDefault("search.case_sensitive", false)
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		Server: Server{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Path:   v.GetString("db.path"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
		},
		Search: Search{CaseSensitive: v.GetBool("search.case_sensitive")},
		Log:    Log{Level: v.GetString("log.level")},
	}
	return cfg, nil
}
