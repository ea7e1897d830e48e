// Package model defines the data structures used throughout the roster application.
package model

type Config struct {
	Prompt       string `toml:"prompt"`
	HistoryFile  string `toml:"history_file"`
	StoreType    string `toml:"store_type"`
	LogFolder    string `toml:"log_folder"`
	CommandLog   string `toml:"command_log"`
	ErrorLog     string `toml:"error_log"`
	InfoLog      string `toml:"info_log"`
	LogLevel     string `toml:"log_level"`
	PreserveCase bool   `toml:"preserve_case"`
}
