package api

import (
	"sync"
	"time"

	"github.com/jday1/euros/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
	GameConfig
}

type StorageConfig struct {
	TableNameTeams    string
	TableNameFixtures string
	TableNamePicks    string
	TableNamePlayers  string
	TableNameCodes    string
	FixturesBucket    string
	FixturesKey       string
}

type ServerConfig struct {
	Port int
}

type GameConfig struct {
	CutoffTime time.Time
	// CustomOrderings overrides the computed table order for groups the
	// points/GD/GF rules cannot separate, e.g. a three-way head-to-head.
	// Keyed by group name; viper lowercases map keys on read.
	CustomOrderings map[string][]string
}

// cutoffLayout matches the config file, e.g. "2024-06-14 12:00:00",
// interpreted in the tournament's local time zone.
const cutoffLayout = "2006-01-02 15:04:05"

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			TableNameTeams:    viper.GetString("storage.TableNameTeams"),
			TableNameFixtures: viper.GetString("storage.TableNameFixtures"),
			TableNamePicks:    viper.GetString("storage.TableNamePicks"),
			TableNamePlayers:  viper.GetString("storage.TableNamePlayers"),
			TableNameCodes:    viper.GetString("storage.TableNameCodes"),
			FixturesBucket:    viper.GetString("storage.FixturesBucket"),
			FixturesKey:       viper.GetString("storage.FixturesKey"),
		},
		ServerConfig: ServerConfig{
			Port: viper.GetInt("server.port"),
		},
		GameConfig: GameConfig{
			CutoffTime:      readCutoff(viper.GetString("game.CutoffTime")),
			CustomOrderings: viper.GetStringMapStringSlice("game.CustomOrderings"),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func readCutoff(raw string) time.Time {
	location, err := time.LoadLocation("Europe/London")
	if err != nil {
		logging.Log.Fatalf("failed to load cutoff time zone: %v", err)
	}

	cutoff, err := time.ParseInLocation(cutoffLayout, raw, location)
	if err != nil {
		logging.Log.Fatalf("invalid game.CutoffTime %q: %v", raw, err)
	}
	return cutoff
}
