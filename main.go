// @title Euros Fantasy API
// @version 1.0
// @description Backend API for the Euros token-allocation game and standings

// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token

// @securityDefinitions.basic PlayerAuth
package main

import (
	_ "github.com/jday1/euros/docs"

	"github.com/jday1/euros/api"
	"github.com/jday1/euros/logging"
	"github.com/spf13/viper"
)

func main() {
	logging.BoostrapLogger()

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	// Read config
	config := api.ReadConfig()

	// Start the service (inside the lambda)
	service := api.NewServer(config)
	service.Start()
}
