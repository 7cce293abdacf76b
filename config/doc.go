// Package config provides configuration loading for the authorization
// service.
//
// Configuration is read from a YAML file and overlaid with environment
// variables via Viper; a .env file is loaded first when present so local
// development can override settings without exporting anything.
package config
