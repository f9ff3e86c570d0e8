// Package config defines the application configuration structure and loads it
// from the environment at startup. Configuration is validated on load;
// absence of any required setting prevents the server from starting.
package config
