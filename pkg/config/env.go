package config

// EnvPrefix is passed to envconfig; individual fields carry explicit
// LUXE_-prefixed tags so the prefix only matters for untagged additions.
const EnvPrefix = "luxe"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv  = "LUXE_APP_ENV"
	EnvAppPort = "LUXE_APP_PORT"
)
