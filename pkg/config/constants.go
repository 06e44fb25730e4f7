package config

// EnvPrefix scopes every environment variable this service reads.
const EnvPrefix = "KALAKAAR"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv  = "KALAKAAR_APP_ENV"
	EnvAppPort = "KALAKAAR_APP_PORT"

	EnvDBDSN  = "KALAKAAR_DB_DSN"
	EnvDBHost = "KALAKAAR_DB_HOST"
	EnvDBUser = "KALAKAAR_DB_USER"
	EnvDBName = "KALAKAAR_DB_NAME"

	EnvRedisURL = "KALAKAAR_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
