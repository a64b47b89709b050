package config

const EnvPrefix = "SHOPEASE"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	EnvAppEnv   = "SHOPEASE_APP_ENV"
	EnvPort     = "SHOPEASE_APP_PORT"
	EnvDBDriver = "SHOPEASE_DB_DRIVER"
	EnvDBDSN    = "SHOPEASE_DB_DSN"
	EnvDBHost   = "SHOPEASE_DB_HOST"
	EnvDBUser   = "SHOPEASE_DB_USER"
	EnvDBName   = "SHOPEASE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
