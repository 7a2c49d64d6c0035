package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderInProcess = "inprocess"
	PubSubProviderLocal     = "local"
	PubSubProviderGoogle    = "google"
)
