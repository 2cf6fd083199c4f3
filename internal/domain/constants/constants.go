// Package constants holds provider names and other identifiers shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Alert store providers
const (
	StoreProviderMemory    = "memory"
	StoreProviderFirestore = "firestore"
	StoreProviderMongo     = "mongo"
)

// Position cache providers
const (
	CacheProviderMemory = "memory"
	CacheProviderRedis  = "redis"
)

// SMS providers
const (
	SMSProviderSNS  = "sns"
	SMSProviderMock = "mock"
)

// Geocoding providers
const (
	GeocodingProviderGoogle = "google"
	GeocodingProviderNone   = "none"
)

// Dispatch providers
const (
	DispatchProviderMock = "mock"
	DispatchProviderHTTP = "http"
)

// PushTopicPrefix prefixes the FCM topic an owner's devices subscribe to.
const PushTopicPrefix = "sos-alert-"
