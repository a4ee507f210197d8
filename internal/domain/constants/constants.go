package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Persistence drivers
const (
	PersistenceDriverFirestore = "firestore"
	PersistenceDriverPostgres  = "postgres"
)

// Image host providers
const (
	ImageHostProviderImgBB = "imgbb"
	ImageHostProviderBlob  = "blob"
)

// Firestore collections
const (
	CollectionTenants  = "butcheries"
	CollectionProducts = "products"
	CollectionSales    = "sales"
	CollectionItems    = "items"
)
