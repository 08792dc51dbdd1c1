package soap

// Config holds the Nucleo account credentials and endpoint settings.
// All values are required inputs to envelope construction; a missing value
// does not fail at load time but surfaces on the first call.
type Config struct {
	// BaseURL is the full URL of the Nucleo SOAP endpoint.
	BaseURL string `mapstructure:"base_url" default:""`
	// Username is the account user for the wsBasicQueryHeader block.
	Username string `mapstructure:"username" default:""`
	// Password is the account password.
	Password string `mapstructure:"password" default:""`
	// Company is the company identifier.
	Company string `mapstructure:"company" default:"0"`
	// WebService is the web-service identifier.
	WebService string `mapstructure:"web_service" default:"0"`
	// AuthenticatedToken is the seed token header value sent on the
	// authentication call itself (usually empty).
	AuthenticatedToken string `mapstructure:"authenticated_token" default:""`
	// StorageGroup is the storage-group identifier for the physical-stock feed.
	StorageGroup string `mapstructure:"storage_group" default:""`
	// RetryWaits is the comma-separated backoff policy, e.g. "1s,3s,5s".
	RetryWaits string `mapstructure:"retry_waits" default:"1s,3s,5s"`
}
