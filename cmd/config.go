package cmd

type Config struct {
	HTTPPort          string
	RateLimitRPS      string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	CarrierBaseURL    string
	CarrierTimeout    string
	ChannelBaseURL    string
	ChannelTimeout    string
	CatalogBaseURL    string
	CatalogTimeout    string
	CatalogCacheTTL   string
	ShipperLine1      string
	ShipperLine2      string
	ShipperCity       string
	ShipperRegion     string
	ShipperPostalCode string
	ShipperCountry    string
}
