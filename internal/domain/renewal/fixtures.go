package renewal

// Fixtures returns the tracked renewals.
func Fixtures() []Renewal {
	return []Renewal{
		{ID: "d1", Domain: "gloovup.com", Env: EnvProd, Type: TypeDomain, RenewDate: "2023-11-15", DaysLeft: 5, Provider: "GoDaddy", Cost: 15},
		{ID: "d2", Domain: "api.gloovup.com", Env: EnvProd, Type: TypeCertificate, RenewDate: "2023-11-20", DaysLeft: 10, Provider: "AWS ACM", Cost: 0},
		{ID: "d3", Domain: "staging.gloovup.io", Env: EnvStaging, Type: TypeHosting, RenewDate: "2023-12-05", DaysLeft: 25, Provider: "Vercel", Cost: 20},
		{ID: "d4", Domain: "dev.portal.net", Env: EnvDev, Type: TypeDomain, RenewDate: "2024-01-15", DaysLeft: 65, Provider: "Namecheap", Cost: 12},
		{ID: "d5", Domain: "legacy-app.com", Env: EnvProd, Type: TypeHosting, RenewDate: "2023-11-12", DaysLeft: 2, Provider: "DigitalOcean", Cost: 50},
		{ID: "d6", Domain: "gloov-internal.net", Env: EnvProd, Type: TypeCertificate, RenewDate: "2024-03-01", DaysLeft: 110, Provider: "LetsEncrypt", Cost: 0},
	}
}
