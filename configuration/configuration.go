package configuration

type Configuration struct {
	HttpAddr     string `usage:"HTTP address"`
	Ontology     string `usage:"ontology definition file"`
	DynamicTypes bool   `usage:"register unknown types on first use"`
	Version      bool   `usage:"show version and exit"`
	ShowBanner   bool   `usage:"show big banner"`
	ShowConfig   bool   `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:     ":8080",
		DynamicTypes: true,
		ShowBanner:   true,
	}
}
