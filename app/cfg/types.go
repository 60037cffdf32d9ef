package cfg

type Cfg struct {
	// Storage configuration
	DBPath string

	// Application configuration
	ConfigDir    string
	Port         string
	APIAccessKey string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
