package config

// AreaConfig is one area's ingestion configuration, loaded from a yaml file
// in the config directory.
type AreaConfig struct {
	Area     AreaInfo     `yaml:"area"`
	Settings AreaSettings `yaml:"settings"`
}

// AreaInfo names the broadcast area a config file belongs to
type AreaInfo struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// AreaSettings controls which of the area's stations get ingested
type AreaSettings struct {
	Enabled      bool     `yaml:"enabled"`
	Stations     []string `yaml:"stations"`      // allow-list; empty means every station in the payload
	SkipStations []string `yaml:"skip_stations"` // permanently excluded station ids
}
