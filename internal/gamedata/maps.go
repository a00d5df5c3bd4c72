package gamedata

// MapDef is one map layout as authored: rows of single-character cell codes.
type MapDef struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// MapsFile represents the structure of maps.yaml. Map order is play order.
type MapsFile struct {
	Maps []MapDef `yaml:"maps"`
}
