package config

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// EncodingDefaults contains the conversion defaults applied when a
// request or CLI invocation does not override them.
type EncodingDefaults struct {
	// Dialect selects the GML dialect: "simple" or "3.2".
	Dialect string `yaml:"dialect" validate:"omitempty,oneof=simple 3.2"`
	// SrsName is the default coordinate reference system identifier.
	SrsName string `yaml:"srsName"`
	// SrsDimension annotates pos/posList elements; 0 omits it.
	SrsDimension int `yaml:"srsDimension" validate:"oneof=0 2 3"`
	// Version is the WFS transaction version attribute.
	Version string `yaml:"version"`
}

// LayerConfig describes one WFS feature type.
type LayerConfig struct {
	Name         string   `yaml:"name" validate:"required"`
	Ns           string   `yaml:"ns"`
	TypeName     string   `yaml:"typeName"`
	GeometryName string   `yaml:"geometryName"`
	Whitelist    []string `yaml:"whitelist"`
	SrsName      string   `yaml:"srsName"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server   ServerConfig     `yaml:"server"`
	Defaults EncodingDefaults `yaml:"defaults"`
	Layers   []LayerConfig    `yaml:"layers"`
	// Namespaces maps namespace prefixes to URIs, merged over the
	// built-in defaults at transaction time.
	Namespaces map[string]string `yaml:"namespaces"`
	// SchemaLocations maps namespace URIs to XSD locations.
	SchemaLocations map[string]string `yaml:"schemaLocations"`
}
