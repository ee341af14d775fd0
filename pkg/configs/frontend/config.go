package frontend

// TrackerConfig is the configuration of the tracker API server.
type TrackerConfig struct {
	// ServerPort is the port the API server listens on.
	ServerPort string `yaml:"port"`

	// DBURI is the connection URI of the metadata database.
	DBURI string `yaml:"dburi"`

	// AdminTokenKey signs and verifies admin tokens (HS256).
	AdminTokenKey string `yaml:"adminTokenKey"`

	// SchemaRepository points at the database schema definitions.
	// Optional. When empty, schema version checking is disabled.
	SchemaRepository string `yaml:"schemaRepository"`
}
