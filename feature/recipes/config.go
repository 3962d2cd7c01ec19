package recipes

// Config selects where recipe definitions are loaded from.
type Config struct {
	// Source is one of dir, bucket, table.
	Source string `mapstructure:"source" default:"dir"`
	// Dir is the definition root for the dir source.
	Dir string `mapstructure:"dir" default:"./data/recipes"`
	// Prefix is the object key prefix for the bucket source.
	Prefix string `mapstructure:"prefix" default:"recipes/"`
	// Catalog is the material catalog file. Empty accepts every identity.
	Catalog string `mapstructure:"catalog" default:""`
	// AnvilMaterial is the falling block that triggers anvil recipes.
	AnvilMaterial string `mapstructure:"anvil_material" default:"anvil"`
	// Simulator exposes POST /simulate.
	Simulator bool `mapstructure:"simulator" default:"true"`
}

const (
	SourceDir    = "dir"
	SourceBucket = "bucket"
	SourceTable  = "table"
)

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceDir, SourceBucket, SourceTable:
		return true
	default:
		return false
	}
}
