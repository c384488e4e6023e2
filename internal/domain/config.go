package domain

// Config represents the Marina configuration assembled from defaults,
// marina.yaml and the environment.
type Config struct {
	Inventory InventoryConfig
	Display   DisplayConfig
	Paths     PathsConfig
	Debug     bool
}

type InventoryConfig struct {
	// Capacity is the maximum number of boats; <= 0 means unbounded.
	Capacity int
	// DataFile is the delimited inventory file, relative to the workspace root
	// unless absolute.
	DataFile string
}

type DisplayConfig struct {
	// ListFormat is the default output of `marina list`: pretty, csv or json.
	ListFormat string
}

type PathsConfig struct {
	LogsDir string
}

// WorkspaceSpec describes where a workspace is initialized.
type WorkspaceSpec struct {
	Root string
}

// DefaultConfig provides sane defaults if marina.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Inventory: InventoryConfig{
			Capacity: DefaultCapacity,
			DataFile: "BoatData.csv",
		},
		Display: DisplayConfig{ListFormat: "pretty"},
		Paths:   PathsConfig{LogsDir: ".marina/logs"},
	}
}
