package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	DBPath  string `long:"db-path" description:"Path to the SQLite database file"`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// InitCommand — create the database file and schema.
type InitCommand struct {
	globals *GlobalFlags
	version string
}

// RecordCommand — append one event to the analytics log.
type RecordCommand struct {
	AppID     string `long:"app-id" description:"Client identity (required)"`
	EventType string `long:"event-type" description:"Event type tag (required)"`
	AppVer    string `long:"app-version" description:"Client version string (required)"`
	Platform  string `long:"platform" description:"Client platform (required)"`
	Locale    string `long:"locale" description:"Client locale"`
	Metadata  string `long:"metadata" description:"Metadata as inline JSON object"`

	globals *GlobalFlags
	version string
}

// StatsCommand — show today/week/month usage and distributions.
type StatsCommand struct {
	globals *GlobalFlags
	version string
}

// DailyCommand — show materialized daily active counts.
type DailyCommand struct {
	Days int `long:"days" description:"Window size in days" default:"30"`

	globals *GlobalFlags
	version string
}

// OptimizationsCommand — count completed optimizations per day.
type OptimizationsCommand struct {
	Days int `long:"days" description:"Window size in days" default:"30"`

	globals *GlobalFlags
	version string
}

// CleanupCommand — delete raw events past the retention horizon.
type CleanupCommand struct {
	globals *GlobalFlags
	version string
}

// ServeCommand — run the analytics HTTP server.
type ServeCommand struct {
	Host string `long:"host" description:"Override listen host"`
	Port int    `long:"port" description:"Override listen port"`

	globals *GlobalFlags
	version string
}
