package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the stats output.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string
)

// Sentinel values substituted for absent or empty scalar columns.
const (
	SentinelUnknown  = "unknown"
	SentinelNone     = "none"
	SentinelEnabled  = "enabled"
	SentinelDisabled = "disabled"
)

// TrueLiteral is the only raw value that flips a boolean column to
// "enabled". The match is exact and case-sensitive; "true", "TRUE" and
// garbage all stay "disabled".
const TrueLiteral = "True"

// Source column names of the telemetry export. Multi-select columns use
// the dotted index convention (e.g. addons.0 through addons.5).
const (
	ColCLIVersion     = "cli_version"
	ColNodeVersion    = "node_version"
	ColPlatform       = "platform"
	ColBackend        = "backend"
	ColDatabase       = "database"
	ColORM            = "orm"
	ColDBSetup        = "db_setup"
	ColAPI            = "api"
	ColPackageManager = "package_manager"
	ColRuntime        = "runtime"
	ColAuth           = "auth"
	ColGit            = "git"
	ColInstall        = "install"
	ColFrontend       = "frontend"
	ColExamples       = "examples"
	ColAddons         = "addons"
)

// TimestampColumnHint locates the event time column: the first header whose
// name contains this substring is used. The export prefixes it differently
// between versions, so an exact name cannot be relied on.
const TimestampColumnHint = "timestamp"

// Slot counts for the indexed multi-select columns.
const (
	FrontendSlots = 2
	ExamplesSlots = 2
	AddonSlots    = 6
)

// ScalarDefaults is the single per-column default table enforcing the
// normalization contract. Every scalar lookup goes through it; literals
// must not be scattered at call sites.
var ScalarDefaults = map[string]string{
	ColCLIVersion:     SentinelUnknown,
	ColNodeVersion:    SentinelUnknown,
	ColPlatform:       SentinelUnknown,
	ColBackend:        SentinelNone,
	ColDatabase:       SentinelNone,
	ColORM:            SentinelNone,
	ColDBSetup:        SentinelNone,
	ColAPI:            SentinelNone,
	ColPackageManager: SentinelUnknown,
	ColRuntime:        SentinelUnknown,
}

// All stats output modes supported.
const (
	TableOut OutputMode = "table" // default
	CSVOut   OutputMode = "csv"
	JSONOut  OutputMode = "json"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid stats output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TableOut: {},
	CSVOut:   {},
	JSONOut:  {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
