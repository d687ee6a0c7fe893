package dialect

// Builtin dialects. Only Oracle deviates from the ANSI terminator
// conventions; the rest are registered so configuration can name them.
var builtins = []*Dialect{
	{Name: "ansi"},
	{Name: "duckdb"},
	{Name: "postgres"},
	{Name: "snowflake"},
	{Name: "databricks"},
	{Name: "oracle", ExtraTerminators: []string{"/"}},
}

func init() {
	for _, d := range builtins {
		Register(d)
	}
}
