// Package dialect describes the per-database-family lexical rules the
// tokenizer and parser consult while processing input: what characters
// start and continue an unquoted identifier, which character opens a
// delimited identifier, and which SQL variant a COLLATE suffix or
// type-length oddity should be attributed to.
package dialect

// DBType names a supported SQL dialect family.
type DBType int

const (
	// Generic accepts the broadest identifier charset and never
	// special-cases COLLATE wrapping. Used when no explicit dialect is
	// selected.
	Generic DBType = iota
	MySQL
	PostgreSQL
	MSSQL
	SQLite
	Snowflake
	Hive
	AnsiSQL
)

// String returns the dialect's canonical name.
func (d DBType) String() string {
	switch d {
	case MySQL:
		return "mysql"
	case PostgreSQL:
		return "postgresql"
	case MSSQL:
		return "mssql"
	case SQLite:
		return "sqlite"
	case Snowflake:
		return "snowflake"
	case Hive:
		return "hive"
	case AnsiSQL:
		return "ansisql"
	default:
		return "generic"
	}
}

// Dialect captures the lexical decisions that vary across SQL
// databases: what may start or continue a plain identifier, what
// character opens a delimited (quoted) identifier, and which concrete
// database family this is for behavior that isn't purely lexical (such
// as whether COLLATE may appear as a general expression postfix).
type Dialect interface {
	// IsIdentifierStart reports whether r may begin an unquoted
	// identifier.
	IsIdentifierStart(r rune) bool
	// IsIdentifierContinue reports whether r may continue an unquoted
	// identifier after the first character.
	IsIdentifierContinue(r rune) bool
	// IsDelimitedIdentifierStart reports whether r opens a delimited
	// (quoted) identifier, e.g. `"` for ANSI/PostgreSQL, "`" for MySQL,
	// "[" for SQL Server.
	IsDelimitedIdentifierStart(r rune) bool
	// DBType returns the concrete dialect family.
	DBType() DBType
}

func isASCIILetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// common is embedded by every concrete dialect to provide the default
// ANSI-ish identifier rule (letters, digits, underscore and `$`; letter
// or underscore to start) that most dialects share, overridden piecemeal
// where a dialect needs something wider (PostgreSQL's non-ASCII
// allowance) or narrower.
type common struct{}

func (common) IsIdentifierStart(r rune) bool {
	return isASCIILetter(r) || r == '_'
}

func (common) IsIdentifierContinue(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == '_' || r == '$'
}

func (common) IsDelimitedIdentifierStart(r rune) bool {
	return r == '"'
}

// genericDialect is the zero-value dialect used when the caller never
// selects one explicitly. It tolerates every delimited-identifier form
// seen across the supported dialects (double quotes, backticks,
// brackets) rather than picking one, matching the blended syntax
// support the rest of the parser already offers when no dialect is
// threaded through.
type genericDialect struct{ common }

func (genericDialect) IsDelimitedIdentifierStart(r rune) bool {
	return r == '"' || r == '`' || r == '['
}

func (genericDialect) DBType() DBType { return Generic }

type mysqlDialect struct{ common }

func (mysqlDialect) IsDelimitedIdentifierStart(r rune) bool { return r == '`' || r == '"' }
func (mysqlDialect) DBType() DBType                         { return MySQL }

type postgresDialect struct{ common }

// PostgreSQL keeps the common `$` continue character (used heavily for
// dollar-quoted-function-style names) and additionally accepts
// non-ASCII letters as both start and continue characters.
func (postgresDialect) IsIdentifierStart(r rune) bool {
	return isASCIILetter(r) || r == '_' || r > 127
}

func (postgresDialect) IsIdentifierContinue(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == '_' || r == '$' || r > 127
}

func (postgresDialect) DBType() DBType { return PostgreSQL }

type mssqlDialect struct{ common }

func (mssqlDialect) IsIdentifierStart(r rune) bool {
	return isASCIILetter(r) || r == '_' || r == '#' || r == '@'
}

func (mssqlDialect) IsIdentifierContinue(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == '_' || r == '#' || r == '$' || r == '@'
}

func (mssqlDialect) IsDelimitedIdentifierStart(r rune) bool { return r == '[' || r == '"' }
func (mssqlDialect) DBType() DBType                         { return MSSQL }

type sqliteDialect struct{ common }

func (sqliteDialect) IsDelimitedIdentifierStart(r rune) bool { return r == '"' || r == '`' || r == '[' }
func (sqliteDialect) DBType() DBType                         { return SQLite }

type snowflakeDialect struct{ common }

func (snowflakeDialect) IsIdentifierStart(r rune) bool {
	return isASCIILetter(r) || r == '_'
}

func (snowflakeDialect) DBType() DBType { return Snowflake }

type hiveDialect struct{ common }

func (hiveDialect) IsDelimitedIdentifierStart(r rune) bool { return r == '`' || r == '"' }
func (hiveDialect) DBType() DBType                         { return Hive }

type ansiDialect struct{ common }

func (ansiDialect) DBType() DBType { return AnsiSQL }

var (
	genericInstance   = genericDialect{}
	mysqlInstance     = mysqlDialect{}
	postgresInstance  = postgresDialect{}
	mssqlInstance     = mssqlDialect{}
	sqliteInstance    = sqliteDialect{}
	snowflakeInstance = snowflakeDialect{}
	hiveInstance      = hiveDialect{}
	ansiInstance      = ansiDialect{}
)

// Default returns the Generic dialect (ANSI identifier rules, double-quote,
// backtick and bracket delimited identifiers, no dialect-specific COLLATE
// postfix rewriting). It is the default used by the single-argument
// Parse/ParseAll entry points for backward compatibility with callers
// that never selected a dialect.
func Default() Dialect { return genericInstance }

// MySQLDialect returns the MySQL dialect: backtick- or double-quote-
// delimited identifiers; the parser does not wrap an expression followed
// by COLLATE in a CollateExpr under this dialect.
func MySQLDialect() Dialect { return mysqlInstance }

// PostgreSQLDialect returns the PostgreSQL dialect: double-quote
// delimited identifiers, `$`- and non-ASCII-tolerant unquoted
// identifiers.
func PostgreSQLDialect() Dialect { return postgresInstance }

// MSSQLDialect returns the SQL Server dialect: `[bracket]` delimited
// identifiers, `#temp`/`@variable` identifier prefixes.
func MSSQLDialect() Dialect { return mssqlInstance }

// SQLiteDialect returns the SQLite dialect, which tolerates all three
// of `"..."`, `` `...` ``, and `[...]` as delimited identifiers.
func SQLiteDialect() Dialect { return sqliteInstance }

// SnowflakeDialect returns the Snowflake dialect.
func SnowflakeDialect() Dialect { return snowflakeInstance }

// HiveDialect returns the Hive dialect (backtick-delimited
// identifiers, same as MySQL).
func HiveDialect() Dialect { return hiveInstance }

// AnsiSQLDialect returns the strict ANSI SQL dialect.
func AnsiSQLDialect() Dialect { return ansiInstance }

// ForDBType maps a DBType to its Dialect value, falling back to
// Default for an unrecognized or zero value.
func ForDBType(t DBType) Dialect {
	switch t {
	case MySQL:
		return mysqlInstance
	case PostgreSQL:
		return postgresInstance
	case MSSQL:
		return mssqlInstance
	case SQLite:
		return sqliteInstance
	case Snowflake:
		return snowflakeInstance
	case Hive:
		return hiveInstance
	case AnsiSQL:
		return ansiInstance
	default:
		return genericInstance
	}
}
