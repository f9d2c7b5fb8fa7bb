package ast

import "github.com/sqlkit/sqlfront/token"

// SelectStmt represents a SELECT statement.
type SelectStmt struct {
	StartPos   token.Pos
	EndPos     token.Pos
	With       *WithClause    // WITH clause (CTEs)
	Distinct   bool           // DISTINCT
	Columns    []SelectExpr   // SELECT expressions
	From       TableExpr      // FROM clause
	Where      Expr           // WHERE clause (optional)
	GroupBy    []Expr         // GROUP BY expressions
	Having     Expr           // HAVING clause (optional)
	OrderBy    []*OrderByExpr // ORDER BY expressions
	Limit      *Limit         // LIMIT clause (optional)
	Lock       string         // FOR UPDATE, etc.
	Into       *SelectInto    // INTO clause (optional)
	WindowDefs []*WindowDef   // WINDOW definitions
}

func (*SelectStmt) statementNode()   {}
func (s *SelectStmt) Pos() token.Pos { return s.StartPos }
func (s *SelectStmt) End() token.Pos { return s.EndPos }

// SelectInto represents SELECT ... INTO.
type SelectInto struct {
	Outfile  string
	Dumpfile string
	Vars     []string
}

// InsertStmt represents an INSERT statement.
type InsertStmt struct {
	StartPos          token.Pos
	EndPos            token.Pos
	With              *WithClause // WITH clause (CTEs)
	Replace           bool        // REPLACE INTO (MySQL)
	Ignore            bool        // INSERT IGNORE (MySQL)
	HasInto           bool        // true when the (optional) INTO keyword was present
	UsedValueKeyword  bool        // true when the source wrote VALUE instead of VALUES
	Table             *TableName
	Columns           []*ColName    // Column list (optional)
	Values            [][]Expr      // VALUES rows
	Select            Statement     // INSERT ... SELECT (*SelectStmt or *SetOp)
	OnDuplicateUpdate []*UpdateExpr // ON DUPLICATE KEY UPDATE (MySQL)
	OnConflict        *OnConflict   // ON CONFLICT (PostgreSQL)
	Returning         []SelectExpr  // RETURNING clause (PostgreSQL)
}

func (*InsertStmt) statementNode()   {}
func (i *InsertStmt) Pos() token.Pos { return i.StartPos }
func (i *InsertStmt) End() token.Pos { return i.EndPos }

// OnConflict represents PostgreSQL ON CONFLICT clause.
type OnConflict struct {
	Columns   []string // Conflict columns
	Where     Expr     // Optional WHERE for partial index
	DoNothing bool
	Updates   []*UpdateExpr // SET expressions for DO UPDATE
}

// UpdateStmt represents an UPDATE statement.
type UpdateStmt struct {
	StartPos  token.Pos
	EndPos    token.Pos
	With      *WithClause // WITH clause (CTEs)
	Table     TableExpr
	Set       []*UpdateExpr
	From      TableExpr // PostgreSQL FROM clause
	Where     Expr
	OrderBy   []*OrderByExpr // MySQL extension
	Limit     *Limit         // MySQL extension
	Returning []SelectExpr   // PostgreSQL
}

func (*UpdateStmt) statementNode()   {}
func (u *UpdateStmt) Pos() token.Pos { return u.StartPos }
func (u *UpdateStmt) End() token.Pos { return u.EndPos }

// UpdateExpr represents SET column = value.
type UpdateExpr struct {
	Column *ColName
	Expr   Expr
}

// DeleteStmt represents a DELETE statement.
type DeleteStmt struct {
	StartPos  token.Pos
	EndPos    token.Pos
	With      *WithClause // WITH clause (CTEs)
	Table     TableExpr
	Using     TableExpr // USING clause (PostgreSQL)
	Where     Expr
	OrderBy   []*OrderByExpr // MySQL extension
	Limit     *Limit         // MySQL extension
	Returning []SelectExpr   // PostgreSQL
}

func (*DeleteStmt) statementNode()   {}
func (d *DeleteStmt) Pos() token.Pos { return d.StartPos }
func (d *DeleteStmt) End() token.Pos { return d.EndPos }

// SetOp represents UNION/INTERSECT/EXCEPT.
type SetOp struct {
	StartPos token.Pos
	EndPos   token.Pos
	With     *WithClause // WITH clause, when it governs the whole set operation
	Type     SetOpType   // UNION, INTERSECT, EXCEPT
	All      bool
	Left     Statement
	Right    Statement
	OrderBy  []*OrderByExpr
	Limit    *Limit
}

// SetOpType indicates the type of set operation.
type SetOpType int

const (
	Union SetOpType = iota
	Intersect
	Except
)

func (*SetOp) statementNode()   {}
func (s *SetOp) Pos() token.Pos { return s.StartPos }
func (s *SetOp) End() token.Pos { return s.EndPos }

// WithClause represents a WITH clause (common table expressions).
type WithClause struct {
	Recursive bool
	CTEs      []*CTE
}

// CTE represents a single common table expression.
type CTE struct {
	Name    string
	Columns []string
	Query   Statement
}

// CreateTableStmt represents CREATE TABLE.
type CreateTableStmt struct {
	StartPos    token.Pos
	EndPos      token.Pos
	IfNotExists bool
	Temporary   bool
	Table       *TableName
	Columns     []*ColumnDef
	Constraints []*TableConstraint
	Indexes     []*IndexSpec // MySQL inline index specs (PRIMARY KEY/KEY/UNIQUE KEY/FULLTEXT KEY)
	Options     []*TableOption
	As          Statement // CREATE TABLE AS SELECT (*SelectStmt or *SetOp)
}

func (*CreateTableStmt) statementNode()   {}
func (c *CreateTableStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateTableStmt) End() token.Pos { return c.EndPos }

// ColumnDef represents a column definition.
type ColumnDef struct {
	Name        string
	Type        *DataType
	Constraints []*ColumnConstraint
}

// DataType represents a SQL data type.
type DataType struct {
	Name      string // INT, VARCHAR, etc.
	Length    *int   // VARCHAR(255)
	Precision *int   // DECIMAL(10,2)
	Scale     *int
	Array     bool   // PostgreSQL array type
	Unsigned  bool   // MySQL UNSIGNED
	Charset   string // MySQL CHARACTER SET
	Collation string // COLLATE
}

// ColumnConstraint represents a column-level constraint.
type ColumnConstraint struct {
	Name       string // optional constraint name
	Type       ConstraintType
	NotNull    bool
	Default    Expr
	Check      Expr
	References *ForeignKeyRef
	Generated  *GeneratedColumn
}

// ConstraintType indicates the type of constraint.
type ConstraintType int

const (
	ConstraintPrimaryKey ConstraintType = iota
	ConstraintUnique
	ConstraintNotNull
	ConstraintDefault
	ConstraintCheck
	ConstraintForeignKey
	ConstraintGenerated
)

// GeneratedColumn represents a generated column specification.
type GeneratedColumn struct {
	Expr   Expr
	Stored bool // STORED vs VIRTUAL
}

// TableConstraint represents a table-level constraint.
type TableConstraint struct {
	Name       string
	Type       ConstraintType
	Columns    []string
	References *ForeignKeyRef
	Check      Expr
}

// ForeignKeyRef represents foreign key reference.
type ForeignKeyRef struct {
	Table    *TableName
	Columns  []string
	OnDelete RefAction
	OnUpdate RefAction
}

// RefAction indicates foreign key referential action.
type RefAction int

const (
	RefNoAction RefAction = iota
	RefCascade
	RefSetNull
	RefSetDefault
	RefRestrict
)

// TableOption represents a table option.
type TableOption struct {
	Name  string
	Value string
}

// AlterTableStmt represents ALTER TABLE.
type AlterTableStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Table    *TableName
	Actions  []AlterTableAction
}

func (*AlterTableStmt) statementNode()   {}
func (a *AlterTableStmt) Pos() token.Pos { return a.StartPos }
func (a *AlterTableStmt) End() token.Pos { return a.EndPos }

// AlterTableAction is an interface for ALTER TABLE actions.
type AlterTableAction interface {
	alterTableAction()
}

// AddColumn represents ADD COLUMN.
type AddColumn struct {
	Column *ColumnDef
}

func (*AddColumn) alterTableAction() {}

// DropColumn represents DROP COLUMN.
type DropColumn struct {
	Name     string
	IfExists bool
	Cascade  bool
}

func (*DropColumn) alterTableAction() {}

// ModifyColumn represents MODIFY/ALTER COLUMN.
type ModifyColumn struct {
	Name        string
	NewDef      *ColumnDef
	SetDefault  Expr
	DropDefault bool
	SetNotNull  bool
	DropNotNull bool
}

func (*ModifyColumn) alterTableAction() {}

// RenameColumn represents RENAME COLUMN.
type RenameColumn struct {
	OldName string
	NewName string
}

func (*RenameColumn) alterTableAction() {}

// AddConstraint represents ADD CONSTRAINT.
type AddConstraint struct {
	Constraint *TableConstraint
}

func (*AddConstraint) alterTableAction() {}

// DropConstraint represents DROP CONSTRAINT.
type DropConstraint struct {
	Name     string
	IfExists bool
	Cascade  bool
}

func (*DropConstraint) alterTableAction() {}

// RenameTable represents RENAME TO.
type RenameTable struct {
	NewName *TableName
}

func (*RenameTable) alterTableAction() {}

// DropTableStmt represents DROP TABLE.
type DropTableStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	IfExists bool
	Tables   []*TableName
	Cascade  bool
}

func (*DropTableStmt) statementNode()   {}
func (d *DropTableStmt) Pos() token.Pos { return d.StartPos }
func (d *DropTableStmt) End() token.Pos { return d.EndPos }

// CreateIndexStmt represents CREATE INDEX.
type CreateIndexStmt struct {
	StartPos    token.Pos
	EndPos      token.Pos
	IfNotExists bool
	Unique      bool
	Concurrent  bool // PostgreSQL CONCURRENTLY
	Name        string
	Table       *TableName
	Columns     []*IndexColumn
	Using       string // btree, hash, etc.
	Where       Expr   // Partial index (PostgreSQL)
}

func (*CreateIndexStmt) statementNode()   {}
func (c *CreateIndexStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateIndexStmt) End() token.Pos { return c.EndPos }

// IndexColumn represents a column in an index.
type IndexColumn struct {
	Column string
	Expr   Expr // Expression index
	Desc   bool
	Nulls  string // FIRST, LAST
}

// DropIndexStmt represents DROP INDEX.
type DropIndexStmt struct {
	StartPos   token.Pos
	EndPos     token.Pos
	IfExists   bool
	Concurrent bool // PostgreSQL CONCURRENTLY
	Name       string
	Table      *TableName // MySQL requires table name
	Cascade    bool
}

func (*DropIndexStmt) statementNode()   {}
func (d *DropIndexStmt) Pos() token.Pos { return d.StartPos }
func (d *DropIndexStmt) End() token.Pos { return d.EndPos }

// TruncateStmt represents TRUNCATE TABLE.
type TruncateStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Tables   []*TableName
	Cascade  bool
}

func (*TruncateStmt) statementNode()   {}
func (t *TruncateStmt) Pos() token.Pos { return t.StartPos }
func (t *TruncateStmt) End() token.Pos { return t.EndPos }

// CreateViewStmt represents CREATE [OR REPLACE] VIEW.
type CreateViewStmt struct {
	StartPos  token.Pos
	EndPos    token.Pos
	OrReplace bool
	Temporary bool
	View      *TableName
	Columns   []string
	Query     Statement // *SelectStmt or *SetOp
}

func (*CreateViewStmt) statementNode()   {}
func (c *CreateViewStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateViewStmt) End() token.Pos { return c.EndPos }

// CreateSchemaStmt represents CREATE SCHEMA / CREATE DATABASE.
type CreateSchemaStmt struct {
	StartPos    token.Pos
	EndPos      token.Pos
	IsDatabase  bool // true when the source wrote DATABASE rather than SCHEMA
	IfNotExists bool
	Name        string
}

func (*CreateSchemaStmt) statementNode()   {}
func (c *CreateSchemaStmt) Pos() token.Pos { return c.StartPos }
func (c *CreateSchemaStmt) End() token.Pos { return c.EndPos }

// IndexSpec represents a MySQL inline index specification found inside
// CREATE TABLE (PRIMARY KEY, KEY, UNIQUE KEY, FULLTEXT KEY, FOREIGN KEY).
// Kept disjoint from Constraints: in the MySQL dialect branch a
// CreateTableStmt's Constraints list stays empty and index specs live here.
type IndexSpec struct {
	Name       string // index name, optional (empty for bare PRIMARY KEY)
	Type       IndexSpecType
	Columns    []*IndexColumn
	Using      string // BTREE, HASH
	Comment    string
	References *ForeignKeyRef // only for Type == IndexForeignKey
}

// IndexSpecType indicates the kind of inline index specification.
type IndexSpecType int

const (
	IndexNormal IndexSpecType = iota
	IndexPrimaryKey
	IndexUnique
	IndexFullText
	IndexForeignKey
)

// SetVariableStmt represents SET [SESSION|LOCAL|GLOBAL] name = value.
type SetVariableStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Scope    string // SESSION, LOCAL, GLOBAL, or empty
	Name     string
	Value    Expr
}

func (*SetVariableStmt) statementNode()   {}
func (s *SetVariableStmt) Pos() token.Pos { return s.StartPos }
func (s *SetVariableStmt) End() token.Pos { return s.EndPos }

// AdminSetVariableStmt represents the SET variable = value WHERE expr
// admin form (distinct from SetVariableStmt per the presence of WHERE).
type AdminSetVariableStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
	Value    Expr
	Where    Expr
}

func (*AdminSetVariableStmt) statementNode()   {}
func (s *AdminSetVariableStmt) Pos() token.Pos { return s.StartPos }
func (s *AdminSetVariableStmt) End() token.Pos { return s.EndPos }

// SetTransactionStmt represents SET TRANSACTION / SET SESSION
// CHARACTERISTICS AS TRANSACTION.
type SetTransactionStmt struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Session   bool // SET SESSION CHARACTERISTICS AS TRANSACTION
	Isolation string
	ReadOnly  *bool // nil = unspecified
}

func (*SetTransactionStmt) statementNode()   {}
func (s *SetTransactionStmt) Pos() token.Pos { return s.StartPos }
func (s *SetTransactionStmt) End() token.Pos { return s.EndPos }

// StartTransactionStmt represents START TRANSACTION / BEGIN [WORK].
type StartTransactionStmt struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Isolation string // optional ISOLATION LEVEL clause
	ReadOnly  *bool
}

func (*StartTransactionStmt) statementNode()   {}
func (s *StartTransactionStmt) Pos() token.Pos { return s.StartPos }
func (s *StartTransactionStmt) End() token.Pos { return s.EndPos }

// CommitStmt represents COMMIT [WORK].
type CommitStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
}

func (*CommitStmt) statementNode()   {}
func (c *CommitStmt) Pos() token.Pos { return c.StartPos }
func (c *CommitStmt) End() token.Pos { return c.EndPos }

// RollbackStmt represents ROLLBACK [WORK].
type RollbackStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
}

func (*RollbackStmt) statementNode()   {}
func (r *RollbackStmt) Pos() token.Pos { return r.StartPos }
func (r *RollbackStmt) End() token.Pos { return r.EndPos }

// ShowVariableStmt represents SHOW [GLOBAL|SESSION] VARIABLES|STATUS.
type ShowVariableStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Scope    string // GLOBAL, SESSION, or empty
	What     string // VARIABLES, STATUS, ENGINES, PLUGINS, WARNINGS, ERRORS
	Like     string // LIKE pattern, optional
	Where    Expr   // WHERE expr, optional
}

func (*ShowVariableStmt) statementNode()   {}
func (s *ShowVariableStmt) Pos() token.Pos { return s.StartPos }
func (s *ShowVariableStmt) End() token.Pos { return s.EndPos }

// ShowColumnsStmt represents SHOW [EXTENDED] [FULL] COLUMNS|FIELDS FROM tbl.
type ShowColumnsStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Extended bool
	Full     bool
	UseField bool // true when the source wrote FIELDS rather than COLUMNS
	Table    *TableName
	DB       string // optional FROM db
	Like     string
	Where    Expr
}

func (*ShowColumnsStmt) statementNode()   {}
func (s *ShowColumnsStmt) Pos() token.Pos { return s.StartPos }
func (s *ShowColumnsStmt) End() token.Pos { return s.EndPos }

// ShowCreateStmt represents SHOW CREATE TABLE|VIEW name.
type ShowCreateStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	What     string // TABLE, VIEW
	Name     *TableName
}

func (*ShowCreateStmt) statementNode()   {}
func (s *ShowCreateStmt) Pos() token.Pos { return s.StartPos }
func (s *ShowCreateStmt) End() token.Pos { return s.EndPos }

// CallStmt represents CALL procedure(args).
type CallStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     *TableName
	Args     []Expr
}

func (*CallStmt) statementNode()   {}
func (c *CallStmt) Pos() token.Pos { return c.StartPos }
func (c *CallStmt) End() token.Pos { return c.EndPos }

// AssertStmt represents ASSERT condition [, message].
type AssertStmt struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Condition Expr
	Message   Expr
}

func (*AssertStmt) statementNode()   {}
func (a *AssertStmt) Pos() token.Pos { return a.StartPos }
func (a *AssertStmt) End() token.Pos { return a.EndPos }

// LockTable is one entry of a LOCK TABLES list.
type LockTable struct {
	Table *TableName
	Write bool // true = WRITE, false = READ
}

// LockStmt represents LOCK TABLES t READ|WRITE [, ...].
type LockStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Tables   []*LockTable
}

func (*LockStmt) statementNode()   {}
func (l *LockStmt) Pos() token.Pos { return l.StartPos }
func (l *LockStmt) End() token.Pos { return l.EndPos }

// UnlockStmt represents UNLOCK TABLES.
type UnlockStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
}

func (*UnlockStmt) statementNode()   {}
func (u *UnlockStmt) Pos() token.Pos { return u.StartPos }
func (u *UnlockStmt) End() token.Pos { return u.EndPos }

// ReloadStmt represents FLUSH / RELOAD admin statements.
type ReloadStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Targets  []string // e.g. PRIVILEGES, TABLES, LOGS, STATUS, HOSTS
}

func (*ReloadStmt) statementNode()   {}
func (r *ReloadStmt) Pos() token.Pos { return r.StartPos }
func (r *ReloadStmt) End() token.Pos { return r.EndPos }

// UseStmt represents USE db.
type UseStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	DB       string
}

func (*UseStmt) statementNode()   {}
func (u *UseStmt) Pos() token.Pos { return u.StartPos }
func (u *UseStmt) End() token.Pos { return u.EndPos }

// DescStmt represents DESC/DESCRIBE tbl.
type DescStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Table    *TableName
}

func (*DescStmt) statementNode()   {}
func (d *DescStmt) Pos() token.Pos { return d.StartPos }
func (d *DescStmt) End() token.Pos { return d.EndPos }

// ExplainStmt represents EXPLAIN.
type ExplainStmt struct {
	StartPos token.Pos
	EndPos   token.Pos
	Analyze  bool
	Verbose  bool
	Format   string // TEXT, JSON, YAML, XML
	Stmt     Statement
}

func (*ExplainStmt) statementNode()   {}
func (e *ExplainStmt) Pos() token.Pos { return e.StartPos }
func (e *ExplainStmt) End() token.Pos { return e.EndPos }
