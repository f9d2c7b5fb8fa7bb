package parser

import (
	"strings"

	"github.com/sqlkit/sqlfront/ast"
	"github.com/sqlkit/sqlfront/token"
)

// parseSet handles SET ... in all of its forms: session variable
// assignment, the admin SET ... WHERE ... variant, and SET TRANSACTION /
// SET SESSION CHARACTERISTICS AS TRANSACTION.
func (p *Parser) parseSet() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume SET

	if p.curIs(token.TRANSACTION) {
		return p.parseSetTransaction(pos, false)
	}
	if p.curIs(token.SESSION) && p.peekIs(token.IDENT) {
		// Could be SET SESSION name = value, checked below; but
		// SET SESSION CHARACTERISTICS AS TRANSACTION ... is distinct.
	}

	scope := ""
	switch p.cur.Type {
	case token.GLOBAL:
		scope = "GLOBAL"
		p.advance()
	case token.SESSION:
		scope = "SESSION"
		p.advance()
	case token.LOCAL:
		scope = "LOCAL"
		p.advance()
	}

	if scope != "" && p.curIs(token.IDENT) && p.cur.Value == "CHARACTERISTICS" {
		// SET SESSION CHARACTERISTICS AS TRANSACTION ...
		p.advance()
		p.expect(token.AS)
		return p.parseSetTransaction(pos, true)
	}

	// SET NAMES charset
	if p.curIs(token.NAMES) {
		p.advance()
		name := ""
		if p.curIsIdent() || p.curIs(token.STRING) {
			name = p.cur.Value
			p.advance()
		}
		return &ast.SetVariableStmt{StartPos: pos, EndPos: p.cur.Pos, Name: "NAMES", Value: &ast.Literal{Type: ast.LiteralString, Value: name}}
	}

	name := ""
	if p.curIsIdent() {
		name = p.curIdentValue()
		p.advance()
	}

	if p.curIs(token.EQ) || p.curIs(token.TO) {
		p.advance()
	}

	value := p.parseExpr()

	if p.curIs(token.WHERE) {
		p.advance()
		where := p.parseExpr()
		return &ast.AdminSetVariableStmt{StartPos: pos, EndPos: p.cur.Pos, Name: name, Value: value, Where: where}
	}

	return &ast.SetVariableStmt{StartPos: pos, EndPos: p.cur.Pos, Scope: scope, Name: name, Value: value}
}

// parseSetTransaction parses the tail of SET TRANSACTION / SET SESSION
// CHARACTERISTICS AS TRANSACTION (cursor positioned at TRANSACTION).
func (p *Parser) parseSetTransaction(pos token.Pos, session bool) ast.Statement {
	p.expect(token.TRANSACTION)
	stmt := &ast.SetTransactionStmt{StartPos: pos, Session: session}
	p.parseTransactionCharacteristics(&stmt.Isolation, &stmt.ReadOnly)
	stmt.EndPos = p.cur.Pos
	return stmt
}

// parseTransactionCharacteristics parses a comma-separated list of
// ISOLATION LEVEL xxx and READ ONLY|WRITE clauses.
func (p *Parser) parseTransactionCharacteristics(isolation *string, readOnly **bool) {
	for {
		switch {
		case p.curIs(token.ISOLATION):
			p.advance()
			p.expect(token.LEVEL)
			*isolation = p.parseIsolationLevel()
		case p.curIs(token.READ):
			p.advance()
			ro := true
			if p.curIs(token.ONLY) {
				p.advance()
			} else if p.curIs(token.WRITE) {
				ro = false
				p.advance()
			}
			*readOnly = &ro
		default:
			if !p.curIs(token.COMMA) {
				return
			}
			p.advance()
		}
	}
}

func (p *Parser) parseIsolationLevel() string {
	switch p.cur.Type {
	case token.READ:
		p.advance()
		if p.curIs(token.COMMITTED) {
			p.advance()
			return "READ COMMITTED"
		}
		if p.curIs(token.UNCOMMITTED) {
			p.advance()
			return "READ UNCOMMITTED"
		}
		return "READ"
	case token.REPEATABLE:
		p.advance()
		p.expect(token.READ)
		return "REPEATABLE READ"
	case token.SERIALIZABLE:
		p.advance()
		return "SERIALIZABLE"
	case token.SNAPSHOT:
		p.advance()
		return "SNAPSHOT"
	}
	return ""
}

// parseStartTransaction handles START TRANSACTION and BEGIN [WORK].
func (p *Parser) parseStartTransaction() ast.Statement {
	pos := p.cur.Pos
	if p.curIs(token.START) {
		p.advance()
		p.expect(token.TRANSACTION)
	} else {
		p.advance() // consume BEGIN
		if p.curIs(token.WORK) {
			p.advance()
		}
	}

	stmt := &ast.StartTransactionStmt{StartPos: pos}
	p.parseTransactionCharacteristics(&stmt.Isolation, &stmt.ReadOnly)
	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseCommit() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume COMMIT
	if p.curIs(token.WORK) {
		p.advance()
	}
	return &ast.CommitStmt{StartPos: pos, EndPos: p.cur.Pos}
}

func (p *Parser) parseRollback() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume ROLLBACK
	if p.curIs(token.WORK) {
		p.advance()
	}
	return &ast.RollbackStmt{StartPos: pos, EndPos: p.cur.Pos}
}

// parseShow handles SHOW COLUMNS/FIELDS, SHOW CREATE, and the general
// SHOW VARIABLES|STATUS|ENGINES|PLUGINS|WARNINGS|ERRORS form.
func (p *Parser) parseShow() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume SHOW

	extended := false
	if p.curIs(token.EXTENDED) {
		extended = true
		p.advance()
	}
	full := false
	if p.curIs(token.FULL) {
		full = true
		p.advance()
	}

	if p.curIs(token.COLUMNS) || p.curIs(token.FIELDS) {
		return p.parseShowColumns(pos, extended, full)
	}
	if p.curIs(token.CREATE) {
		p.advance()
		what := "TABLE"
		if p.curIs(token.VIEW) {
			what = "VIEW"
			p.advance()
		} else {
			p.expect(token.TABLE)
		}
		name := p.parseTableName()
		return &ast.ShowCreateStmt{StartPos: pos, EndPos: p.cur.Pos, What: what, Name: name}
	}

	scope := ""
	switch p.cur.Type {
	case token.GLOBAL:
		scope = "GLOBAL"
		p.advance()
	case token.SESSION:
		scope = "SESSION"
		p.advance()
	}

	what := ""
	if p.curIsIdent() {
		what = p.curIdentValue()
		p.advance()
	}

	stmt := &ast.ShowVariableStmt{StartPos: pos, Scope: scope, What: what}
	if p.curIs(token.LIKE) {
		p.advance()
		if p.curIs(token.STRING) {
			stmt.Like = p.cur.Value
			p.advance()
		}
	} else if p.curIs(token.WHERE) {
		p.advance()
		stmt.Where = p.parseExpr()
	}
	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseShowColumns(pos token.Pos, extended, full bool) ast.Statement {
	stmt := &ast.ShowColumnsStmt{StartPos: pos, Extended: extended, Full: full}
	stmt.UseField = p.curIs(token.FIELDS)
	p.advance() // consume COLUMNS or FIELDS

	if p.curIs(token.FROM) || p.curIs(token.IN) {
		p.advance()
		stmt.Table = p.parseTableName()
	}
	if p.curIs(token.FROM) || p.curIs(token.IN) {
		p.advance()
		if p.curIsIdent() {
			stmt.DB = p.curIdentValue()
			p.advance()
		}
	}

	if p.curIs(token.LIKE) {
		p.advance()
		if p.curIs(token.STRING) {
			stmt.Like = p.cur.Value
			p.advance()
		}
	} else if p.curIs(token.WHERE) {
		p.advance()
		stmt.Where = p.parseExpr()
	}

	stmt.EndPos = p.cur.Pos
	return stmt
}

// parseCall handles CALL proc(args).
func (p *Parser) parseCall() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume CALL

	stmt := &ast.CallStmt{StartPos: pos}
	stmt.Name = p.parseTableName()

	if p.curIs(token.LPAREN) {
		p.advance()
		for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
			arg := p.parseExpr()
			if arg == nil {
				break
			}
			stmt.Args = append(stmt.Args, arg)
			if !p.curIs(token.COMMA) {
				break
			}
			p.advance()
		}
		p.expect(token.RPAREN)
	}

	stmt.EndPos = p.cur.Pos
	return stmt
}

// parseAssert handles ASSERT condition [, message].
func (p *Parser) parseAssert() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume ASSERT

	stmt := &ast.AssertStmt{StartPos: pos}
	stmt.Condition = p.parseExpr()
	if p.curIs(token.COMMA) {
		p.advance()
		stmt.Message = p.parseExpr()
	}
	stmt.EndPos = p.cur.Pos
	return stmt
}

// parseLock handles LOCK TABLES t READ|WRITE [, ...].
func (p *Parser) parseLock() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume LOCK
	if p.curIs(token.IDENT) && strings.EqualFold(p.cur.Value, "TABLES") {
		p.advance()
	} else {
		p.expect(token.TABLE)
	}

	stmt := &ast.LockStmt{StartPos: pos}
	for {
		lt := &ast.LockTable{Table: p.parseTableName()}
		switch {
		case p.curIs(token.READ):
			p.advance()
		case p.curIs(token.WRITE):
			lt.Write = true
			p.advance()
		}
		stmt.Tables = append(stmt.Tables, lt)
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	stmt.EndPos = p.cur.Pos
	return stmt
}

// parseUnlock handles UNLOCK TABLES.
func (p *Parser) parseUnlock() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume UNLOCK
	if p.curIs(token.IDENT) && strings.EqualFold(p.cur.Value, "TABLES") {
		p.advance()
	} else {
		p.expect(token.TABLE)
	}
	return &ast.UnlockStmt{StartPos: pos, EndPos: p.cur.Pos}
}

// parseReload handles FLUSH / RELOAD admin statements.
func (p *Parser) parseReload() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume FLUSH or RELOAD

	stmt := &ast.ReloadStmt{StartPos: pos}
	for p.curIsIdent() || p.cur.Type.IsKeyword() {
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		stmt.Targets = append(stmt.Targets, p.curIdentValue())
		p.advance()
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	stmt.EndPos = p.cur.Pos
	return stmt
}

// parseUse handles USE db.
func (p *Parser) parseUse() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume USE
	stmt := &ast.UseStmt{StartPos: pos}
	if p.curIsIdent() {
		stmt.DB = p.curIdentValue()
		p.advance()
	}
	stmt.EndPos = p.cur.Pos
	return stmt
}

// parseDesc handles DESC/DESCRIBE tbl.
func (p *Parser) parseDesc() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume DESC or DESCRIBE
	stmt := &ast.DescStmt{StartPos: pos}
	stmt.Table = p.parseTableName()
	stmt.EndPos = p.cur.Pos
	return stmt
}
