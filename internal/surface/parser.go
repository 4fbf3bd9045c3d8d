package surface

import (
	"fmt"
	"strconv"

	"github.com/zoc-lang/zoc/internal/ast"
)

// ParseError is a structured parser failure, grounded on the teacher's
// internal/parser.ParserError: a code, a message, and the position it was
// raised at. The core kernel (internal/kernelerrors) never produces these;
// they only arise while turning source text into an internal/ast.Expr.
type ParseError struct {
	Code    string
	Message string
	Pos     Pos
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Pos, e.Message)
}

func newParseError(tok Token, code, message string) *ParseError {
	return &ParseError{Code: code, Message: message, Pos: tok.Position()}
}

// Parser turns the core surface notation into an internal/ast.Expr. There
// is no separate CST: the grammar is simple enough (every non-Deb,
// non-Universe form is keyword-led) that the parser builds ast nodes
// directly, recording spans into an AuxData table as it goes so callers
// that want located diagnostics still can.
type Parser struct {
	l   *Lexer
	aux *AuxData

	curToken  Token
	peekToken Token

	idents map[string]*ast.Ind
}

// NewParser creates a Parser reading from l. aux may be nil if the caller
// does not need span information.
func NewParser(l *Lexer, aux *AuxData) *Parser {
	if aux == nil {
		aux = NewAuxData()
	}
	p := &Parser{l: l, aux: aux, idents: make(map[string]*ast.Ind)}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curIs(t TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekIs(t TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expect(t TokenType) error {
	if !p.curIs(t) {
		return newParseError(p.curToken, "SUR_UNEXPECTED_TOKEN",
			fmt.Sprintf("expected %s, got %s %q", t, p.curToken.Type, p.curToken.Literal))
	}
	p.nextToken()
	return nil
}

// ParseProgram parses a sequence of `def NAME = <ind literal> ;` bindings
// followed by one final expression, the shape every example `.zo` snippet
// in this repository uses (named inductive families referenced by later
// vcon/match/ind-application expressions, then a term to typecheck).
func ParseProgram(src []byte, file string) (ast.Expr, *AuxData, error) {
	p := NewParser(New(src, file), nil)
	for p.curIs(DEF) {
		if err := p.parseDef(); err != nil {
			return nil, nil, err
		}
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, nil, err
	}
	if !p.curIs(EOF) {
		return nil, nil, newParseError(p.curToken, "SUR_TRAILING_INPUT",
			fmt.Sprintf("unexpected trailing %s %q after the final expression", p.curToken.Type, p.curToken.Literal))
	}
	return expr, p.aux, nil
}

func (p *Parser) parseDef() error {
	p.nextToken() // consume 'def'
	if !p.curIs(IDENT) {
		return newParseError(p.curToken, "SUR_EXPECTED_IDENT", "expected a name after 'def'")
	}
	name := p.curToken.Literal
	p.nextToken()
	if err := p.expect(ASSIGN); err != nil {
		return err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return err
	}
	ind, ok := ast.AsInd(expr)
	if !ok {
		return newParseError(p.curToken, "SUR_DEF_NOT_IND", "a top-level 'def' must bind an inductive family literal")
	}
	p.idents[name] = ind
	return p.expect(SEMI)
}

// parseExpr parses one expression and then any number of trailing
// application argument lists, so `f(a)(b)` builds App(App(f,[a]),[b]).
func (p *Parser) parseExpr() (ast.Expr, error) {
	startTok := p.curToken
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.curIs(LPAREN) {
		args, err := p.parseParenExprList()
		if err != nil {
			return nil, err
		}
		if len(args) == 0 {
			return nil, newParseError(p.curToken, "SUR_EMPTY_APP_ARGS", "application must supply at least one argument")
		}
		expr = ast.NewApp(expr, args)
	}
	p.recordSpan(expr, startTok)
	return expr, nil
}

func (p *Parser) recordSpan(expr ast.Expr, startTok Token) {
	p.aux.Record(expr.Digest(), Span{Start: startTok.Position(), End: p.curToken.Position()})
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.curToken.Type {
	case INT:
		n, err := p.parseUint()
		if err != nil {
			return nil, err
		}
		return ast.NewDeb(n), nil
	case SET, PROP, TYPE:
		return p.parseUniverse()
	case IND:
		return p.parseInd()
	case VCON:
		return p.parseVcon()
	case FOR:
		return p.parseFor()
	case FUN:
		return p.parseFun()
	case MATCH:
		return p.parseMatch()
	case IDENT:
		name := p.curToken.Literal
		ind, ok := p.idents[name]
		if !ok {
			return nil, newParseError(p.curToken, "SUR_UNKNOWN_IDENT", fmt.Sprintf("%q does not name a def'd inductive family", name))
		}
		p.nextToken()
		return ind, nil
	default:
		return nil, newParseError(p.curToken, "SUR_UNEXPECTED_TOKEN",
			fmt.Sprintf("unexpected %s %q", p.curToken.Type, p.curToken.Literal))
	}
}

func (p *Parser) parseUint() (uint64, error) {
	n, err := strconv.ParseUint(p.curToken.Literal, 10, 64)
	if err != nil {
		return 0, newParseError(p.curToken, "SUR_BAD_INT", fmt.Sprintf("invalid integer literal %q", p.curToken.Literal))
	}
	p.nextToken()
	return n, nil
}

// parseUniverse parses `Set <n>`, `Prop <n>`, or the legacy `Type <n>`
// (equivalent to Set <n>). Unlike ast.String's compact "Prop3"
// rendering, the parser requires the level as a separate token: the lexer
// treats digits as valid identifier continuation characters, so "Prop3"
// scans as one IDENT rather than a keyword plus a number.
func (p *Parser) parseUniverse() (ast.Expr, error) {
	kw := p.curToken.Type
	p.nextToken()
	if !p.curIs(INT) {
		return nil, newParseError(p.curToken, "SUR_EXPECTED_LEVEL", "expected a universe level")
	}
	level, err := p.parseUint()
	if err != nil {
		return nil, err
	}
	erasable := kw == PROP
	return ast.NewUniverse(level, erasable), nil
}

// parseParenExprList parses `( expr , expr , ... )`.
func (p *Parser) parseParenExprList() ([]ast.Expr, error) {
	if err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	var exprs []ast.Expr
	for !p.curIs(RPAREN) {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if p.curIs(COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return exprs, nil
}

// parseBracketExprList parses `[ expr , expr , ... ]`.
func (p *Parser) parseBracketExprList() ([]ast.Expr, error) {
	if err := p.expect(LBRACKET); err != nil {
		return nil, err
	}
	var exprs []ast.Expr
	for !p.curIs(RBRACKET) {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if p.curIs(COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if err := p.expect(RBRACKET); err != nil {
		return nil, err
	}
	return exprs, nil
}

// parseInd parses
//
//	ind[ Name, level, (erasable|computational), [indexTypes], [vconDefs] ]
func (p *Parser) parseInd() (ast.Expr, error) {
	p.nextToken() // consume 'ind'
	if err := p.expect(LBRACKET); err != nil {
		return nil, err
	}
	if !p.curIs(IDENT) {
		return nil, newParseError(p.curToken, "SUR_EXPECTED_IDENT", "expected the inductive family's name")
	}
	name := p.curToken.Literal
	p.nextToken()
	if err := p.expect(COMMA); err != nil {
		return nil, err
	}
	level, err := p.parseUint()
	if err != nil {
		return nil, err
	}
	if err := p.expect(COMMA); err != nil {
		return nil, err
	}
	var erasable bool
	switch p.curToken.Type {
	case ERASABLE:
		erasable = true
	case COMPUTATIONAL:
		erasable = false
	default:
		return nil, newParseError(p.curToken, "SUR_EXPECTED_ERASABILITY", "expected 'erasable' or 'computational'")
	}
	p.nextToken()
	if err := p.expect(COMMA); err != nil {
		return nil, err
	}
	indexTypes, err := p.parseBracketExprList()
	if err != nil {
		return nil, err
	}
	if err := p.expect(COMMA); err != nil {
		return nil, err
	}
	if err := p.expect(LBRACKET); err != nil {
		return nil, err
	}
	var vconDefs []ast.VconDef
	for !p.curIs(RBRACKET) {
		def, err := p.parseVconDef()
		if err != nil {
			return nil, err
		}
		vconDefs = append(vconDefs, def)
		if p.curIs(COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if err := p.expect(RBRACKET); err != nil {
		return nil, err
	}
	if err := p.expect(RBRACKET); err != nil {
		return nil, err
	}
	return ast.NewInd(name, level, erasable, indexTypes, vconDefs), nil
}

// parseVconDef parses `vcon_def([paramTypes]; [indexArgs])`.
func (p *Parser) parseVconDef() (ast.VconDef, error) {
	if err := p.expect(VCONDEF); err != nil {
		return ast.VconDef{}, err
	}
	if err := p.expect(LPAREN); err != nil {
		return ast.VconDef{}, err
	}
	paramTypes, err := p.parseBracketExprList()
	if err != nil {
		return ast.VconDef{}, err
	}
	if err := p.expect(SEMI); err != nil {
		return ast.VconDef{}, err
	}
	indexArgs, err := p.parseBracketExprList()
	if err != nil {
		return ast.VconDef{}, err
	}
	if err := p.expect(RPAREN); err != nil {
		return ast.VconDef{}, err
	}
	return ast.NewVconDef(paramTypes, indexArgs), nil
}

// parseVcon parses `vcon(indExpr, vconIndex)`.
func (p *Parser) parseVcon() (ast.Expr, error) {
	p.nextToken() // consume 'vcon'
	if err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	indExpr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	ind, ok := ast.AsInd(indExpr)
	if !ok {
		return nil, newParseError(p.curToken, "SUR_VCON_NOT_IND", "vcon's first argument must be an inductive family")
	}
	if err := p.expect(COMMA); err != nil {
		return nil, err
	}
	idx, err := p.parseUint()
	if err != nil {
		return nil, err
	}
	if err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return ast.NewVcon(ind, idx), nil
}

// parseFor parses `for(paramType, paramType, ... ; returnType)`.
func (p *Parser) parseFor() (ast.Expr, error) {
	p.nextToken() // consume 'for'
	if err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	var paramTypes []ast.Expr
	for !p.curIs(SEMI) {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		paramTypes = append(paramTypes, e)
		if p.curIs(COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if err := p.expect(SEMI); err != nil {
		return nil, err
	}
	returnType, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return ast.NewFor(paramTypes, returnType), nil
}

// parseFun parses `fun[nonrec|decreasingIndex](paramTypes...; returnType; returnVal)`.
func (p *Parser) parseFun() (ast.Expr, error) {
	p.nextToken() // consume 'fun'
	if err := p.expect(LBRACKET); err != nil {
		return nil, err
	}
	var decreasingIndex *uint64
	if p.curIs(NONREC) {
		p.nextToken()
	} else {
		n, err := p.parseUint()
		if err != nil {
			return nil, err
		}
		decreasingIndex = &n
	}
	if err := p.expect(RBRACKET); err != nil {
		return nil, err
	}
	if err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	var paramTypes []ast.Expr
	for !p.curIs(SEMI) {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		paramTypes = append(paramTypes, e)
		if p.curIs(COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if err := p.expect(SEMI); err != nil {
		return nil, err
	}
	returnType, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(SEMI); err != nil {
		return nil, err
	}
	returnVal, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return ast.NewFun(decreasingIndex, paramTypes, returnType, returnVal), nil
}

// parseMatch parses `match(matchee; returnTypeArity; returnType; [case(arity; val), ...])`.
func (p *Parser) parseMatch() (ast.Expr, error) {
	p.nextToken() // consume 'match'
	if err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	matchee, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(SEMI); err != nil {
		return nil, err
	}
	arity, err := p.parseUint()
	if err != nil {
		return nil, err
	}
	if err := p.expect(SEMI); err != nil {
		return nil, err
	}
	returnType, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(SEMI); err != nil {
		return nil, err
	}
	if err := p.expect(LBRACKET); err != nil {
		return nil, err
	}
	var cases []ast.MatchCase
	for !p.curIs(RBRACKET) {
		c, err := p.parseMatchCase()
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
		if p.curIs(COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	if err := p.expect(RBRACKET); err != nil {
		return nil, err
	}
	if err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return ast.NewMatch(matchee, arity, returnType, cases), nil
}

func (p *Parser) parseMatchCase() (ast.MatchCase, error) {
	if err := p.expect(CASE); err != nil {
		return ast.MatchCase{}, err
	}
	if err := p.expect(LPAREN); err != nil {
		return ast.MatchCase{}, err
	}
	arity, err := p.parseUint()
	if err != nil {
		return ast.MatchCase{}, err
	}
	if err := p.expect(SEMI); err != nil {
		return ast.MatchCase{}, err
	}
	returnVal, err := p.parseExpr()
	if err != nil {
		return ast.MatchCase{}, err
	}
	if err := p.expect(RPAREN); err != nil {
		return ast.MatchCase{}, err
	}
	return ast.NewMatchCase(arity, returnVal), nil
}
