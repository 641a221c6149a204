package compiler

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"glox/pkg/bytecode"
	"glox/pkg/color"
	"glox/pkg/scanner"
)

// ErrCompile is returned when compilation reported at least one error.
// Individual diagnostics are written to the error writer as they are
// found; no chunk is produced.
var ErrCompile = errors.New("compile error")

type Option func(*Compiler)

// WithErrorWriter sets the destination for compile diagnostics
// (default os.Stderr).
func WithErrorWriter(w io.Writer) Option {
	return func(c *Compiler) { c.errw = w }
}

// WithCodeDump makes a successful compile disassemble the finished
// chunk to w.
func WithCodeDump(w io.Writer) Option {
	return func(c *Compiler) { c.dump = w }
}

// Compiler parses source and emits bytecode in a single pass with one
// token of lookahead. It owns the chunk during emission and hands it
// over on success.
type Compiler struct {
	scanner *scanner.Scanner

	previous  scanner.Token
	current   scanner.Token
	hadError  bool
	panicMode bool

	scope scopeTracker
	chunk *bytecode.Chunk

	errw io.Writer
	dump io.Writer
}

// Compile parses and compiles a complete source text. It returns the
// finished chunk, or ErrCompile if any lexical or compile error was
// reported, even one that parsing recovered from.
func Compile(source string, opts ...Option) (*bytecode.Chunk, error) {
	c := &Compiler{
		scanner: scanner.New(source),
		chunk:   bytecode.New(),
		errw:    os.Stderr,
	}
	for _, o := range opts {
		o(c)
	}

	c.advance()
	for !c.match(scanner.EOF) {
		c.declaration()
	}
	c.emitReturn()

	if c.hadError {
		return nil, ErrCompile
	}

	if c.dump != nil {
		bytecode.NewDisassembler(c.dump).Chunk(c.chunk, "code")
	}

	return c.chunk, nil
}

// token plumbing ============================================================

// advance pulls the next token, converting lexical faults into compile
// errors on the spot.
func (c *Compiler) advance() {
	c.previous = c.current
	for {
		c.current = c.scanner.ScanToken()
		if c.current.Type != scanner.ERROR {
			break
		}
		c.errorAtCurrent(c.current.Lexeme)
	}
}

func (c *Compiler) consume(t scanner.TokenType, message string) {
	if c.current.Type == t {
		c.advance()
		return
	}
	c.errorAtCurrent(message)
}

func (c *Compiler) check(t scanner.TokenType) bool {
	return c.current.Type == t
}

func (c *Compiler) match(t scanner.TokenType) bool {
	if !c.check(t) {
		return false
	}
	c.advance()
	return true
}

// error reporting ===========================================================

func (c *Compiler) errorAt(tok scanner.Token, message string) {
	if c.panicMode {
		return
	}
	c.panicMode = true

	where := ""
	switch tok.Type {
	case scanner.EOF:
		where = " at end"
	case scanner.ERROR:
		// the lexeme is the message itself
	default:
		where = fmt.Sprintf(" at '%s'", tok.Lexeme)
	}

	fmt.Fprintf(c.errw, "[line %s] %s%s: %s\n",
		color.Cyan(strconv.Itoa(tok.Line)), color.Red("Error"), where, message)
	c.hadError = true
}

func (c *Compiler) error(message string) {
	c.errorAt(c.previous, message)
}

func (c *Compiler) errorAtCurrent(message string) {
	c.errorAt(c.current, message)
}

// synchronize discards tokens until a statement boundary, bounding
// cascading diagnostics to one per genuine fault.
func (c *Compiler) synchronize() {
	c.panicMode = false

	for c.current.Type != scanner.EOF {
		if c.previous.Type == scanner.SEMICOLON {
			return
		}
		switch c.current.Type {
		case scanner.CLASS, scanner.FUN, scanner.VAR, scanner.FOR,
			scanner.IF, scanner.WHILE, scanner.PRINT, scanner.RETURN:
			return
		}

		c.advance()
	}
}

// declarations and statements ===============================================

func (c *Compiler) declaration() {
	if c.match(scanner.VAR) {
		c.varDeclaration()
	} else {
		c.statement()
	}

	if c.panicMode {
		c.synchronize()
	}
}

func (c *Compiler) statement() {
	switch {
	case c.match(scanner.PRINT):
		c.printStatement()
	case c.match(scanner.IF):
		c.ifStatement()
	case c.match(scanner.WHILE):
		c.whileStatement()
	case c.match(scanner.FOR):
		c.forStatement()
	case c.match(scanner.LBRACE):
		c.beginScope()
		c.block()
		c.endScope()
	default:
		c.expressionStatement()
	}
}

func (c *Compiler) varDeclaration() {
	global := c.parseVariable("Expect variable name.")

	if c.match(scanner.ASSIGN) {
		c.expression()
	} else {
		c.emitByte(bytecode.OpNil)
	}
	c.consume(scanner.SEMICOLON, "Expect ';' after variable declaration.")

	c.defineVariable(global)
}

func (c *Compiler) printStatement() {
	c.expression()
	c.consume(scanner.SEMICOLON, "Expect ';' after value.")
	c.emitByte(bytecode.OpPrint)
}

func (c *Compiler) ifStatement() {
	c.consume(scanner.LPAREN, "Expect '(' after 'if'.")
	c.expression()
	c.consume(scanner.RPAREN, "Expect ')' after condition.")

	thenJump := c.emitJump(bytecode.OpJumpIfFalse)
	c.emitByte(bytecode.OpPop)
	c.statement()

	elseJump := c.emitJump(bytecode.OpJump)

	c.patchJump(thenJump)
	c.emitByte(bytecode.OpPop)

	if c.match(scanner.ELSE) {
		c.statement()
	}

	c.patchJump(elseJump)
}

func (c *Compiler) whileStatement() {
	loopStart := c.chunk.Size()

	c.consume(scanner.LPAREN, "Expect '(' after 'while'.")
	c.expression()
	c.consume(scanner.RPAREN, "Expect ')' after condition.")

	exitJump := c.emitJump(bytecode.OpJumpIfFalse)
	c.emitByte(bytecode.OpPop)
	c.statement()

	c.emitLoop(loopStart)

	c.patchJump(exitJump)
	c.emitByte(bytecode.OpPop)
}

func (c *Compiler) forStatement() {
	c.beginScope()
	c.consume(scanner.LPAREN, "Expect '(' after 'for'.")

	if c.match(scanner.SEMICOLON) {
		// no initializer
	} else if c.match(scanner.VAR) {
		c.varDeclaration()
	} else {
		c.expressionStatement()
	}

	loopStart := c.chunk.Size()
	exitJump := -1
	if !c.match(scanner.SEMICOLON) {
		c.expression()
		c.consume(scanner.SEMICOLON, "Expect ';' after loop condition.")

		exitJump = c.emitJump(bytecode.OpJumpIfFalse)
		c.emitByte(bytecode.OpPop)
	}

	if !c.match(scanner.RPAREN) {
		bodyJump := c.emitJump(bytecode.OpJump)
		incrementStart := c.chunk.Size()
		c.expression()
		c.emitByte(bytecode.OpPop)
		c.consume(scanner.RPAREN, "Expect ')' after for clauses.")

		c.emitLoop(loopStart)
		loopStart = incrementStart
		c.patchJump(bodyJump)
	}

	c.statement()
	c.emitLoop(loopStart)

	if exitJump != -1 {
		c.patchJump(exitJump)
		c.emitByte(bytecode.OpPop)
	}

	c.endScope()
}

func (c *Compiler) block() {
	for !c.check(scanner.RBRACE) && !c.check(scanner.EOF) {
		c.declaration()
	}
	c.consume(scanner.RBRACE, "Expect '}' after block.")
}

func (c *Compiler) expressionStatement() {
	c.expression()
	c.consume(scanner.SEMICOLON, "Expect ';' after expression.")
	c.emitByte(bytecode.OpPop)
}

func (c *Compiler) beginScope() {
	c.scope.begin()
}

func (c *Compiler) endScope() {
	c.scope.end()
	c.scope.discard(func() { c.emitByte(bytecode.OpPop) })
}

// variables =================================================================

func (c *Compiler) parseVariable(message string) byte {
	c.consume(scanner.ID, message)

	c.declareVariable()
	if c.scope.depth > 0 {
		return 0
	}

	return c.identifierConstant(c.previous)
}

func (c *Compiler) declareVariable() {
	if c.scope.depth == 0 {
		return
	}

	if c.scope.declaredInScope(c.previous.Lexeme) {
		c.error("Already a variable with this name in this scope.")
	}
	if !c.scope.add(c.previous) {
		c.error("Too many local variables in function.")
	}
}

func (c *Compiler) defineVariable(global byte) {
	if c.scope.depth > 0 {
		c.scope.markInitialized()
		return
	}

	c.emitBytes(bytecode.OpDefineGlobal, global)
}

func (c *Compiler) identifierConstant(tok scanner.Token) byte {
	return c.makeConstant(bytecode.String(tok.Lexeme))
}

func (c *Compiler) namedVariable(tok scanner.Token, canAssign bool) {
	var getOp, setOp, arg byte

	slot, state := c.scope.resolve(tok.Lexeme)
	switch state {
	case localUninitialized:
		c.error("Can't read local variable in its own initializer.")
		return
	case localFound:
		getOp, setOp = bytecode.OpGetLocal, bytecode.OpSetLocal
		arg = byte(slot)
	case localNotFound:
		getOp, setOp = bytecode.OpGetGlobal, bytecode.OpSetGlobal
		arg = c.identifierConstant(tok)
	}

	if canAssign && c.match(scanner.ASSIGN) {
		c.expression()
		c.emitBytes(setOp, arg)
	} else {
		c.emitBytes(getOp, arg)
	}
}

// expressions ===============================================================

func (c *Compiler) expression() {
	c.parsePrecedence(precAssignment)
}

// parsePrecedence parses everything at the given precedence or higher:
// one prefix action, then infix actions while they bind at least as
// tightly. canAssign gates '=' to assignment-level contexts.
func (c *Compiler) parsePrecedence(prec precedence) {
	c.advance()
	rule := ruleFor(c.previous.Type)
	if rule.prefix == actNone {
		c.error("Expect expression.")
		return
	}

	canAssign := prec <= precAssignment
	c.applyAction(rule.prefix, canAssign)

	for prec <= ruleFor(c.current.Type).prec {
		c.advance()
		c.applyAction(ruleFor(c.previous.Type).infix, canAssign)
	}

	if canAssign && c.match(scanner.ASSIGN) {
		c.error("Invalid assignment target.")
	}
}

// applyAction dispatches a rule-table action identifier to its parse
// routine.
func (c *Compiler) applyAction(a action, canAssign bool) {
	switch a {
	case actGrouping:
		c.grouping()
	case actUnary:
		c.unary()
	case actBinary:
		c.binary()
	case actNumber:
		c.number()
	case actString:
		c.stringLiteral()
	case actLiteral:
		c.literal()
	case actVariable:
		c.variable(canAssign)
	case actAnd:
		c.and()
	case actOr:
		c.or()
	case actNone:
		// unreachable: parsePrecedence never dispatches an empty rule
	}
}

func (c *Compiler) grouping() {
	c.expression()
	c.consume(scanner.RPAREN, "Expect ')' after expression.")
}

func (c *Compiler) unary() {
	operator := c.previous.Type

	c.parsePrecedence(precUnary)

	switch operator {
	case scanner.MINUS:
		c.emitByte(bytecode.OpNegate)
	case scanner.BANG:
		c.emitByte(bytecode.OpNot)
	}
}

func (c *Compiler) binary() {
	operator := c.previous.Type
	rule := ruleFor(operator)
	c.parsePrecedence(rule.prec + 1)

	switch operator {
	case scanner.NEQ:
		c.emitBytes(bytecode.OpEqual, bytecode.OpNot)
	case scanner.EQ:
		c.emitByte(bytecode.OpEqual)
	case scanner.GT:
		c.emitByte(bytecode.OpGreater)
	case scanner.GE:
		c.emitBytes(bytecode.OpLess, bytecode.OpNot)
	case scanner.LT:
		c.emitByte(bytecode.OpLess)
	case scanner.LE:
		c.emitBytes(bytecode.OpGreater, bytecode.OpNot)
	case scanner.PLUS:
		c.emitByte(bytecode.OpAdd)
	case scanner.MINUS:
		c.emitByte(bytecode.OpSubtract)
	case scanner.STAR:
		c.emitByte(bytecode.OpMultiply)
	case scanner.SLASH:
		c.emitByte(bytecode.OpDivide)
	}
}

func (c *Compiler) number() {
	value, err := strconv.ParseFloat(c.previous.Lexeme, 64)
	if err != nil {
		c.error("Invalid number literal.")
		return
	}
	c.emitConstant(bytecode.Number(value))
}

func (c *Compiler) stringLiteral() {
	// strip the surrounding quotes
	lexeme := c.previous.Lexeme
	c.emitConstant(bytecode.String(lexeme[1 : len(lexeme)-1]))
}

func (c *Compiler) literal() {
	switch c.previous.Type {
	case scanner.NIL:
		c.emitByte(bytecode.OpNil)
	case scanner.TRUE:
		c.emitByte(bytecode.OpTrue)
	case scanner.FALSE:
		c.emitByte(bytecode.OpFalse)
	}
}

func (c *Compiler) variable(canAssign bool) {
	c.namedVariable(c.previous, canAssign)
}

func (c *Compiler) and() {
	endJump := c.emitJump(bytecode.OpJumpIfFalse)

	c.emitByte(bytecode.OpPop)
	c.parsePrecedence(precAnd)

	c.patchJump(endJump)
}

func (c *Compiler) or() {
	elseJump := c.emitJump(bytecode.OpJumpIfFalse)
	endJump := c.emitJump(bytecode.OpJump)

	c.patchJump(elseJump)
	c.emitByte(bytecode.OpPop)

	c.parsePrecedence(precOr)
	c.patchJump(endJump)
}

// code emission =============================================================

func (c *Compiler) emitByte(b byte) {
	c.chunk.Write(b, c.previous.Line)
}

func (c *Compiler) emitBytes(b1, b2 byte) {
	c.emitByte(b1)
	c.emitByte(b2)
}

func (c *Compiler) emitReturn() {
	c.emitByte(bytecode.OpReturn)
}

func (c *Compiler) emitConstant(v bytecode.Value) {
	c.emitBytes(bytecode.OpConstant, c.makeConstant(v))
}

func (c *Compiler) makeConstant(v bytecode.Value) byte {
	constant := c.chunk.AddConstant(v)
	if constant >= bytecode.MaxConstants {
		c.error("Too many constants in one chunk.")
		return 0
	}
	return byte(constant)
}

// emitJump writes the opcode and a two-byte placeholder, returning the
// placeholder's offset for patchJump.
func (c *Compiler) emitJump(op byte) int {
	c.emitByte(op)
	c.emitByte(0xFF)
	c.emitByte(0xFF)
	return c.chunk.Size() - 2
}

// patchJump overwrites the placeholder at offset with the displacement
// from the instruction after it to the current end of code.
func (c *Compiler) patchJump(offset int) {
	jump := c.chunk.Size() - offset - 2

	if jump > math.MaxUint16 {
		c.error("Too much code to jump over.")
	}

	c.chunk.PatchUint16(offset, uint16(jump))
}

func (c *Compiler) emitLoop(loopStart int) {
	c.emitByte(bytecode.OpLoop)

	offset := c.chunk.Size() - loopStart + 2
	if offset > math.MaxUint16 {
		c.error("Loop body too large.")
	}

	c.emitByte(byte((offset >> 8) & 0xFF))
	c.emitByte(byte(offset & 0xFF))
}
