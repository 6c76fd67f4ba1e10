// Package lang implements brief, a small imperative scripting language with
// 32-bit integers, strings, booleans, parameterless functions and a single
// flat global namespace.
//
// Source text flows through three stages:
//
//   - [Tokenize] turns text into a sequence of [Token] ending with [KindEOF].
//   - [Parse] builds a [Program] by recursive descent.
//   - [Interpreter.Execute] walks the tree against a shared [Env].
//
// [Run] chains all three with a fresh interpreter.
//
// # Grammar
//
// Informal EBNF:
//
//	Program     → Statement* EOF
//	Statement   → Declaration | While | If | Function | Print
//	            | Identifier '=' Expression
//	            | Identifier '!'
//	Declaration → ('declare' | 'v') Identifier '=' Expression
//	While       → ('while' | 'w') Expression Block
//	If          → ('if' | 'i') Expression Block
//	Function    → ('func' | 'f') Identifier Block
//	Print       → ('print' | 'p') Expression
//	Block       → '{' Statement* '}'
//	Expression  → Simple (('&&' | '||') Simple)*
//	Simple      → Term (SimpleOp Term)*
//	SimpleOp    → '+' | '-' | '*' | '/' | '%' | '<' | '>' | '<=' | '>='
//	            | '==' | '!=' | '='
//	Term        → Factor (('=' | '!=') Factor)*
//	Factor      → Number | String | Boolean | Identifier
//	            | '(' Expression ')'
//	            | ('-' | '!') Expression
//
// All arithmetic and comparison operators share one left-associative tier,
// so 1 + 2 * 3 is 9. A prefix operator applies to the entire expression that
// follows it, so -3 + 2 is -5. Both operands of && and || are always
// evaluated.
//
// # Example
//
//	declare n = 0
//	func bump {
//	  n = n + 1
//	}
//	while n < 3 {
//	  bump!
//	}
//	print "n is " + "three"
//	if n = 3 { print n }
//
// # Errors
//
// Every error returned by this package derives from one of the exported
// Err* sentinels and matches it with [errors.Is]. [IsSyntaxError] and
// [IsRuntimeError] classify an error by stage. Errors carry structured
// attributes and implement [log/slog.LogValuer].
package lang
