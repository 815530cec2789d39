package douceuradapter

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/gorilla/css/scanner"
)

type blockKind uint8

const (
	rulesBlock blockKind = iota
	declarationsBlock
)

// checkRules scans text with the tokenizer douceur uses and rejects input the
// douceur parser cannot make progress on. The parser loops forever on a ';'
// where the prelude of a qualified rule is expected, e.g. in "{color:red;}"
// (which it reads as a block of rules) or in "p;". Rules without a prelude and
// unbalanced braces are rejected as well. Tokenizer errors are left to the
// parser to report.
func checkRules(text string) error {
	blocks := []blockKind{rulesBlock}
	var prelude []*scanner.Token
	scan := scanner.New(text)
	for {
		tok := scan.Next()
		switch tok.Type {
		case scanner.TokenEOF, scanner.TokenError:
			return nil
		case scanner.TokenS, scanner.TokenComment, scanner.TokenCDO, scanner.TokenCDC, scanner.TokenBOM:
			continue
		}
		top := blocks[len(blocks)-1]
		if top == declarationsBlock {
			if isChar(tok, "}") {
				blocks = blocks[:len(blocks)-1]
			}
			continue
		}
		switch {
		case isChar(tok, ";"):
			if len(prelude) == 0 || prelude[0].Type != scanner.TokenAtKeyword {
				return fmt.Errorf("unexpected ';' at %s", tok)
			}
			prelude = prelude[:0]
		case isChar(tok, "{"):
			if len(prelude) == 0 {
				return fmt.Errorf("rule without selector at %s", tok)
			}
			kind := declarationsBlock
			if prelude[0].Type == scanner.TokenAtKeyword {
				at := css.Rule{Kind: css.AtRule, Name: prelude[0].Value}
				if at.EmbedsRules() {
					kind = rulesBlock
				}
			}
			blocks = append(blocks, kind)
			prelude = prelude[:0]
		case isChar(tok, "}"):
			if len(prelude) > 0 || len(blocks) == 1 {
				return fmt.Errorf("unexpected '}' at %s", tok)
			}
			blocks = blocks[:len(blocks)-1]
		default:
			prelude = append(prelude, tok)
		}
	}
}

func isChar(tok *scanner.Token, c string) bool {
	return tok.Type == scanner.TokenChar && tok.Value == c
}
