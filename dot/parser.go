package dot

import "github.com/nodesketch/dotlayout/graph"

// parser drives a Scanner through the grammar documented in doc.go,
// holding a single token of lookahead.
type parser struct {
	sc     *Scanner
	tok    Token
	g      *graph.DirectedGraph[string]
	labels *graph.NodeMap[string]
	ids    map[string]graph.NodeID
}

func (p *parser) advance() error {
	tok, err := p.sc.Next()
	if err != nil {
		return err
	}
	p.tok = tok

	return nil
}

func (p *parser) expect(k Kind) (Token, error) {
	if p.tok.Kind != k {
		return Token{}, &SyntaxError{
			Pos:     p.tok.Pos,
			Message: "expected " + k.String() + ", found " + p.tok.Kind.String(),
			cause:   ErrUnexpectedToken,
		}
	}
	tok := p.tok
	if err := p.advance(); err != nil {
		return Token{}, err
	}

	return tok, nil
}

// parseGraph parses: "digraph" ID "{" stmt* "}"
func (p *parser) parseGraph() error {
	if _, err := p.expect(Digraph); err != nil {
		return err
	}
	if _, err := p.expect(ID); err != nil {
		return err
	}
	if _, err := p.expect(LeftBrace); err != nil {
		return err
	}

	for p.tok.Kind != RightBrace {
		if p.tok.Kind == EOF {
			return &SyntaxError{Pos: p.tok.Pos, Message: "unexpected EOF, expected }", cause: ErrUnexpectedToken}
		}
		if err := p.parseStatement(); err != nil {
			return err
		}
	}

	_, err := p.expect(RightBrace)

	return err
}

// parseStatement parses either an edgeStmt or a nodeStmt, both
// starting with an ID.
func (p *parser) parseStatement() error {
	first, err := p.expect(ID)
	if err != nil {
		return err
	}
	fromID := p.nodeFor(first.Literal)

	if p.tok.Kind == Arrow {
		if err := p.advance(); err != nil {
			return err
		}
		second, err := p.expect(ID)
		if err != nil {
			return err
		}
		toID := p.nodeFor(second.Literal)

		if p.tok.Kind == LeftBracket {
			if _, err := p.parseAttrList(); err != nil {
				return err
			}
		}
		p.g.AddEdge(graph.NewEdge(fromID, toID))

		return p.skipOptionalSemicolon()
	}

	if p.tok.Kind == LeftBracket {
		attrs, err := p.parseAttrList()
		if err != nil {
			return err
		}
		if label, ok := attrs["label"]; ok {
			p.labels.Set(fromID, label)
		}
	}

	return p.skipOptionalSemicolon()
}

func (p *parser) skipOptionalSemicolon() error {
	if p.tok.Kind == Semicolon {
		return p.advance()
	}

	return nil
}

// parseAttrList parses: "[" (attr ("," attr)*)? "]" and returns every
// key=value pair seen, keys exactly as written; unrecognized attributes
// are kept but otherwise unused.
func (p *parser) parseAttrList() (map[string]string, error) {
	if _, err := p.expect(LeftBracket); err != nil {
		return nil, err
	}

	attrs := make(map[string]string)
	for p.tok.Kind != RightBracket {
		key, err := p.expect(ID)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(Equal); err != nil {
			return nil, err
		}
		value, err := p.expect(ID)
		if err != nil {
			return nil, err
		}
		attrs[key.Literal] = value.Literal

		if p.tok.Kind == Comma {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	_, err := p.expect(RightBracket)

	return attrs, err
}

// nodeFor returns the NodeID for id, creating it (with id as its
// default label) on first use.
func (p *parser) nodeFor(id string) graph.NodeID {
	if nid, ok := p.ids[id]; ok {
		return nid
	}
	nid := p.g.AddLabeledNode(id)
	p.ids[id] = nid
	if p.labels == nil {
		p.labels = graph.NewNodeMap[string](0)
	}
	p.labels.Set(nid, id)

	return nid
}
