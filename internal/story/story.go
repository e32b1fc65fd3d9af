// Package story extracts snapshot groups from a markdown story document.
//
// A story interleaves prose with fenced code blocks. A fence whose info
// string names both a language and a block name, e.g.:
//
//	```js app.js
//	console.log("v1")
//	```
//
// is one snapshot occurrence of the group "app.js". Occurrences sharing a
// name form that group's ordered snapshot sequence, in document order. Fences
// without a name are plain illustrations and are skipped.
package story

import (
	"bytes"
	"errors"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var errUnterminatedFence = errors.New("story: unterminated ``` fence")

// Block is one snapshot occurrence extracted from the document.
type Block struct {
	Group      string // block name from the fence info string
	Language   string // language token from the fence info string; may be ""
	Code       string // raw fence content; diffing always runs on this text
	AnchorLine int    // 1-based source line where the fence content starts
}

// SnapshotText returns the fence content with its final line boundary
// removed, so an N-line fence tokenizes into exactly N lines.
func (b Block) SnapshotText() string {
	return strings.TrimSuffix(b.Code, "\n")
}

// Parse extracts the ordered snapshot occurrences from markdown source.
func Parse(src []byte) ([]Block, error) {
	if err := validateFences(src); err != nil {
		return nil, err
	}
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))
	if root == nil {
		return nil, errors.New("story: parse markdown: nil document")
	}
	return collectBlocks(src, root)
}

// validateFences rejects unterminated fenced code blocks. Goldmark happily
// treats an unterminated fence as running to EOF, which silently swallows the
// rest of the story.
func validateFences(src []byte) error {
	open := 0 // backtick count of the currently open fence, 0 when closed
	for _, line := range bytes.Split(src, []byte("\n")) {
		trim := bytes.TrimLeft(line, " \t")
		if len(trim) < 3 || trim[0] != '`' {
			continue
		}
		n := countLeading(trim, '`')
		if n < 3 {
			continue
		}
		if open == 0 {
			open = n
			continue
		}
		// Close if the fence has at least as many backticks as the opener.
		if n >= open {
			open = 0
		}
	}
	if open != 0 {
		return errUnterminatedFence
	}
	return nil
}

func countLeading(b []byte, c byte) int {
	n := 0
	for n < len(b) && b[n] == c {
		n++
	}
	return n
}

func collectBlocks(src []byte, root ast.Node) ([]Block, error) {
	var blocks []Block
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		info := ""
		if fcb.Info != nil {
			info = string(fcb.Info.Value(src))
		}
		lang, name := splitInfo(info)
		if name == "" {
			return ast.WalkContinue, nil
		}
		code, start := fencedContent(src, fcb)
		anchorLine := 1
		if start >= 0 {
			anchorLine = 1 + bytes.Count(src[:start], []byte("\n"))
		}
		blocks = append(blocks, Block{
			Group:      name,
			Language:   lang,
			Code:       code,
			AnchorLine: anchorLine,
		})
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

// splitInfo splits a fence info string into its language and block-name
// tokens. Either may be absent.
func splitInfo(info string) (lang, name string) {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return "", ""
	}
	if len(fields) == 1 {
		return fields[0], ""
	}
	return fields[0], fields[1]
}

// fencedContent concatenates the fence's content segments and returns the
// byte offset in src where the content starts (-1 for an empty fence).
func fencedContent(src []byte, fcb *ast.FencedCodeBlock) (code string, start int) {
	lines := fcb.Lines()
	if lines == nil || lines.Len() == 0 {
		return "", -1
	}
	start = -1
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if seg.Start < 0 || seg.Stop < seg.Start || seg.Stop > len(src) {
			continue
		}
		if start == -1 || seg.Start < start {
			start = seg.Start
		}
		buf.Write(src[seg.Start:seg.Stop])
	}
	return buf.String(), start
}
