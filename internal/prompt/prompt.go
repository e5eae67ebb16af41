// Package prompt provides the system instruction of the site assistant.
// The instruction is written as markdown and flattened to plain text.
package prompt

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

//go:embed persona.md
var defaultPersona []byte

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// Load returns the system prompt read from path, or the embedded persona when path is empty.
func Load(path string) (string, error) {
	source := defaultPersona
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read prompt file: %w", err)
		}
		source = content
	}

	flat := Flatten(source)
	if flat == "" {
		return "", fmt.Errorf("prompt %q is empty", path)
	}
	return flat, nil
}

// Flatten renders markdown as plain text, one line per heading, paragraph,
// list item, table row or code line. Inline markup is dropped.
func Flatten(source []byte) string {
	doc := markdown.Parser().Parse(text.NewReader(source))

	var lines []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading, *ast.Paragraph, *ast.TextBlock:
			line := inlineText(node, source)
			if line == "" {
				return ast.WalkSkipChildren, nil
			}
			if _, ok := node.Parent().(*ast.ListItem); ok && node.PreviousSibling() == nil {
				line = "- " + line
			}
			lines = append(lines, line)
			return ast.WalkSkipChildren, nil

		case *east.TableHeader, *east.TableRow:
			var cells []string
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				cells = append(cells, inlineText(c, source))
			}
			lines = append(lines, strings.Join(cells, " | "))
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock, *ast.CodeBlock:
			segments := node.Lines()
			for i := 0; i < segments.Len(); i++ {
				seg := segments.At(i)
				if line := strings.TrimRight(string(seg.Value(source)), " \t\r\n"); line != "" {
					lines = append(lines, line)
				}
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return strings.Join(lines, "\n")
}

// inlineText concatenates the text under n, turning line breaks into spaces.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch v := node.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		case *ast.AutoLink:
			b.Write(v.URL(source))
		}
		return ast.WalkContinue, nil
	})

	return strings.Join(strings.Fields(b.String()), " ")
}
