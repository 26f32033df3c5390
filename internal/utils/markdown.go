package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// StripMarkdown remove a formatação markdown de uma descrição de vídeo e
// devolve texto plano com espaçamento normalizado, pronto para tokenização.
func StripMarkdown(text string) string {
	if text == "" {
		return ""
	}

	doc := markdown.Parse([]byte(text), nil)

	var buf bytes.Buffer
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if leaf := node.AsLeaf(); leaf != nil && len(leaf.Literal) > 0 {
			buf.Write(leaf.Literal)
			buf.WriteByte(' ')
		}
		return ast.GoToNext
	})

	return strings.Join(strings.Fields(buf.String()), " ")
}
