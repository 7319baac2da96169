// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package input

import (
	"io"
	"strings"
	"unicode"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var skippedElements = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
	atom.Svg:      true,
	atom.Iframe:   true,
}

// paragraph elements are separated by a blank line, line elements by a newline
var (
	paragraphElements = map[atom.Atom]bool{
		atom.P: true, atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
		atom.Pre: true, atom.Blockquote: true, atom.Table: true, atom.Ul: true, atom.Ol: true, atom.Dl: true,
		atom.Section: true, atom.Article: true, atom.Header: true, atom.Footer: true, atom.Figure: true, atom.Hr: true,
	}
	lineElements = map[atom.Atom]bool{
		atom.Br: true, atom.Div: true, atom.Li: true, atom.Tr: true, atom.Title: true, atom.Dt: true, atom.Dd: true,
		atom.Nav: true, atom.Main: true, atom.Aside: true, atom.Figcaption: true, atom.Caption: true,
	}
)

// 🧹 ExtractText renders the readable text of an HTML document. Scripts and
// styles are dropped, block elements become line breaks and whitespace is
// collapsed outside <pre>.
func ExtractText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", errors.Errorf("parsing html: %w", err)
	}

	w := &textWriter{}
	w.walk(doc)

	return w.String(), nil
}

type textWriter struct {
	b     strings.Builder
	last  rune
	space bool
	pre   int
}

func (w *textWriter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		if skippedElements[n.DataAtom] {
			return
		}
	}

	w.open(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
	w.close(n)
}

func (w *textWriter) open(n *html.Node) {
	if n.Type != html.ElementNode {
		return
	}
	switch {
	case paragraphElements[n.DataAtom]:
		w.blankLine()
	case lineElements[n.DataAtom]:
		w.newline()
	}
	if n.DataAtom == atom.Pre {
		w.pre++
	}
}

func (w *textWriter) close(n *html.Node) {
	if n.Type != html.ElementNode {
		return
	}
	if n.DataAtom == atom.Pre {
		w.pre--
	}
	switch {
	case paragraphElements[n.DataAtom]:
		w.blankLine()
	case lineElements[n.DataAtom]:
		w.newline()
	}
}

func (w *textWriter) text(s string) {
	if w.pre > 0 {
		w.write(s)
		return
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			w.space = true
			continue
		}
		if w.space && w.last != '\n' && w.last != 0 {
			w.writeRune(' ')
		}
		w.space = false
		w.writeRune(r)
	}
}

func (w *textWriter) newline() {
	w.space = false
	if w.last != '\n' && w.last != 0 {
		w.writeRune('\n')
	}
}

func (w *textWriter) blankLine() {
	w.newline()
	if w.last != 0 && !strings.HasSuffix(w.b.String(), "\n\n") {
		w.writeRune('\n')
	}
}

func (w *textWriter) write(s string) {
	for _, r := range s {
		w.writeRune(r)
	}
}

func (w *textWriter) writeRune(r rune) {
	w.b.WriteRune(r)
	w.last = r
}

// String trims trailing spaces from every line and squeezes runs of blank
// lines into one.
func (w *textWriter) String() string {
	lines := strings.Split(w.b.String(), "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.Trim(strings.Join(out, "\n"), "\n")
}
