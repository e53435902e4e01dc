// Package markdown converts a restricted Markdown dialect into HTML
// fragments, one input line at a time. The dialect supports headings,
// flat unordered ("- ") and ordered ("* ") lists, paragraphs joined
// with <br/>, and four inline transforms (see ProcessLine).
package markdown

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ListKind identifies which wrapper tag an open list was started with.
type ListKind int

const (
	ListNone ListKind = iota
	ListUnordered // "- " marker, <ul>
	ListOrdered   // "* " marker, <ol>
)

func (k ListKind) tag() string {
	if k == ListOrdered {
		return "ol"
	}
	return "ul"
}

// lineClass is the classification variant for one raw input line.
type lineClass int

const (
	classNone lineClass = iota
	classHeading
	classListItem
	classParagraph
)

// classified is the outcome of classifying one raw input line. Exactly
// one transition handler consumes each class.
type classified struct {
	class lineClass
	level int      // heading level; 0 when the #-run has no following space
	kind  ListKind // list marker kind
	text  string   // content to transform and emit
	blank bool     // paragraph line that is empty or all whitespace
}

// classify maps a raw line to its variant. Precedence is fixed: heading,
// then list item, then paragraph-eligible, then none.
func classify(line string) classified {
	if strings.HasPrefix(line, "#") {
		return classifyHeading(line)
	}
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "- "):
		return classified{class: classListItem, kind: ListUnordered, text: trimmed[2:]}
	case strings.HasPrefix(trimmed, "* "):
		return classified{class: classListItem, kind: ListOrdered, text: trimmed[2:]}
	}
	if trimmed == "" || startsParagraph(line) {
		return classified{class: classParagraph, blank: trimmed == "", text: trimmed}
	}
	return classified{class: classNone}
}

func classifyHeading(line string) classified {
	trimmed := strings.TrimSpace(line)
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level >= len(trimmed) || trimmed[level] != ' ' {
		// A marker run with no separating space still counts as a
		// heading so open blocks get closed, but emits nothing.
		return classified{class: classHeading}
	}
	return classified{class: classHeading, level: level, text: trimmed[level+1:]}
}

// startsParagraph reports whether a non-blank raw line can open or
// continue a paragraph: it begins with a letter or with one of the
// inline delimiters.
func startsParagraph(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	if unicode.IsLetter(r) {
		return true
	}
	for _, prefix := range [...]string{"**", "__", "((", "[["} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// blockState is the single open block carried across lines. At most one
// block is ever open; illegal combinations are unrepresentable.
type blockState int

const (
	blockClosed blockState = iota
	blockList
	blockParagraph
)

// Converter is the stateful block emitter. It appends HTML fragments to
// w in emission order and carries the open-block state between calls to
// WriteLine. The zero state has nothing open.
type Converter struct {
	w     io.Writer
	state blockState
	kind  ListKind // wrapper tag of the open list; the last marker seen wins
}

// NewConverter returns a Converter appending to w.
func NewConverter(w io.Writer) *Converter {
	return &Converter{w: w}
}

// WriteLine classifies one input line, performs the block transitions
// its class implies, and emits the transformed content. Unclassifiable
// lines are dropped without touching state.
func (c *Converter) WriteLine(line string) error {
	cl := classify(line)
	switch cl.class {
	case classHeading:
		return c.writeHeading(cl)
	case classListItem:
		return c.writeListItem(cl)
	case classParagraph:
		return c.writeParagraphLine(cl)
	}
	return nil
}

// Flush closes whichever block is still open at end of input.
func (c *Converter) Flush() error {
	if err := c.closeList(); err != nil {
		return err
	}
	return c.closeParagraph("\n</p>\n")
}

func (c *Converter) writeHeading(cl classified) error {
	if err := c.closeList(); err != nil {
		return err
	}
	if err := c.closeParagraph("</p>\n"); err != nil {
		return err
	}
	if cl.level == 0 {
		return nil
	}
	return c.emit(fmt.Sprintf("<h%d>%s</h%d>\n", cl.level, ProcessLine(cl.text), cl.level))
}

func (c *Converter) writeListItem(cl classified) error {
	if err := c.closeParagraph("</p>\n"); err != nil {
		return err
	}
	// The remembered kind follows every marker seen. Switching marker
	// type mid-list does not reopen the wrapper; only the eventual
	// closing tag reflects the switch.
	c.kind = cl.kind
	if c.state != blockList {
		if err := c.emit("<" + c.kind.tag() + ">\n"); err != nil {
			return err
		}
		c.state = blockList
	}
	return c.emit("<li>" + ProcessLine(cl.text) + "</li>\n")
}

func (c *Converter) writeParagraphLine(cl classified) error {
	if err := c.closeList(); err != nil {
		return err
	}
	switch {
	case c.state != blockParagraph && !cl.blank:
		if err := c.emit("<p>\n"); err != nil {
			return err
		}
		c.state = blockParagraph
	case c.state == blockParagraph && cl.blank:
		return c.closeParagraph("\n</p>\n")
	case c.state == blockParagraph:
		if err := c.emit("\n<br/>\n"); err != nil {
			return err
		}
	default:
		// Blank line with nothing open: no-op.
		return nil
	}
	return c.emit(ProcessLine(cl.text))
}

func (c *Converter) closeList() error {
	if c.state != blockList {
		return nil
	}
	if err := c.emit("</" + c.kind.tag() + ">\n"); err != nil {
		return err
	}
	c.state = blockClosed
	return nil
}

func (c *Converter) closeParagraph(closing string) error {
	if c.state != blockParagraph {
		return nil
	}
	if err := c.emit(closing); err != nil {
		return err
	}
	c.state = blockClosed
	return nil
}

func (c *Converter) emit(s string) error {
	if _, err := io.WriteString(c.w, s); err != nil {
		return fmt.Errorf("writing html: %w", err)
	}
	return nil
}

// Convert reads src line by line and appends the corresponding HTML
// fragments to dst, closing any still-open block at end of input. Sink
// and source errors propagate; there is no recovery or retry.
func Convert(dst io.Writer, src io.Reader) error {
	c := NewConverter(dst)
	sc := bufio.NewScanner(src)
	for sc.Scan() {
		if err := c.WriteLine(sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return c.Flush()
}
