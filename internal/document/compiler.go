package document

type frameKind int

const (
	frameParagraph frameKind = iota
	frameHeading
	frameList
	frameItem
	frameTable
	frameTableHead
	frameTableRow
	frameTableCell
	frameStrong
	frameEmphasis
	frameLink
	frameIgnored
)

// frame is one open parse context. Each kind uses only the accumulators it
// needs: inline containers fill inlines, lists fill items, tables fill rows,
// table rows fill cells. Items collect the entries of nested lists in
// trailing so they can be flattened behind the item itself.
type frame struct {
	kind     frameKind
	level    int
	inlines  []Inline
	items    [][]Inline
	trailing [][]Inline
	rows     [][][]Inline
	cells    [][]Inline
}

func (f *frame) acceptsInlines() bool {
	switch f.kind {
	case frameParagraph, frameHeading, frameItem, frameTableCell,
		frameStrong, frameEmphasis, frameLink:
		return true
	}
	return false
}

func frameKindFor(tag Tag) frameKind {
	switch tag {
	case TagParagraph:
		return frameParagraph
	case TagHeading:
		return frameHeading
	case TagList:
		return frameList
	case TagItem:
		return frameItem
	case TagTable:
		return frameTable
	case TagTableHead:
		return frameTableHead
	case TagTableRow:
		return frameTableRow
	case TagTableCell:
		return frameTableCell
	case TagStrong:
		return frameStrong
	case TagEmphasis:
		return frameEmphasis
	case TagLink:
		return frameLink
	default:
		return frameIgnored
	}
}

// Compiler folds a markdown event stream into blocks.
//
// All open contexts live on a single stack. A Start event pushes a frame; the
// matching End pops it and folds its content into the enclosing frame, or
// into the block list when nothing encloses it. The compiler never panics on
// malformed streams: unmatched End events are ignored, stray text with no
// open inline container is dropped, and frames still open at Finish are
// discarded.
type Compiler struct {
	blocks []Block
	stack  []*frame
}

// NewCompiler returns an empty compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile folds events into blocks in one call.
func Compile(events []Event) []Block {
	c := NewCompiler()
	for _, ev := range events {
		c.Handle(ev)
	}
	return c.Finish()
}

// Handle consumes one event.
func (c *Compiler) Handle(ev Event) {
	switch ev.Kind {
	case EventStart:
		c.open(ev)
	case EventEnd:
		c.close(ev.Tag)
	case EventText, EventCode:
		c.appendText(ev.Text)
	case EventSoftBreak:
		c.appendText(" ")
	case EventHardBreak:
		c.appendInline(LineBreak)
	case EventRule:
		c.blocks = append(c.blocks, Paragraph(NewText("")))
	}
}

// Finish returns the compiled blocks and resets the compiler.
func (c *Compiler) Finish() []Block {
	blocks := c.blocks
	c.blocks = nil
	c.stack = nil
	return blocks
}

func (c *Compiler) open(ev Event) {
	f := &frame{kind: frameKindFor(ev.Tag)}
	if f.kind == frameHeading {
		f.level = clampLevel(ev.Level)
	}
	c.stack = append(c.stack, f)
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}

func (c *Compiler) close(tag Tag) {
	want := frameKindFor(tag)
	for i := len(c.stack) - 1; i >= 0; i-- {
		if c.stack[i].kind != want {
			continue
		}
		f := c.stack[i]
		c.stack = c.stack[:i]
		c.fold(f)
		return
	}
}

func (c *Compiler) fold(f *frame) {
	switch f.kind {
	case frameParagraph:
		if IsBlank(f.inlines) {
			return
		}
		if item := c.nearestContainer(); item != nil && item.kind == frameItem {
			if len(item.inlines) > 0 {
				item.inlines = append(item.inlines, LineBreak)
			}
			item.inlines = append(item.inlines, f.inlines...)
			return
		}
		c.blocks = append(c.blocks, Paragraph(f.inlines...))

	case frameHeading:
		c.blocks = append(c.blocks, Heading(f.level, f.inlines...))

	case frameList:
		if len(f.items) == 0 {
			return
		}
		if item := c.nearestContainer(); item != nil && item.kind == frameItem {
			item.trailing = append(item.trailing, f.items...)
			return
		}
		c.blocks = append(c.blocks, BulletList(f.items...))

	case frameItem:
		list := c.nearest(frameList)
		if list == nil {
			return
		}
		if !IsBlank(f.inlines) {
			list.items = append(list.items, f.inlines)
		}
		list.items = append(list.items, f.trailing...)

	case frameTable:
		if len(f.rows) == 0 {
			return
		}
		c.blocks = append(c.blocks, Table(f.rows...))

	case frameTableHead, frameTableRow:
		table := c.nearest(frameTable)
		if table == nil {
			return
		}
		for _, cell := range f.cells {
			if !IsBlank(cell) {
				table.rows = append(table.rows, f.cells)
				return
			}
		}

	case frameTableCell:
		for i := len(c.stack) - 1; i >= 0; i-- {
			switch c.stack[i].kind {
			case frameTableHead, frameTableRow:
				c.stack[i].cells = append(c.stack[i].cells, f.inlines)
				return
			case frameTable:
				return
			}
		}

	case frameStrong, frameEmphasis:
		if len(f.inlines) > 0 {
			c.appendInline(NewStrong(f.inlines...))
		}

	case frameLink:
		if len(f.inlines) > 0 {
			c.appendInline(NewLink(f.inlines...))
		}
	}
}

// nearest returns the innermost open frame of kind k.
func (c *Compiler) nearest(k frameKind) *frame {
	for i := len(c.stack) - 1; i >= 0; i-- {
		if c.stack[i].kind == k {
			return c.stack[i]
		}
	}
	return nil
}

// nearestContainer returns the innermost open frame that is not ignored.
func (c *Compiler) nearestContainer() *frame {
	for i := len(c.stack) - 1; i >= 0; i-- {
		if c.stack[i].kind != frameIgnored {
			return c.stack[i]
		}
	}
	return nil
}

// inlineTarget returns the innermost frame that collects inlines.
func (c *Compiler) inlineTarget() *frame {
	for i := len(c.stack) - 1; i >= 0; i-- {
		if c.stack[i].acceptsInlines() {
			return c.stack[i]
		}
	}
	return nil
}

func (c *Compiler) appendText(s string) {
	target := c.inlineTarget()
	if target == nil {
		return
	}
	if n := len(target.inlines); n > 0 && target.inlines[n-1].Kind == InlineText {
		target.inlines[n-1].Text += s
		return
	}
	target.inlines = append(target.inlines, NewText(s))
}

func (c *Compiler) appendInline(in Inline) {
	if in.Kind == InlineText {
		c.appendText(in.Text)
		return
	}
	target := c.inlineTarget()
	if target == nil {
		return
	}
	target.inlines = append(target.inlines, in)
}
