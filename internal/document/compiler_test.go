package document

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestCompile - Folding well-formed event streams
// ---------------------------------------------------------------------------

func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		events []Event
		want   []Block
	}{
		{
			name:   "empty stream",
			events: nil,
			want:   nil,
		},
		{
			name: "paragraph with coalesced text",
			events: []Event{
				Start(TagParagraph),
				Text("Hello"),
				SoftBreak,
				Text("world"),
				End(TagParagraph),
			},
			want: []Block{Paragraph(NewText("Hello world"))},
		},
		{
			name: "whitespace-only paragraph is dropped",
			events: []Event{
				Start(TagParagraph),
				Text("   "),
				HardBreak,
				End(TagParagraph),
			},
			want: nil,
		},
		{
			name: "empty heading is kept",
			events: []Event{
				StartHeading(2),
				End(TagHeading),
			},
			want: []Block{Heading(2)},
		},
		{
			name: "heading level is clamped",
			events: []Event{
				StartHeading(9),
				Text("Deep"),
				End(TagHeading),
			},
			want: []Block{Heading(6, NewText("Deep"))},
		},
		{
			name: "strong and link nest",
			events: []Event{
				Start(TagParagraph),
				Text("see "),
				Start(TagLink),
				Start(TagStrong),
				Text("docs"),
				End(TagStrong),
				End(TagLink),
				End(TagParagraph),
			},
			want: []Block{Paragraph(
				NewText("see "),
				NewLink(NewStrong(NewText("docs"))),
			)},
		},
		{
			name: "emphasis folds into strong",
			events: []Event{
				Start(TagParagraph),
				Start(TagEmphasis),
				Text("soft"),
				End(TagEmphasis),
				End(TagParagraph),
			},
			want: []Block{Paragraph(NewStrong(NewText("soft")))},
		},
		{
			name: "code span is plain text",
			events: []Event{
				Start(TagParagraph),
				Text("run "),
				Code("go test"),
				Text(" now"),
				End(TagParagraph),
			},
			want: []Block{Paragraph(NewText("run go test now"))},
		},
		{
			name: "hard break becomes line break",
			events: []Event{
				Start(TagParagraph),
				Text("a"),
				HardBreak,
				Text("b"),
				End(TagParagraph),
			},
			want: []Block{Paragraph(NewText("a"), LineBreak, NewText("b"))},
		},
		{
			name:   "rule inserts empty paragraph",
			events: []Event{Rule},
			want:   []Block{Paragraph(NewText(""))},
		},
		{
			name: "tight list",
			events: []Event{
				Start(TagList),
				Start(TagItem), Text("one"), End(TagItem),
				Start(TagItem), Text(" "), End(TagItem),
				Start(TagItem), Text("two"), End(TagItem),
				End(TagList),
			},
			want: []Block{BulletList(
				[]Inline{NewText("one")},
				[]Inline{NewText("two")},
			)},
		},
		{
			name: "list without items is dropped",
			events: []Event{
				Start(TagList),
				Start(TagItem), End(TagItem),
				End(TagList),
			},
			want: nil,
		},
		{
			name: "loose item paragraphs fold into the item",
			events: []Event{
				Start(TagList),
				Start(TagItem),
				Start(TagParagraph), Text("first"), End(TagParagraph),
				Start(TagParagraph), Text("second"), End(TagParagraph),
				End(TagItem),
				End(TagList),
			},
			want: []Block{BulletList(
				[]Inline{NewText("first"), LineBreak, NewText("second")},
			)},
		},
		{
			name: "nested list is flattened after its parent item",
			events: []Event{
				Start(TagList),
				Start(TagItem),
				Text("outer"),
				Start(TagList),
				Start(TagItem), Text("inner"), End(TagItem),
				End(TagList),
				End(TagItem),
				Start(TagItem), Text("last"), End(TagItem),
				End(TagList),
			},
			want: []Block{BulletList(
				[]Inline{NewText("outer")},
				[]Inline{NewText("inner")},
				[]Inline{NewText("last")},
			)},
		},
		{
			name: "table keeps non-blank rows",
			events: []Event{
				Start(TagTable),
				Start(TagTableHead),
				Start(TagTableCell), End(TagTableCell),
				Start(TagTableCell), End(TagTableCell),
				End(TagTableHead),
				Start(TagTableRow),
				Start(TagTableCell), Text("Key"), End(TagTableCell),
				Start(TagTableCell), Start(TagStrong), Text("Value"), End(TagStrong), End(TagTableCell),
				End(TagTableRow),
				End(TagTable),
			},
			want: []Block{Table(
				[][]Inline{
					{NewText("Key")},
					{NewStrong(NewText("Value"))},
				},
			)},
		},
		{
			name: "table without surviving rows is dropped",
			events: []Event{
				Start(TagTable),
				Start(TagTableRow),
				Start(TagTableCell), Text(" "), End(TagTableCell),
				End(TagTableRow),
				End(TagTable),
			},
			want: nil,
		},
		{
			name: "blockquote paragraphs surface as top-level paragraphs",
			events: []Event{
				Start(TagBlockQuote),
				Start(TagParagraph), Text("quoted"), End(TagParagraph),
				End(TagBlockQuote),
			},
			want: []Block{Paragraph(NewText("quoted"))},
		},
		{
			name: "strikethrough text stays plain",
			events: []Event{
				Start(TagParagraph),
				Start(TagStrikethrough), Text("gone"), End(TagStrikethrough),
				End(TagParagraph),
			},
			want: []Block{Paragraph(NewText("gone"))},
		},
		{
			name: "top-level code block text has no container",
			events: []Event{
				Start(TagCodeBlock),
				Text("fmt.Println()\n"),
				End(TagCodeBlock),
			},
			want: nil,
		},
		{
			name: "ignorable events are skipped",
			events: []Event{
				Start(TagParagraph),
				{Kind: EventHTML, Text: "<br>"},
				{Kind: EventTaskListMarker},
				{Kind: EventFootnoteReference, Text: "1"},
				Text("kept"),
				End(TagParagraph),
			},
			want: []Block{Paragraph(NewText("kept"))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Compile(tt.events)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compile() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestCompile_Malformed - Unbalanced streams degrade without panicking
// ---------------------------------------------------------------------------

func TestCompile_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		events []Event
		want   []Block
	}{
		{
			name:   "end without start",
			events: []Event{End(TagParagraph), End(TagList), End(TagTableCell), End(TagOther)},
			want:   nil,
		},
		{
			name:   "text without container",
			events: []Event{Text("orphan"), HardBreak, SoftBreak},
			want:   nil,
		},
		{
			name:   "unclosed paragraph is discarded",
			events: []Event{Start(TagParagraph), Text("never closed")},
			want:   nil,
		},
		{
			name: "item outside any list is dropped",
			events: []Event{
				Start(TagItem), Text("lost"), End(TagItem),
				Start(TagParagraph), Text("kept"), End(TagParagraph),
			},
			want: []Block{Paragraph(NewText("kept"))},
		},
		{
			name: "mismatched end closes the nearest matching frame",
			events: []Event{
				Start(TagParagraph),
				Start(TagStrong),
				Text("dangling"),
				End(TagParagraph),
			},
			want: nil,
		},
		{
			name: "cell outside row is dropped",
			events: []Event{
				Start(TagTable),
				Start(TagTableCell), Text("x"), End(TagTableCell),
				End(TagTable),
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Compile(tt.events)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compile() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompiler_FinishResets(t *testing.T) {
	t.Parallel()

	c := NewCompiler()
	c.Handle(Start(TagParagraph))
	c.Handle(Text("one"))
	c.Handle(End(TagParagraph))
	if got := c.Finish(); len(got) != 1 {
		t.Fatalf("first Finish() returned %d blocks, want 1", len(got))
	}
	if got := c.Finish(); len(got) != 0 {
		t.Errorf("second Finish() returned %d blocks, want 0", len(got))
	}
}
