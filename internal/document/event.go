package document

// EventKind classifies a markdown parse event.
type EventKind int

// Event kinds emitted by a markdown event source.
const (
	EventStart EventKind = iota
	EventEnd
	EventText
	EventCode
	EventSoftBreak
	EventHardBreak
	EventRule
	EventHTML
	EventTaskListMarker
	EventFootnoteReference
)

// Tag names the container opened or closed by a Start/End event.
type Tag int

// Container tags. Tags after TagLink carry no meaning for the compiler and
// are folded into an ignored context.
const (
	TagParagraph Tag = iota
	TagHeading
	TagList
	TagItem
	TagTable
	TagTableHead
	TagTableRow
	TagTableCell
	TagEmphasis
	TagStrong
	TagLink
	TagBlockQuote
	TagCodeBlock
	TagImage
	TagStrikethrough
	TagOther
)

var tagNames = [...]string{
	TagParagraph:     "Paragraph",
	TagHeading:       "Heading",
	TagList:          "List",
	TagItem:          "Item",
	TagTable:         "Table",
	TagTableHead:     "TableHead",
	TagTableRow:      "TableRow",
	TagTableCell:     "TableCell",
	TagEmphasis:      "Emphasis",
	TagStrong:        "Strong",
	TagLink:          "Link",
	TagBlockQuote:    "BlockQuote",
	TagCodeBlock:     "CodeBlock",
	TagImage:         "Image",
	TagStrikethrough: "Strikethrough",
	TagOther:         "Other",
}

func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return "Unknown"
	}
	return tagNames[t]
}

// Event is one item of the markdown event stream.
// Level is only meaningful for heading start events, Text for Text and Code.
type Event struct {
	Kind  EventKind
	Tag   Tag
	Level int
	Text  string
}

// Start returns a start event for tag.
func Start(tag Tag) Event { return Event{Kind: EventStart, Tag: tag} }

// End returns an end event for tag.
func End(tag Tag) Event { return Event{Kind: EventEnd, Tag: tag} }

// StartHeading returns a heading start event with the given level.
func StartHeading(level int) Event {
	return Event{Kind: EventStart, Tag: TagHeading, Level: level}
}

// Text returns a text event.
func Text(s string) Event { return Event{Kind: EventText, Text: s} }

// Code returns an inline code event.
func Code(s string) Event { return Event{Kind: EventCode, Text: s} }

// HTML returns a raw HTML event.
func HTML(s string) Event { return Event{Kind: EventHTML, Text: s} }

// Convenience values for the payload-free events.
var (
	SoftBreak = Event{Kind: EventSoftBreak}
	HardBreak = Event{Kind: EventHardBreak}
	Rule      = Event{Kind: EventRule}
)
