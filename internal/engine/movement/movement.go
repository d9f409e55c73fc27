package movement

// Movement identifies a navigation command. The set is closed; the
// dispatcher handles every variant.
type Movement int

const (
	// Left moves one grapheme cluster to the left.
	Left Movement = iota
	// Right moves one grapheme cluster to the right.
	Right
	// LeftWord moves to the previous word boundary.
	LeftWord
	// RightWord moves to the next word boundary.
	RightWord
	// LeftOfLine moves to the first position on the line.
	LeftOfLine
	// RightOfLine moves to the last position on the line, before the
	// terminator.
	RightOfLine
	// Up moves up one line.
	Up
	// Down moves down one line.
	Down
	// UpPage moves up by the scroll height.
	UpPage
	// DownPage moves down by the scroll height.
	DownPage
	// StartOfParagraph moves to the previous line-break boundary.
	StartOfParagraph
	// EndOfParagraph moves to before the next line terminator.
	EndOfParagraph
	// StartOfDocument moves to offset 0.
	StartOfDocument
	// EndOfDocument moves to the document length.
	EndOfDocument
)

// String returns the movement name.
func (m Movement) String() string {
	switch m {
	case Left:
		return "left"
	case Right:
		return "right"
	case LeftWord:
		return "left-word"
	case RightWord:
		return "right-word"
	case LeftOfLine:
		return "left-of-line"
	case RightOfLine:
		return "right-of-line"
	case Up:
		return "up"
	case Down:
		return "down"
	case UpPage:
		return "up-page"
	case DownPage:
		return "down-page"
	case StartOfParagraph:
		return "start-of-paragraph"
	case EndOfParagraph:
		return "end-of-paragraph"
	case StartOfDocument:
		return "start-of-document"
	case EndOfDocument:
		return "end-of-document"
	default:
		return "unknown"
	}
}
