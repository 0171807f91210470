package export

// Document is a letter-style page (convocations) rendered by PDFExporter.RenderDocuments.
type Document struct {
	Title    string
	Subtitle string
	Badge    string
	Blocks   []Block
}

// Block is a paragraph group inside a Document. Boxed blocks render as bordered cards.
type Block struct {
	Heading string
	Tag     string
	Lines   []string
	Bullets []string
	Boxed   bool
}

func (b Block) heading() string {
	if b.Tag == "" {
		return b.Heading
	}
	return b.Heading + " – " + b.Tag
}

// Text flattens a document into plain lines.
func (d Document) Text() []string {
	out := []string{d.Title}
	if d.Subtitle != "" {
		out = append(out, d.Subtitle)
	}
	if d.Badge != "" {
		out = append(out, d.Badge)
	}
	for _, b := range d.Blocks {
		if b.Heading != "" {
			out = append(out, b.heading())
		}
		out = append(out, b.Lines...)
		for _, item := range b.Bullets {
			out = append(out, "- "+item)
		}
	}
	return out
}
