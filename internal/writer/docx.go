package writer

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// implDocx writes a title paragraph followed by one paragraph per line.
type implDocx struct{}

func (implDocx) Ext() string { return ".docx" }

func (implDocx) Write(path, title string, lines []string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	if title != "" {
		addRun(doc.AddParagraph(""), title, titleSize).Bold(true)
		doc.AddParagraph("")
	}
	for _, l := range lines {
		addRun(doc.AddParagraph(""), l, fontSize)
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func addRun(p *docx.Paragraph, text string, size uint64) *docx.Run {
	return p.AddText(text).Font(fontName).Size(size).Color("000000")
}
