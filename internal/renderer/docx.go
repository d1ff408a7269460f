package renderer

import (
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/vttmd/internal/transcript"
)

const (
	fontName = "Calibri"
	fontSize = 11
)

// RenderDocx writes the converted transcript as a styled DOCX document:
// bold title, metadata line, participants bullets, then one paragraph per
// utterance with a bold speaker run.
func RenderDocx(meta transcript.Metadata, res transcript.Result, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), meta.Title, true, 16)
	addStyledRun(doc.AddParagraph(""), meta.Date+" · "+meta.Type, false, fontSize)
	doc.AddParagraph("")

	if len(res.Speakers) > 0 {
		addStyledRun(doc.AddParagraph(""), "Participants", true, 14)
		for _, p := range res.Participants() {
			label := p
			if res.Anonymized {
				label += " (anonymized)"
			}
			addStyledRun(doc.AddParagraph(""), "• "+label, false, fontSize)
		}
		doc.AddParagraph("")
	}

	for _, u := range res.Utterances {
		p := doc.AddParagraph("")
		p.AddText(u.Speaker+": ").Font(fontName).Size(fontSize).Color("000000").Bold(true)
		p.AddText(u.Text).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
