package converter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/vttmd/internal/anonymizer"
	"github.com/nguyentantai21042004/vttmd/internal/renderer"
	"github.com/nguyentantai21042004/vttmd/internal/transcript"
)

// ConvertFile reads one VTT file, reconstructs the transcript and writes
// <basename>.md into the output directory. The anonymization mapping is
// built from empty for every file; it never crosses file boundaries.
func (c *implConverter) ConvertFile(ctx context.Context, inputPath string) (string, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	c.logger.Info(ctx, "Converting: %s", inputPath)

	var anon anonymizer.Anonymizer
	if c.cfg.Convert.Anonymize() {
		anon = anonymizer.New(c.cfg.Convert.UseParticipantIDs)
	}

	parser := transcript.New(anon)
	res := parser.Parse(strings.Split(string(data), "\n"))

	if len(res.Utterances) == 0 {
		c.logger.Warn(ctx, "No speaker turns recognized in %s", inputPath)
	}

	meta := transcript.BuildMetadata(inputPath, c.meta, res, time.Now())

	md, err := renderer.RenderMarkdown(meta, res)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	if err := os.MkdirAll(c.cfg.Paths.Output, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	outPath := filepath.Join(c.cfg.Paths.Output, base+".md")

	if err := os.WriteFile(outPath, []byte(md), 0644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}

	if c.cfg.Convert.DocxOutput {
		docxPath := filepath.Join(c.cfg.Paths.Output, base+".docx")
		if err := renderer.RenderDocx(meta, res, docxPath); err != nil {
			return "", fmt.Errorf("write docx: %w", err)
		}
		c.logger.Debug(ctx, "DOCX written: %s", docxPath)
	}

	c.logger.Info(ctx, "Converted: %s -> %s (%d utterances, %d speakers)",
		inputPath, outPath, len(res.Utterances), len(res.Speakers))
	return outPath, nil
}
