package summarizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/vttmd/internal/transcript"
)

const summaryPrompt = `You are an expert meeting analyst. Based on the transcript below, write a DETAILED summary in English.

Requirements:
- Start with a one-sentence overview of what the meeting covered
- List ALL main topics and decisions in the order they appear
- Attribute key points to their speakers where the transcript names them
- Use markdown formatting: headings, bullet points, bold for key terms
- End with an "Action items" section if any follow-ups were mentioned

Transcript:
---
%s
---`

// SummarizeAll reads all VTT files from srcDir, calls Gemini for each,
// and writes individual .summary.md files into destDir.
func (s *implSummarizer) SummarizeAll(ctx context.Context, srcDir, destDir string) error {
	if len(s.apiKeys) == 0 {
		return fmt.Errorf("no Gemini API keys configured")
	}

	vttFiles, err := s.discoverVTTFiles(srcDir)
	if err != nil {
		return fmt.Errorf("discover VTT files: %w", err)
	}

	if len(vttFiles) == 0 {
		s.logger.Info(ctx, "No VTT files found in %s", srcDir)
		return nil
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	s.logger.Info(ctx, "Found %d VTT files to summarize", len(vttFiles))

	successCount := 0
	failCount := 0

	for i, vttPath := range vttFiles {
		name := strings.TrimSuffix(filepath.Base(vttPath), filepath.Ext(vttPath))
		s.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, len(vttFiles), name)

		dialogue, err := s.dialogueText(vttPath)
		if err != nil {
			s.logger.Error(ctx, "Failed to read %s: %v", vttPath, err)
			failCount++
			continue
		}
		if dialogue == "" {
			s.logger.Warn(ctx, "No dialogue in %s, skipping", vttPath)
			continue
		}

		summary, err := s.callGemini(ctx, dialogue)
		if err != nil {
			s.logger.Error(ctx, "Failed to summarize %s: %v", name, err)
			failCount++
			continue
		}

		md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
			transcript.TitleFromPath(vttPath),
			time.Now().Format("2006-01-02 15:04"),
			strings.TrimSpace(summary),
		)

		mdPath := filepath.Join(destDir, name+".summary.md")
		if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
			s.logger.Error(ctx, "Failed to write %s: %v", mdPath, err)
			failCount++
			continue
		}

		s.logger.Info(ctx, "[DONE] %s -> %s", name, mdPath)
		successCount++
	}

	s.logger.Info(ctx, "Summary complete: %d success, %d failed", successCount, failCount)
	return nil
}

// dialogueText reconstructs the plain speaker-attributed dialogue of one
// VTT file. Real names are kept; summaries are a local artifact and the
// caller controls whether they are ever shared.
func (s *implSummarizer) dialogueText(vttPath string) (string, error) {
	data, err := os.ReadFile(vttPath)
	if err != nil {
		return "", err
	}

	res := transcript.New(nil).Parse(strings.Split(string(data), "\n"))

	var b strings.Builder
	for _, u := range res.Utterances {
		fmt.Fprintf(&b, "%s: %s\n", u.Speaker, u.Text)
	}
	return b.String(), nil
}

// callGemini sends the dialogue to Gemini and returns the summary text.
// Rotates API keys on 429 / quota errors.
func (s *implSummarizer) callGemini(ctx context.Context, dialogue string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, dialogue)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func (s *implSummarizer) discoverVTTFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) == ".vtt" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
