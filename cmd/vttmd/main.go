package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/nguyentantai21042004/vttmd/internal/config"
	"github.com/nguyentantai21042004/vttmd/internal/converter"
	"github.com/nguyentantai21042004/vttmd/internal/logger"
	"github.com/nguyentantai21042004/vttmd/internal/summarizer"
	"github.com/nguyentantai21042004/vttmd/internal/transcript"
	"github.com/nguyentantai21042004/vttmd/internal/watcher"
)

const version = "1.0.0"

type stringSlice []string

func (s *stringSlice) String() string { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error {
	if v == "" {
		return nil
	}
	for _, p := range strings.Split(v, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			*s = append(*s, p)
		}
	}
	return nil
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "convert":
		runConvert(os.Args[2:])
	case "batch":
		runBatch(os.Args[2:])
	case "watch":
		runWatch(os.Args[2:])
	case "summarize":
		runSummarize(os.Args[2:])
	case "version":
		fmt.Printf("vttmd %s\n", version)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `vttmd - convert WebVTT transcripts to Markdown

Usage:
  vttmd convert -i meeting.vtt [options]     Convert a single VTT file
  vttmd batch -src dir [options]             Convert all matching files in a directory
  vttmd watch -src dir [options]             Convert new VTT files as they appear
  vttmd summarize -src dir [-dest dir]       Generate Gemini summaries for VTT files
  vttmd version                              Print version

Run any command with -h for its options.
`)
}

// convertFlags is the option surface shared by convert, batch and watch.
type convertFlags struct {
	configPath string
	output     string
	logLevel   string

	title      string
	keywords   string
	docType    string
	documentID string
	related    stringSlice
	links      string

	anonymize       bool
	participantIDs  bool
	noAnonymization bool
	docx            bool

	filter    string
	recursive bool
}

func registerConvertFlags(fs *flag.FlagSet) *convertFlags {
	f := &convertFlags{}

	fs.StringVar(&f.configPath, "config", "", "Optional YAML config file")
	fs.StringVar(&f.output, "o", "", "Output directory (default current directory)")
	fs.StringVar(&f.output, "output", "", "Output directory")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level: debug|info|warn|error")

	fs.StringVar(&f.title, "title", "", "Document title (default derived from filename)")
	fs.StringVar(&f.keywords, "keywords", "", "Extra keywords, comma-separated")
	fs.StringVar(&f.docType, "type", "", "Meeting type for the front matter (default meeting)")
	fs.StringVar(&f.documentID, "document-id", "", "Explicit document id")
	fs.Var(&f.related, "related", "Related document ids (repeatable or comma-separated)")
	fs.StringVar(&f.links, "links", "", `Document links as JSON, e.g. '{"agenda":"https://..."}'`)

	fs.BoolVar(&f.anonymize, "anonymize", true, "Anonymize speaker names")
	fs.BoolVar(&f.participantIDs, "participant-ids", true, "Use P1/P2 labels instead of initials")
	fs.BoolVar(&f.noAnonymization, "no-anonymization", false, "Disable anonymization (overrides -anonymize)")
	fs.BoolVar(&f.docx, "docx", false, "Also write a DOCX rendering")

	fs.StringVar(&f.filter, "filter", "*.vtt", "Filename filter for batch mode")
	fs.BoolVar(&f.recursive, "recursive", false, "Recurse into subdirectories in batch mode")

	return f
}

// buildConfig merges the optional config file with the flags. A flag only
// overrides the file when it was set explicitly on the command line.
func buildConfig(fs *flag.FlagSet, f *convertFlags) (*config.Config, error) {
	var cfg config.Config
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	} else {
		cfg = config.Default()
	}

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if set["o"] || set["output"] {
		cfg.Paths.Output = f.output
	}
	if set["log-level"] {
		cfg.Logging.Level = f.logLevel
	}
	if set["type"] {
		cfg.Convert.MeetingType = f.docType
	}
	if set["anonymize"] {
		cfg.Convert.AnonymizeNames = f.anonymize
	}
	if set["participant-ids"] {
		cfg.Convert.UseParticipantIDs = f.participantIDs
	}
	if set["no-anonymization"] {
		cfg.Convert.NoAnonymization = f.noAnonymization
	}
	if set["docx"] {
		cfg.Convert.DocxOutput = f.docx
	}
	if set["filter"] {
		cfg.Convert.Filter = f.filter
	}
	if set["recursive"] {
		cfg.Convert.Recursive = f.recursive
	}

	return &cfg, nil
}

func metadataOptions(ctx context.Context, f *convertFlags, cfg *config.Config, log logger.Logger) transcript.MetadataOptions {
	return transcript.MetadataOptions{
		Title:            f.title,
		Keywords:         f.keywords,
		Type:             cfg.Convert.MeetingType,
		DocumentID:       f.documentID,
		RelatedDocuments: []string(f.related),
		DocumentLinks:    parseDocumentLinks(ctx, f.links, log),
	}
}

// parseDocumentLinks decodes the -links JSON payload. A malformed payload
// is dropped with a warning; conversion continues without it.
func parseDocumentLinks(ctx context.Context, raw string, log logger.Logger) map[string]string {
	if raw == "" {
		return nil
	}
	links := make(map[string]string)
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		log.Warn(ctx, "Invalid document links payload, ignoring: %v", err)
		return nil
	}
	return links
}

func runConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	f := registerConvertFlags(fs)
	var input string
	fs.StringVar(&input, "i", "", "Input VTT file")
	fs.StringVar(&input, "input", "", "Input VTT file")
	fs.Parse(args)

	if input == "" && fs.NArg() > 0 {
		input = fs.Arg(0)
	}
	if input == "" {
		fmt.Fprintln(os.Stderr, "missing -i input file")
		fs.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	cfg, err := buildConfig(fs, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	conv := converter.New(cfg, metadataOptions(ctx, f, cfg, log), log)

	if _, err := conv.ConvertFile(ctx, input); err != nil {
		log.Error(ctx, "Conversion failed: %v", err)
		os.Exit(1)
	}
}

func runBatch(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	f := registerConvertFlags(fs)
	var src string
	fs.StringVar(&src, "src", "", "Source directory of VTT files")
	fs.Parse(args)

	if src == "" && fs.NArg() > 0 {
		src = fs.Arg(0)
	}
	if src == "" {
		fmt.Fprintln(os.Stderr, "missing -src source directory")
		fs.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	cfg, err := buildConfig(fs, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	conv := converter.New(cfg, metadataOptions(ctx, f, cfg, log), log)

	if _, err := conv.ConvertDir(ctx, src); err != nil {
		log.Error(ctx, "Batch failed: %v", err)
		os.Exit(1)
	}
}

func runWatch(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	f := registerConvertFlags(fs)
	var src string
	fs.StringVar(&src, "src", "", "Directory to watch for new VTT files")
	fs.Parse(args)

	if src == "" && fs.NArg() > 0 {
		src = fs.Arg(0)
	}
	if src == "" {
		fmt.Fprintln(os.Stderr, "missing -src watch directory")
		fs.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	cfg, err := buildConfig(fs, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	conv := converter.New(cfg, metadataOptions(ctx, f, cfg, log), log)

	handler := func(ctx context.Context, path string) error {
		_, err := conv.ConvertFile(ctx, path)
		return err
	}

	w, err := watcher.New(src, handler, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "vttmd %s watching %s (output: %s). Press Ctrl+C to stop", version, src, cfg.Paths.Output)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "vttmd stopped")
}

func runSummarize(args []string) {
	fs := flag.NewFlagSet("summarize", flag.ExitOnError)
	var (
		src        string
		dest       string
		model      string
		apiKeys    string
		configPath string
		logLevel   string
	)
	fs.StringVar(&src, "src", "", "Source directory of VTT files")
	fs.StringVar(&dest, "dest", "", "Destination directory for summaries (default source dir)")
	fs.StringVar(&model, "model", "", "Gemini model (default gemini-2.5-flash)")
	fs.StringVar(&apiKeys, "api-keys", os.Getenv("GEMINI_API_KEYS"), "Comma-separated Gemini API keys (or GEMINI_API_KEYS)")
	fs.StringVar(&configPath, "config", "", "Optional YAML config file")
	fs.StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	fs.Parse(args)

	if src == "" && fs.NArg() > 0 {
		src = fs.Arg(0)
	}
	if src == "" {
		fmt.Fprintln(os.Stderr, "missing -src source directory")
		fs.Usage()
		os.Exit(2)
	}
	if dest == "" {
		dest = src
	}

	ctx := context.Background()

	keys := splitKeys(apiKeys)
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		if len(keys) == 0 {
			keys = cfg.Gemini.APIKeys
		}
		if model == "" {
			model = cfg.Gemini.Model
		}
	}

	log := logger.New(logLevel)
	s := summarizer.New(keys, model, log)

	if err := s.SummarizeAll(ctx, src, dest); err != nil {
		log.Error(ctx, "Summarize failed: %v", err)
		os.Exit(1)
	}
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
