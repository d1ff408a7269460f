package converter

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ConvertDir walks the source directory and converts every file whose base
// name matches the filter, strictly one after another. A failing file is
// logged and counted; the rest of the batch continues.
func (c *implConverter) ConvertDir(ctx context.Context, dir string) (Stats, error) {
	files, err := c.discoverFiles(dir)
	if err != nil {
		return Stats{}, fmt.Errorf("discover input files: %w", err)
	}

	if len(files) == 0 {
		c.logger.Info(ctx, "No files matching %q in %s", c.cfg.Convert.Filter, dir)
		return Stats{}, nil
	}

	c.logger.Info(ctx, "Found %d files to convert", len(files))

	var stats Stats
	for i, path := range files {
		c.logger.Info(ctx, "[%d/%d] %s", i+1, len(files), path)

		if _, err := c.ConvertFile(ctx, path); err != nil {
			c.logger.Error(ctx, "Failed to convert %s: %v", path, err)
			stats.Failed++
			continue
		}
		stats.Converted++
	}

	c.logger.Info(ctx, "Batch complete: %d converted, %d failed", stats.Converted, stats.Failed)
	return stats, nil
}

func (c *implConverter) discoverFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	var files []string

	match := func(name string) bool {
		if strings.HasPrefix(name, ".") {
			return false
		}
		ok, err := filepath.Match(c.cfg.Convert.Filter, name)
		return err == nil && ok
	}

	if c.cfg.Convert.Recursive {
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && match(d.Name()) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() && match(e.Name()) {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}
