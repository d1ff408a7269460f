package converter

import (
	"github.com/nguyentantai21042004/vttmd/internal/config"
	"github.com/nguyentantai21042004/vttmd/internal/logger"
	"github.com/nguyentantai21042004/vttmd/internal/transcript"
)

type implConverter struct {
	cfg    *config.Config
	meta   transcript.MetadataOptions
	logger logger.Logger
}

// New creates a Converter. The metadata options apply uniformly to every
// file the instance converts.
func New(cfg *config.Config, meta transcript.MetadataOptions, log logger.Logger) Converter {
	return &implConverter{
		cfg:    cfg,
		meta:   meta,
		logger: log,
	}
}
