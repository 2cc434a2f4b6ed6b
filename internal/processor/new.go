package processor

import (
	"github.com/ndhoang91/tubedigest/internal/config"
	"github.com/ndhoang91/tubedigest/internal/digest"
	"github.com/ndhoang91/tubedigest/internal/logger"
)

type implProcessor struct {
	cfg      *config.Config
	digester digest.Digester
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, d digest.Digester, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		digester: d,
		logger:   log,
	}
}
