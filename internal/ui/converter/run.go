// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package converter

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/basecalc/internal/config"
)

// Run shows the form until the user quits. When configPath names an
// existing file it is watched and every change is delivered to the model
// as a ConfigReloadedMsg.
func Run(ctx context.Context, opts Options, configPath string) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
		opts.Logger = logger
	}

	p := tea.NewProgram(
		New(opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if configPath != "" {
		w, err := config.NewWatcher(configPath, config.DefaultWatchDebounce, func(cfg *config.Config, err error) {
			p.Send(ConfigReloadedMsg{Config: cfg, Err: err})
		})
		if err != nil {
			logger.Warn("config watcher unavailable", zap.Error(err))
		} else if err := w.Start(ctx); err != nil {
			logger.Warn("config watcher unavailable", zap.Error(err))
			w.Close()
		} else {
			defer w.Close()
			logger.Debug("watching config", zap.String("path", configPath))
		}
	}

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running converter: %w", err)
	}
	return nil
}
