/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"
	"os"

	"dirpx.dev/pyerr/catalog"
	"dirpx.dev/pyerr/explain"
	"dirpx.dev/pyerr/locale"
	"dirpx.dev/pyerr/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the state shared by every subcommand. It is filled by the root
// command's PersistentPreRunE.
type app struct {
	locale     string
	localesDir string
	verbose    bool

	logger *zap.Logger
	cat    *catalog.Catalog
	svc    *service.Service
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "pyerr",
		Short:        "Explain interpreter error messages to novice programmers",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&a.locale, "locale", "l", string(locale.Spanish), "locale of the explanations")
	f.StringVar(&a.localesDir, "locales-dir", "", "directory with extra YAML catalogs")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newExplainCmd(a),
		newKindsCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) setup() error {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if a.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	a.logger = logger

	def, err := locale.Parse(a.locale)
	if err != nil {
		return fmt.Errorf("--locale %q: %w", a.locale, err)
	}

	opts := []catalog.Option{catalog.WithLogger(logger)}
	if a.localesDir != "" {
		if _, err := os.Stat(a.localesDir); err != nil {
			return fmt.Errorf("--locales-dir: %w", err)
		}
		opts = append(opts, catalog.WithFS(os.DirFS(a.localesDir)))
	}
	a.cat, err = catalog.New(opts...)
	if err != nil {
		return err
	}
	if !a.cat.Has(def) {
		return fmt.Errorf("--locale %q: no catalog (available: %v)", def, a.cat.Locales())
	}

	a.svc = service.New(explain.New(explain.WithLogger(logger)), a.cat,
		service.WithDefaultLocale(def),
		service.WithLogger(logger))
	logger.Debug("pyerr ready",
		zap.String("locale", string(def)),
		zap.Int("locales", len(a.cat.Locales())))
	return nil
}
