package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chrisuehlinger/stylekit/config"
	"github.com/chrisuehlinger/stylekit/css"
	"github.com/chrisuehlinger/stylekit/dom"
	"github.com/chrisuehlinger/stylekit/js"
	"github.com/chrisuehlinger/stylekit/layout"
	"github.com/chrisuehlinger/stylekit/page"
)

func newRunCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "run PAGE.html [SCRIPT.js]",
		Short: "Run scripts against a page and print the resulting inline styles",
		Long: `Load PAGE.html, lay it out at the configured viewport width, run the page's
scripts followed by SCRIPT.js (if given) with $l bound to the css operations,
then print every element that carries an inline style.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			return runPage(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, args)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	return cmd
}

func runPage(out, logOut io.Writer, cfg config.Config, args []string) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	log := logrus.New()
	log.SetOutput(logOut)
	log.SetLevel(level)

	p, err := page.Load(args[0], log)
	if err != nil {
		return err
	}
	scripts := p.Scripts
	if len(args) > 1 {
		code, err := os.ReadFile(args[1])
		if err != nil {
			return errors.Wrap(err, "read script")
		}
		scripts = append(scripts, page.Script{Name: args[1], Code: string(code)})
	}

	doc := p.Document
	log.WithField("url", doc.URL()).WithField("scripts", len(scripts)).Debug("page loaded")
	layout.Layout(doc, cfg.Viewport.Width)
	styler := css.New(
		css.WithDefaultTransition(cfg.DefaultTransition),
		css.WithWindow(dom.NewWindow(doc, cfg.Viewport.Width, cfg.Viewport.Height)),
		css.WithLogger(log),
	)

	rt := js.NewRuntime(log)
	reg := js.NewRegistry()
	js.RegisterStyler(reg, styler)
	err = reg.Install(rt, "$l", func(selector string) ([]css.Element, error) {
		els, err := doc.QuerySelectorAll(selector)
		if err != nil {
			return nil, err
		}
		return css.Elements(els), nil
	})
	if err != nil {
		return errors.Wrap(err, "install $l")
	}

	for _, s := range scripts {
		log.WithField("script", s.Name).Debug("running script")
		// failures are logged by the runtime and counted below
		_ = rt.ExecuteScript(s.Code, s.Name)
	}

	for _, el := range doc.Elements() {
		if style := el.GetAttribute("style"); style != "" {
			fmt.Fprintf(out, "%s\t%s\n", describe(el), style)
		}
	}

	failed := len(rt.Errors()) + len(p.Errors)
	if failed > 0 {
		return errors.Errorf("%d script(s) failed", failed)
	}
	return nil
}

// describe renders el as a simple selector, e.g. li#first.tab.active.
func describe(el *dom.Element) string {
	var sb strings.Builder
	sb.WriteString(el.LocalName())
	if id := el.Id(); id != "" {
		sb.WriteString("#" + id)
	}
	for _, class := range el.TokenList().Values() {
		sb.WriteString("." + class)
	}
	return sb.String()
}
