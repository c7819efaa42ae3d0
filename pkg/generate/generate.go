// Package generate realizes an env file from its template.
package generate

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/getcreddy/envgen/pkg/envfile"
	"github.com/getcreddy/envgen/pkg/namegen"
	"github.com/getcreddy/envgen/pkg/secretgen"
	"github.com/getcreddy/envgen/pkg/template"
)

// Default paths, relative to the working directory.
const (
	DefaultTemplatePath = ".env.template"
	DefaultOutputPath   = ".env"
)

// Runner holds everything one generation pass needs.
// Zero-value fields fall back to defaults.
type Runner struct {
	Fs     afero.Fs
	Logger hclog.Logger

	TemplatePath    string
	OutputPath      string
	MaxTemplateSize int64

	Users     template.Source
	Passwords template.Source
}

// Run loads the template, substitutes tokens and writes the output file.
// Only a failed removal of the previous output is tolerated.
func (r *Runner) Run() error {
	r.setDefaults()
	log := r.Logger

	log.Info("generating output", "template", r.TemplatePath, "output", r.OutputPath)

	removed, err := envfile.Remove(r.Fs, r.OutputPath)
	if err != nil {
		log.Error("unable to remove existing output", "output", r.OutputPath, "error", err)
	} else if removed {
		log.Debug("existing output was deleted", "output", r.OutputPath)
	}

	text, err := envfile.Load(r.Fs, r.TemplatePath, r.MaxTemplateSize)
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}

	tokens := template.DefaultTokens(r.Users, r.Passwords)
	if log.IsDebug() {
		counts := template.Count(text, tokens)
		log.Debug("generating usernames", "count", counts[template.UserToken])
		log.Debug("generating passwords", "count", counts[template.PasswordToken])
	}

	out, err := template.Substitute(text, tokens)
	if err != nil {
		return fmt.Errorf("failed to substitute tokens: %w", err)
	}

	if err := envfile.Write(r.Fs, r.OutputPath, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.Info("wrote output", "output", r.OutputPath)
	return nil
}

func (r *Runner) setDefaults() {
	if r.Fs == nil {
		r.Fs = afero.NewOsFs()
	}
	if r.Logger == nil {
		r.Logger = hclog.NewNullLogger()
	}
	if r.TemplatePath == "" {
		r.TemplatePath = DefaultTemplatePath
	}
	if r.OutputPath == "" {
		r.OutputPath = DefaultOutputPath
	}
	if r.MaxTemplateSize == 0 {
		r.MaxTemplateSize = envfile.DefaultMaxSize
	}
	if r.Users == nil {
		r.Users = namegen.New(nil)
	}
	if r.Passwords == nil {
		r.Passwords = secretgen.New(nil)
	}
}
