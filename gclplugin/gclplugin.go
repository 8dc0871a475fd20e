// Package gclplugin registers relguard as a golangci-lint module plugin.
//
// Add to .custom-gcl.yml:
//
//	plugins:
//	  - module: 'github.com/relguard/relguard'
//	    import: 'github.com/relguard/relguard/gclplugin'
//	    version: latest
//
// and enable it in .golangci.yml:
//
//	linters:
//	  settings:
//	    custom:
//	      relguard:
//	        type: 'module'
//	        description: 'Reliability and design checks'
//	        settings:
//	          enable: ['finalizer', 'paramcount']
package gclplugin

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"
)

func init() {
	register.Plugin("relguard", New)
}

// Plugin implements register.LinterPlugin.
type Plugin struct {
	settings Settings
}

// New creates the plugin instance from golangci-lint settings.
func New(settings any) (register.LinterPlugin, error) {
	s, err := register.DecodeSettings[Settings](settings)
	if err != nil {
		return nil, err
	}
	return &Plugin{settings: s}, nil
}

// BuildAnalyzers returns the analyzers selected by the settings.
func (p *Plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return p.settings.Analyzers()
}

// GetLoadMode reports that the rules need full type information.
func (p *Plugin) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
