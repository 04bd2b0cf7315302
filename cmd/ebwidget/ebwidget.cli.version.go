package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/itsatony/go-ebwidget"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// versionConfig holds parsed version command configuration
type versionConfig struct {
	format string
}

// versionInfo is the version report, also used as JSON output
type versionInfo struct {
	Version   string   `json:"version"`
	Commit    string   `json:"commit"`
	Branch    string   `json:"branch"`
	BuildTime string   `json:"build_time"`
	GoVersion string   `json:"go_version"`
	ScriptURL string   `json:"script_url"`
	Languages []string `json:"languages"`
}

// versionsYAML is the subset of versions.yaml the CLI reports
type versionsYAML struct {
	Project struct {
		Version string `yaml:"version"`
	} `yaml:"project"`
	Git struct {
		Commit string `yaml:"commit"`
		Branch string `yaml:"branch"`
	} `yaml:"git"`
	Build struct {
		Time string `yaml:"time"`
	} `yaml:"build"`
}

// versionFileSearchPaths are checked in order; the first readable file wins
var versionFileSearchPaths = []string{"versions.yaml", "../versions.yaml", "../../versions.yaml"}

func runVersion(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseVersionFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}

	info := getVersionInfo()

	if cfg.format == OutputFormatJSON {
		jsonBytes, _ := json.MarshalIndent(info, "", "  ")
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}
	fmt.Fprintf(stdout, VersionTextTemplate+FmtNewline,
		info.Version, info.Commit, info.Branch, info.BuildTime, info.GoVersion)
	return ExitCodeSuccess
}

func parseVersionFlags(args []string) (*versionConfig, error) {
	fs := pflag.NewFlagSet(CmdNameVersion, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &versionConfig{}
	fs.StringVarP(&cfg.format, FlagFormat, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

// getVersionInfo prefers versions.yaml and falls back to the module build info
func getVersionInfo() *versionInfo {
	info := &versionInfo{
		Version:   VersionUnknown,
		Commit:    VersionUnknown,
		Branch:    VersionUnknown,
		BuildTime: VersionUnknown,
		GoVersion: runtime.Version(),
		ScriptURL: ebwidget.DefaultScriptURL,
	}
	for _, tag := range ebwidget.SupportedLanguages {
		info.Languages = append(info.Languages, tag.String())
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			info.Version = strings.TrimPrefix(v, "v")
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Commit = s.Value
			case "vcs.time":
				info.BuildTime = s.Value
			}
		}
	}

	for _, path := range versionFileSearchPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var vy versionsYAML
		if err := yaml.Unmarshal(data, &vy); err != nil {
			continue
		}
		if vy.Project.Version != "" {
			info.Version = vy.Project.Version
		}
		if vy.Git.Commit != "" {
			info.Commit = vy.Git.Commit
		}
		if vy.Git.Branch != "" {
			info.Branch = vy.Git.Branch
		}
		if vy.Build.Time != "" {
			info.BuildTime = vy.Build.Time
		}
		break
	}

	return info
}
