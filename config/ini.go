package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// LoadINI consults, in order, $HOME/.smenurc then $PWD/.smenurc (spec
// §6), merging any keys present into cfg. A missing file is not an
// error; a malformed one is.
func LoadINI(cfg *Config) error {
	paths := candidatePaths()
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		f, err := ini.Load(p)
		if err != nil {
			return errors.Wrapf(err, "config: failed to load %s", p)
		}
		applyINI(cfg, f)
	}
	return nil
}

func candidatePaths() []string {
	var out []string
	if home, err := os.UserHomeDir(); err == nil {
		out = append(out, filepath.Join(home, ".smenurc"))
	}
	if wd, err := os.Getwd(); err == nil {
		out = append(out, filepath.Join(wd, ".smenurc"))
	}
	return out
}

// applyINI merges recognized [core] section keys into cfg. Unknown
// keys are ignored — the INI loader is a best-effort external
// collaborator, not a strict schema validator.
func applyINI(cfg *Config, f *ini.File) {
	sec := f.Section("core")

	if v := sec.Key("window_height").MustInt(0); v > 0 {
		cfg.WindowHeight = v
	}
	if v := sec.Key("tag_mode").MustBool(cfg.TagMode); v {
		cfg.TagMode = v
	}
	if v := sec.Key("pin_mode").MustBool(cfg.PinMode); v {
		cfg.PinMode = v
	}
	if v := sec.Key("auto_tag").MustBool(cfg.AutoTag); v {
		cfg.AutoTag = v
	}
	if v := sec.Key("keep_spaces").MustBool(cfg.KeepSpaces); v {
		cfg.KeepSpaces = v
	}
	if v := sec.Key("wide").MustBool(cfg.Wide); v {
		cfg.Wide = v
	}
	if v := sec.Key("center").MustBool(cfg.Center); v {
		cfg.Center = v
	}
	if v := sec.Key("tag_separator").String(); v != "" {
		cfg.TagSeparator = v
	}
	if v := sec.Key("direct_access_timeout_ms").MustInt(0); v > 0 {
		cfg.DirectAccessTimeout = time.Duration(v) * time.Millisecond
	}
	if v := sec.Key("search_idle_timeout_s").MustInt(0); v > 0 {
		cfg.SearchIdleTimeout = time.Duration(v) * time.Second
	}
	if v := sec.Key("interrupt_string").String(); v != "" {
		cfg.InterruptString = v
	}
	if v := sec.Key("clean_on_exit").MustBool(true); !v {
		cfg.CleanOnExit = false
	}
}
