// Package langpack loads per-language Settings from disk. A language pack
// is either a single YAML settings file, or a TOML manifest file listing
// further files (YAML settings files or nested manifests) to merge: the
// same two-type, recursively-resolved bundle format tqw.go uses for game
// world data, repurposed here for language settings bundles.
package langpack

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/Bharath-Kumar-3231/gruut/internal/settings"
)

// MaxManifestRecursionDepth bounds manifest-of-manifests nesting, matching
// tqw.go's limit.
const MaxManifestRecursionDepth = 32

var (
	// ErrManifestEmpty is returned when a manifest file lists no files.
	ErrManifestEmpty = errors.New("langpack: manifest lists no files")
	// ErrManifestStackOverflow is returned when manifest nesting exceeds
	// MaxManifestRecursionDepth.
	ErrManifestStackOverflow = errors.New("langpack: too many manifests deep")
	// ErrManifestCircularRef is returned when a manifest inclusion chain
	// refers back to a file already being loaded.
	ErrManifestCircularRef = errors.New("langpack: manifest inclusion chain refers back to itself")
)

// FileInfo is the common header every langpack file carries: its format
// (currently only "yaml" is recognized for DATA files) and its type, one of
// "DATA" or "MANIFEST".
type FileInfo struct {
	Format string `toml:"format"`
	Type   string `toml:"type"`
}

// Manifest lists further files, relative to the manifest's own directory,
// to merge into one language's settings.
type Manifest struct {
	Files []string `toml:"files"`
}

// langFile is the YAML shape of a single DATA file. It mirrors
// settings.Settings' literal-valued fields; the callback fields (POSTag,
// LookupPhonemes, etc.) are never loaded from disk and must be attached by
// the caller after Load returns. keep_whitespace is decoded and merged but
// not copied into the loaded Settings, which keep the built-in default
// (whitespace kept).
type langFile struct {
	Lang              string            `yaml:"lang"`
	JoinStr           string            `yaml:"join_str"`
	KeepWhitespace    bool              `yaml:"keep_whitespace"`
	BeginPunctuations []string          `yaml:"begin_punctuations"`
	EndPunctuations   []string          `yaml:"end_punctuations"`
	MinorBreaks       []string          `yaml:"minor_breaks"`
	MajorBreaks       []string          `yaml:"major_breaks"`
	WordBreaks        []string          `yaml:"word_breaks"`
	SpellOutWords     map[string]string `yaml:"spell_out_words"`
	NumberLocale      string            `yaml:"number_locale"`
	DateLocale        string            `yaml:"date_locale"`
	DefaultCurrency   string            `yaml:"default_currency"`
	DefaultDateFormat string            `yaml:"default_date_format"`
	Currencies        []struct {
		Symbol      string `yaml:"symbol"`
		Name        string `yaml:"name"`
		SubunitName string `yaml:"subunit_name"`
	} `yaml:"currencies"`
	Abbreviations []struct {
		Pattern  string `yaml:"pattern"`
		Template string `yaml:"template"`
	} `yaml:"abbreviations"`
}

// Load resolves path (a DATA or MANIFEST file) into a fully merged
// settings.Settings, with patterns compiled. Scalar fields from later files
// in a manifest's file list override earlier ones; slice/map fields are
// appended/merged.
func Load(path string) (*settings.Settings, error) {
	merged := &langFile{}
	if err := loadInto(path, merged, nil, 0); err != nil {
		return nil, err
	}
	return toSettings(merged)
}

func loadInto(path string, merged *langFile, stack []string, depth int) error {
	if depth > MaxManifestRecursionDepth {
		return ErrManifestStackOverflow
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	for _, seen := range stack {
		if seen == abs {
			return ErrManifestCircularRef
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("langpack: reading %s: %w", path, err)
	}

	info, err := scanFileInfo(data)
	if err != nil {
		return fmt.Errorf("langpack: scanning header of %s: %w", path, err)
	}

	switch info.Type {
	case "MANIFEST":
		var manif Manifest
		if _, err := toml.Decode(string(data), &manif); err != nil {
			return fmt.Errorf("langpack: decoding manifest %s: %w", path, err)
		}
		if len(manif.Files) == 0 {
			return ErrManifestEmpty
		}
		dir := filepath.Dir(path)
		nextStack := append(append([]string{}, stack...), abs)
		for _, f := range manif.Files {
			if err := loadInto(filepath.Join(dir, f), merged, nextStack, depth+1); err != nil {
				return err
			}
		}
	case "DATA", "":
		var lf langFile
		if err := yaml.Unmarshal(data, &lf); err != nil {
			return fmt.Errorf("langpack: decoding data file %s: %w", path, err)
		}
		mergeLangFile(merged, &lf)
	default:
		return fmt.Errorf("langpack: unrecognized file type %q in %s", info.Type, path)
	}
	return nil
}

// scanFileInfo reads just the TOML header (format/type) from the start of a
// file, the same bounded-prefix-scan trick as tqw.go's ScanFileInfo, so that
// a YAML DATA file can still carry an optional leading TOML-style header
// comment block without a full YAML parse failing on it.
func scanFileInfo(data []byte) (FileInfo, error) {
	topLevelEnd := -1
	onNewLine := false
	for i, b := range data {
		if onNewLine && b == '[' {
			topLevelEnd = i
			break
		}
		if b == '\n' {
			onNewLine = true
		} else if !unicode.IsSpace(rune(b)) {
			onNewLine = false
		}
	}
	scanData := data
	if topLevelEnd != -1 {
		scanData = data[:topLevelEnd]
	}
	var info FileInfo
	if _, err := toml.Decode(string(scanData), &info); err != nil {
		// A pure-YAML data file with no TOML header at all is valid too;
		// treat an unparseable header as "no header, assume DATA".
		return FileInfo{Type: "DATA"}, nil
	}
	if info.Type == "" {
		info.Type = "DATA"
	}
	return info, nil
}

func mergeLangFile(dst, src *langFile) {
	if src.Lang != "" {
		dst.Lang = src.Lang
	}
	if src.JoinStr != "" {
		dst.JoinStr = src.JoinStr
	}
	dst.KeepWhitespace = dst.KeepWhitespace || src.KeepWhitespace
	dst.BeginPunctuations = append(dst.BeginPunctuations, src.BeginPunctuations...)
	dst.EndPunctuations = append(dst.EndPunctuations, src.EndPunctuations...)
	dst.MinorBreaks = append(dst.MinorBreaks, src.MinorBreaks...)
	dst.MajorBreaks = append(dst.MajorBreaks, src.MajorBreaks...)
	dst.WordBreaks = append(dst.WordBreaks, src.WordBreaks...)
	if dst.SpellOutWords == nil {
		dst.SpellOutWords = map[string]string{}
	}
	for k, v := range src.SpellOutWords {
		dst.SpellOutWords[k] = v
	}
	if src.NumberLocale != "" {
		dst.NumberLocale = src.NumberLocale
	}
	if src.DateLocale != "" {
		dst.DateLocale = src.DateLocale
	}
	if src.DefaultCurrency != "" {
		dst.DefaultCurrency = src.DefaultCurrency
	}
	if src.DefaultDateFormat != "" {
		dst.DefaultDateFormat = src.DefaultDateFormat
	}
	dst.Currencies = append(dst.Currencies, src.Currencies...)
	dst.Abbreviations = append(dst.Abbreviations, src.Abbreviations...)
}

func toSettings(lf *langFile) (*settings.Settings, error) {
	s := settings.DefaultEnUS()
	if lf.Lang != "" {
		s.Lang = lf.Lang
	}
	if lf.JoinStr != "" {
		s.JoinStr = lf.JoinStr
	}
	if len(lf.BeginPunctuations) > 0 {
		s.BeginPunctuations = lf.BeginPunctuations
	}
	if len(lf.EndPunctuations) > 0 {
		s.EndPunctuations = lf.EndPunctuations
	}
	if len(lf.MinorBreaks) > 0 {
		s.MinorBreaks = lf.MinorBreaks
	}
	if len(lf.MajorBreaks) > 0 {
		s.MajorBreaks = lf.MajorBreaks
	}
	if len(lf.WordBreaks) > 0 {
		s.WordBreaks = lf.WordBreaks
	}
	for k, v := range lf.SpellOutWords {
		s.SpellOutWords[k] = v
	}
	if lf.NumberLocale != "" {
		s.NumberLocale = lf.NumberLocale
	}
	if lf.DateLocale != "" {
		s.DateLocale = lf.DateLocale
	}
	if lf.DefaultCurrency != "" {
		s.DefaultCurrency = lf.DefaultCurrency
	}
	if lf.DefaultDateFormat != "" {
		s.DefaultDateFormat = lf.DefaultDateFormat
	}
	if len(lf.Currencies) > 0 {
		s.Currencies = s.Currencies[:0]
		for _, c := range lf.Currencies {
			s.Currencies = append(s.Currencies, settings.CurrencyInfo{
				Symbol: c.Symbol, Name: c.Name, SubunitName: c.SubunitName,
			})
		}
	}
	if len(lf.Abbreviations) > 0 {
		s.Abbreviations = s.Abbreviations[:0]
		for _, a := range lf.Abbreviations {
			rule, err := compileAbbreviation(a.Pattern, a.Template, s.MajorBreaks)
			if err != nil {
				return nil, fmt.Errorf("langpack: abbreviation pattern %q: %w", a.Pattern, err)
			}
			s.Abbreviations = append(s.Abbreviations, rule)
		}
	}
	if err := s.CompilePatterns(); err != nil {
		return nil, err
	}
	return s, nil
}
