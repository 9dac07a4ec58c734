package content

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"zielinski.dev/folio-web/internal/config"
	"zielinski.dev/folio-web/internal/project"
)

// templateLocale is the fixed fallback strings document used when a locale
// file is missing or unparsable.
const templateLocale = "template"

// reservedDocuments are content-directory JSON files that are not locale
// strings documents.
var reservedDocuments = map[string]struct{}{
	"settings": {},
	"profile":  {},
	"projects": {},
}

// sampleProjects is the built-in project list used when projects.json is
// missing or not an array. Titles and descriptions key into the template
// strings document.
var sampleProjects = []project.Record{
	{ID: "sample-player", TitleKey: "sample_project_1_title", DescKey: "sample_project_1_desc", VideoID: "dQw4w9WgXcQ"},
	{ID: "sample-gallery", TitleKey: "sample_project_2_title", DescKey: "sample_project_2_desc", Image: "assets/img/sample-gallery.png"},
}

// Assembler loads and merges the content documents into per-locale bundles.
// Settings, profile, and the file-based project list load once; locale
// strings are assembled on demand and cached until invalidated.
type Assembler struct {
	dir string
	log *zap.Logger

	mu           sync.Mutex
	baseLoaded   bool
	settings     config.Settings
	profile      Profile
	fileProjects []project.Record
	bundles      map[string]*Bundle
}

func NewAssembler(dir string, log *zap.Logger) *Assembler {
	return &Assembler{
		dir:     dir,
		log:     log,
		bundles: map[string]*Bundle{},
	}
}

// Settings returns the merged site settings, loading them on first use.
func (a *Assembler) Settings() config.Settings {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ensureBase()
	return a.settings
}

// Assemble returns the resolved bundle for a locale, building it if needed.
// An empty locale selects settings.defaultLanguage.
func (a *Assembler) Assemble(locale string) *Bundle {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ensureBase()
	locale = a.normalizeLocale(locale)
	if b, ok := a.bundles[locale]; ok {
		return b
	}
	b := a.build(locale)
	a.bundles[locale] = b
	return b
}

// Rebuild drops the cached bundle for a locale and assembles it again. Only
// the locale-dependent documents reload; settings, profile, and the project
// file keep their first-load values.
func (a *Assembler) Rebuild(locale string) *Bundle {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ensureBase()
	locale = a.normalizeLocale(locale)
	delete(a.bundles, locale)
	b := a.build(locale)
	a.bundles[locale] = b
	return b
}

// Invalidate clears everything, forcing a full reload on the next request.
// Wired to the content-directory watcher.
func (a *Assembler) Invalidate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.baseLoaded = false
	a.bundles = map[string]*Bundle{}
}

func (a *Assembler) normalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale == "" {
		locale = a.settings.DefaultLanguage
	}
	return locale
}

func (a *Assembler) ensureBase() {
	if a.baseLoaded {
		return
	}
	a.settings = config.DefaultSettings()
	if doc, ok := LoadDocument(filepath.Join(a.dir, "settings.json"), a.log); ok {
		if obj, ok := AsObject(doc); ok {
			a.settings = config.MergeSettings(obj)
		}
	}

	a.profile = Profile{}
	if doc, ok := LoadDocument(filepath.Join(a.dir, "profile.json"), a.log); ok {
		a.profile = ProfileFromDocument(doc)
	}

	a.fileProjects = nil
	if doc, ok := LoadDocument(filepath.Join(a.dir, "projects.json"), a.log); ok {
		if list, ok := project.FromDocument(doc); ok {
			a.fileProjects = list
		}
	}
	if a.fileProjects == nil {
		a.log.Warn("content: using built-in sample project list")
		a.fileProjects = sampleProjects
	}
	a.baseLoaded = true
}

func (a *Assembler) build(locale string) *Bundle {
	doc := a.loadStrings(locale)
	resolved, _ := Resolve(doc, a.profile).(map[string]any)
	if resolved == nil {
		resolved = map[string]any{}
	}

	projects := a.fileProjects
	if override, ok := project.FromDocument(resolved["projects"]); ok && len(override) > 0 {
		projects = override
	}
	projects = project.Normalize(projects)

	backfillAliases(resolved, a.profile)

	return &Bundle{
		Locale:   locale,
		Settings: a.settings,
		Strings:  resolved,
		Profile:  a.profile,
		Projects: projects,
	}
}

func (a *Assembler) loadStrings(locale string) map[string]any {
	if doc, ok := LoadDocument(filepath.Join(a.dir, locale+".json"), a.log); ok {
		if obj, ok := AsObject(doc); ok {
			return obj
		}
	}
	if locale != templateLocale {
		a.log.Warn("content: falling back to template strings", zap.String("locale", locale))
		if doc, ok := LoadDocument(filepath.Join(a.dir, templateLocale+".json"), a.log); ok {
			if obj, ok := AsObject(doc); ok {
				return obj
			}
		}
	}
	return map[string]any{}
}

// backfillAliases fills derived keys the templates expect when the strings
// document omits them.
func backfillAliases(doc map[string]any, p Profile) {
	if _, ok := doc["download_cv"]; !ok {
		if v, ok := doc["download_cv_text"]; ok {
			doc["download_cv"] = v
		}
	}
	if _, ok := doc["name"]; !ok && p.FullName != "" {
		doc["name"] = p.FullName
	}
}

// AvailableLocales lists the locale codes with a strings document in the
// content directory, template excluded.
func AvailableLocales(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		code := strings.TrimSuffix(name, ".json")
		if _, reserved := reservedDocuments[code]; reserved || code == templateLocale {
			continue
		}
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
