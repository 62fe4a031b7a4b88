package recent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parse unmarshals a JSON literal into the generic tree Extract consumes.
func parse(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func folderEntry(path, label string) map[string]any {
	return map[string]any{
		"id":    "openRecentFolder",
		"label": label,
		"uri":   map[string]any{"$mid": float64(1), "path": path, "scheme": "file"},
	}
}

func menubarDoc(entries ...any) map[string]any {
	return map[string]any{
		"lastKnownMenubarData": map[string]any{
			"menus": map[string]any{
				"File": map[string]any{
					"items": []any{
						map[string]any{"id": "open", "label": "&&Open..."},
						map[string]any{
							"id":      "submenuitem.MenubarRecentMenu",
							"label":   "Open &&Recent",
							"submenu": map[string]any{"items": entries},
						},
					},
				},
			},
		},
	}
}

func TestExtract_MissingNavigationSegments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"nil input", `null`},
		{"not an object", `"just a string"`},
		{"empty object", `{}`},
		{"menubar data missing", `{"other": 1}`},
		{"menus missing", `{"lastKnownMenubarData": {}}`},
		{"menus wrong type", `{"lastKnownMenubarData": {"menus": 42}}`},
		{"File missing", `{"lastKnownMenubarData": {"menus": {"Edit": {}}}}`},
		{"items missing", `{"lastKnownMenubarData": {"menus": {"File": {}}}}`},
		{"items wrong type", `{"lastKnownMenubarData": {"menus": {"File": {"items": "nope"}}}}`},
		{"submenu missing", `{"lastKnownMenubarData": {"menus": {"File": {"items": [
			{"id": "submenuitem.MenubarRecentMenu", "label": "Open &&Recent"}
		]}}}}`},
		{"submenu items missing", `{"lastKnownMenubarData": {"menus": {"File": {"items": [
			{"id": "submenuitem.MenubarRecentMenu", "label": "Open &&Recent", "submenu": {}}
		]}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Extract(parse(t, tt.doc)))
		})
	}
}

func TestExtract_RecentMenuLiteralsMustMatch(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		label string
	}{
		{"wrong id", "submenuitem.SomethingElse", "Open &&Recent"},
		{"unescaped label", "submenuitem.MenubarRecentMenu", "Open Recent"},
		{"localized label", "submenuitem.MenubarRecentMenu", "Zuletzt ge&&öffnet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := map[string]any{
				"lastKnownMenubarData": map[string]any{
					"menus": map[string]any{
						"File": map[string]any{
							"items": []any{
								map[string]any{
									"id":      tt.id,
									"label":   tt.label,
									"submenu": map[string]any{"items": []any{folderEntry("/tmp/p", "p")}},
								},
							},
						},
					},
				},
			}
			assert.Empty(t, Extract(doc))
		})
	}
}

func TestExtract_FiltersNonFolderEntries(t *testing.T) {
	doc := menubarDoc(
		folderEntry("/Users/alice/dev/alpha", "alice/dev/alpha"),
		map[string]any{"id": "openRecentFile", "label": "notes.txt", "uri": map[string]any{"path": "/tmp/notes.txt"}},
		folderEntry("/Users/alice/dev/beta", "alice/dev/beta"),
	)

	got := Extract(doc)
	require.Len(t, got, 2)
	assert.Equal(t, "/Users/alice/dev/alpha", got[0].Path)
	assert.Equal(t, "/Users/alice/dev/beta", got[1].Path)
}

func TestExtract_DropsStringURIEntries(t *testing.T) {
	doc := menubarDoc(
		folderEntry("/Users/alice/dev/alpha", "alpha"),
		map[string]any{"id": "openRecentFolder", "label": "ghost", "uri": "file:///Users/alice/ghost"},
		map[string]any{"id": "openRecentFolder", "label": "missing"},
	)

	got := Extract(doc)
	require.Len(t, got, 1)
	assert.Equal(t, "/Users/alice/dev/alpha", got[0].Path)
}

func TestExtract_DropsObjectURIWithoutPath(t *testing.T) {
	doc := menubarDoc(
		map[string]any{"id": "openRecentFolder", "label": "broken", "uri": map[string]any{"$mid": float64(1), "scheme": "file"}},
		map[string]any{"id": "openRecentFolder", "label": "numeric", "uri": map[string]any{"$mid": float64(1), "path": float64(42), "scheme": "file"}},
		map[string]any{"id": "openRecentFolder", "label": "blank", "uri": map[string]any{"$mid": float64(1), "path": "", "scheme": "file"}},
		folderEntry("/Users/alice/dev/alpha", "alpha"),
	)

	got := Extract(doc)
	require.Len(t, got, 1)
	assert.Equal(t, "/Users/alice/dev/alpha", got[0].Path)
	for _, p := range got {
		assert.NotEmpty(t, p.Path, "every extracted project must have a path")
	}
}

func TestExtract_SeparatorsAndControlsIgnored(t *testing.T) {
	doc := menubarDoc(
		folderEntry("/srv/work/one", "work/one"),
		map[string]any{"id": "vscode.menubar.separator"},
		map[string]any{"id": "workbench.action.clearRecentFiles", "label": "&&Clear Recently Opened..."},
	)

	got := Extract(doc)
	require.Len(t, got, 1)
	assert.Equal(t, "one", got[0].Label)
}

func TestExtract_PathAndLabelMapping(t *testing.T) {
	doc := menubarDoc(folderEntry("/Users/alice/dev/proj", "alice/dev/proj"))

	got := Extract(doc)
	require.Len(t, got, 1)
	assert.Equal(t, "/Users/alice/dev/proj", got[0].Path)
	assert.Equal(t, "/Users/alice/dev/proj", got[0].URI)
	assert.Equal(t, "proj", got[0].Label)
}

func TestExtract_EmptyLabel(t *testing.T) {
	doc := menubarDoc(folderEntry("/srv/unnamed", ""))

	got := Extract(doc)
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].Label)
}

func TestExtract_PreservesOrder(t *testing.T) {
	doc := menubarDoc(
		folderEntry("/p/one", "one"),
		folderEntry("/p/two", "two"),
		folderEntry("/p/one", "one"), // duplicates survive, no dedupe
		folderEntry("/p/three", "three"),
	)

	got := Extract(doc)
	require.Len(t, got, 4)
	paths := []string{got[0].Path, got[1].Path, got[2].Path, got[3].Path}
	assert.Equal(t, []string{"/p/one", "/p/two", "/p/one", "/p/three"}, paths)
}

func TestExtract_RoundTripThroughJSON(t *testing.T) {
	doc := parse(t, `{
		"lastKnownMenubarData": {
			"menus": {
				"File": {
					"items": [
						{"id": "open", "label": "&&Open..."},
						{
							"id": "submenuitem.MenubarRecentMenu",
							"label": "Open &&Recent",
							"submenu": {
								"items": [
									{
										"id": "openRecentFolder",
										"label": "alice/dev/proj",
										"uri": {"$mid": 1, "path": "/Users/alice/dev/proj", "scheme": "file"}
									}
								]
							}
						}
					]
				}
			}
		}
	}`)

	got := Extract(doc)
	require.Len(t, got, 1)
	assert.Equal(t, Project{URI: "/Users/alice/dev/proj", Label: "proj", Path: "/Users/alice/dev/proj"}, got[0])
}
