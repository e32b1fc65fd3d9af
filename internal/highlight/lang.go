package highlight

import (
	"path/filepath"
	"strings"
)

// extToLang maps file extensions to chroma lexer names.
var extToLang = map[string]string{
	".go":    "go",
	".rb":    "ruby",
	".py":    "python",
	".rs":    "rust",
	".js":    "javascript",
	".mjs":   "javascript",
	".cjs":   "javascript",
	".jsx":   "jsx",
	".ts":    "typescript",
	".tsx":   "tsx",
	".java":  "java",
	".c":     "c",
	".cpp":   "cpp",
	".cc":    "cpp",
	".cxx":   "cpp",
	".hpp":   "cpp",
	".hh":    "cpp",
	".hxx":   "cpp",
	".cs":    "csharp",
	".csx":   "csharp",
	".php":   "php",
	".phtml": "php",
	".swift": "swift",
	".kt":    "kotlin",
	".kts":   "kotlin",
	".scala": "scala",
	".m":     "objective-c",
	".mm":    "objective-c",
	".css":   "css",
	".html":  "html",
	".json":  "json",
	".yaml":  "yaml",
	".yml":   "yaml",
	".md":    "markdown",
	".sh":    "bash",
	".sql":   "sql",
}

// LanguageFor resolves the chroma language for a block: the fence's language
// token wins, then the block name's extension, then "" (no highlighting).
func LanguageFor(fenceLanguage, blockName string) string {
	if fenceLanguage != "" {
		return fenceLanguage
	}
	return languageForName(blockName)
}

// languageForName detects a language from a block name like "app.js". Block
// names are labels in a story document, not paths on disk, so only the
// extension is consulted.
func languageForName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	return extToLang[ext]
}
