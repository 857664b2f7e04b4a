package docview

import (
	"mime"
	"path"
	"strings"
)

// Category is the kind of content a path holds, derived from its name.
type Category int

// Category constants. The list is closed; Dispatcher handles every value.
const (
	CategoryOther Category = iota
	CategoryMarkdown
	CategoryRestructuredText
	CategorySpecialIndex
	CategoryText
	CategoryImage
	CategoryAudio
	CategoryVideo
)

// String returns the lower-case name of the category.
func (c Category) String() string {
	switch c {
	case CategoryMarkdown:
		return "markdown"
	case CategoryRestructuredText:
		return "restructuredtext"
	case CategorySpecialIndex:
		return "special_index"
	case CategoryText:
		return "text"
	case CategoryImage:
		return "image"
	case CategoryAudio:
		return "audio"
	case CategoryVideo:
		return "video"
	default:
		return "other"
	}
}

// IsText reports whether content of this category can be previewed as text.
func (c Category) IsText() bool {
	switch c {
	case CategoryMarkdown, CategoryRestructuredText, CategorySpecialIndex, CategoryText:
		return true
	default:
		return false
	}
}

var markdownExtensions = newSet("md", "markdown", "mkd")

const restructuredTextExtension = "rst"

var commonTextExtensions = newSet(
	// AsciiDoc
	"adoc", "asciidoc",
	// C and C++
	"c", "cpp", "cxx", "h", "hpp",
	// Web
	"css", "htm", "html", "js", "json",
	// Markdown and reStructuredText
	"md", "markdown", "mkd", "rst",
	// Plain text
	"text", "txt",
	// Shell scripts
	"sh", "bash", "csh", "ksh", "fish", "zsh", "bat", "cmd", "ps1",
	// Configuration
	"cfg", "cnf", "conf", "config",
	"coffee", "cs", "csv", "cr", "ex", "erl", "f", "gemini", "gmi", "go",
	"hbs", "inf", "ini", "jad", "java", "jsx", "kt", "less", "lisp", "log",
	"lst", "lua", "mk", "opml", "pas", "rb", "rc", "reg", "php", "pony",
	"py", "rs", "sass", "scss", "scheme", "ss", "scm", "sgm", "sgml",
	"shtml", "sln", "toml", "tsv", "xml", "uu", "vb", "vbs", "vcard", "vml",
	"yaml", "yml", "zig",
)

var imageExtensions = newSet("bmp", "gif", "ico", "jpg", "jpeg", "png", "svg", "webp")

var audioExtensions = newSet("mid", "midi", "mp3", "mpga", "oga", "wav", "wave", "weba")

var videoExtensions = newSet("avi", "mp4", "mpeg", "mpg", "ogg", "ogv", "webm")

var specialNames = newSet("readme", "summary", "home", "index")

var ignoredDirs = newSet(".git", ".hg", ".svn")

// Classify returns the category of the file at p.
// It never fails: unknown names classify as CategoryOther.
func Classify(p string) Category {
	ext := Extension(p)
	switch {
	case markdownExtensions.has(ext):
		return CategoryMarkdown
	case ext == restructuredTextExtension:
		return CategoryRestructuredText
	case commonTextExtensions.has(ext):
		return CategoryText
	case imageExtensions.has(ext):
		return CategoryImage
	case audioExtensions.has(ext):
		return CategoryAudio
	case videoExtensions.has(ext):
		return CategoryVideo
	}

	if ext == "" {
		// A bare README or INDEX is a text document.
		if IsSpecialName(p) {
			return CategorySpecialIndex
		}
		return CategoryOther
	}
	mediaType, _, _ := mime.ParseMediaType(mime.TypeByExtension("." + ext))
	if strings.HasPrefix(mediaType, "text/") {
		return CategoryText
	}
	return CategoryOther
}

// Extension returns the lower-cased extension of the final segment of p,
// without the leading dot. Returns an empty string if there is none.
func Extension(p string) string {
	base := path.Base(p)
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(base[i+1:])
}

// IsSpecialName reports whether the final segment of p, with its last
// extension removed, is an index-like name such as README or index.
func IsSpecialName(p string) bool {
	base := path.Base(strings.TrimPrefix(p, "/"))
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return specialNames.has(strings.ToLower(base))
}

// IsIgnoredDir reports whether a directory with the given name is skipped
// during indexing. Applies to directory names only.
func IsIgnoredDir(name string) bool {
	return ignoredDirs.has(name)
}

type set map[string]struct{}

func newSet(items ...string) set {
	s := make(set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s set) has(item string) bool {
	_, ok := s[item]
	return ok
}
