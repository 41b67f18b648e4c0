package resume

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Extensions offered by the file browser.
var Extensions = []string{".pdf", ".doc", ".docx"}

// Inspect captures the metadata of the file at path. The MIME type comes from
// the file's leading bytes, not its extension.
func Inspect(path string) (Handle, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Handle{}, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if info.IsDir() {
		return Handle{}, fmt.Errorf("%s is a directory", filepath.Base(path))
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return Handle{}, fmt.Errorf("detecting type of %s: %w", filepath.Base(path), err)
	}

	return Handle{
		Name:     info.Name(),
		Size:     info.Size(),
		MIMEType: resolveType(mtype, path),
		Path:     path,
	}, nil
}

// resolveType strips parameters from the detected type. Word files whose
// container is recognised but not the document inside (bare zip or OLE
// storage) fall back to their extension.
func resolveType(mtype *mimetype.MIME, path string) string {
	base, _, _ := strings.Cut(mtype.String(), ";")
	base = strings.TrimSpace(base)

	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case base == "application/zip" && ext == ".docx":
		return TypeDocx
	case base == "application/x-ole-storage" && ext == ".doc":
		return TypeDoc
	}
	return base
}

// NormalizeDroppedPath turns text a terminal pastes for a dropped file into a
// filesystem path: surrounding whitespace and quotes are removed, file://
// URLs are decoded, backslash-escaped spaces are unescaped and a leading ~ is
// expanded. Only the first line is considered.
func NormalizeDroppedPath(raw string) string {
	p, _, _ := strings.Cut(strings.TrimSpace(raw), "\n")
	p = strings.TrimSpace(p)

	if len(p) >= 2 {
		if (p[0] == '\'' && p[len(p)-1] == '\'') || (p[0] == '"' && p[len(p)-1] == '"') {
			p = p[1 : len(p)-1]
		}
	}

	if strings.HasPrefix(p, "file://") {
		if u, err := url.Parse(p); err == nil {
			p = u.Path
		}
	} else {
		p = strings.ReplaceAll(p, `\ `, " ")
	}

	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}

	return p
}
