package packer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-news-intake/internal/normalize"
)

// CopyImage places the source image into the uploads tree under the post's
// year/month directory and returns the canonical web path plus the local
// destination. When the destination name is already taken a numeric suffix
// (-2, -3, ...) is appended so an existing asset is never overwritten on the
// producer side.
func CopyImage(source, uploadsRoot, date, slug, nameHint string) (webPath, localPath string, err error) {
	year, month, ok := splitDate(date)
	if !ok {
		return "", "", fmt.Errorf("packer: date %q is not YYYY-MM-DD", date)
	}

	hint := normalize.Slug(nameHint)
	if nameHint == "" {
		hint = "hero"
	}
	ext := strings.ToLower(filepath.Ext(source))

	destDir := filepath.Join(uploadsRoot, year, month)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", "", fmt.Errorf("packer: create uploads dir: %w", err)
	}

	base := fmt.Sprintf("%s-%s-%s", date, slug, hint)
	name := base + ext
	for n := 2; exists(filepath.Join(destDir, name)); n++ {
		name = fmt.Sprintf("%s-%d%s", base, n, ext)
	}

	localPath = filepath.Join(destDir, name)
	if err := copyFile(source, localPath); err != nil {
		return "", "", fmt.Errorf("packer: copy image: %w", err)
	}

	webPath = normalize.UploadsRoot + year + "/" + month + "/" + name
	return webPath, localPath, nil
}

func splitDate(date string) (year, month string, ok bool) {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
