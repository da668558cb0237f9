package uploads

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/logging"
)

const CacheControl = "public, max-age=31536000, immutable"

var errNotFound = map[string]string{"error": "File not found"}

// FileHTTP serves files below an upload root. Lookups go through os.Root,
// so neither ".." segments nor symlinks can reach outside the root.
type FileHTTP struct {
	root *os.Root
}

func NewFileHTTP(dir string) (*FileHTTP, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open upload root: %w", err)
	}
	return &FileHTTP{root: root}, nil
}

func (h *FileHTTP) Close() error {
	return h.root.Close()
}

func (h *FileHTTP) GetFile(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "uploads.get_file")

	name := strings.TrimPrefix(path.Clean("/"+c.Param("*")), "/")
	if name == "" || name == "." {
		return c.JSON(http.StatusNotFound, errNotFound)
	}

	f, err := h.root.Open(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			l.Warn("open_file_error", "file", name, "error", err)
		}
		return c.JSON(http.StatusNotFound, errNotFound)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil || st.IsDir() {
		return c.JSON(http.StatusNotFound, errNotFound)
	}

	header := c.Response().Header()
	header.Set(echo.HeaderCacheControl, CacheControl)
	header.Set(echo.HeaderContentLength, fmt.Sprint(st.Size()))

	return c.Stream(http.StatusOK, ContentType(name), f)
}
