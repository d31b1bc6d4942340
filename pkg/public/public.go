package public

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/gorilla/mux"
	"github.com/goydb/alldocs/pkg/zipvfs"
)

// Public serves the folders and zip files of Dir below
// their name, e.g. Dir/ui.zip is served at /ui/
type Public struct {
	Dir string
}

func (p Public) Mount(r *mux.Router) error {
	files, err := os.ReadDir(p.Dir)
	if err != nil {
		return err
	}

	for _, f := range files {
		fullPath := path.Join(p.Dir, f.Name())

		if IsZipFile(f) {
			err := MountZIPFile(r, fullPath)
			if err != nil {
				log.Printf("Unable to serve zip %s due to: %v", fullPath, err)
			}
		} else if f.IsDir() {
			r.PathPrefix("/" + f.Name() + "/").Handler(http.FileServer(http.Dir(p.Dir)))
		}
	}

	return nil
}

func IsZipFile(f os.DirEntry) bool {
	return !f.IsDir() && path.Ext(f.Name()) == ".zip"
}

func MountZIPFile(r *mux.Router, fullPath string) error {
	f, err := os.Open(fullPath)
	if err != nil {
		return err
	}
	defer f.Close()

	folder := strings.TrimSuffix(path.Base(f.Name()), path.Ext(f.Name()))

	return MountZIPReader(r, folder, f)
}

func MountZIPReader(r *mux.Router, folder string, f io.Reader) error {
	if folder == "" || strings.HasPrefix(folder, "_") {
		return fmt.Errorf("invalid folder name %q", folder)
	}

	vfs, err := zipvfs.BuildFileSystem(context.Background(), f)
	if err != nil {
		return err
	}
	r.PathPrefix("/" + folder + "/").Handler(http.StripPrefix("/"+folder, http.FileServer(vfs)))
	return nil
}
