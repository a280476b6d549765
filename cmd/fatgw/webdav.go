package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/spf13/afero"
	"golang.org/x/net/webdav"
)

// FS bridges an afero filesystem to the webdav.FileSystem interface.
type FS struct {
	afero.Fs
}

func newFS(fs afero.Fs) *FS {
	return &FS{Fs: fs}
}

func (f *FS) Mkdir(ctx context.Context, name string, perm os.FileMode) error {
	return f.Fs.Mkdir(name, perm)
}

func (f *FS) OpenFile(ctx context.Context, name string, flag int, perm os.FileMode) (webdav.File, error) {
	return f.Fs.OpenFile(name, flag, perm)
}

func (f *FS) RemoveAll(ctx context.Context, name string) error {
	return f.Fs.RemoveAll(name)
}

func (f *FS) Rename(ctx context.Context, oldName, newName string) error {
	return f.Fs.Rename(oldName, newName)
}

func (f *FS) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	return f.Fs.Stat(name)
}

func newHandler(fs webdav.FileSystem, prefix string) http.Handler {
	return &webdav.Handler{
		Prefix:     prefix,
		FileSystem: fs,
		LockSystem: webdav.NewMemLS(),
	}
}

func serveWebdav(listener net.Listener, fs afero.Fs) error {
	h := newHandler(newFS(fs), "/mount")
	logger := log.New(os.Stdout, "http: ", log.LstdFlags)
	server := &http.Server{
		Handler:  handlers.LoggingHandler(os.Stdout, h),
		ErrorLog: logger,
	}
	return server.Serve(listener)
}
