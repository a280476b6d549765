package main

import (
	"crypto/tls"
	"errors"

	ftpserver "github.com/fclairamb/ftpserverlib"
	ftplogrus "github.com/fclairamb/go-log/logrus"
	"github.com/spf13/afero"
)

// FTPServer is the ftpserverlib driver: every client gets the same
// afero view of the served volume, with no authentication.
type FTPServer struct {
	Settings   *ftpserver.Settings
	FileSystem afero.Fs
}

func newFTPServer(addr string, fs afero.Fs) *ftpserver.FtpServer {
	srv := ftpserver.NewFtpServer(&FTPServer{
		Settings: &ftpserver.Settings{
			ListenAddr: addr,
		},
		FileSystem: fs,
	})
	srv.Logger = ftplogrus.New()
	return srv
}

func (s *FTPServer) GetSettings() (*ftpserver.Settings, error) {
	return s.Settings, nil
}

func (s *FTPServer) ClientConnected(cc ftpserver.ClientContext) (string, error) {
	return "fatgw", nil
}

func (s *FTPServer) ClientDisconnected(cc ftpserver.ClientContext) {}

func (s *FTPServer) AuthUser(cc ftpserver.ClientContext, user, pass string) (ftpserver.ClientDriver, error) {
	return s.FileSystem, nil
}

func (s *FTPServer) GetTLSConfig() (*tls.Config, error) {
	return nil, errors.New("TLS is not configured")
}
