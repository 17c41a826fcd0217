package filesystem

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultSFTPPort is used when an sftp:// location omits the port.
const DefaultSFTPPort = 22

// Errors returned by ParsePath.
var (
	ErrEmptyLocation    = errors.New("location is empty")
	ErrMissingUser      = errors.New("SFTP URL must include username (sftp://user@host/path)")
	ErrMissingHost      = errors.New("SFTP URL must include host")
	ErrUnexpectedScheme = errors.New("expected sftp:// scheme")
)

// Location is a parsed directory location: either a host path or an SFTP URL.
type Location struct {
	IsRemote bool

	// Path is the directory path on the host or on the remote side.
	Path string

	// For SFTP locations
	Host string
	Port int
	User string
}

// String renders the location back in the form ParsePath accepts.
func (l *Location) String() string {
	if !l.IsRemote {
		return l.Path
	}

	remotePath := "/" + l.Path
	if l.Path == "." {
		remotePath = ""
	}

	return fmt.Sprintf("sftp://%s@%s:%d%s", l.User, l.Host, l.Port, remotePath)
}

// ParsePath parses a directory location, detecting whether it's a host path or SFTP URL.
// SFTP URLs have the format: sftp://user@host:port/path/to/dir
// Port is optional (defaults to 22)
// Examples:
//   - sftp://pi@matrix.local/gifs/       (relative to the remote home directory)
//   - sftp://pi@matrix.local:2222//sd/gifs/ (absolute remote path /sd/gifs/)
//   - /media/sdcard/gifs/               (host path)
func ParsePath(location string) (*Location, error) {
	if location == "" {
		return nil, ErrEmptyLocation
	}

	if strings.HasPrefix(location, "sftp://") {
		return parseSFTPURL(location)
	}

	return &Location{Path: location}, nil
}

// parseSFTPURL parses an SFTP URL into its components.
func parseSFTPURL(sftpURL string) (*Location, error) {
	u, err := url.Parse(sftpURL) //nolint:varnamelen // u is idiomatic for URL
	if err != nil {
		return nil, fmt.Errorf("invalid SFTP URL: %w", err)
	}

	if u.Scheme != "sftp" {
		return nil, fmt.Errorf("%w, got %s://", ErrUnexpectedScheme, u.Scheme)
	}

	if u.User == nil || u.User.Username() == "" {
		return nil, ErrMissingUser
	}

	host := u.Hostname()
	if host == "" {
		return nil, ErrMissingHost
	}

	port := DefaultSFTPPort
	if portStr := u.Port(); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid port number: %w", err)
		}
		port = p
	}

	// SFTP path convention:
	//   sftp://user@host/path  → relative to home directory (strip leading /)
	//   sftp://user@host//path → absolute path /path (strip one /)
	//   sftp://user@host       → home directory (.)
	remotePath := u.Path
	switch {
	case remotePath == "" || remotePath == "/":
		remotePath = "."
	case strings.HasPrefix(remotePath, "//"):
		remotePath = remotePath[1:]
	default:
		remotePath = strings.TrimPrefix(remotePath, "/")
	}

	return &Location{
		IsRemote: true,
		Path:     remotePath,
		Host:     host,
		Port:     port,
		User:     u.User.Username(),
	}, nil
}
