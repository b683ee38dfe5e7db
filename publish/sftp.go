package publish

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"time"

	"aland-offers/config"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// Uploader copies generated pages to a web host over SFTP
type Uploader struct {
	cfg         config.SFTPConfig
	dialTimeout time.Duration
}

// NewUploader creates a new Uploader
func NewUploader(cfg config.SFTPConfig) *Uploader {
	if cfg.Port <= 0 {
		cfg.Port = 22
	}
	if cfg.RemoteDir == "" {
		cfg.RemoteDir = "/"
	}
	return &Uploader{
		cfg:         cfg,
		dialTimeout: 20 * time.Second,
	}
}

// Upload copies each local file into the remote directory under its base name
func (u *Uploader) Upload(ctx context.Context, localPaths ...string) error {
	if u.cfg.Host == "" || u.cfg.User == "" || u.cfg.Password == "" {
		return fmt.Errorf("sftp: host, user and password must be configured")
	}
	for _, p := range localPaths {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("sftp: local file: %w", err)
		}
	}

	sshClient, err := u.dial(ctx)
	if err != nil {
		return err
	}
	defer sshClient.Close()

	client, err := sftp.NewClient(sshClient)
	if err != nil {
		return fmt.Errorf("sftp: new client: %w", err)
	}
	defer client.Close()

	return u.uploadAll(ctx, client, localPaths)
}

func (u *Uploader) uploadAll(ctx context.Context, client *sftp.Client, localPaths []string) error {
	if err := client.MkdirAll(u.cfg.RemoteDir); err != nil {
		return fmt.Errorf("sftp: mkdir %s: %w", u.cfg.RemoteDir, err)
	}

	for _, p := range localPaths {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("sftp: upload canceled: %w", err)
		}
		remotePath := path.Join(u.cfg.RemoteDir, filepath.Base(p))
		if err := uploadFile(client, p, remotePath); err != nil {
			return err
		}
		log.Printf("Uploaded %s to %s:%s\n", p, u.cfg.Host, remotePath)
	}
	return nil
}

// hostKeyCallback checks the server against known_hosts. The password is
// never sent before the host key has been accepted.
func (u *Uploader) hostKeyCallback() (ssh.HostKeyCallback, error) {
	if u.cfg.KnownHosts != "" {
		cb, err := knownhosts.New(u.cfg.KnownHosts)
		if err != nil {
			return nil, fmt.Errorf("sftp: known_hosts: %w", err)
		}
		return cb, nil
	}
	if u.cfg.InsecureIgnoreHostKey {
		log.Printf("Warning: Host key of %s is not verified\n", u.cfg.Host)
		return ssh.InsecureIgnoreHostKey(), nil
	}
	return nil, fmt.Errorf("sftp: known_hosts must be configured to verify %s", u.cfg.Host)
}

func (u *Uploader) dial(ctx context.Context) (*ssh.Client, error) {
	hostKeyCallback, err := u.hostKeyCallback()
	if err != nil {
		return nil, err
	}
	sshCfg := &ssh.ClientConfig{
		User:            u.cfg.User,
		Auth:            []ssh.AuthMethod{ssh.Password(u.cfg.Password)},
		HostKeyCallback: hostKeyCallback,
		Timeout:         u.dialTimeout,
	}
	addr := fmt.Sprintf("%s:%d", u.cfg.Host, u.cfg.Port)

	type dialRes struct {
		client *ssh.Client
		err    error
	}
	ch := make(chan dialRes, 1)
	go func() {
		c, err := ssh.Dial("tcp", addr, sshCfg)
		ch <- dialRes{client: c, err: err}
	}()

	select {
	case <-ctx.Done():
		// The dial may still succeed; close whatever it returns
		go func() {
			if r := <-ch; r.client != nil {
				r.client.Close()
			}
		}()
		return nil, fmt.Errorf("sftp: dial canceled: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("sftp: dial error: %w", r.err)
		}
		return r.client, nil
	}
}

// uploadFile writes to a temporary remote name and renames it into place
func uploadFile(client *sftp.Client, localPath, remotePath string) error {
	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("sftp: open local file: %w", err)
	}
	defer src.Close()

	tmpPath := remotePath + ".tmp"
	dst, err := client.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("sftp: create remote file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		client.Remove(tmpPath)
		return fmt.Errorf("sftp: upload copy: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("sftp: close remote file: %w", err)
	}

	// Servers without the posix-rename extension refuse to overwrite
	if err := client.PosixRename(tmpPath, remotePath); err != nil {
		removeErr := client.Remove(remotePath)
		if err := client.Rename(tmpPath, remotePath); err != nil {
			client.Remove(tmpPath)
			if removeErr != nil {
				return fmt.Errorf("sftp: rename %s: %w (removing old file: %v)", remotePath, err, removeErr)
			}
			return fmt.Errorf("sftp: rename %s: %w", remotePath, err)
		}
	}
	return nil
}
