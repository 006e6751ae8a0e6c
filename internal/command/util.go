package command

import (
	"context"
	"io"
	"os"
	"runtime/debug"

	"herbal/config"
	"herbal/internal/errors"

	"golang.org/x/term"
)

type configKey struct{}

func configFromContext(ctx context.Context) (*config.Config, error) {
	cfg, ok := ctx.Value(configKey{}).(*config.Config)
	if !ok {
		return nil, errors.New("config resolution failed")
	}

	return cfg, nil
}

func prompt(prompt string, mask bool) ([]byte, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		if _, err := os.Stderr.WriteString(prompt); err != nil {
			return nil, err
		}
	}

	return readLine(os.Stdin, mask)
}

// readLine reads up to the first newline. Masked input is only possible on a terminal.
func readLine(stdin *os.File, mask bool) ([]byte, error) {
	if mask && term.IsTerminal(int(stdin.Fd())) {
		defer func() { _, _ = os.Stderr.WriteString("\n") }()

		return term.ReadPassword(int(stdin.Fd()))
	}

	return scanLine(stdin)
}

func scanLine(r io.Reader) ([]byte, error) {
	var buf [1]byte
	var ret []byte
	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			switch buf[0] {
			case '\n':
				return ret, nil
			case '\r':
			case '\b':
				if len(ret) > 0 {
					ret = ret[:len(ret)-1]
				}
			default:
				ret = append(ret, buf[0])
			}

			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) && len(ret) > 0 {
				return ret, nil
			}

			return ret, err
		}
	}
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-dev"
	}
	ver := "unknown"
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			ver = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if dirty {
		ver += "-dev"
	}

	return ver
}
