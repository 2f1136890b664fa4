package speech

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// верхняя граница вывода внешней утилиты
const maxOutputSize = 50 * 1024 * 1024

// runCommand запускает утилиту, подаёт stdin целиком заранее и возвращает stdout.
// По таймауту процесс сначала получает SIGINT, затем убивается.
func runCommand(ctx context.Context, timeout time.Duration, name string, args []string, stdin []byte) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	tool := filepath.Base(name)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = bytes.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = 100 * time.Millisecond

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s timeout: %w", tool, ctxErr)
		}
		return nil, fmt.Errorf("%s failed: %w, stderr: %s", tool, err, strings.TrimSpace(stderr.String()))
	}

	if stdout.Len() == 0 {
		return nil, fmt.Errorf("%s produced no output, stderr: %s", tool, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() > maxOutputSize {
		return nil, fmt.Errorf("%s output too large: %d bytes (max %d)", tool, stdout.Len(), maxOutputSize)
	}

	return stdout.Bytes(), nil
}
