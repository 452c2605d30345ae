// Package export はエクスポート成果物のファイルシステム書き込みを提供します。
// aferoで抽象化されているため、テストではインメモリFSに差し替えられます。
package export

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Writer writes export artifacts under a base directory.
type Writer struct {
	fs  afero.Fs
	dir string
}

// NewWriter creates a Writer that stores artifacts under dir on the given filesystem.
func NewWriter(fs afero.Fs, dir string) *Writer {
	return &Writer{fs: fs, dir: dir}
}

// WriteCSV はCSVデータを dir/name に書き込み、書き込んだパスを返します。
// 必要なディレクトリは作成されます。
func (w *Writer) WriteCSV(name string, data []byte) (string, error) {
	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(w.dir, name)
	if err := afero.WriteFile(w.fs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
