package perm

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// Indent 输出缩进，4 个空格
	Indent = "    "
	// Field 文档中唯一的字段名
	Field = "numbers"
)

var (
	ErrIO          = errors.New("io failure")
	ErrSerialize   = errors.New("serialization failure")
	ErrBadDocument = errors.New("bad document")
)

// Document 输出文档
type Document struct {
	Numbers Sequence `json:"numbers"`
}

// trackingWriter 记录底层写错误，用来区分 IO 失败和编码失败
type trackingWriter struct {
	w   io.Writer
	err error
}

func (t *trackingWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil && t.err == nil {
		t.err = err
	}
	return n, err
}

// Encode 把 seq 包装成 {"numbers": [...]} 以 4 空格缩进写入 w
func Encode(w io.Writer, seq Sequence) error {
	if seq == nil {
		seq = Sequence{}
	}
	tw := &trackingWriter{w: w}
	enc := json.NewEncoder(tw)
	enc.SetIndent("", Indent)
	if err := enc.Encode(Document{Numbers: seq}); err != nil {
		if tw.err != nil {
			return fmt.Errorf("%w: %w", ErrIO, tw.err)
		}
		return fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	return nil
}

// WriteFile 创建或截断 path 并写入完整文档
// 失败时删除已创建的文件，不留下半截内容
func WriteFile(path string, seq Sequence) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrIO, path, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	bw := bufio.NewWriterSize(f, 1<<20)
	if err = Encode(bw, seq); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, path, err)
	}
	return nil
}

// Decode 读取文档，顶层必须只有 numbers 一个键
func Decode(r io.Reader) (Sequence, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(bufio.NewReader(r)).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}
	if len(raw) != 1 {
		return nil, fmt.Errorf("%w: want exactly one top-level key, got %d", ErrBadDocument, len(raw))
	}
	body, ok := raw[Field]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrBadDocument, Field)
	}
	var seq Sequence
	if err := json.Unmarshal(body, &seq); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrBadDocument, Field, err)
	}
	if seq == nil {
		return nil, fmt.Errorf("%w: %q is null", ErrBadDocument, Field)
	}
	return seq, nil
}

// ReadFile 从 path 读取文档
func ReadFile(path string) (Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	defer f.Close()
	return Decode(f)
}
