package fsops

import (
	"encoding/base64"
	"os"
)

// Read returns the contents of a single file. Text files (classified by MIME
// type or by the extension allow-list) decode as UTF-8 with a Latin-1
// fallback; everything else is returned base64-encoded. Files over
// MaxReadSize are rejected before any read based on stat size alone.
func (a *Accessor) Read(path string) (*ReadResult, error) {
	resolved, err := a.Resolve(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(resolved)
	if os.IsNotExist(err) {
		return nil, NewError(KindNotFound, "File not found: %s", resolved)
	}
	if err != nil {
		return nil, wrapError(KindInternal, err, "Cannot access file: %s", resolved)
	}
	if info.IsDir() {
		return nil, NewError(KindNotAFile, "Path is not a file: %s", resolved)
	}
	if info.Size() > MaxReadSize {
		return nil, NewError(KindTooLarge,
			"File too large (%d bytes). Maximum size is %d bytes.", info.Size(), MaxReadSize)
	}

	mimeType := detectMimeType(resolved)
	isText := isTextMime(mimeType) || isTextExtension(resolved)

	raw, err := os.ReadFile(resolved)
	if err != nil {
		return nil, wrapError(KindInternal, err, "Cannot read file: %s", resolved)
	}

	var (
		content   string
		encoding  string
		lineCount int
	)
	if isText {
		if text, ok := decodeText(raw); ok {
			content = text
			encoding = EncodingText
			lineCount = countLines(text)
		} else {
			isText = false
		}
	}
	if !isText {
		content = base64.StdEncoding.EncodeToString(raw)
		encoding = EncodingBase64
		lineCount = 0
	}

	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return &ReadResult{
		Path:         resolved,
		RelativePath: a.relative(resolved),
		Content:      content,
		Encoding:     encoding,
		LineCount:    lineCount,
		Size:         info.Size(),
		MimeType:     mimeType,
		IsText:       isText,
	}, nil
}
