package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

type UploadFile struct {
	Name    string
	Content io.Reader
}

// Upload posts files as multipart/form-data. The JSON content type is left
// off so the boundary header from the writer is the only one sent.
func (c *Client) Upload(ctx context.Context, path string, fields map[string]string, fileField string, files []UploadFile, out any) error {
	if len(files) == 0 {
		return Validationf(fileField, "at least one file is required")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("write field %s: %w", k, err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(fileField, f.Name)
		if err != nil {
			return fmt.Errorf("create form file %s: %w", f.Name, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return fmt.Errorf("copy %s: %w", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return err
	}
	token, err := c.creds.Token(ctx)
	if err != nil {
		return fmt.Errorf("read credential: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.execute(req, path, out)
}
