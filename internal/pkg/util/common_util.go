package util

import (
	"io"
	"mime/multipart"
	"net/http"
)

// GetSafeContentType 嗅探文件头判断类型，不信任客户端上报的 Content-Type
func GetSafeContentType(reader multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}

	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}
