/*
 * Copyright (c) 2022-2023. Veteran Software
 *
 * Discord API Wrapper - A custom wrapper for the Discord REST API developed for a proprietary project.
 *
 * This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public
 * License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later
 * version.
 *
 * This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied
 * warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License along with this program.
 * If not, see <http://www.gnu.org/licenses/>.
 */

package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// File is one attachment in a multipart request. The channel and webhook
// endpoint wrappers document a PayloadJson field alongside file uploads but
// never implement the multipart encoding itself; this fills that in.
type File struct {
	Name        string
	Reader      io.ReadSeeker
	ContentType string
}

// reset rewinds the file to the position appropriate for retryCount. Discord
// attachments are sent whole on every retry, so this always seeks to the
// start - grounded on disnake's File.reset(seek=retry_count), which does the
// same for non-resumable multipart bodies.
func (f File) reset(retryCount int) error {
	_, err := f.Reader.Seek(0, io.SeekStart)
	return err
}

// BuildMultipart assembles a multipart/form-data body carrying payloadJSON
// under the "payload_json" field and each file under "files[n]", the shape
// Discord's attachment endpoints expect.
func BuildMultipart(payloadJSON []byte, files []File) (body *bytes.Buffer, contentType string, err error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	if payloadJSON != nil {
		if err = w.WriteField("payload_json", string(payloadJSON)); err != nil {
			return nil, "", err
		}
	}

	for i, f := range files {
		if err = f.reset(0); err != nil {
			return nil, "", fmt.Errorf("multipart: rewind %s: %w", f.Name, err)
		}

		part, partErr := w.CreatePart(fileHeader(i, f))
		if partErr != nil {
			return nil, "", partErr
		}
		if _, err = io.Copy(part, f.Reader); err != nil {
			return nil, "", err
		}
	}

	if err = w.Close(); err != nil {
		return nil, "", err
	}

	return buf, w.FormDataContentType(), nil
}

func fileHeader(index int, f File) map[string][]string {
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return map[string][]string{
		"Content-Disposition": {fmt.Sprintf(`form-data; name="files[%d]"; filename="%s"`, index, f.Name)},
		"Content-Type":        {contentType},
	}
}
