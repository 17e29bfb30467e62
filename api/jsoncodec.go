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
	"github.com/bytedance/sonic"
)

// jsonAPI is the sonic configuration used for the hot request/response
// path: HTML escaping off, matching the teacher's prior use of
// encoding/json's Encoder.SetEscapeHTML(false) for audit-log reasons and
// mention-bearing message content.
var jsonAPI = sonic.Config{EscapeHTML: false}.Froze()

// encodeJSONBody marshals v the way the engine encodes request bodies.
func encodeJSONBody(v any) ([]byte, error) {
	return jsonAPI.Marshal(v)
}

// decodeJSONBody unmarshals a response body into v.
func decodeJSONBody(data []byte, v any) error {
	return jsonAPI.Unmarshal(data, v)
}
